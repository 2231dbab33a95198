package main

import (
	"os"

	"github.com/example/monarch-tools/internal/cli"
)

func main() {
	os.Exit(cli.New().Run(os.Args[1:], os.Stdout, os.Stderr))
}
