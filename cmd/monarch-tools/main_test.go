package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/example/monarch-tools/internal/cli"
)

func TestMainDispatch(t *testing.T) {
	var out, errOut bytes.Buffer
	code := cli.New().Run([]string{"hello"}, &out, &errOut)

	assert.Equal(t, cli.ExitSuccess, code)
	assert.Contains(t, out.String(), "Hello")
	assert.Empty(t, errOut.String())
}
