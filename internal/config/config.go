package config

import (
	"fmt"
	"sort"

	"github.com/spf13/viper"
)

// Config represents the extract command's configuration
type Config struct {
	OutputSuffix string                 `mapstructure:"output_suffix"`
	Institutions map[string]Institution `mapstructure:"institutions"`
}

// Institution describes a statement issuer the extract command recognizes
type Institution struct {
	DisplayName string `mapstructure:"display_name"`
}

const defaultOutputSuffix = ".extracted.csv"

// Default returns the built-in institution table used when no config file
// is supplied.
func Default() *Config {
	return &Config{
		OutputSuffix: defaultOutputSuffix,
		Institutions: map[string]Institution{
			"chase": {DisplayName: "Chase"},
			"amex":  {DisplayName: "American Express"},
			"citi":  {DisplayName: "Citi"},
		},
	}
}

// Load loads configuration from a TOML file. The built-in institutions act
// as defaults; the file may add institutions or override display names.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")

	def := Default()
	v.SetDefault("output_suffix", def.OutputSuffix)
	for name, inst := range def.Institutions {
		v.SetDefault("institutions."+name+".display_name", inst.DisplayName)
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// InstitutionNames returns the recognized institution identifiers, sorted.
func (c *Config) InstitutionNames() []string {
	names := make([]string, 0, len(c.Institutions))
	for name := range c.Institutions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
