// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package cli

import (
	"fmt"
	"strings"

	"github.com/complex-gh/shamir39_go"
	"github.com/complex-gh/shamir39_go/lang"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable the CLI reads, so
// --output is also set by SHAMIR39_OUTPUT and --passphrase-prompt by
// SHAMIR39_PASSPHRASE_PROMPT
const EnvPrefix = "SHAMIR39"

// Config holds global CLI configuration
type Config struct {
	// Language is the wordlist name. Empty means English for split and
	// auto-detection for combine.
	Language string

	// Bits is the Galois field width
	Bits int

	// OutputFormat controls output formatting (text, json, yaml)
	OutputFormat string

	// Verbose enables debug logging
	Verbose bool
}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		Bits:         shamir39.DefaultBits,
		OutputFormat: string(OutputFormatText),
	}
}

// newViper returns a viper instance reading SHAMIR39_* variables
func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// load binds flags to v and fills cfg from flags, environment and defaults
func (c *Config) load(v *viper.Viper, flags *pflag.FlagSet) error {
	if err := v.BindPFlags(flags); err != nil {
		return err
	}
	c.Language = v.GetString("language")
	c.Bits = v.GetInt("bits")
	c.OutputFormat = strings.ToLower(v.GetString("output"))
	c.Verbose = v.GetBool("verbose")
	return c.validate()
}

func (c *Config) validate() error {
	switch OutputFormat(c.OutputFormat) {
	case OutputFormatText, OutputFormatJSON, OutputFormatYAML:
	default:
		return fmt.Errorf("unknown output format: %s", c.OutputFormat)
	}
	if c.Language != "" && lang.GetLangByName(c.Language) == nil {
		return fmt.Errorf("%w: %s", lang.ErrUnknown, c.Language)
	}
	return nil
}

// language returns the configured language, or fallback when none is set
func (c *Config) language(fallback *lang.Language) *lang.Language {
	if c.Language == "" {
		return fallback
	}
	return lang.GetLangByName(c.Language)
}
