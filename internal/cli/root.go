// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

// Package cli implements the shamir39 command-line tool.
package cli

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// app carries the state shared by all commands of one root command
type app struct {
	cfg    *Config
	v      *viper.Viper
	logger *zap.Logger
}

// NewRootCmd builds the command tree. Flags may also be set through
// SHAMIR39_* environment variables.
func NewRootCmd() *cobra.Command {
	a := &app{
		cfg:    NewConfig(),
		v:      newViper(),
		logger: zap.NewNop(),
	}

	rootCmd := &cobra.Command{
		Use:   "shamir39",
		Short: "Split a BIP39 mnemonic into Shamir shares",
		Long: `shamir39 splits a BIP39 mnemonic and optional passphrase into
M-of-N share mnemonics written with the same wordlist, and combines any
M of them back into the original mnemonic and passphrase.

Every share begins with the word "shamir39b".`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.cfg.load(a.v, cmd.Flags()); err != nil {
				return err
			}
			a.logger = newLogger(cmd.ErrOrStderr(), a.cfg.Verbose)
			return nil
		},
	}

	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringVarP(&a.cfg.Language, "language", "l", "",
		"wordlist language (see 'shamir39 languages')")
	rootCmd.PersistentFlags().IntVar(&a.cfg.Bits, "bits", a.cfg.Bits,
		"Galois field width, 3 to 20")
	rootCmd.PersistentFlags().StringVarP(&a.cfg.OutputFormat, "output", "o", a.cfg.OutputFormat,
		"output format (text, json, yaml)")
	rootCmd.PersistentFlags().BoolVarP(&a.cfg.Verbose, "verbose", "v", false,
		"verbose output")

	rootCmd.AddCommand(
		a.newSplitCmd(),
		a.newCombineCmd(),
		a.newHexCmd(),
		a.newLanguagesCmd(),
		a.newVersionCmd(),
	)
	return rootCmd
}

// Execute runs the root command and reports a failure on stderr
func Execute() error {
	rootCmd := NewRootCmd()
	cmd, err := rootCmd.ExecuteC()
	if err != nil {
		format := string(OutputFormatText)
		if f := cmd.Flag("output"); f != nil {
			format = f.Value.String()
		}
		printer := NewPrinter(format, os.Stderr)
		_ = printer.PrintError(err) // Error printing to stderr is best-effort
	}
	return err
}

// printer returns a Printer for the configured format writing to cmd's
// output
func (a *app) printer(cmd *cobra.Command) *Printer {
	return NewPrinter(a.cfg.OutputFormat, cmd.OutOrStdout())
}
