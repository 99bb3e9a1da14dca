// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// OutputFormat defines the output format type
type OutputFormat string

const (
	OutputFormatText OutputFormat = "text"
	OutputFormatJSON OutputFormat = "json"
	OutputFormatYAML OutputFormat = "yaml"
)

// SplitOutput is the result of the split command
type SplitOutput struct {
	Language  string   `json:"language" yaml:"language"`
	Threshold int      `json:"threshold" yaml:"threshold"`
	Shares    []string `json:"shares" yaml:"shares"`
	SeedCheck string   `json:"seed_check" yaml:"seed_check"`
}

// CombineOutput is the result of the combine command
type CombineOutput struct {
	Language   string `json:"language" yaml:"language"`
	Mnemonic   string `json:"mnemonic" yaml:"mnemonic"`
	Passphrase string `json:"passphrase" yaml:"passphrase"`
	SeedCheck  string `json:"seed_check,omitempty" yaml:"seed_check,omitempty"`
}

// LanguageOutput describes one wordlist
type LanguageOutput struct {
	Index  int    `json:"index" yaml:"index"`
	Name   string `json:"name" yaml:"name"`
	NameEn string `json:"name_en" yaml:"name_en"`
}

// VersionOutput is the result of the version command
type VersionOutput struct {
	Version   string `json:"version" yaml:"version"`
	Commit    string `json:"commit" yaml:"commit"`
	BuildDate string `json:"build_date" yaml:"build_date"`
	Format    string `json:"format" yaml:"format"`
	GoVersion string `json:"go_version" yaml:"go_version"`
	Platform  string `json:"platform" yaml:"platform"`
}

// HexOutput is the result of the hex commands
type HexOutput struct {
	Shares []string `json:"shares,omitempty" yaml:"shares,omitempty"`
	Secret string   `json:"secret,omitempty" yaml:"secret,omitempty"`
}

// Printer handles formatted output
type Printer struct {
	format OutputFormat
	writer io.Writer
}

// NewPrinter creates a new Printer
func NewPrinter(format string, writer io.Writer) *Printer {
	return &Printer{
		format: OutputFormat(format),
		writer: writer,
	}
}

// PrintSplit prints share mnemonics, one per line in text mode
func (p *Printer) PrintSplit(out *SplitOutput) error {
	switch p.format {
	case OutputFormatJSON:
		return p.printJSON(out)
	case OutputFormatYAML:
		return p.printYAML(out)
	case OutputFormatText:
		for _, s := range out.Shares {
			fmt.Fprintln(p.writer, s)
		}
		fmt.Fprintf(p.writer, "\nAny %d of %d shares recover the mnemonic.\n", out.Threshold, len(out.Shares))
		fmt.Fprintf(p.writer, "Seed check: %s\n", out.SeedCheck)
		return nil
	default:
		return fmt.Errorf("unknown output format: %s", p.format)
	}
}

// PrintCombine prints a recovered mnemonic and passphrase
func (p *Printer) PrintCombine(out *CombineOutput) error {
	switch p.format {
	case OutputFormatJSON:
		return p.printJSON(out)
	case OutputFormatYAML:
		return p.printYAML(out)
	case OutputFormatText:
		fmt.Fprintf(p.writer, "Language:   %s\n", out.Language)
		fmt.Fprintf(p.writer, "Mnemonic:   %s\n", out.Mnemonic)
		fmt.Fprintf(p.writer, "Passphrase: %s\n", out.Passphrase)
		if out.SeedCheck != "" {
			fmt.Fprintf(p.writer, "Seed check: %s\n", out.SeedCheck)
		}
		return nil
	default:
		return fmt.Errorf("unknown output format: %s", p.format)
	}
}

// PrintLanguages prints the built-in wordlists
func (p *Printer) PrintLanguages(langs []LanguageOutput) error {
	switch p.format {
	case OutputFormatJSON:
		return p.printJSON(map[string]interface{}{"languages": langs})
	case OutputFormatYAML:
		return p.printYAML(map[string]interface{}{"languages": langs})
	case OutputFormatText:
		fmt.Fprintln(p.writer, "Available Languages:")
		for _, l := range langs {
			fmt.Fprintf(p.writer, "  %d  %-22s %s\n", l.Index, l.NameEn, l.Name)
		}
		return nil
	default:
		return fmt.Errorf("unknown output format: %s", p.format)
	}
}

// PrintVersion prints build information
func (p *Printer) PrintVersion(out *VersionOutput) error {
	switch p.format {
	case OutputFormatJSON:
		return p.printJSON(out)
	case OutputFormatYAML:
		return p.printYAML(out)
	case OutputFormatText:
		fmt.Fprintf(p.writer, "shamir39 version %s\n", out.Version)
		fmt.Fprintf(p.writer, "Git commit: %s\n", out.Commit)
		fmt.Fprintf(p.writer, "Build date: %s\n", out.BuildDate)
		fmt.Fprintf(p.writer, "Share format: %s\n", out.Format)
		fmt.Fprintf(p.writer, "Go version: %s\n", out.GoVersion)
		fmt.Fprintf(p.writer, "OS/Arch: %s\n", out.Platform)
		return nil
	default:
		return fmt.Errorf("unknown output format: %s", p.format)
	}
}

// PrintHex prints raw hex shares or a raw hex secret
func (p *Printer) PrintHex(out *HexOutput) error {
	switch p.format {
	case OutputFormatJSON:
		return p.printJSON(out)
	case OutputFormatYAML:
		return p.printYAML(out)
	case OutputFormatText:
		for _, s := range out.Shares {
			fmt.Fprintln(p.writer, s)
		}
		if out.Secret != "" {
			fmt.Fprintln(p.writer, out.Secret)
		}
		return nil
	default:
		return fmt.Errorf("unknown output format: %s", p.format)
	}
}

// PrintError prints an error
func (p *Printer) PrintError(err error) error {
	switch p.format {
	case OutputFormatJSON:
		return p.printJSON(map[string]string{"error": err.Error()})
	case OutputFormatYAML:
		return p.printYAML(map[string]string{"error": err.Error()})
	default:
		_, werr := fmt.Fprintf(p.writer, "Error: %v\n", err)
		return werr
	}
}

func (p *Printer) printJSON(v interface{}) error {
	enc := json.NewEncoder(p.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (p *Printer) printYAML(v interface{}) error {
	enc := yaml.NewEncoder(p.writer)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
