// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/complex-gh/shamir39_go"
	"github.com/complex-gh/shamir39_go/lang"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (a *app) newCombineCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "combine [share...]",
		Short: "Recover a mnemonic from share mnemonics",
		Long: `Recover the mnemonic and passphrase from share mnemonics.

Each argument is one whole share. Without arguments, shares are read from
standard input, one per line. The wordlist is detected from the share
words unless --language is given.`,
		Example: `  shamir39 combine "shamir39b army achieve ..." "shamir39b around ..."
  shamir39 combine -o json < shares.txt`,
		RunE: a.runCombine,
	}
	cmd.Flags().Bool("no-seed-check", false, "do not print the seed check value")
	return cmd
}

func (a *app) runCombine(cmd *cobra.Command, args []string) error {
	lines := args
	if len(lines) == 0 {
		var err error
		if lines, err = readLines(cmd.InOrStdin()); err != nil {
			return fmt.Errorf("read shares: %w", err)
		}
	}

	parts := make([][]string, 0, len(lines))
	for _, line := range lines {
		if words := lang.SplitPhrase(line); len(words) > 0 {
			parts = append(parts, words)
		}
	}
	if len(parts) == 0 {
		return fmt.Errorf("%w: no shares given", shamir39.StatusErrInsufficient)
	}

	language := a.cfg.language(nil)
	if language == nil {
		var err error
		if language, err = detectLanguage(parts); err != nil {
			return err
		}
		a.logger.Debug("detected language", zap.String("language", language.GetLangNameEn()))
	}

	session, err := shamir39.NewSession(
		shamir39.WithBits(a.cfg.Bits),
		shamir39.WithLogger(a.logger),
	)
	if err != nil {
		return err
	}
	res, err := session.Combine(parts, language)
	if err != nil {
		return err
	}

	out := &CombineOutput{
		Language:   language.GetLangNameEn(),
		Mnemonic:   language.Join(res.Mnemonic),
		Passphrase: res.Passphrase,
	}
	if !a.v.GetBool("no-seed-check") {
		out.SeedCheck = shamir39.SeedCheck(res.Mnemonic, res.Passphrase)
	}
	return a.printer(cmd).PrintCombine(out)
}

// detectLanguage finds the wordlist of the share words, leaving out the
// version word which no wordlist contains
func detectLanguage(parts [][]string) (*lang.Language, error) {
	var words []string
	for _, p := range parts {
		for _, w := range p {
			if w != shamir39.Version {
				words = append(words, w)
			}
		}
	}
	l, err := lang.Detect(words)
	switch {
	case errors.Is(err, lang.ErrAmbiguous):
		return nil, fmt.Errorf("%w: use --language to choose", err)
	case err != nil:
		return nil, fmt.Errorf("%w: %w", shamir39.StatusErrLang, err)
	}
	return l, nil
}

// readLines returns the non-empty lines of r
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if line := sc.Text(); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, sc.Err()
}
