// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/complex-gh/shamir39_go"
	"github.com/complex-gh/shamir39_go/lang"
	"github.com/spf13/cobra"
	"github.com/tyler-smith/go-bip39"
	"golang.org/x/term"
)

// errNoTerminal is returned when a passphrase prompt has no terminal
var errNoTerminal = errors.New("passphrase prompt requires a terminal")

// readPassword reads a line from the terminal without echo
var readPassword = func(prompt string, w io.Writer) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", errNoTerminal
	}
	fmt.Fprint(w, prompt)
	pw, err := term.ReadPassword(fd)
	fmt.Fprintln(w)
	if err != nil {
		return "", err
	}
	return string(pw), nil
}

func (a *app) newSplitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "split",
		Short: "Split a mnemonic into share mnemonics",
		Long: `Split a BIP39 mnemonic and optional passphrase into share mnemonics.

The mnemonic is read from --mnemonic, or from standard input when the
flag is not given. A passphrase alone may be split by passing an empty
mnemonic.`,
		Example: `  shamir39 split -m 2 -n 3 --mnemonic "abandon ... about"
  echo "abandon ... about" | shamir39 split -m 3 -n 5 --passphrase-prompt`,
		Args: cobra.NoArgs,
		RunE: a.runSplit,
	}
	cmd.Flags().IntP("threshold", "m", 2, "number of shares required to recover the mnemonic")
	cmd.Flags().IntP("shares", "n", 3, "number of shares to create")
	cmd.Flags().String("mnemonic", "", "mnemonic to split (default: read from stdin)")
	cmd.Flags().String("passphrase", "", "passphrase to split with the mnemonic")
	cmd.Flags().Bool("passphrase-prompt", false, "prompt for the passphrase without echo")
	return cmd
}

func (a *app) runSplit(cmd *cobra.Command, args []string) error {
	language := a.cfg.language(lang.GetLang(0))

	mnemonic := a.v.GetString("mnemonic")
	if !a.v.IsSet("mnemonic") {
		in, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read mnemonic: %w", err)
		}
		mnemonic = string(in)
	}
	words := lang.SplitPhrase(mnemonic)

	passphrase := a.v.GetString("passphrase")
	if a.v.GetBool("passphrase-prompt") {
		var err error
		passphrase, err = a.promptPassphrase(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
	}

	if language == lang.GetLang(0) && len(words) > 0 && !bip39.IsMnemonicValid(strings.Join(words, " ")) {
		a.logger.Warn("mnemonic has an invalid BIP39 checksum")
	}

	session, err := shamir39.NewSession(
		shamir39.WithBits(a.cfg.Bits),
		shamir39.WithLogger(a.logger),
	)
	if err != nil {
		return err
	}

	threshold := a.v.GetInt("threshold")
	shares, err := session.Split(words, passphrase, language, threshold, a.v.GetInt("shares"))
	if err != nil {
		return err
	}

	out := &SplitOutput{
		Language:  language.GetLangNameEn(),
		Threshold: threshold,
		Shares:    make([]string, len(shares)),
		SeedCheck: shamir39.SeedCheck(words, passphrase),
	}
	for i, s := range shares {
		out.Shares[i] = language.Join(s)
	}
	return a.printer(cmd).PrintSplit(out)
}

// promptPassphrase asks for the passphrase twice and requires both to match
func (a *app) promptPassphrase(w io.Writer) (string, error) {
	pw1, err := readPassword("Enter passphrase: ", w)
	if err != nil {
		return "", err
	}
	pw2, err := readPassword("Confirm passphrase: ", w)
	if err != nil {
		return "", err
	}
	if pw1 != pw2 {
		return "", errors.New("passphrases do not match")
	}
	return pw1, nil
}
