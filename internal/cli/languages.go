// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package cli

import (
	"github.com/complex-gh/shamir39_go/lang"
	"github.com/spf13/cobra"
)

func (a *app) newLanguagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List the available wordlists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			langs := make([]LanguageOutput, 0, lang.GetNumLangs())
			for i := 0; i < lang.GetNumLangs(); i++ {
				l := lang.GetLang(i)
				langs = append(langs, LanguageOutput{
					Index:  i,
					Name:   l.GetLangName(),
					NameEn: l.GetLangNameEn(),
				})
			}
			return a.printer(cmd).PrintLanguages(langs)
		},
	}
}
