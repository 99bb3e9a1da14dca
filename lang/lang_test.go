// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package lang

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/unicode/norm"
)

func TestBuiltinLanguages(t *testing.T) {
	require.Greater(t, GetNumLangs(), 0)
	assert.Equal(t, "English", GetLang(0).GetLangNameEn())
	assert.Nil(t, GetLang(-1))
	assert.Nil(t, GetLang(GetNumLangs()))

	for i := 0; i < GetNumLangs(); i++ {
		l := GetLang(i)
		t.Run(l.GetLangNameEn(), func(t *testing.T) {
			assert.Equal(t, Size, l.Len())
			for j := 0; j < l.Len(); j++ {
				if got := l.Index(l.Word(j)); got != j {
					t.Fatalf("Index(Word(%d)) = %d", j, got)
				}
			}
			assert.Same(t, l, GetLangByName(l.GetLangNameEn()))
			assert.Same(t, l, GetLangByName(l.GetLangName()))
		})
	}
}

func TestEnglish(t *testing.T) {
	en := GetLangByName("english")
	require.NotNil(t, en)
	assert.Equal(t, "abandon", en.Word(0))
	assert.Equal(t, "zoo", en.Word(2047))
	assert.Equal(t, 0, en.Index("abandon"))
	assert.Equal(t, -1, en.Index("shamir39b"))
	assert.Equal(t, -1, en.Index(""))
	assert.Equal(t, "abandon ability", en.Join([]string{"abandon", "ability"}))
}

func TestIndexNormalizes(t *testing.T) {
	es := GetLangByName("Spanish")
	require.NotNil(t, es)

	// find a word with an accent and look it up in both forms
	for i := 0; i < es.Len(); i++ {
		w := es.Word(i)
		nfc, nfd := norm.NFC.String(w), norm.NFD.String(w)
		if nfc == nfd {
			continue
		}
		assert.Equal(t, i, es.Index(nfc))
		assert.Equal(t, i, es.Index(nfd))
		return
	}
	t.Fatal("no accented word found")
}

func TestNewValidates(t *testing.T) {
	_, err := New("x", "x", " ", []string{"a", "b"})
	assert.ErrorIs(t, err, ErrSize)

	words := make([]string, Size)
	for i := range words {
		words[i] = fmt.Sprintf("w%d", i)
	}
	l, err := New("Test", "Test", "-", words)
	require.NoError(t, err)
	assert.Equal(t, 7, l.Index("w7"))
	assert.Equal(t, "w1-w2", l.Join([]string{"w1", "w2"}))

	words[5] = "w4"
	_, err = New("x", "x", " ", words)
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestDetect(t *testing.T) {
	en := GetLang(0)
	l, err := Detect([]string{"zoo", "wrist", "abstract", "oxygen"})
	require.NoError(t, err)
	assert.Same(t, en, l)

	_, err = Detect([]string{"zoo", "notaword"})
	assert.ErrorIs(t, err, ErrUnknown)

	// the first simplified Chinese word is shared with the traditional list
	zh := GetLangByName("Chinese (simplified)")
	require.NotNil(t, zh)
	_, err = Detect([]string{zh.Word(0)})
	assert.ErrorIs(t, err, ErrAmbiguous)
}

func TestSplitPhrase(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, SplitPhrase("  a b\tc\n"))
	assert.Equal(t, []string{"あいこくしん", "あいさつ"}, mapNFC(SplitPhrase("あいこくしん　あいさつ")))
}

func mapNFC(words []string) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = norm.NFC.String(w)
	}
	return out
}
