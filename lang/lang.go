// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

// Package lang holds the BIP39 wordlists that share words are drawn from.
package lang

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tyler-smith/go-bip39/wordlists"
	"golang.org/x/text/unicode/norm"
)

// Size is the number of words in every wordlist
const Size = 2048

var (
	// ErrSize is returned for a wordlist that does not hold Size words
	ErrSize = errors.New("wordlist must have 2048 words")

	// ErrDuplicate is returned for a wordlist containing a word twice
	ErrDuplicate = errors.New("duplicate word in wordlist")

	// ErrUnknown is returned when no language contains every word
	ErrUnknown = errors.New("unknown language or unsupported words")

	// ErrAmbiguous is returned when several languages contain every word
	ErrAmbiguous = errors.New("phrase matches more than one language")
)

// Language is a wordlist with its lookup index
type Language struct {
	name      string
	nameEn    string
	separator string
	words     [Size]string
	index     map[string]int
}

// languages contains all built-in languages, English first
var languages = []*Language{
	mustNew("English", "English", " ", wordlists.English),
	mustNew("日本語", "Japanese", "　", wordlists.Japanese),
	mustNew("한국어", "Korean", " ", wordlists.Korean),
	mustNew("Español", "Spanish", " ", wordlists.Spanish),
	mustNew("简体中文", "Chinese (simplified)", " ", wordlists.ChineseSimplified),
	mustNew("繁體中文", "Chinese (traditional)", " ", wordlists.ChineseTraditional),
	mustNew("Français", "French", " ", wordlists.French),
	mustNew("Italiano", "Italian", " ", wordlists.Italian),
}

// New builds a language from an ordered list of unique words
func New(name, nameEn, separator string, words []string) (*Language, error) {
	if len(words) != Size {
		return nil, fmt.Errorf("%w: got %d", ErrSize, len(words))
	}
	l := &Language{
		name:      name,
		nameEn:    nameEn,
		separator: separator,
		index:     make(map[string]int, Size),
	}
	for i, w := range words {
		key := nfkdLazy(w)
		if _, ok := l.index[key]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicate, w)
		}
		l.words[i] = w
		l.index[key] = i
	}
	return l, nil
}

func mustNew(name, nameEn, separator string, words []string) *Language {
	l, err := New(name, nameEn, separator, words)
	if err != nil {
		panic(fmt.Sprintf("lang: %s: %v", nameEn, err))
	}
	return l
}

// GetNumLangs returns the number of built-in languages
func GetNumLangs() int {
	return len(languages)
}

// GetLang returns a built-in language by its index
func GetLang(i int) *Language {
	if i < 0 || i >= len(languages) {
		return nil
	}
	return languages[i]
}

// GetLangByName finds a built-in language by its native or English name,
// ignoring case
func GetLangByName(name string) *Language {
	for _, l := range languages {
		if strings.EqualFold(l.name, name) || strings.EqualFold(l.nameEn, name) {
			return l
		}
	}
	return nil
}

// GetLangName returns the native name of a language
func (l *Language) GetLangName() string {
	return l.name
}

// GetLangNameEn returns the English name of a language
func (l *Language) GetLangNameEn() string {
	return l.nameEn
}

// Separator returns the string placed between words of a phrase
func (l *Language) Separator() string {
	return l.separator
}

// Len returns the number of words
func (l *Language) Len() int {
	return Size
}

// Word returns the word at index i
func (l *Language) Word(i int) string {
	return l.words[i]
}

// Index returns the index of word, or -1 if it is not in the list. Words
// are compared in NFKD form, so composed and decomposed input both match.
func (l *Language) Index(word string) int {
	if i, ok := l.index[nfkdLazy(word)]; ok {
		return i
	}
	return -1
}

// Join formats words as a phrase using the language separator
func (l *Language) Join(words []string) string {
	return strings.Join(words, l.separator)
}

// Detect returns the only built-in language containing every word
func Detect(words []string) (*Language, error) {
	var found *Language
	for _, l := range languages {
		if !l.containsAll(words) {
			continue
		}
		if found != nil {
			return nil, ErrAmbiguous
		}
		found = l
	}
	if found == nil {
		return nil, ErrUnknown
	}
	return found, nil
}

func (l *Language) containsAll(words []string) bool {
	for _, w := range words {
		if l.Index(w) < 0 {
			return false
		}
	}
	return true
}

// SplitPhrase splits a phrase on any whitespace, including the ideographic
// space used by Japanese
func SplitPhrase(phrase string) []string {
	return strings.Fields(nfkdLazy(phrase))
}

// nfkdLazy only normalizes strings that contain non-ASCII characters
func nfkdLazy(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] > 127 {
			return norm.NFKD.String(s)
		}
	}
	return s
}
