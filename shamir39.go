// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

// Package shamir39 splits a BIP39 mnemonic and an optional passphrase into
// M-of-N share mnemonics drawn from the same wordlist, and combines shares
// back into the original mnemonic and passphrase.
//
// A share mnemonic is the version word, one or more parameter words
// carrying the threshold and the share position, then the payload words
// holding that share's Shamir data.
package shamir39

import (
	"fmt"
	"strings"
	"sync"

	"github.com/complex-gh/shamir39_go/internal/bits"
	"github.com/complex-gh/shamir39_go/internal/gf"
	"github.com/complex-gh/shamir39_go/internal/sss"
	"github.com/complex-gh/shamir39_go/internal/text"
	"github.com/complex-gh/shamir39_go/random"
	"go.uber.org/zap"
)

// Constants
const (
	// Version is the first word of every share mnemonic. It is not part of
	// any wordlist.
	Version = "shamir39b"

	// WordlistSize is the number of words every wordlist must hold
	WordlistSize = 2048

	// MaxPassphraseUnits is the longest passphrase accepted, in UTF-16
	// code units
	MaxPassphraseUnits = 256

	// DefaultBits is the default Galois field width
	DefaultBits = gf.DefaultBits
)

// Status represents the result of a shamir39 operation
type Status int

const (
	// StatusOK indicates success
	StatusOK Status = iota

	// StatusErrThreshold indicates an invalid threshold
	StatusErrThreshold

	// StatusErrShares indicates an invalid number of shares
	StatusErrShares

	// StatusErrWordlist indicates a wordlist without 2048 words
	StatusErrWordlist

	// StatusErrEmpty indicates neither a mnemonic nor a passphrase was given
	StatusErrEmpty

	// StatusErrNumWords indicates an unsupported mnemonic length
	StatusErrNumWords

	// StatusErrPassphrase indicates a passphrase that is too long
	StatusErrPassphrase

	// StatusErrLang indicates a word missing from the wordlist
	StatusErrLang

	// StatusErrVersion indicates a share without the version word
	StatusErrVersion

	// StatusErrInconsistent indicates shares disagreeing on the threshold
	StatusErrInconsistent

	// StatusErrInsufficient indicates fewer distinct shares than required
	StatusErrInsufficient

	// StatusErrUnsupported indicates an unsupported mnemonic word count code
	StatusErrUnsupported

	// StatusErrFormat indicates a malformed share or reconstructed secret
	StatusErrFormat

	// StatusErrRandom indicates a random source that failed its self-test
	StatusErrRandom

	// StatusErrBits indicates an unsupported field width
	StatusErrBits
)

// Error returns the error message for the status
func (s Status) Error() string {
	switch s {
	case StatusOK:
		return "success"
	case StatusErrThreshold:
		return "invalid threshold"
	case StatusErrShares:
		return "invalid number of shares"
	case StatusErrWordlist:
		return "wordlist must have 2048 words"
	case StatusErrEmpty:
		return "mnemonic or passphrase is required"
	case StatusErrNumWords:
		return "unsupported number of mnemonic words"
	case StatusErrPassphrase:
		return "passphrase too long"
	case StatusErrLang:
		return "word not in wordlist"
	case StatusErrVersion:
		return "version doesn't match"
	case StatusErrInconsistent:
		return "shares have inconsistent parameters"
	case StatusErrInsufficient:
		return "not enough parts"
	case StatusErrUnsupported:
		return "unsupported mnemonic word count"
	case StatusErrFormat:
		return "invalid share format"
	case StatusErrRandom:
		return "random number generator is invalid"
	case StatusErrBits:
		return "invalid field width"
	default:
		return "unknown error"
	}
}

// Wordlist maps between words and their 11-bit indices
type Wordlist interface {
	// Len returns the number of words
	Len() int

	// Word returns the word at index i
	Word(i int) string

	// Index returns the index of word, or -1 if absent
	Index(word string) int
}

// Result is a recovered mnemonic and passphrase
type Result struct {
	Mnemonic   []string
	Passphrase string
}

// Option configures a Session
type Option func(*options)

type options struct {
	bits   int
	rng    random.Source
	logger *zap.Logger
}

// WithBits sets the field width. Wider fields allow more shares.
func WithBits(n int) Option {
	return func(o *options) { o.bits = n }
}

// WithRandom replaces the crypto/rand source used for coefficients
func WithRandom(src random.Source) Option {
	return func(o *options) { o.rng = src }
}

// WithLogger sets the logger. Secrets are never logged.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.logger = l }
}

// Session holds an initialized field and random source. It is safe for
// concurrent use.
type Session struct {
	mu     sync.Mutex
	engine *sss.Engine
	bits   int
	strong bool
	logger *zap.Logger
}

// NewSession builds the field tables and self-tests the random source
func NewSession(opts ...Option) (*Session, error) {
	o := options{bits: DefaultBits, rng: random.Crypto()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	if o.rng == nil {
		return nil, StatusErrRandom
	}
	if o.bits < gf.MinBits || o.bits > gf.MaxBits {
		return nil, fmt.Errorf("%w: %d, must be between %d and %d", StatusErrBits, o.bits, gf.MinBits, gf.MaxBits)
	}

	engine, err := sss.New(o.bits, o.rng, o.logger.Named("sss"))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", StatusErrRandom, err)
	}

	s := &Session{
		engine: engine,
		bits:   o.bits,
		strong: o.rng.Strong(),
		logger: o.logger,
	}
	if !s.strong {
		s.logger.Warn("random source is not cryptographically strong")
	}
	return s, nil
}

// Bits returns the field width
func (s *Session) Bits() int {
	return s.bits
}

// Max returns the largest threshold or share count the field supports
func (s *Session) Max() int {
	return (1 << s.bits) - 1
}

// Strong reports whether shares are drawn from a cryptographically strong
// source
func (s *Session) Strong() bool {
	return s.strong
}

// Split shares a mnemonic and passphrase as numShares share mnemonics, any
// threshold of which recover both. words may be empty when a passphrase is
// given.
func (s *Session) Split(words []string, passphrase string, wordlist Wordlist, threshold, numShares int) ([][]string, error) {
	limit := s.Max()
	if threshold < 2 || threshold > limit {
		return nil, fmt.Errorf("%w: %d, must be between 2 and %d", StatusErrThreshold, threshold, limit)
	}
	if numShares < 2 || numShares > limit {
		return nil, fmt.Errorf("%w: %d, must be between 2 and %d", StatusErrShares, numShares, limit)
	}
	if threshold > numShares {
		return nil, fmt.Errorf("%w: %d exceeds the number of shares %d, so the shares could never be combined",
			StatusErrThreshold, threshold, numShares)
	}
	if wordlist == nil || wordlist.Len() != WordlistSize {
		return nil, StatusErrWordlist
	}
	if len(words) == 0 && passphrase == "" {
		return nil, StatusErrEmpty
	}
	if !validLength(len(words)) {
		return nil, fmt.Errorf("%w: %d", StatusErrNumWords, len(words))
	}
	if n := text.Units(passphrase); n > MaxPassphraseUnits {
		return nil, fmt.Errorf("%w: %d characters, at most %d allowed", StatusErrPassphrase, n, MaxPassphraseUnits)
	}

	secret, err := packSecret(words, passphrase, wordlist)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	parts, err := s.engine.Split(secret, numShares, threshold, 0, false)
	s.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", StatusErrRandom, err)
	}

	shares := make([][]string, numShares)
	for o, part := range parts {
		payload, err := bits.HexToBin(part)
		if err != nil {
			return nil, err
		}
		share := []string{Version}
		share = append(share, toWords(encodeParams(threshold, o), wordlist)...)
		share = append(share, toWords(payload, wordlist)...)
		shares[o] = share
	}

	s.logger.Debug("split mnemonic",
		zap.Int("words", len(words)),
		zap.Bool("passphrase", passphrase != ""),
		zap.Int("threshold", threshold),
		zap.Int("shares", numShares))

	return shares, nil
}

// Combine recovers the mnemonic and passphrase from share mnemonics.
// Shares repeating an earlier position are ignored.
func (s *Session) Combine(parts [][]string, wordlist Wordlist) (*Result, error) {
	if wordlist == nil || wordlist.Len() != WordlistSize {
		return nil, StatusErrWordlist
	}
	if len(parts) == 0 {
		return nil, fmt.Errorf("%w: no shares given", StatusErrInsufficient)
	}

	required := -1
	seen := make(map[int]bool, len(parts))
	shares := make([]sss.Share, 0, len(parts))
	for i, words := range parts {
		ps, err := parseShare(words, wordlist)
		if err != nil {
			return nil, fmt.Errorf("share %d: %w", i+1, err)
		}
		if ps.threshold < 2 {
			return nil, fmt.Errorf("share %d: %w: threshold %d", i+1, StatusErrFormat, ps.threshold)
		}
		if required < 0 {
			required = ps.threshold
		} else if ps.threshold != required {
			return nil, fmt.Errorf("%w: share %d requires %d parts, earlier shares %d",
				StatusErrInconsistent, i+1, ps.threshold, required)
		}
		if seen[ps.position] {
			s.logger.Debug("ignoring repeated share", zap.Int("position", ps.position))
			continue
		}
		seen[ps.position] = true
		shares = append(shares, sss.Share{ID: ps.position + 1, Bits: s.bits, Data: ps.payload})
	}
	if len(shares) < required {
		return nil, fmt.Errorf("%w: requires %d, got %d", StatusErrInsufficient, required, len(shares))
	}

	s.mu.Lock()
	secret, err := s.engine.Combine(shares)
	s.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", StatusErrFormat, err)
	}

	res, err := unpackSecret(secret, wordlist)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("combined shares",
		zap.Int("shares", len(shares)),
		zap.Int("words", len(res.Mnemonic)))

	return res, nil
}

// Split shares a mnemonic with a default session
func Split(words []string, passphrase string, wordlist Wordlist, threshold, numShares int) ([][]string, error) {
	s, err := NewSession()
	if err != nil {
		return nil, err
	}
	return s.Split(words, passphrase, wordlist, threshold, numShares)
}

// Combine recovers a mnemonic with a default session
func Combine(parts [][]string, wordlist Wordlist) (*Result, error) {
	s, err := NewSession()
	if err != nil {
		return nil, err
	}
	return s.Combine(parts, wordlist)
}

// packSecret builds the hex secret
//
//	[2 bits padding length][3 bits word count][padding][words][passphrase]
//
// with the padding chosen so the total is a whole number of hex digits.
func packSecret(words []string, passphrase string, wordlist Wordlist) (string, error) {
	var body strings.Builder
	body.Grow(len(words) * wordBits)
	for _, w := range words {
		idx := wordlist.Index(w)
		if idx < 0 {
			return "", fmt.Errorf("%w: invalid word found in list: %q", StatusErrLang, w)
		}
		body.WriteString(bits.Format(uint64(idx), wordBits))
	}
	pass, err := text.Encode(passphrase)
	if err != nil {
		return "", fmt.Errorf("%w: %w", StatusErrPassphrase, err)
	}
	body.WriteString(pass)

	padding := padLength(body.Len())
	bin := bits.Format(uint64(padding), padLenBits) +
		bits.Format(wordCountEncode(len(words)), wordCountBits) +
		strings.Repeat("0", padding) +
		body.String()
	return bits.BinToHex(bin)
}

// unpackSecret reverses packSecret
func unpackSecret(secret string, wordlist Wordlist) (*Result, error) {
	bin, err := bits.HexToBin(secret)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", StatusErrFormat, err)
	}
	if len(bin) < headerBits {
		return nil, fmt.Errorf("%w: reconstructed secret is too short", StatusErrFormat)
	}

	padding, _ := bits.Parse(bin[:padLenBits])
	code, _ := bits.Parse(bin[padLenBits:headerBits])
	numWords := wordCountDecode(code)
	if !validLength(numWords) {
		return nil, fmt.Errorf("%w: %d words", StatusErrUnsupported, numWords)
	}

	rest := bin[headerBits:]
	if len(rest) < int(padding)+numWords*wordBits {
		return nil, fmt.Errorf("%w: reconstructed secret is too short", StatusErrFormat)
	}
	if !bits.IsZero(rest[:padding]) {
		return nil, fmt.Errorf("%w: padding bits are not zero", StatusErrFormat)
	}
	rest = rest[padding:]

	res := &Result{Mnemonic: make([]string, 0, numWords)}
	for i := 0; i < numWords; i++ {
		idx, _ := bits.Parse(rest[i*wordBits : (i+1)*wordBits])
		res.Mnemonic = append(res.Mnemonic, wordlist.Word(int(idx)))
	}

	res.Passphrase, err = text.Decode(rest[numWords*wordBits:])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", StatusErrFormat, err)
	}
	if numWords == 0 && res.Passphrase == "" {
		return nil, fmt.Errorf("%w: reconstructed secret is empty", StatusErrFormat)
	}
	return res, nil
}
