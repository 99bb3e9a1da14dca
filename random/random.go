// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

// Package random provides the random bit sources used to draw polynomial
// coefficients when splitting a secret.
package random

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"github.com/complex-gh/shamir39_go/internal/bits"
)

const (
	// selfTestRounds is the number of draws made by Validate
	selfTestRounds = 5

	// maxZeroReads bounds the redraws of an all-zero read
	maxZeroReads = 64
)

// ErrInvalidSource is returned when a source fails its self-test
var ErrInvalidSource = errors.New("random number generator is invalid")

// Source produces random binary digit strings
type Source interface {
	// Bits returns a string of exactly n random '0' and '1' digits
	Bits(n int) (string, error)

	// Strong reports whether the source is cryptographically strong
	Strong() bool
}

// readerSource draws bits from an io.Reader
type readerSource struct {
	r      io.Reader
	strong bool
}

// Crypto returns a source backed by crypto/rand
func Crypto() Source {
	return &readerSource{r: rand.Reader, strong: true}
}

// NewReaderSource returns a source drawing bytes from r. It is not
// reported as strong, whatever r is.
func NewReaderSource(r io.Reader) Source {
	return &readerSource{r: r}
}

// Bits reads ceil(n/8) bytes and keeps the last n bits, drawing again
// whenever all of them are zero. A reader that keeps producing zero is
// rejected with ErrInvalidSource.
func (s *readerSource) Bits(n int) (string, error) {
	if n < 1 {
		return "", fmt.Errorf("%w: cannot draw %d bits", ErrInvalidSource, n)
	}
	buf := make([]byte, (n+7)/8)
	for i := 0; i < maxZeroReads; i++ {
		if _, err := io.ReadFull(s.r, buf); err != nil {
			return "", fmt.Errorf("read random bytes: %w", err)
		}
		str := make([]byte, 0, len(buf)*8)
		for _, b := range buf {
			str = append(str, bits.Format(uint64(b), 8)...)
		}
		out := string(str[len(str)-n:])
		if !bits.IsZero(out) {
			return out, nil
		}
	}
	return "", fmt.Errorf("%w: %d consecutive zero draws", ErrInvalidSource, maxZeroReads)
}

// Strong reports whether the reader is crypto/rand
func (s *readerSource) Strong() bool {
	return s.strong
}

// Validate draws from src a few times and rejects it unless every draw is
// exactly n binary digits and at least one of them is nonzero
func Validate(src Source, n int) error {
	if src == nil {
		return fmt.Errorf("%w: no source", ErrInvalidSource)
	}
	nonzero := false
	for i := 0; i < selfTestRounds; i++ {
		out, err := src.Bits(n)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidSource, err)
		}
		if len(out) != n {
			return fmt.Errorf("%w: asked for %d bits, got %d", ErrInvalidSource, n, len(out))
		}
		if !bits.IsBinary(out) {
			return fmt.Errorf("%w: output is not binary", ErrInvalidSource)
		}
		if !bits.IsZero(out) {
			nonzero = true
		}
	}
	if !nonzero {
		return fmt.Errorf("%w: only zero output", ErrInvalidSource)
	}
	return nil
}
