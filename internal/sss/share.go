// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package sss

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/complex-gh/shamir39_go/internal/bits"
	"github.com/complex-gh/shamir39_go/internal/gf"
)

// ErrShareFormat is returned for share text that cannot be parsed
var ErrShareFormat = errors.New("invalid share format")

// Share is one participant's part of a split secret
type Share struct {
	// ID is the x coordinate all chunks were evaluated at
	ID int

	// Bits is the field width; zero means the engine's current width
	Bits int

	// Data holds the concatenated chunk evaluations as hex
	Data string
}

// idWidth is the number of hex digits used for an id in GF(2^fieldBits)
func idWidth(fieldBits int) int {
	return len(strconv.FormatInt(int64(1)<<fieldBits-1, 16))
}

// String serializes the share with its header: one base-36 digit for the
// field width, the id as fixed-width hex, then the data
func (s Share) String() string {
	id := strconv.FormatInt(int64(s.ID), 16)
	return strings.ToUpper(strconv.FormatInt(int64(s.Bits), 36)) +
		bits.Lpad(id, idWidth(s.Bits)) +
		s.Data
}

// ParseShare reads share text produced with a header
func ParseShare(text string) (Share, error) {
	if len(text) < 2 {
		return Share{}, fmt.Errorf("%w: too short", ErrShareFormat)
	}

	fieldBits, err := strconv.ParseInt(text[:1], 36, 8)
	if err != nil {
		return Share{}, fmt.Errorf("%w: bad width digit %q", ErrShareFormat, text[:1])
	}
	if fieldBits < gf.MinBits || fieldBits > gf.MaxBits {
		return Share{}, fmt.Errorf("%w: %d", gf.ErrInvalidBits, fieldBits)
	}

	width := idWidth(int(fieldBits))
	if len(text) <= 1+width {
		return Share{}, fmt.Errorf("%w: missing data", ErrShareFormat)
	}
	id, err := strconv.ParseInt(text[1:1+width], 16, 32)
	if err != nil {
		return Share{}, fmt.Errorf("%w: bad id %q", ErrShareFormat, text[1:1+width])
	}
	limit := int64(1)<<fieldBits - 1
	if id < 1 || id > limit {
		return Share{}, fmt.Errorf("%w: %d, must be between 1 and %d, inclusive", ErrShareID, id, limit)
	}

	data := text[1+width:]
	if _, err := bits.HexToBin(data); err != nil {
		return Share{}, fmt.Errorf("%w: %w", ErrShareFormat, err)
	}

	return Share{ID: int(id), Bits: int(fieldBits), Data: data}, nil
}
