// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

// Package text packs a passphrase into binary digits. Plain ASCII uses 7
// bits per character; anything else is stored as UTF-16 big-endian code
// units behind a byte order marker.
//
// Detection on decode is a heuristic: a 7-bit passphrase that begins with
// the characters the marker decodes to would be ambiguous, so Encode never
// produces one and falls back to UTF-16 instead.
package text

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf16"

	"github.com/complex-gh/shamir39_go/internal/bits"
	"golang.org/x/text/encoding/unicode"
)

const (
	asciiBits = 7
	utf16Bits = 16
)

var (
	// ErrReversedBOM is returned for a little-endian byte order marker
	ErrReversedBOM = errors.New("reversed UTF-16 byte order marker detected")

	// ErrCorruptUTF16 is returned when UTF-16 content is not whole code units
	ErrCorruptUTF16 = errors.New("corrupt UTF-16 content detected")

	// ErrCorruptText is returned when 7-bit content is not whole characters
	ErrCorruptText = errors.New("unable to decode corrupted text")
)

var (
	// bom is the marker as stored, 0xFF then 0xFE
	bom = [2]byte{0xFF, 0xFE}

	bomBits    = bits.Format(uint64(bom[0]), 8) + bits.Format(uint64(bom[1]), 8)
	bomRevBits = bits.Format(uint64(bom[1]), 8) + bits.Format(uint64(bom[0]), 8)

	// bomASCII and bomRevASCII are what the marker reads as when taken
	// for two 7-bit characters
	bomASCII    = string([]byte{septet(bomBits, 0), septet(bomBits, 1)})
	bomRevASCII = string([]byte{septet(bomBits, 1), septet(bomBits, 0)})

	utf16BE = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
)

func septet(s string, i int) byte {
	v, _ := bits.Parse(s[i*asciiBits : (i+1)*asciiBits])
	return byte(v)
}

// Encode converts a passphrase into binary digits
func Encode(passphrase string) (string, error) {
	if compatibleASCII(passphrase) {
		var sb strings.Builder
		sb.Grow(len(passphrase) * asciiBits)
		for i := 0; i < len(passphrase); i++ {
			sb.WriteString(bits.Format(uint64(passphrase[i]), asciiBits))
		}
		return sb.String(), nil
	}

	raw, err := utf16BE.NewEncoder().String(passphrase)
	if err != nil {
		return "", fmt.Errorf("encode passphrase: %w", err)
	}
	var sb strings.Builder
	sb.Grow(len(bomBits) + len(raw)*8)
	sb.WriteString(bomBits)
	for i := 0; i < len(raw); i++ {
		sb.WriteString(bits.Format(uint64(raw[i]), 8))
	}
	return sb.String(), nil
}

// Decode converts binary digits produced by Encode back into a passphrase
func Decode(bin string) (string, error) {
	if !bits.IsBinary(bin) {
		return "", bits.ErrInvalidBinary
	}

	if strings.HasPrefix(bin, bomBits) {
		body := bin[len(bomBits):]
		if len(body)%utf16Bits != 0 {
			return "", ErrCorruptUTF16
		}
		raw := make([]byte, len(body)/8)
		for i := range raw {
			v, _ := bits.Parse(body[i*8 : (i+1)*8])
			raw[i] = byte(v)
		}
		s, err := utf16BE.NewDecoder().Bytes(raw)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrCorruptUTF16, err)
		}
		return string(s), nil
	}
	if strings.HasPrefix(bin, bomRevBits) {
		return "", ErrReversedBOM
	}

	if len(bin)%asciiBits != 0 {
		return "", ErrCorruptText
	}
	out := make([]byte, len(bin)/asciiBits)
	for i := range out {
		v, _ := bits.Parse(bin[i*asciiBits : (i+1)*asciiBits])
		out[i] = byte(v)
	}
	return string(out), nil
}

// Units returns the length of s in UTF-16 code units
func Units(s string) int {
	n := 0
	for _, r := range s {
		if l := utf16.RuneLen(r); l > 0 {
			n += l
		} else {
			n++
		}
	}
	return n
}

// compatibleASCII reports whether s can use 7-bit packing without being
// mistaken for a marker on decode
func compatibleASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > 127 {
			return false
		}
	}
	return !strings.HasPrefix(s, bomASCII) && !strings.HasPrefix(s, bomRevASCII)
}
