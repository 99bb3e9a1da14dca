// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

// Package bits converts between hexadecimal strings, binary digit strings
// and fixed-width integer chunks. Every conversion pads with zeros on the
// left, which defines the alignment of all higher level formats.
package bits

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInvalidHex is returned for a character that is not a hex digit
	ErrInvalidHex = errors.New("invalid hex character")

	// ErrInvalidBinary is returned for a character other than '0' or '1'
	ErrInvalidBinary = errors.New("invalid binary character")

	// ErrEmpty is returned when chunking an empty string
	ErrEmpty = errors.New("empty binary string")
)

// nibbles maps a hex value to its 4-digit binary form
var nibbles = [16]string{
	"0000", "0001", "0010", "0011", "0100", "0101", "0110", "0111",
	"1000", "1001", "1010", "1011", "1100", "1101", "1110", "1111",
}

// HexToBin converts a hex string into binary digits, 4 per hex digit
func HexToBin(hex string) (string, error) {
	var sb strings.Builder
	sb.Grow(len(hex) * 4)
	for i := 0; i < len(hex); i++ {
		v, ok := hexValue(hex[i])
		if !ok {
			return "", fmt.Errorf("%w: %q", ErrInvalidHex, hex[i])
		}
		sb.WriteString(nibbles[v])
	}
	return sb.String(), nil
}

// BinToHex converts binary digits into a lower-case hex string after
// left-padding them to a multiple of 4
func BinToHex(bin string) (string, error) {
	bin = PadLeft(bin, 4)
	var sb strings.Builder
	sb.Grow(len(bin) / 4)
	for i := 0; i < len(bin); i += 4 {
		v, err := Parse(bin[i : i+4])
		if err != nil {
			return "", err
		}
		sb.WriteByte("0123456789abcdef"[v])
	}
	return sb.String(), nil
}

// PadLeft prepends zeros so the length of s becomes a multiple of n
func PadLeft(s string, n int) string {
	if n <= 0 {
		return s
	}
	if missing := len(s) % n; missing != 0 {
		return strings.Repeat("0", n-missing) + s
	}
	return s
}

// Lpad prepends zeros until s is at least width digits long
func Lpad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}

// Format renders v as binary digits, left-padded to width
func Format(v uint64, width int) string {
	return Lpad(strconv.FormatUint(v, 2), width)
}

// Parse reads a binary digit string of at most 64 digits. The empty
// string parses as zero.
func Parse(bin string) (uint64, error) {
	if len(bin) > 64 {
		return 0, fmt.Errorf("%w: %d digits overflow", ErrInvalidBinary, len(bin))
	}
	var v uint64
	for i := 0; i < len(bin); i++ {
		switch bin[i] {
		case '0':
			v <<= 1
		case '1':
			v = v<<1 | 1
		default:
			return 0, fmt.Errorf("%w: %q", ErrInvalidBinary, bin[i])
		}
	}
	return v, nil
}

// Chunks splits bin into width-digit integers from right to left after
// optionally left-padding it to a multiple of padLength. Element 0 is the
// rightmost chunk; a shorter remainder on the left becomes the last
// element.
func Chunks(bin string, width, padLength int) ([]int, error) {
	if len(bin) == 0 {
		return nil, ErrEmpty
	}
	if padLength > 0 {
		bin = PadLeft(bin, padLength)
	}

	parts := make([]int, 0, (len(bin)+width-1)/width)
	i := len(bin)
	for ; i > width; i -= width {
		v, err := Parse(bin[i-width : i])
		if err != nil {
			return nil, err
		}
		parts = append(parts, int(v))
	}
	v, err := Parse(bin[:i])
	if err != nil {
		return nil, err
	}
	return append(parts, int(v)), nil
}

// IsBinary reports whether s consists only of '0' and '1'
func IsBinary(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != '0' && s[i] != '1' {
			return false
		}
	}
	return true
}

// IsZero reports whether s contains no '1' digit
func IsZero(s string) bool {
	return strings.IndexByte(s, '1') < 0
}

func hexValue(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
