// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

// Package gf implements arithmetic in the binary Galois fields GF(2^bits)
// used by the secret sharing engine.
package gf

import (
	"errors"
	"fmt"
)

const (
	// MinBits is the smallest supported field width
	MinBits = 3

	// MaxBits is the largest supported field width
	MaxBits = 20

	// DefaultBits allows up to 4095 shares
	DefaultBits = 12
)

// ErrInvalidBits is returned for a field width outside [MinBits, MaxBits]
var ErrInvalidBits = errors.New("invalid field width")

// primitivePolynomials holds the reduction constant of a primitive
// polynomial for GF(2^n), indexed by n (2 <= n <= 30). The x^n term is
// implicit.
var primitivePolynomials = [31]int{
	0, 0, 1, 3, 3, 5, 3, 3, 29, 17, 9, 5, 83, 27, 43, 3,
	45, 9, 39, 39, 9, 5, 3, 33, 27, 9, 71, 39, 9, 5, 83,
}

// Field holds the exp/log tables of GF(2^bits). A Field is never modified
// after New returns, so it can be shared freely.
type Field struct {
	bits int
	size int
	max  int
	exps []int
	logs []int
}

// New builds the tables for GF(2^bits)
func New(bits int) (*Field, error) {
	if bits < MinBits || bits > MaxBits {
		return nil, fmt.Errorf("%w: %d, must be between %d and %d, inclusive",
			ErrInvalidBits, bits, MinBits, MaxBits)
	}

	size := 1 << bits
	f := &Field{
		bits: bits,
		size: size,
		max:  size - 1,
		exps: make([]int, size),
		logs: make([]int, size),
	}

	// Walk the multiplicative group generated by x. logs[0] stays unused.
	primitive := primitivePolynomials[bits]
	x := 1
	for i := 0; i < f.max; i++ {
		f.exps[i] = x
		f.logs[x] = i
		x <<= 1
		if x >= size {
			x ^= primitive
			x &= f.max
		}
	}
	f.exps[f.max] = f.exps[0]

	return f, nil
}

// Initialized reports whether the tables are complete
func (f *Field) Initialized() bool {
	return f != nil && f.bits >= MinBits && f.bits <= MaxBits &&
		len(f.exps) == f.size && len(f.logs) == f.size
}

// Bits returns the field width in bits
func (f *Field) Bits() int {
	return f.bits
}

// Size returns the number of field elements (2^bits)
func (f *Field) Size() int {
	return f.size
}

// Max returns the largest element, which is also the order of the
// multiplicative group
func (f *Field) Max() int {
	return f.max
}

// Exp returns x^i for the generator x
func (f *Field) Exp(i int) int {
	return f.exps[i]
}

// Log returns the discrete logarithm of a nonzero element
func (f *Field) Log(a int) int {
	return f.logs[a]
}

// Mul multiplies two field elements using the sum of their logarithms
func (f *Field) Mul(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	return f.exps[(f.logs[a]+f.logs[b])%f.max]
}
