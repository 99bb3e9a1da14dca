// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package gf

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsWidth(t *testing.T) {
	for _, bits := range []int{-1, 0, 1, 2, 21, 30} {
		f, err := New(bits)
		assert.ErrorIs(t, err, ErrInvalidBits, "bits=%d", bits)
		assert.Nil(t, f)
	}
}

func TestTablesAreInverse(t *testing.T) {
	for bits := MinBits; bits <= MaxBits; bits++ {
		t.Run(fmt.Sprintf("bits=%d", bits), func(t *testing.T) {
			f, err := New(bits)
			require.NoError(t, err)
			require.True(t, f.Initialized())
			assert.Equal(t, 1<<bits, f.Size())
			assert.Equal(t, f.Size()-1, f.Max())

			for x := 1; x <= f.Max(); x++ {
				if f.Exp(f.Log(x)) != x {
					t.Fatalf("exp[log[%d]] = %d", x, f.Exp(f.Log(x)))
				}
			}
			for i := 0; i < f.Max(); i++ {
				if f.Log(f.Exp(i)) != i {
					t.Fatalf("log[exp[%d]] = %d", i, f.Log(f.Exp(i)))
				}
			}
		})
	}
}

func TestMul(t *testing.T) {
	f, err := New(8)
	require.NoError(t, err)

	assert.Equal(t, 0, f.Mul(0, 7))
	assert.Equal(t, 0, f.Mul(7, 0))
	assert.Equal(t, 7, f.Mul(1, 7))
	// x * x^7 wraps through the reduction polynomial (x^8 = x^4+x^3+x^2+1)
	assert.Equal(t, 29, f.Mul(2, 128))

	// every nonzero element has an inverse
	for a := 1; a <= f.Max(); a++ {
		inv := f.Exp((f.Max() - f.Log(a)) % f.Max())
		assert.Equal(t, 1, f.Mul(a, inv))
	}
}

func TestUninitialized(t *testing.T) {
	var f *Field
	assert.False(t, f.Initialized())
	assert.False(t, (&Field{}).Initialized())
}
