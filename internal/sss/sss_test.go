// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package sss

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/complex-gh/shamir39_go/internal/gf"
	"github.com/complex-gh/shamir39_go/random"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "00c0ffee0123456789abcdef00"

func newEngine(t *testing.T, fieldBits int, seed byte) *Engine {
	t.Helper()
	e, err := New(fieldBits, random.NewReaderSource(rand.NewChaCha8([32]byte{seed})), nil)
	require.NoError(t, err)
	return e
}

func toShares(parts []string, ids ...int) []Share {
	out := make([]Share, 0, len(ids))
	for _, id := range ids {
		out = append(out, Share{ID: id, Data: parts[id-1]})
	}
	return out
}

// countingSource returns "0...01" for the first good draws, then zeros
type countingSource struct {
	good int
}

func (c *countingSource) Bits(n int) (string, error) {
	if c.good > 0 {
		c.good--
		return strings.Repeat("0", n-1) + "1", nil
	}
	return strings.Repeat("0", n), nil
}

func (c *countingSource) Strong() bool { return false }

func TestNew(t *testing.T) {
	_, err := New(2, random.Crypto(), nil)
	assert.ErrorIs(t, err, gf.ErrInvalidBits)

	_, err = New(12, &countingSource{}, nil)
	assert.ErrorIs(t, err, random.ErrInvalidSource)

	e, err := New(12, random.Crypto(), nil)
	require.NoError(t, err)
	assert.Equal(t, 12, e.Bits())
	assert.Equal(t, 4095, e.Max())
}

func TestHorner(t *testing.T) {
	e := newEngine(t, 8, 1)

	// p(x) = 5 + 3x, so p(2) = 5 ^ (3*2) = 5 ^ 6
	assert.Equal(t, 3, e.horner(2, []int{5, 3}))
	// a zero leading coefficient degrades to the lower degree polynomial
	assert.Equal(t, 5^e.field.Mul(3, 7), e.horner(7, []int{5, 3, 0}))
	assert.Equal(t, 9, e.horner(4, []int{9}))
}

func TestLagrangeRecoversConstant(t *testing.T) {
	e := newEngine(t, 8, 2)
	coeffs := []int{200, 17, 99}
	xs := []int{3, 7, 11}
	ys := make([]int, len(xs))
	for i, x := range xs {
		ys[i] = e.horner(x, coeffs)
	}
	assert.Equal(t, 200, e.lagrange(0, xs, ys))

	// evaluating at a known point skips the other terms
	assert.Equal(t, ys[1], e.lagrange(7, xs, ys))
}

func TestSplitCombine(t *testing.T) {
	for _, fieldBits := range []int{3, 5, 8, 12, 16, 20} {
		t.Run(fmt.Sprintf("bits=%d", fieldBits), func(t *testing.T) {
			e := newEngine(t, fieldBits, byte(fieldBits))
			numShares := 5
			if limit := e.Max(); numShares > limit {
				numShares = limit
			}
			parts, err := e.Split(testSecret, numShares, 3, 0, false)
			require.NoError(t, err)
			require.Len(t, parts, numShares)

			secret, err := e.Combine(toShares(parts, 1, 2, 3))
			require.NoError(t, err)
			assert.Equal(t, testSecret, secret)

			secret, err = e.Combine(toShares(parts, 3, 5, 1, 4))
			require.NoError(t, err)
			assert.Equal(t, testSecret, secret)
		})
	}
}

func TestEverySubsetCombines(t *testing.T) {
	e := newEngine(t, 12, 3)
	parts, err := e.Split(testSecret, 5, 3, 0, false)
	require.NoError(t, err)

	for a := 1; a <= 5; a++ {
		for b := a + 1; b <= 5; b++ {
			for c := b + 1; c <= 5; c++ {
				secret, err := e.Combine(toShares(parts, a, b, c))
				require.NoError(t, err)
				assert.Equal(t, testSecret, secret, "shares %d,%d,%d", a, b, c)
			}
		}
	}
}

func TestBelowThresholdDiffers(t *testing.T) {
	e := newEngine(t, 12, 4)
	parts, err := e.Split(testSecret, 5, 3, 0, false)
	require.NoError(t, err)

	secret, err := e.Combine(toShares(parts, 1, 2))
	if err == nil {
		assert.NotEqual(t, testSecret, secret)
	}
}

func TestLeadingZerosSurvive(t *testing.T) {
	e := newEngine(t, 8, 5)
	for _, secret := range []string{"0", "00", "000f", "0000000000000000000001", "f"} {
		parts, err := e.Split(secret, 3, 2, 0, false)
		require.NoError(t, err)
		got, err := e.Combine(toShares(parts, 2, 3))
		require.NoError(t, err)
		assert.Equal(t, secret, got)
	}
}

func TestPadLength(t *testing.T) {
	e := newEngine(t, 8, 6)
	parts, err := e.Split("abc", 3, 2, 128, false)
	require.NoError(t, err)
	// 128 padded bits in 8-bit chunks
	assert.Len(t, parts[0], 32)

	got, err := e.Combine(toShares(parts, 1, 3))
	require.NoError(t, err)
	assert.Equal(t, "abc", got)
}

func TestDuplicateIDsIgnored(t *testing.T) {
	e := newEngine(t, 12, 7)
	parts, err := e.Split(testSecret, 3, 2, 0, false)
	require.NoError(t, err)

	shares := toShares(parts, 1, 2)
	// a later share reusing id 1 with other data does not replace the first
	shares = append(shares, Share{ID: 1, Data: parts[2]})
	got, err := e.Combine(shares)
	require.NoError(t, err)
	assert.Equal(t, testSecret, got)
}

func TestHeaderAndFieldSwitch(t *testing.T) {
	small := newEngine(t, 8, 8)
	parts, err := small.Split(testSecret, 4, 2, 0, true)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(parts[0], "801"), parts[0])
	assert.True(t, strings.HasPrefix(parts[3], "804"), parts[3])

	shares := make([]Share, 0, 2)
	for _, p := range []string{parts[1], parts[3]} {
		s, err := ParseShare(p)
		require.NoError(t, err)
		assert.Equal(t, 8, s.Bits)
		assert.Equal(t, p, s.String())
		shares = append(shares, s)
	}

	// an engine on the default width rebuilds its field for these shares
	e := newEngine(t, gf.DefaultBits, 9)
	got, err := e.Combine(shares)
	require.NoError(t, err)
	assert.Equal(t, testSecret, got)
	assert.Equal(t, 8, e.Bits())
}

func TestMismatchedBits(t *testing.T) {
	e := newEngine(t, 12, 10)
	_, err := e.Combine([]Share{
		{ID: 1, Bits: 8, Data: "ab"},
		{ID: 2, Bits: 9, Data: "ab"},
	})
	assert.ErrorIs(t, err, ErrMismatchedBits)

	// a rejected set leaves the field as it was
	assert.Equal(t, 12, e.Bits())

	_, err = e.Combine([]Share{
		{ID: 1, Data: "ab"},
		{ID: 2, Bits: 8, Data: "ab"},
	})
	assert.ErrorIs(t, err, ErrMismatchedBits)
	assert.Equal(t, 12, e.Bits())
}

func TestCombineErrors(t *testing.T) {
	e := newEngine(t, 8, 11)

	_, err := e.Combine(nil)
	assert.ErrorIs(t, err, ErrNoShares)

	_, err = e.Combine([]Share{{ID: 0, Data: "ab"}})
	assert.ErrorIs(t, err, ErrShareID)

	_, err = e.Combine([]Share{{ID: 256, Data: "ab"}})
	assert.ErrorIs(t, err, ErrShareID)

	_, err = e.Combine([]Share{{ID: 1}})
	assert.ErrorIs(t, err, ErrEmptyShare)

	_, err = e.Combine([]Share{{ID: 1, Data: "00"}, {ID: 2, Data: "00"}})
	assert.ErrorIs(t, err, ErrNoSentinel)

	_, err = e.Combine([]Share{{ID: 1, Bits: 31, Data: "00"}})
	assert.ErrorIs(t, err, gf.ErrInvalidBits)
}

func TestSplitValidation(t *testing.T) {
	e := newEngine(t, 3, 12)

	_, err := e.Split("ab", 1, 2, 0, false)
	assert.ErrorIs(t, err, ErrShares)
	_, err = e.Split("ab", 8, 2, 0, false)
	assert.ErrorIs(t, err, ErrShares)
	_, err = e.Split("ab", 3, 1, 0, false)
	assert.ErrorIs(t, err, ErrThreshold)
	_, err = e.Split("ab", 3, 8, 0, false)
	assert.ErrorIs(t, err, ErrThreshold)
	_, err = e.Split("ab", 3, 2, -1, false)
	assert.ErrorIs(t, err, ErrPadding)
	_, err = e.Split("xyz", 3, 2, 0, false)
	assert.Error(t, err)
}

func TestDegenerateSource(t *testing.T) {
	// enough good draws to pass the self-test, then only zero
	src := &countingSource{good: 5}
	e, err := New(8, src, nil)
	require.NoError(t, err)

	_, err = e.Split("ab", 3, 2, 0, false)
	assert.ErrorIs(t, err, ErrDegenerateSource)
}

func TestParseShareErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"bad width", "#01ab"},
		{"width out of range", "201ab"},
		{"no data", "801"},
		{"bad id", "8zzab"},
		{"zero id", "800ab"},
		{"bad data", "801xy"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseShare(tt.text)
			assert.Error(t, err)
		})
	}
}
