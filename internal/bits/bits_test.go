// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package bits

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHexToBin(t *testing.T) {
	tests := []struct {
		hex  string
		want string
	}{
		{"", ""},
		{"0", "0000"},
		{"f", "1111"},
		{"A5", "10100101"},
		{"0a5", "000010100101"},
	}
	for _, tt := range tests {
		got, err := HexToBin(tt.hex)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, tt.hex)
	}

	_, err := HexToBin("12g4")
	assert.ErrorIs(t, err, ErrInvalidHex)
}

func TestBinToHex(t *testing.T) {
	tests := []struct {
		bin  string
		want string
	}{
		{"1", "1"},
		{"10000", "10"},
		{"000010100101", "0a5"},
		{"11111111", "ff"},
	}
	for _, tt := range tests {
		got, err := BinToHex(tt.bin)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, tt.bin)
	}

	_, err := BinToHex("10201")
	assert.ErrorIs(t, err, ErrInvalidBinary)
}

func TestHexBinIdempotent(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for n := 1; n <= 64; n++ {
		var sb strings.Builder
		for i := 0; i < n*4; i++ {
			sb.WriteByte(byte('0' + r.IntN(2)))
		}
		bin := sb.String()

		hex, err := BinToHex(bin)
		require.NoError(t, err)
		back, err := HexToBin(hex)
		require.NoError(t, err)
		assert.Equal(t, bin, back)

		again, err := BinToHex(back)
		require.NoError(t, err)
		assert.Equal(t, hex, again)
	}
}

func TestPadding(t *testing.T) {
	assert.Equal(t, "0101", PadLeft("101", 4))
	assert.Equal(t, "1011", PadLeft("1011", 4))
	assert.Equal(t, "00000000101", PadLeft("101", 11))
	assert.Equal(t, "101", PadLeft("101", 0))

	assert.Equal(t, "00101", Lpad("101", 5))
	assert.Equal(t, "101", Lpad("101", 2))
	assert.Equal(t, "00000000011", Format(3, 11))
	assert.Equal(t, "0", Format(0, 1))
}

func TestParse(t *testing.T) {
	v, err := Parse("11111111111")
	require.NoError(t, err)
	assert.Equal(t, uint64(2047), v)

	v, err = Parse("")
	require.NoError(t, err)
	assert.Zero(t, v)

	_, err = Parse(strings.Repeat("1", 65))
	assert.ErrorIs(t, err, ErrInvalidBinary)
}

func TestChunksRightToLeft(t *testing.T) {
	// 10 digits in 4-digit chunks: "10" | "1100" | "0011"
	parts, err := Chunks("1011000011", 4, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0b0011, 0b1100, 0b10}, parts)

	// exact multiple keeps a full final chunk
	parts, err = Chunks("11110000", 4, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 15}, parts)

	// padding to a multiple of 12 adds a zero chunk on the left
	parts, err = Chunks("11110000", 4, 12)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 15, 0}, parts)

	_, err = Chunks("", 4, 0)
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestPredicates(t *testing.T) {
	assert.True(t, IsBinary("0101"))
	assert.False(t, IsBinary("01a1"))
	assert.True(t, IsZero("0000"))
	assert.True(t, IsZero(""))
	assert.False(t, IsZero("0010"))
}
