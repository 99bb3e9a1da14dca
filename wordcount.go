// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package shamir39

const (
	// padLenBits is the width of the padding length field
	padLenBits = 2

	// wordCountBits is the width of the mnemonic word count code
	wordCountBits = 3

	// headerBits is the total width of the packed secret header
	headerBits = padLenBits + wordCountBits
)

// ValidLengths lists the supported mnemonic word counts. Zero is allowed
// only together with a passphrase.
var ValidLengths = []int{0, 12, 15, 18, 21, 24}

// validLength checks a mnemonic word count
func validLength(n int) bool {
	for _, l := range ValidLengths {
		if l == n {
			return true
		}
	}
	return false
}

// wordCountEncode converts a word count to its 3-bit code
func wordCountEncode(numWords int) uint64 {
	if numWords == 0 {
		return 0
	}
	return uint64((numWords - 9) / 3)
}

// wordCountDecode converts a 3-bit code to a word count. Codes 6 and 7
// decode to 27 and 30, which validLength rejects.
func wordCountDecode(code uint64) int {
	if code == 0 {
		return 0
	}
	return int(3*code + 9)
}

// padLength returns the number of zero bits needed to bring a body of n
// bits plus the header to a multiple of 4
func padLength(n int) int {
	return (4 - (n+headerBits)%4) % 4
}
