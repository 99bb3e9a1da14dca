// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package shamir39

import (
	"fmt"
	"strings"

	"github.com/complex-gh/shamir39_go/internal/bits"
)

// Every parameter word carries one continuation bit followed by a 5-bit
// group of the threshold and a 5-bit group of the share position:
//
//	[c][m m m m m][o o o o o]
//
// c is 1 on every parameter word except the last.
const (
	// wordBits is the number of bits encoded by one word
	wordBits = 11

	// groupBits is the width of each parameter group
	groupBits = 5

	// maxParamWords bounds the parameter section so values fit in 60 bits
	maxParamWords = 12
)

// encodeParams packs threshold and position into parameter word bits.
// Both values are padded to the same multiple of groupBits.
func encodeParams(threshold, position int) string {
	mBin := bits.Format(uint64(threshold), 1)
	oBin := bits.Format(uint64(position), 1)

	width := len(bits.PadLeft(mBin, groupBits))
	if w := len(bits.PadLeft(oBin, groupBits)); w > width {
		width = w
	}
	mBin = bits.Lpad(mBin, width)
	oBin = bits.Lpad(oBin, width)

	numWords := width / groupBits
	var sb strings.Builder
	sb.Grow(numWords * wordBits)
	for i := 0; i < numWords; i++ {
		if i == numWords-1 {
			sb.WriteByte('0')
		} else {
			sb.WriteByte('1')
		}
		sb.WriteString(mBin[i*groupBits : (i+1)*groupBits])
		sb.WriteString(oBin[i*groupBits : (i+1)*groupBits])
	}
	return sb.String()
}

// parseState tracks which section of a share the parser is in
type parseState int

const (
	stateParams parseState = iota
	statePayload
)

// parsedShare is a share mnemonic after word lookup
type parsedShare struct {
	threshold int
	position  int
	payload   string
}

// parseShare reads the version, parameter and payload sections of a share.
// The parser moves from stateParams to statePayload on the first word whose
// continuation bit is 0; a share that ends in stateParams is rejected.
func parseShare(words []string, wordlist Wordlist) (*parsedShare, error) {
	if len(words) == 0 || words[0] != Version {
		return nil, StatusErrVersion
	}

	state := stateParams
	var mBin, oBin, payload strings.Builder
	numParams := 0
	for _, w := range words[1:] {
		idx := wordlist.Index(w)
		if idx < 0 {
			return nil, fmt.Errorf("%w: word not in wordlist: %q", StatusErrLang, w)
		}
		wb := bits.Format(uint64(idx), wordBits)

		switch state {
		case stateParams:
			numParams++
			if numParams > maxParamWords {
				return nil, fmt.Errorf("%w: more than %d parameter words", StatusErrFormat, maxParamWords)
			}
			mBin.WriteString(wb[1 : 1+groupBits])
			oBin.WriteString(wb[1+groupBits:])
			if wb[0] == '0' {
				state = statePayload
			}
		case statePayload:
			payload.WriteString(wb)
		}
	}
	if state != statePayload {
		return nil, fmt.Errorf("%w: parameter words are not terminated", StatusErrFormat)
	}
	if payload.Len() == 0 {
		return nil, fmt.Errorf("%w: share has no payload words", StatusErrFormat)
	}

	threshold, _ := bits.Parse(mBin.String())
	position, _ := bits.Parse(oBin.String())

	// Drop the leading bits added when the payload was packed into words,
	// keeping whole hex digits. They must be zero in a conformant share.
	p := payload.String()
	diff := len(p) % 4
	if !bits.IsZero(p[:diff]) {
		return nil, fmt.Errorf("%w: payload padding bits are not zero", StatusErrFormat)
	}
	data, err := bits.BinToHex(p[diff:])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", StatusErrFormat, err)
	}

	return &parsedShare{
		threshold: int(threshold),
		position:  int(position),
		payload:   data,
	}, nil
}

// toWords left-pads bin to whole words and maps each word to the list
func toWords(bin string, wordlist Wordlist) []string {
	bin = bits.PadLeft(bin, wordBits)
	words := make([]string, 0, len(bin)/wordBits)
	for i := 0; i < len(bin); i += wordBits {
		idx, _ := bits.Parse(bin[i : i+wordBits])
		words = append(words, wordlist.Word(int(idx)))
	}
	return words
}
