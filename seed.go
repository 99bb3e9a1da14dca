// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package shamir39

import (
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/text/unicode/norm"
)

const (
	// SeedSize is the size of a BIP39 seed in bytes
	SeedSize = 64

	// kdfNumIterations is the BIP39 PBKDF2 round count
	kdfNumIterations = 2048

	// checkSize is the number of seed hash bytes shown by SeedCheck
	checkSize = 4
)

// memzero overwrites b with zeros
func memzero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// pbkdf2SHA512 calculates PBKDF2 based on HMAC-SHA512
func pbkdf2SHA512(password []byte, salt []byte, iterations int, keyLen int) []byte {
	return pbkdf2.Key(password, salt, iterations, keyLen, sha512.New)
}

// Seed derives the BIP39 seed of a mnemonic and passphrase. Both are
// normalized to NFKD first and the words are joined by single spaces.
func Seed(words []string, passphrase string) []byte {
	mnemonic := norm.NFKD.String(strings.Join(words, " "))
	salt := "mnemonic" + norm.NFKD.String(passphrase)
	return pbkdf2SHA512([]byte(mnemonic), []byte(salt), kdfNumIterations, SeedSize)
}

// SeedCheck returns a short fingerprint of the seed, so a split and a later
// combine can be compared without showing either secret
func SeedCheck(words []string, passphrase string) string {
	seed := Seed(words, passphrase)
	defer memzero(seed)
	sum := sha256.Sum256(seed)
	return hex.EncodeToString(sum[:checkSize])
}
