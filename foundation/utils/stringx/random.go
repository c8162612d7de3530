// File: random.go
// Title: Random String Generation
// Description: Generates random strings from rune sets using crypto/rand.
//              The whitespace-heavy sets feed the trimming and counting
//              property tests.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-03
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-03 v0.1.0: Initial implementation with secure random generation
// - 2026-10-12 v0.2.0: Rune-aware charsets, whitespace sets

package stringx

import (
	"crypto/rand"
	"math/big"
)

const (
	// Character sets for random string generation
	LettersLowercase = "abcdefghijklmnopqrstuvwxyz"
	LettersUppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Letters          = LettersLowercase + LettersUppercase
	Digits           = "0123456789"
	Alphanumeric     = Letters + Digits

	// Whitespace holds every scalar removed by Trim
	Whitespace = "\t\n\v\f\r \u00a0\u1680\u2000\u2001\u2002\u2003\u2004\u2005\u2006\u2007\u2008\u2009\u200a\u2028\u2029\u202f\u205f\u3000\ufeff"

	// Multilingual mixes encodings of every length, plus scalars that look
	// like whitespace but are not trimmed
	Multilingual = "aZ9\u00e9\u00df\u00f1\u20ac\u8a9e\u30c9\u30e1\U0001F600\U0001D11E\u200b\u0085\u180e"

	// TrimAlphabet is weighted towards whitespace for trimming tests
	TrimAlphabet = Whitespace + Whitespace + Multilingual
)

// RandomString generates a cryptographically secure random string of length
// scalars drawn from charset. An empty charset means Alphanumeric.
func RandomString(length int, charset string) (string, error) {
	if charset == "" {
		charset = Alphanumeric
	}
	return RandomFromRunes(length, []rune(charset))
}

// RandomFromRunes generates a string of length scalars drawn from runes
func RandomFromRunes(length int, runes []rune) (string, error) {
	if length <= 0 || len(runes) == 0 {
		return "", nil
	}

	result := make([]rune, length)
	setLen := big.NewInt(int64(len(runes)))
	for i := range result {
		idx, err := rand.Int(rand.Reader, setLen)
		if err != nil {
			return "", err
		}
		result[i] = runes[idx.Int64()]
	}
	return string(result), nil
}

// RandomAlphanumeric generates a random alphanumeric string
func RandomAlphanumeric(length int) (string, error) {
	return RandomString(length, Alphanumeric)
}

// RandomHex generates a random lowercase hexadecimal string
func RandomHex(length int) (string, error) {
	return RandomString(length, "0123456789abcdef")
}
