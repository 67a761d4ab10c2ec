package biometric

import (
	"crypto/subtle"
	"encoding/hex"
)

// MatchTemplate compares two hex templates in constant time. Malformed input never matches.
func MatchTemplate(candidate, stored string) bool {
	a, err := hex.DecodeString(candidate)
	if err != nil || len(a) != TemplateKeyLength {
		return false
	}
	b, err := hex.DecodeString(stored)
	if err != nil || len(b) != TemplateKeyLength {
		return false
	}
	return subtle.ConstantTimeCompare(a, b) == 1
}
