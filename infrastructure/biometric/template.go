package biometric

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	DefaultKDFIterations = 100_000
	TemplateKeyLength    = 32
	SaltLength           = 16

	KDFAlgorithm  = "PBKDF2-SHA256"
	KDFDerivation = "BIOMETRIC_ENTROPY"
)

// DeriveSalt ties the salt to the subject so enrollment and authentication agree without storing it.
func DeriveSalt(userID string) []byte {
	digest := sha256.Sum256([]byte(userID))
	return []byte(hex.EncodeToString(digest[:])[:SaltLength])
}

// CanonicalString serialises fv with a fixed field order and number format.
// Changing this invalidates every stored template.
func CanonicalString(fv FeatureVector) string {
	var b strings.Builder
	b.WriteString(`{"h":[`)
	for i, h := range fv.H {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(formatNumber(h))
	}
	b.WriteString(`],"c":`)
	b.WriteString(formatNumber(fv.C))
	b.WriteString(`,"m":`)
	b.WriteString(formatNumber(fv.M))
	b.WriteByte('}')
	return b.String()
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// HashTemplate derives the irreversible 64-hex-character template for fv and userID.
func HashTemplate(fv FeatureVector, userID string, iterations int) string {
	if iterations <= 0 {
		iterations = DefaultKDFIterations
	}
	key := pbkdf2.Key([]byte(CanonicalString(fv)), DeriveSalt(userID), iterations, TemplateKeyLength, sha256.New)
	return hex.EncodeToString(key)
}
