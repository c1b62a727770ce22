package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// GenerateHMAC generates an HMAC-SHA256 signature for the given data
func GenerateHMAC(data []byte, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// VerifyHMAC reports whether the signature matches the data
func VerifyHMAC(data []byte, signature, secret string) bool {
	expected := GenerateHMAC(data, secret)
	return hmac.Equal([]byte(expected), []byte(signature))
}
