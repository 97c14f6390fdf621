package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// HashString creates a SHA-256 hash of the input string
func HashString(input string) string {
	// Create a new SHA-256 hash
	h := sha256.New()
	h.Write([]byte(input))

	// Return the hex-encoded hash
	return hex.EncodeToString(h.Sum(nil))
}

// LeadKey identifies a lead in logs without exposing the email address.
// Emails are compared case-insensitively, so the key is too.
func LeadKey(email string) string {
	return HashString(strings.ToLower(strings.TrimSpace(email)))[:12]
}
