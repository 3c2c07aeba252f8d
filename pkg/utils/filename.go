package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

const safeFilenameChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789-_."

// SanitizeFilename strips characters that are unsafe to persist as part
// of a stored record. An empty result falls back to "upload".
func SanitizeFilename(filename string) string {
	var b strings.Builder
	for _, c := range filename {
		if strings.ContainsRune(safeFilenameChars, c) {
			b.WriteRune(c)
		}
	}
	if b.Len() == 0 {
		return "upload"
	}
	return b.String()
}

// FileHash returns the hex-encoded SHA-256 digest of file content
func FileHash(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}
