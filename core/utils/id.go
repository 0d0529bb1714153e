package utils

import (
	"crypto/rand"
	"encoding/base64"

	"timeweave/core/constants"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	idAlphabet       = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	slugSuffixChars  = "0123456789abcdefghijklmnopqrstuvwxyz"
	slugSuffixLength = 7
)

func GenerateID() string {
	id, err := gonanoid.Generate(idAlphabet, 7)
	if err != nil {
		return ""
	}
	return id
}

// GenerateSlugSuffix returns a short lowercase ID safe for use inside URL slugs.
func GenerateSlugSuffix() string {
	id, err := gonanoid.Generate(slugSuffixChars, slugSuffixLength)
	if err != nil {
		return ""
	}
	return id
}

// GenerateRandomString generates a cryptographically secure random string
func GenerateRandomString(length int) string {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		// Fallback to nanoid if crypto/rand fails
		id, _ := gonanoid.Generate(idAlphabet, length)
		return id
	}
	return base64.URLEncoding.EncodeToString(bytes)[:length]
}

// GenerateShareToken returns the URL-safe token that guards public meeting links.
func GenerateShareToken() string {
	return GenerateRandomString(constants.ShareTokenLength)
}
