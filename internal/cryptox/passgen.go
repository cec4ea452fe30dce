package cryptox

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/dmitrijs2005/vivault/internal/common"
)

const (
	passwordCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*"

	DefaultPasswordLength = 16
	MinPasswordLength     = 8
	MaxPasswordLength     = 128
)

// GeneratePassword returns a random password of the given length drawn from
// passwordCharset. Zero length means DefaultPasswordLength.
func GeneratePassword(length int) (string, error) {
	return generatePassword(rand.Reader, length)
}

func generatePassword(r io.Reader, length int) (string, error) {
	if length == 0 {
		length = DefaultPasswordLength
	}
	if length < MinPasswordLength || length > MaxPasswordLength {
		return "", fmt.Errorf("%w: password length must be between %d and %d",
			common.ErrValidation, MinPasswordLength, MaxPasswordLength)
	}

	// bytes at or above limit are rejected so every character is equally likely
	limit := byte(256 - 256%len(passwordCharset))

	out := make([]byte, 0, length)
	buf := make([]byte, length)
	for len(out) < length {
		if _, err := io.ReadFull(r, buf); err != nil {
			return "", err
		}
		for _, b := range buf {
			if b >= limit {
				continue
			}
			out = append(out, passwordCharset[int(b)%len(passwordCharset)])
			if len(out) == length {
				break
			}
		}
	}
	return string(out), nil
}
