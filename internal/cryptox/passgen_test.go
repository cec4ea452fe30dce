package cryptox

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dmitrijs2005/vivault/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePassword_DefaultLengthAndCharset(t *testing.T) {
	pw, err := GeneratePassword(0)
	require.NoError(t, err)
	assert.Len(t, pw, DefaultPasswordLength)
	for _, r := range pw {
		assert.True(t, strings.ContainsRune(passwordCharset, r), "unexpected rune %q", r)
	}
}

func TestGeneratePassword_Bounds(t *testing.T) {
	_, err := GeneratePassword(MinPasswordLength - 1)
	require.ErrorIs(t, err, common.ErrValidation)

	_, err = GeneratePassword(MaxPasswordLength + 1)
	require.ErrorIs(t, err, common.ErrValidation)

	pw, err := GeneratePassword(MaxPasswordLength)
	require.NoError(t, err)
	assert.Len(t, pw, MaxPasswordLength)
}

func TestGeneratePassword_RejectsBiasedBytes(t *testing.T) {
	// 0xFF is above the rejection limit and must be skipped; 0x00 maps to 'a'
	src := bytes.NewReader(append(bytes.Repeat([]byte{0xFF}, 8), make([]byte, 16)...))
	pw, err := generatePassword(src, 8)
	require.NoError(t, err)
	assert.Equal(t, "aaaaaaaa", pw)
}

func TestGeneratePassword_Distinct(t *testing.T) {
	a, err := GeneratePassword(24)
	require.NoError(t, err)
	b, err := GeneratePassword(24)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
