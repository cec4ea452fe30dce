package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"

	"github.com/dmitrijs2005/vivault/internal/common"
)

// IVLen is the AES-GCM nonce size.
const IVLen = 12

// SecretBundle is an encrypted secret together with everything needed to
// re-derive its key, except the master password.
type SecretBundle struct {
	Ciphertext []byte `json:"ciphertext"`
	IV         []byte `json:"iv"`
	Salt       []byte `json:"salt"`
	// Iterations used for the PBKDF2 key; zero means DefaultIterations.
	Iterations uint32 `json:"iterations,omitempty"`
}

// Cipher encrypts single secrets with AES-256-GCM under keys derived from
// the master password.
type Cipher struct {
	iterations uint32
	rand       io.Reader
}

// NewCipher returns a Cipher deriving keys with the given PBKDF2 iteration
// count (zero means DefaultIterations, values above MaxIterations are capped).
func NewCipher(iterations uint32) *Cipher {
	if iterations == 0 {
		iterations = DefaultIterations
	}
	if iterations > MaxIterations {
		iterations = MaxIterations
	}
	return &Cipher{iterations: iterations, rand: rand.Reader}
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

// Encrypt seals plaintext under a key derived from masterPassword and a
// fresh random salt. Salt and IV are new on every call, so equal inputs
// never produce equal bundles.
func (c *Cipher) Encrypt(plaintext, masterPassword []byte) (SecretBundle, error) {
	salt := make([]byte, SaltLen)
	if _, err := io.ReadFull(c.rand, salt); err != nil {
		return SecretBundle{}, fmt.Errorf("salt generation: %w", err)
	}
	iv := make([]byte, IVLen)
	if _, err := io.ReadFull(c.rand, iv); err != nil {
		return SecretBundle{}, fmt.Errorf("iv generation: %w", err)
	}

	key, err := DeriveEncryptionKey(masterPassword, salt, c.iterations)
	if err != nil {
		return SecretBundle{}, fmt.Errorf("key derivation: %w", err)
	}
	defer wipe(key)

	aead, err := newGCM(key)
	if err != nil {
		return SecretBundle{}, err
	}

	return SecretBundle{
		Ciphertext: aead.Seal(nil, iv, plaintext, nil),
		IV:         iv,
		Salt:       salt,
		Iterations: c.iterations,
	}, nil
}

// Decrypt re-derives the key from bundle.Salt and opens the ciphertext.
// Any tag mismatch or malformed bundle yields common.ErrDecryption and no
// plaintext. An iteration count above MaxIterations is malformed.
func (c *Cipher) Decrypt(bundle SecretBundle, masterPassword []byte) ([]byte, error) {
	if len(bundle.IV) != IVLen || len(bundle.Salt) == 0 {
		return nil, fmt.Errorf("%w: malformed bundle", common.ErrDecryption)
	}
	if bundle.Iterations > MaxIterations {
		return nil, fmt.Errorf("%w: %v", common.ErrDecryption, ErrIterationsOutOfRange)
	}

	key, err := DeriveEncryptionKey(masterPassword, bundle.Salt, bundle.Iterations)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrDecryption, err)
	}
	defer wipe(key)

	aead, err := newGCM(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrDecryption, err)
	}

	plaintext, err := aead.Open(nil, bundle.IV, bundle.Ciphertext, nil)
	if err != nil {
		return nil, common.ErrDecryption
	}
	return plaintext, nil
}
