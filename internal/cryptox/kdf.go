// Package cryptox implements the vault's key derivation and the per-record
// credential cipher.
//
// Two kinds of material are derived from a master password:
//
//   - a verification hash, computed once per vault with a random per-vault
//     salt and used only to authenticate unlock attempts;
//   - a 256-bit AES key per encrypted secret, derived with a fresh random salt
//     that is stored next to the ciphertext so the key can be re-derived.
package cryptox

import (
	"crypto/sha256"
	"crypto/subtle"
	"errors"
	"fmt"
	"sort"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/pbkdf2"
)

const (
	// KeyLen is the size of every derived key (AES-256).
	KeyLen = 32
	// SaltLen is the size of the verification and per-record salts.
	SaltLen = 16

	// DefaultIterations is the PBKDF2 iteration count for new material.
	DefaultIterations = 100_000
	// MaxIterations bounds the PBKDF2 count accepted from stored data.
	MaxIterations = 10_000_000

	AlgorithmPBKDF2   = "pbkdf2-sha256"
	AlgorithmArgon2id = "argon2id"
)

const (
	argon2DefaultTime    = 1
	argon2MaxTime        = 64
	argon2DefaultMemory  = 64 * 1024
	argon2DefaultThreads = 4
)

var (
	ErrUnsupportedAlgorithm = errors.New("unsupported key derivation algorithm")
	ErrIterationsOutOfRange = errors.New("iteration count out of range")
)

// KDFParams selects the derivation algorithm and its cost. For pbkdf2-sha256
// Iterations is the iteration count, for argon2id it is the time parameter.
type KDFParams struct {
	Algorithm  string `json:"algorithm"`
	Iterations uint32 `json:"iterations"`
}

// DefaultKDFParams returns pbkdf2-sha256 with DefaultIterations.
func DefaultKDFParams() KDFParams {
	return KDFParams{Algorithm: AlgorithmPBKDF2, Iterations: DefaultIterations}
}

// ParamsFor returns params for algorithm, filling a zero iteration count with
// the algorithm's default.
func ParamsFor(algorithm string, iterations uint32) (KDFParams, error) {
	if _, ok := derivers[algorithm]; !ok {
		return KDFParams{}, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, algorithm)
	}
	if iterations == 0 {
		iterations = defaultIterations[algorithm]
	}
	if iterations > maxIterations[algorithm] {
		return KDFParams{}, fmt.Errorf("%w: %s allows at most %d", ErrIterationsOutOfRange, algorithm, maxIterations[algorithm])
	}
	return KDFParams{Algorithm: algorithm, Iterations: iterations}, nil
}

type deriveFunc func(password, salt []byte, iterations uint32) []byte

var derivers = map[string]deriveFunc{
	AlgorithmPBKDF2: func(password, salt []byte, iterations uint32) []byte {
		return pbkdf2.Key(password, salt, int(iterations), KeyLen, sha256.New)
	},
	AlgorithmArgon2id: func(password, salt []byte, iterations uint32) []byte {
		return argon2.IDKey(password, salt, iterations, argon2DefaultMemory, argon2DefaultThreads, KeyLen)
	},
}

var defaultIterations = map[string]uint32{
	AlgorithmPBKDF2:   DefaultIterations,
	AlgorithmArgon2id: argon2DefaultTime,
}

// maxIterations caps the cost read back from records and bundles, which
// would otherwise let a tampered value stall every unlock or decrypt.
var maxIterations = map[string]uint32{
	AlgorithmPBKDF2:   MaxIterations,
	AlgorithmArgon2id: argon2MaxTime,
}

// SupportedAlgorithms lists the registered algorithm names in sorted order.
func SupportedAlgorithms() []string {
	names := make([]string, 0, len(derivers))
	for name := range derivers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func derive(password, salt []byte, params KDFParams) ([]byte, error) {
	fn, ok := derivers[params.Algorithm]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, params.Algorithm)
	}
	if params.Iterations == 0 {
		return nil, fmt.Errorf("%s: iteration count must be positive", params.Algorithm)
	}
	if params.Iterations > maxIterations[params.Algorithm] {
		return nil, fmt.Errorf("%w: %s: %d", ErrIterationsOutOfRange, params.Algorithm, params.Iterations)
	}
	if len(salt) == 0 {
		return nil, errors.New("salt must not be empty")
	}
	return fn(password, salt, params.Iterations), nil
}

// VerifierLabel prefixes the derived key when hashing it into a verifier.
const VerifierLabel = "vivault-verify"

// MakeVerifier turns a derived key into the value stored for unlock checks:
// SHA-256 over VerifierLabel followed by the key. The stored value is never
// usable as a key, nor equal to an unlabeled hash of one.
func MakeVerifier(derivedKey []byte) []byte {
	h := sha256.New()
	h.Write([]byte(VerifierLabel))
	h.Write(derivedKey)
	return h.Sum(nil)
}

// HashMasterPassword derives the verification hash for password under the
// per-vault salt. The result is deterministic for equal inputs.
func HashMasterPassword(password, salt []byte, params KDFParams) ([]byte, error) {
	key, err := derive(password, salt, params)
	if err != nil {
		return nil, err
	}
	defer wipe(key)
	return MakeVerifier(key), nil
}

// Verify re-derives the verification hash and compares it in constant time.
func Verify(password, salt, storedHash []byte, params KDFParams) (bool, error) {
	candidate, err := HashMasterPassword(password, salt, params)
	if err != nil {
		return false, err
	}
	return subtle.ConstantTimeCompare(candidate, storedHash) == 1, nil
}

// DeriveEncryptionKey derives a 256-bit AES key from password and a
// per-operation salt with PBKDF2-HMAC-SHA256. Zero iterations means
// DefaultIterations.
func DeriveEncryptionKey(password, salt []byte, iterations uint32) ([]byte, error) {
	if iterations == 0 {
		iterations = DefaultIterations
	}
	return derive(password, salt, KDFParams{Algorithm: AlgorithmPBKDF2, Iterations: iterations})
}

func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
