// Package common defines sentinel errors and small helpers shared by the
// vault core, the host process and the command-line client. Callers should
// use errors.Is to match these values.
package common

import "errors"

var (
	// Unlock errors.
	ErrAuthentication = errors.New("invalid master password")

	// Session errors.
	ErrVaultLocked = errors.New("vault is locked")

	// Lookup errors.
	ErrNotFound = errors.New("not found")

	// Crypto errors (authentication tag mismatch, malformed bundle).
	ErrDecryption = errors.New("decryption failed")

	// Transport errors (no response from the host process).
	ErrTransport = errors.New("transport error")

	// Validation / request-specific errors.
	ErrValidation = errors.New("validation error")

	// Generic internal flow control.
	ErrInternal = errors.New("internal error")

	// Caller token errors.
	ErrInvalidToken = errors.New("invalid token")
)
