// Package client is vaultctl's connection to vaultd.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract (see the Client interface) covering every
//     vault operation: Unlock/Lock, listing and search, secret reveal, save,
//     host lookup, status, password generation and Ping.
//  2. A gRPC implementation (see GRPCClient) over the generated stubs in
//     internal/proto. It attaches a fresh caller token to each call when a
//     shared secret is configured and retries calls that never reached vaultd.
//
// # Error Handling
//
// gRPC statuses are mapped back onto the sentinels in internal/common so
// callers can use errors.Is: ErrAuthentication, ErrVaultLocked, ErrNotFound,
// ErrDecryption, ErrValidation, ErrInvalidToken, ErrTransport and ErrInternal.
// Only ErrTransport is retried. SaveCredential is not idempotent, so it is
// retried on codes.Unavailable alone; a DeadlineExceeded save may already be
// stored.
package client
