// Package config loads runtime configuration for vaultctl.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   address:port of the vaultd gRPC endpoint
//	-s string   shared secret for caller tokens (must match vaultd)
//	-i int      per-request timeout (seconds)
//	-r int      attempts per request on transport failure
//
// # JSON schema
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "secret_key": "change-me",
//	  "request_timeout": "5s",
//	  "retry_attempts": 3
//	}
package config
