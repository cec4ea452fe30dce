// Package migrations embeds the goose migrations for every supported
// database backend.
package migrations

import "embed"

// FS holds one directory of migrations per backend ("sqlite", "postgres").
//
//go:embed sqlite/*.sql postgres/*.sql
var FS embed.FS
