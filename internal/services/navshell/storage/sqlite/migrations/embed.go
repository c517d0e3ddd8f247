package migrations

import "embed"

// FS contains embedded SQLite migrations for navshell storage.
//
//go:embed *.sql
var FS embed.FS
