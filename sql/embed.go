// Package sql embeds the schema migrations applied at startup.
package sql

import "embed"

//go:embed schema/*.sql
var MigrationsFS embed.FS
