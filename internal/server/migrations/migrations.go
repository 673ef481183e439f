// Package migrations embeds the goose SQL migrations that create the
// TaskKeeper schema. They are applied once at startup.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
