// Package spacescope embeds the database migrations applied by the migrate
// command.
package spacescope

import "embed"

// Migrations holds the goose SQL migrations.
//
//go:embed migrations/*.sql
var Migrations embed.FS
