// Package migrations embeds the goose SQL migrations for the bookmarks schema.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
