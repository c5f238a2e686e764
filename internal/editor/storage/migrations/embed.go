// Package migrations embeds the goose migration scripts for the editor's
// local store.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
