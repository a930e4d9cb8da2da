// Package migrations embeds the goose SQL migrations for the server and tests.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
