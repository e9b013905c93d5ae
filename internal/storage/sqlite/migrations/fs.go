// Package migrations embeds the learnset database schema.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
