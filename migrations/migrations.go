// Package migrations embeds the numbered schema migrations so the binary can
// apply them at startup without shipping loose SQL files.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
