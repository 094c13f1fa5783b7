// Package migrations bundles the SQL migration files applied to postgres at
// startup.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
