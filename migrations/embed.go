// Package migrations встраивает SQL-миграции в бинарник.
package migrations

import "embed"

// FS содержит миграции; каталог filmorate передается в postgres.Migrate.
//
//go:embed filmorate/*.sql
var FS embed.FS

// FilmorateDir - каталог миграций сервиса внутри FS.
const FilmorateDir = "filmorate"
