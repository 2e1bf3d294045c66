// Package db carries the embedded goose migrations for the service.
package db

import "embed"

//go:embed migrations/*.sql
var Migrations embed.FS
