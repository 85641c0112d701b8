// Package migrations embeds the PostgreSQL schema and applies it with goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var FS embed.FS

// Dialect is the goose dialect of the embedded migrations
const Dialect = "postgres"

// Direction is a migrate subcommand
type Direction string

const (
	DirectionUp     Direction = "up"
	DirectionDown   Direction = "down"
	DirectionStatus Direction = "status"
)

// Run applies direction to the database behind pool
func Run(ctx context.Context, pool *pgxpool.Pool, direction Direction) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()
	return RunDB(ctx, db, direction)
}

// RunDB applies direction using a database/sql handle
func RunDB(ctx context.Context, db *sql.DB, direction Direction) error {
	goose.SetBaseFS(FS)
	if err := goose.SetDialect(Dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	var err error
	switch direction {
	case DirectionUp:
		err = goose.UpContext(ctx, db, ".")
	case DirectionDown:
		err = goose.DownContext(ctx, db, ".")
	case DirectionStatus:
		err = goose.StatusContext(ctx, db, ".")
	default:
		return fmt.Errorf("unknown migration direction %q", direction)
	}
	if err != nil {
		return fmt.Errorf("migrate %s: %w", direction, err)
	}
	return nil
}
