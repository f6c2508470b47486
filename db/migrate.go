package db

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"
)

// Schema files are embedded so `cafe-pos migrate` works from any directory.
// Every statement is idempotent; they are applied on each start.
//
//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrate applies the embedded schema files in name order and returns their names.
func Migrate(ctx context.Context, q Querier) ([]string, error) {
	names, err := fs.Glob(migrationsFS, "migrations/*.sql")
	if err != nil {
		return nil, fmt.Errorf("list migrations: %w", err)
	}
	sort.Strings(names)
	for _, name := range names {
		sqlBytes, err := migrationsFS.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("read migration %s: %w", name, err)
		}
		if _, err := q.Exec(ctx, string(sqlBytes)); err != nil {
			return nil, fmt.Errorf("apply migration %s: %w", name, err)
		}
	}
	return names, nil
}
