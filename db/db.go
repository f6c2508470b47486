package db

import (
	"context"
	"fmt"

	"cafe-pos/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

var Pool *pgxpool.Pool

// Init opens the single database connection used for the whole process.
func Init(ctx context.Context, cfg config.DBConfig) error {
	poolCfg, err := pgxpool.ParseConfig(cfg.ConnString())
	if err != nil {
		return fmt.Errorf("parse db config: %w", err)
	}
	// one interactive session, one connection
	poolCfg.MaxConns = 1
	poolCfg.MinConns = 1

	Pool, err = pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	if err := Pool.Ping(ctx); err != nil {
		Pool.Close()
		Pool = nil
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

func Close() {
	if Pool != nil {
		Pool.Close()
	}
}
