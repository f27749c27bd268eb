// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package coredb connects to the public Ensembl MySQL service and executes
// read-only annotation queries against one resolved core database.
package coredb

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/go-sql-driver/mysql"

	"github.com/pdiddy/genome-engine/pkg/types"
)

// Client wraps a connection pool for one core database.
type Client struct {
	db *sql.DB
}

// Connect opens a connection to the named core database. The primary port
// is tried first; on failure the fallback port is tried once. If both fail,
// Connect returns an error naming both attempts so the pipeline stops
// before any query is issued.
func Connect(ctx context.Context, cfg types.DatabaseConfig, database string) (*Client, error) {
	db, primaryErr := open(ctx, cfg, cfg.Port, database)
	if primaryErr == nil {
		return &Client{db: db}, nil
	}

	db, fallbackErr := open(ctx, cfg, cfg.FallbackPort, database)
	if fallbackErr == nil {
		return &Client{db: db}, nil
	}

	return nil, fmt.Errorf("connecting to %s at %s: port %d: %v; fallback port %d: %w",
		database, cfg.Host, cfg.Port, primaryErr, cfg.FallbackPort, fallbackErr)
}

// open dials one port and verifies the connection with a ping.
func open(ctx context.Context, cfg types.DatabaseConfig, port int, database string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn(cfg, port, database))
	if err != nil {
		return nil, err
	}

	pingCtx := ctx
	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}

	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// dsn builds the driver connection string for one port.
func dsn(cfg types.DatabaseConfig, port int, database string) string {
	mc := mysql.NewConfig()
	mc.Net = "tcp"
	mc.Addr = fmt.Sprintf("%s:%d", cfg.Host, port)
	mc.User = cfg.User
	mc.Passwd = cfg.Password
	mc.DBName = database
	mc.Timeout = cfg.ConnectTimeout
	return mc.FormatDSN()
}

// Close releases the underlying connection pool.
func (c *Client) Close() error {
	return c.db.Close()
}

// Select runs a parameterized query and maps each row to a Record. Rows are
// expected in the five-column annotation shape: stable identifier, display
// label, description, cross-reference description, biotype.
func (c *Client) Select(ctx context.Context, query string, args ...any) ([]types.Record, error) {
	rows, err := c.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying core database: %w", err)
	}
	defer rows.Close()

	var records []types.Record
	for rows.Next() {
		var (
			rec      types.Record
			name     sql.NullString
			desc     sql.NullString
			xrefDesc sql.NullString
			biotype  sql.NullString
		)
		if err := rows.Scan(&rec.StableID, &name, &desc, &xrefDesc, &biotype); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		rec.DisplayName = nullable(name)
		rec.Description = nullable(desc)
		rec.XrefDescription = nullable(xrefDesc)
		rec.Biotype = nullable(biotype)
		records = append(records, rec)
	}
	return records, rows.Err()
}

// nullable converts a NullString to a pointer, keeping NULL distinct from
// the empty string.
func nullable(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}
