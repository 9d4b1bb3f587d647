package sqlite

import (
	"context"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS touchpoints (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		customer_id TEXT NOT NULL,
		channel TEXT NOT NULL,
		timestamp DATETIME NOT NULL,
		channel_cost REAL NOT NULL DEFAULT 0,
		channel_type TEXT,
		is_conversion BOOLEAN NOT NULL DEFAULT FALSE,
		purchase_value REAL NOT NULL DEFAULT 0
	)`,
	`CREATE INDEX IF NOT EXISTS idx_touchpoints_customer_id ON touchpoints (customer_id)`,
	`CREATE INDEX IF NOT EXISTS idx_touchpoints_timestamp ON touchpoints (timestamp)`,
	`CREATE TABLE IF NOT EXISTS attribution_results (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		model_type TEXT NOT NULL,
		channel TEXT NOT NULL,
		metrics TEXT,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		UNIQUE (model_type, channel)
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		lastname TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		active BOOLEAN NOT NULL DEFAULT TRUE,
		role_id INTEGER NOT NULL DEFAULT 3,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
}

// InitSchema cria as tabelas do banco caso ainda não existam
func (c *Connection) InitSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := c.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
