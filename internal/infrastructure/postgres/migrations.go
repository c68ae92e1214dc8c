package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// migrations historial versionado del esquema. Cada entrada se aplica una
// sola vez, en orden y dentro de su propia transacción. Nunca se editan
// entradas ya publicadas; los cambios de esquema agregan una versión nueva.
var migrations = []struct {
	version int
	stmts   []string
}{
	{
		version: 1,
		stmts: []string{
			`CREATE TABLE IF NOT EXISTS users (
				id            TEXT PRIMARY KEY,
				name          TEXT NOT NULL,
				email         TEXT NOT NULL UNIQUE,
				password_hash TEXT NOT NULL,
				dni           TEXT NOT NULL
			)`,
			`CREATE TABLE IF NOT EXISTS doctors (
				id        TEXT PRIMARY KEY,
				name      TEXT NOT NULL,
				specialty TEXT NOT NULL,
				schedule  TEXT NOT NULL
			)`,
			`CREATE TABLE IF NOT EXISTS appointments (
				id           TEXT PRIMARY KEY,
				user_id      TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
				doctor_id    TEXT NOT NULL REFERENCES doctors(id) ON DELETE CASCADE,
				date         TEXT NOT NULL,
				time         TEXT NOT NULL,
				is_cancelled BOOLEAN NOT NULL DEFAULT FALSE
			)`,
			`CREATE INDEX IF NOT EXISTS idx_appointments_user_id ON appointments(user_id)`,
			`CREATE INDEX IF NOT EXISTS idx_appointments_doctor_id ON appointments(doctor_id)`,
		},
	},
	{
		version: 2,
		stmts: []string{
			`ALTER TABLE users ADD COLUMN IF NOT EXISTS role TEXT NOT NULL DEFAULT 'user'`,
		},
	},
	{
		version: 3,
		stmts: []string{
			`CREATE TABLE IF NOT EXISTS pharmacy_products (
				id          TEXT PRIMARY KEY,
				name        TEXT NOT NULL,
				description TEXT NOT NULL,
				price       NUMERIC(12,2) NOT NULL,
				stock       INTEGER NOT NULL
			)`,
		},
	},
	{
		version: 4,
		stmts: []string{
			`CREATE TABLE IF NOT EXISTS purchases (
				id            TEXT PRIMARY KEY,
				user_id       TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
				purchase_date TIMESTAMPTZ NOT NULL,
				total_amount  NUMERIC(12,2) NOT NULL,
				paid_amount   NUMERIC(12,2) NOT NULL,
				change_amount NUMERIC(12,2) NOT NULL
			)`,
			`CREATE TABLE IF NOT EXISTS purchase_items (
				purchase_id         TEXT NOT NULL REFERENCES purchases(id) ON DELETE CASCADE,
				product_id          TEXT NOT NULL REFERENCES pharmacy_products(id) ON DELETE CASCADE,
				product_name        TEXT NOT NULL,
				product_description TEXT NOT NULL,
				product_price       NUMERIC(12,2) NOT NULL,
				quantity            INTEGER NOT NULL,
				PRIMARY KEY (purchase_id, product_id)
			)`,
			`CREATE INDEX IF NOT EXISTS idx_purchases_user_id ON purchases(user_id)`,
			`CREATE INDEX IF NOT EXISTS idx_purchase_items_purchase_id ON purchase_items(purchase_id)`,
			`CREATE INDEX IF NOT EXISTS idx_purchase_items_product_id ON purchase_items(product_id)`,
		},
	},
	{
		version: 5,
		stmts: []string{
			`ALTER TABLE pharmacy_products ADD COLUMN IF NOT EXISTS image_url TEXT NOT NULL DEFAULT ''`,
		},
	},
}

// Migrate aplica las migraciones pendientes. Es idempotente: registra la
// versión aplicada en schema_migrations y salta las ya hechas.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (
		version    INTEGER PRIMARY KEY,
		applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`)
	if err != nil {
		return fmt.Errorf("crear schema_migrations: %w", err)
	}

	var current int
	err = pool.QueryRow(ctx, `SELECT COALESCE(MAX(version), 0) FROM schema_migrations`).Scan(&current)
	if err != nil {
		return fmt.Errorf("leer versión de esquema: %w", err)
	}

	for _, m := range migrations {
		if m.version <= current {
			continue
		}
		tx, err := pool.Begin(ctx)
		if err != nil {
			return fmt.Errorf("begin migración %d: %w", m.version, err)
		}
		for _, stmt := range m.stmts {
			if _, err := tx.Exec(ctx, stmt); err != nil {
				_ = tx.Rollback(ctx)
				return fmt.Errorf("migración %d: %w", m.version, err)
			}
		}
		if _, err := tx.Exec(ctx, `INSERT INTO schema_migrations (version) VALUES ($1)`, m.version); err != nil {
			_ = tx.Rollback(ctx)
			return fmt.Errorf("registrar migración %d: %w", m.version, err)
		}
		if err := tx.Commit(ctx); err != nil {
			return fmt.Errorf("commit migración %d: %w", m.version, err)
		}
	}
	return nil
}
