package postgres

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Open abre una conexión pool a Postgres usando pgx (database/sql).
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	// defaults razonables (ajustable luego)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// schema modela el mismo par lista + hash del store Redis:
// med_names conserva orden de inserción y duplicados (id creciente).
const schema = `
CREATE TABLE IF NOT EXISTS medications (
	name   TEXT PRIMARY KEY,
	dosage TEXT NOT NULL DEFAULT '',
	via    TEXT NOT NULL DEFAULT '',
	adult  TEXT NOT NULL DEFAULT '',
	ped    TEXT NOT NULL DEFAULT '',
	gpo90  TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS med_names (
	id   BIGSERIAL PRIMARY KEY,
	name TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS med_names_name_idx ON med_names (name);
`

// Migrate crea las tablas si no existen.
func Migrate(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, schema)
	return err
}
