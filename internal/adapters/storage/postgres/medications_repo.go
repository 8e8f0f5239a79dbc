package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"med-catalog/internal/domain/medications"
)

type MedicationsRepo struct {
	db *sql.DB
}

func NewMedicationsRepo(db *sql.DB) *MedicationsRepo {
	return &MedicationsRepo{db: db}
}

func (r *MedicationsRepo) ListNames(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT name FROM med_names ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("postgres: list names: %w", err)
	}
	defer rows.Close()

	out := make([]string, 0)
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

// GetFields devuelve un map vacío si no hay fila, igual que HGETALL.
func (r *MedicationsRepo) GetFields(ctx context.Context, name string) (map[string]string, error) {
	var m medications.Medication
	err := r.db.QueryRowContext(ctx, `
		SELECT dosage, via, adult, ped, gpo90
		FROM medications
		WHERE name = $1
	`, name).Scan(&m.Dosage, &m.Via, &m.Adult, &m.Ped, &m.GPO90)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("postgres: get %q: %w", name, err)
	}

	f := m.Fields()
	out := make(map[string]string, len(f)/2)
	for i := 0; i+1 < len(f); i += 2 {
		out[f[i]] = f[i+1]
	}
	return out, nil
}

func (r *MedicationsRepo) Create(ctx context.Context, m medications.Medication) error {
	return r.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO medications (name, dosage, via, adult, ped, gpo90)
			VALUES ($1,$2,$3,$4,$5,$6)
			ON CONFLICT (name) DO UPDATE SET
				dosage = EXCLUDED.dosage,
				via = EXCLUDED.via,
				adult = EXCLUDED.adult,
				ped = EXCLUDED.ped,
				gpo90 = EXCLUDED.gpo90
		`, m.Name, m.Dosage, m.Via, m.Adult, m.Ped, m.GPO90); err != nil {
			return fmt.Errorf("postgres: upsert %q: %w", m.Name, err)
		}

		if _, err := tx.ExecContext(ctx, `INSERT INTO med_names (name) VALUES ($1)`, m.Name); err != nil {
			return fmt.Errorf("postgres: append name %q: %w", m.Name, err)
		}
		return nil
	})
}

func (r *MedicationsRepo) Update(ctx context.Context, m medications.Medication) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE medications
		SET
			dosage = $2,
			via = $3,
			adult = $4,
			ped = $5,
			gpo90 = $6
		WHERE name = $1
	`, m.Name, m.Dosage, m.Via, m.Adult, m.Ped, m.GPO90)
	if err != nil {
		return fmt.Errorf("postgres: update %q: %w", m.Name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("postgres: update %q: rows affected: %w", m.Name, err)
	}
	if n == 0 {
		return medications.ErrNotFound
	}
	return nil
}

func (r *MedicationsRepo) Delete(ctx context.Context, name string) error {
	return r.inTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `DELETE FROM medications WHERE name = $1`, name)
		if err != nil {
			return fmt.Errorf("postgres: delete %q: %w", name, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("postgres: delete %q: rows affected: %w", name, err)
		}
		if n == 0 {
			return medications.ErrNotFound
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM med_names WHERE name = $1`, name); err != nil {
			return fmt.Errorf("postgres: remove name %q: %w", name, err)
		}
		return nil
	})
}

func (r *MedicationsRepo) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// inTx hace commit si fn no falla; en cualquier otro caso rollback.
func (r *MedicationsRepo) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("postgres: begin: %w", err)
	}

	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}
