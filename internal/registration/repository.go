package registration

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/palabraviva/daily-verse-api/internal/database"
)

var ErrNotFound = errors.New("record not found")

// Repository is the device token store.
type Repository interface {
	// Upsert creates or overwrites the registration for reg.Token with a
	// server-assigned updated_at.
	Upsert(ctx context.Context, reg *Registration) error
	// GetAll returns every registration. Full scan; acceptable at the
	// expected number of devices.
	GetAll(ctx context.Context) ([]Registration, error)
	Delete(ctx context.Context, token string) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(dbService database.Service) Repository {
	return &repository{db: dbService.DB()}
}

func (r *repository) Upsert(ctx context.Context, reg *Registration) error {
	query := `
		INSERT INTO device_tokens (token, lang, frequency, timezone)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (token) DO UPDATE SET
			lang = EXCLUDED.lang,
			frequency = EXCLUDED.frequency,
			timezone = EXCLUDED.timezone,
			updated_at = now()
	`
	_, err := r.db.ExecContext(ctx, query, reg.Token, reg.Language, reg.Frequency, reg.Timezone)
	if err != nil {
		return fmt.Errorf("upsert token: %w", err)
	}
	return nil
}

func (r *repository) GetAll(ctx context.Context) ([]Registration, error) {
	query := `
		SELECT token, lang, frequency, timezone, updated_at
		FROM device_tokens
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list tokens: %w", err)
	}
	defer rows.Close()

	var regs []Registration
	for rows.Next() {
		var reg Registration
		if err := rows.Scan(&reg.Token, &reg.Language, &reg.Frequency, &reg.Timezone, &reg.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan token: %w", err)
		}
		regs = append(regs, reg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list tokens: %w", err)
	}

	return regs, nil
}

func (r *repository) Delete(ctx context.Context, token string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM device_tokens WHERE token = $1`, token)
	if err != nil {
		return fmt.Errorf("delete token: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
