package verse

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/palabraviva/daily-verse-api/internal/database"
)

var ErrNotFound = errors.New("record not found")

// Repository is the persistent verse store, keyed by Key.DocID().
type Repository interface {
	GetByKey(ctx context.Context, key Key) (*Verse, error)
	// Save writes the artifact under key with a server-assigned creation
	// time and returns the stored record. A concurrent write for the same
	// key wins by overwriting (last write wins).
	Save(ctx context.Context, key Key, v *Verse) (*Verse, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(dbService database.Service) Repository {
	return &repository{db: dbService.DB()}
}

func (r *repository) GetByKey(ctx context.Context, key Key) (*Verse, error) {
	query := `
		SELECT reference, verse_text, explanation, image_url, lang, created_at
		FROM daily_verses
		WHERE id = $1
	`

	var v Verse
	err := r.db.QueryRowContext(ctx, query, key.DocID()).Scan(
		&v.Reference,
		&v.Text,
		&v.Explanation,
		&v.ImageURL,
		&v.Language,
		&v.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get verse %s: %w", key.DocID(), err)
	}
	return &v, nil
}

func (r *repository) Save(ctx context.Context, key Key, v *Verse) (*Verse, error) {
	query := `
		INSERT INTO daily_verses (id, reference, verse_text, explanation, image_url, lang)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			reference = EXCLUDED.reference,
			verse_text = EXCLUDED.verse_text,
			explanation = EXCLUDED.explanation,
			image_url = EXCLUDED.image_url,
			lang = EXCLUDED.lang,
			created_at = now()
		RETURNING created_at
	`

	stored := *v
	err := r.db.QueryRowContext(ctx, query,
		key.DocID(),
		v.Reference,
		v.Text,
		v.Explanation,
		v.ImageURL,
		v.Language,
	).Scan(&stored.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("save verse %s: %w", key.DocID(), err)
	}
	return &stored, nil
}
