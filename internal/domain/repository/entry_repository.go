package repository

import (
	"context"

	"github.com/minhasfinancas/api/internal/domain/entity"
)

// EntryFilter is a probe for example-based queries: zero/nil fields act as
// wildcards. Description, when set, matches as a case-insensitive substring;
// everything else matches exactly.
type EntryFilter struct {
	Description string
	Month       *int
	Year        *int
	UserID      int64
	Type        entity.EntryType
	Status      entity.EntryStatus
}

// EntryRepository abstracts persistence of entries.
//
// Save assigns ID and RegistrationDate on first insert; with a non-zero ID it
// overwrites the matching record. FindMatching returns every entry matching
// the probe, ordered by ascending id.
type EntryRepository interface {
	Save(ctx context.Context, e *entity.Entry) (*entity.Entry, error)
	FindByID(ctx context.Context, id int64) (*entity.Entry, error)
	Delete(ctx context.Context, e *entity.Entry) error
	FindMatching(ctx context.Context, f EntryFilter) ([]*entity.Entry, error)
}
