package repository

import (
	"context"
	"fmt"

	"github.com/avc-dev/counselor-profiles/internal/model"
)

// Store источник данных справочника консультантов: память, JSON файл или PostgreSQL
type Store interface {
	ListCounselorRefs(ctx context.Context, limit int) ([]model.CounselorRef, error)
	GetCounselorByID(ctx context.Context, id model.CounselorID) (model.Counselor, error)
	Ping(ctx context.Context) error
}

type Repository struct {
	underlying Store
}

func New(underlying Store) *Repository {
	return &Repository{underlying}
}

func (r Repository) Ping(ctx context.Context) error {
	if err := r.underlying.Ping(ctx); err != nil {
		return fmt.Errorf("directory is not reachable: %w", err)
	}
	return nil
}
