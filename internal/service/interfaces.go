package service

import (
	"context"

	"github.com/avc-dev/counselor-profiles/internal/model"
)

//go:generate mockery --name CounselorDirectory

// CounselorDirectory источник кандидатов для разрешения slug
type CounselorDirectory interface {
	// ListCounselorRefs возвращает не более limit консультантов в стабильном порядке.
	// limit <= 0 означает отсутствие ограничения.
	ListCounselorRefs(ctx context.Context, limit int) ([]model.CounselorRef, error)
}
