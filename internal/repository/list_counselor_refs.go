package repository

import (
	"context"
	"fmt"

	"github.com/avc-dev/counselor-profiles/internal/model"
)

func (r Repository) ListCounselorRefs(ctx context.Context, limit int) ([]model.CounselorRef, error) {
	refs, err := r.underlying.ListCounselorRefs(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list counselors: %w", err)
	}

	return refs, nil
}
