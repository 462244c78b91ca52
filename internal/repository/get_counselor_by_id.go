package repository

import (
	"context"
	"fmt"

	"github.com/avc-dev/counselor-profiles/internal/model"
)

func (r Repository) GetCounselorByID(ctx context.Context, id model.CounselorID) (model.Counselor, error) {
	counselor, err := r.underlying.GetCounselorByID(ctx, id)
	if err != nil {
		return model.Counselor{}, fmt.Errorf("failed to get counselor by id: %w", err)
	}

	return counselor, nil
}
