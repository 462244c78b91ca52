package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc-dev/counselor-profiles/internal/model"
	"go.uber.org/zap"
)

// GetProfile возвращает карточку консультанта по публичному slug
func (u *ProfileUsecase) GetProfile(ctx context.Context, slug string) (model.ProfileResponse, error) {
	id, err := u.ResolveProfileID(ctx, slug)
	if err != nil {
		return model.ProfileResponse{}, err
	}

	counselor, err := u.repo.GetCounselorByID(ctx, id)
	if errors.Is(err, model.ErrCounselorNotFound) {
		// Консультант мог быть удален между перебором и чтением карточки
		return model.ProfileResponse{}, fmt.Errorf("%w: %w", ErrProfileNotFound, err)
	}
	if err != nil {
		u.logger.Error("failed to get counselor",
			zap.String("profile_id", id.String()),
			zap.Error(err),
		)
		return model.ProfileResponse{}, fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}

	canonical := model.Slug(slug)

	return model.ProfileResponse{
		Slug:      canonical,
		URL:       u.ProfileURL(canonical),
		Counselor: counselor,
	}, nil
}
