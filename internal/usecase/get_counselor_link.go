package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc-dev/counselor-profiles/internal/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// GetCounselorLink возвращает публичную ссылку на профиль консультанта по его идентификатору
func (u *ProfileUsecase) GetCounselorLink(ctx context.Context, id string) (model.ProfileLink, error) {
	if _, err := uuid.Parse(id); err != nil {
		return model.ProfileLink{}, fmt.Errorf("%w: %w", ErrInvalidCounselorID, err)
	}

	counselor, err := u.repo.GetCounselorByID(ctx, model.CounselorID(id))
	if errors.Is(err, model.ErrCounselorNotFound) {
		return model.ProfileLink{}, fmt.Errorf("%w: %w", ErrProfileNotFound, err)
	}
	if err != nil {
		u.logger.Error("failed to get counselor",
			zap.String("profile_id", id),
			zap.Error(err),
		)
		return model.ProfileLink{}, fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}

	// slug строится от идентификатора в том виде, в котором он хранится в справочнике
	slug, err := u.resolver.SlugFor(counselor.ID)
	if err != nil {
		return model.ProfileLink{}, fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}

	return model.ProfileLink{
		ID:   counselor.ID,
		Name: counselor.Name,
		Slug: slug,
		URL:  u.ProfileURL(slug),
	}, nil
}
