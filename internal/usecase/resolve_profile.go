package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc-dev/counselor-profiles/internal/model"
	"github.com/avc-dev/counselor-profiles/internal/service"
	"go.uber.org/zap"
)

// ResolveProfileID находит идентификатор консультанта по публичному slug
func (u *ProfileUsecase) ResolveProfileID(ctx context.Context, slug string) (model.CounselorID, error) {
	id, err := u.resolver.Resolve(ctx, model.Slug(slug))
	switch {
	case err == nil:
		return id, nil
	case errors.Is(err, service.ErrInvalidSlugFormat):
		return "", fmt.Errorf("%w: %w", ErrInvalidSlug, err)
	case errors.Is(err, service.ErrSlugNotFound):
		return "", fmt.Errorf("%w: %w", ErrProfileNotFound, err)
	default:
		u.logger.Error("failed to resolve profile slug",
			zap.String("slug", slug),
			zap.Error(err),
		)
		return "", fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}
}
