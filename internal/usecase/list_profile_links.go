package usecase

import (
	"context"
	"fmt"

	"github.com/avc-dev/counselor-profiles/internal/model"
	"go.uber.org/zap"
)

// ListProfileLinks возвращает ссылки на профили всех консультантов (не более BATCH_SLUG_LIMIT)
func (u *ProfileUsecase) ListProfileLinks(ctx context.Context) ([]model.ProfileLink, error) {
	refs, err := u.repo.ListCounselorRefs(ctx, u.cfg.Slug.BatchLimit)
	if err != nil {
		u.logger.Error("failed to list counselors", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}

	ids := make([]model.CounselorID, len(refs))
	for i, ref := range refs {
		ids[i] = ref.ID
	}

	pairs, err := u.resolver.BatchSlugify(ctx, ids)
	if err != nil {
		u.logger.Error("failed to compute profile slugs",
			zap.Int("count", len(ids)),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}

	links := make([]model.ProfileLink, len(pairs))
	for i, pair := range pairs {
		links[i] = model.ProfileLink{
			ID:   pair.ID,
			Name: refs[i].Name,
			Slug: pair.Slug,
			URL:  u.ProfileURL(pair.Slug),
		}
	}

	u.logger.Debug("profile links generated", zap.Int("count", len(links)))

	return links, nil
}
