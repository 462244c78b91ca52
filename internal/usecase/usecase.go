package usecase

import (
	"context"

	"github.com/avc-dev/counselor-profiles/internal/config"
	"github.com/avc-dev/counselor-profiles/internal/model"
	"go.uber.org/zap"
)

//go:generate mockery --name CounselorRepository

// CounselorRepository определяет интерфейс для чтения справочника консультантов
type CounselorRepository interface {
	GetCounselorByID(ctx context.Context, id model.CounselorID) (model.Counselor, error)
	ListCounselorRefs(ctx context.Context, limit int) ([]model.CounselorRef, error)
}

//go:generate mockery --name SlugResolver

// SlugResolver определяет интерфейс преобразования между slug и идентификаторами консультантов
type SlugResolver interface {
	Resolve(ctx context.Context, slug model.Slug) (model.CounselorID, error)
	SlugFor(id model.CounselorID) (model.Slug, error)
	BatchSlugify(ctx context.Context, ids []model.CounselorID) ([]model.SlugPair, error)
}

// ProfileUsecase содержит бизнес-логику публичных ссылок на профили консультантов
type ProfileUsecase struct {
	repo     CounselorRepository
	resolver SlugResolver
	cfg      *config.Config
	logger   *zap.Logger
}

// NewProfileUsecase создает новый экземпляр ProfileUsecase
func NewProfileUsecase(repo CounselorRepository, resolver SlugResolver, cfg *config.Config, logger *zap.Logger) *ProfileUsecase {
	return &ProfileUsecase{
		repo:     repo,
		resolver: resolver,
		cfg:      cfg,
		logger:   logger,
	}
}

// ProfileURL строит каноническую ссылку на профиль от BASE_URL
func (u *ProfileUsecase) ProfileURL(slug model.Slug) string {
	return u.cfg.BaseURL.String() + "/profile/" + slug.String()
}
