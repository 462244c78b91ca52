package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/avc-dev/counselor-profiles/internal/config"
	"github.com/avc-dev/counselor-profiles/internal/model"
)

// DirectoryResolver связывает публичные slug с внутренними идентификаторами консультантов.
//
// Кодирование необратимо, поэтому Resolve перебирает ограниченный набор кандидатов из справочника
// и сравнивает их slug с входным. Стоимость O(n), n ограничено ResolveCandidateLimit.
type DirectoryResolver struct {
	codec          *SlugCodec
	directory      CounselorDirectory
	batch          *BatchSlugger
	candidateLimit int
}

// NewDirectoryResolver создает новый экземпляр DirectoryResolver
func NewDirectoryResolver(codec *SlugCodec, directory CounselorDirectory, cfg config.SlugConfig) *DirectoryResolver {
	return &DirectoryResolver{
		codec:          codec,
		directory:      directory,
		batch:          NewBatchSlugger(codec, cfg.BatchWorkers),
		candidateLimit: cfg.ResolveCandidateLimit,
	}
}

// Resolve находит идентификатор консультанта по slug.
// Возможны три исхода: идентификатор, ErrSlugNotFound либо ошибка инфраструктуры
// (ErrInvalidSlugFormat, ErrDirectoryUnavailable, ErrEncodingFailure).
func (r *DirectoryResolver) Resolve(ctx context.Context, slug model.Slug) (model.CounselorID, error) {
	if !IsValidFormat(string(slug)) {
		return "", ErrInvalidSlugFormat
	}

	candidates, err := r.directory.ListCounselorRefs(ctx, r.candidateLimit)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDirectoryUnavailable, err)
	}

	for _, candidate := range candidates {
		computed, err := r.codec.Encode(candidate.ID)
		if errors.Is(err, ErrEmptyIdentifier) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("failed to encode candidate %s: %w", candidate.ID, err)
		}

		if subtle.ConstantTimeCompare([]byte(computed), []byte(slug)) == 1 {
			return candidate.ID, nil
		}
	}

	return "", ErrSlugNotFound
}

// SlugFor возвращает канонический slug известного консультанта без обращения к справочнику
func (r *DirectoryResolver) SlugFor(id model.CounselorID) (model.Slug, error) {
	return r.codec.Encode(id)
}

// BatchSlugify вычисляет slug для уже полученного списка идентификаторов, сохраняя порядок
func (r *DirectoryResolver) BatchSlugify(ctx context.Context, ids []model.CounselorID) ([]model.SlugPair, error) {
	return r.batch.Slugify(ctx, ids)
}
