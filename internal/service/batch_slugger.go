package service

import (
	"context"
	"fmt"

	"github.com/avc-dev/counselor-profiles/internal/model"
	"golang.org/x/sync/errgroup"
)

// BatchSlugger вычисляет slug для списка идентификаторов несколькими воркерами.
// Каждый воркер пишет в свой диапазон индексов, поэтому порядок входа сохраняется.
type BatchSlugger struct {
	codec   *SlugCodec
	workers int
}

// NewBatchSlugger создает BatchSlugger с заданным числом воркеров
func NewBatchSlugger(codec *SlugCodec, workers int) *BatchSlugger {
	if workers <= 0 {
		workers = 1
	}
	return &BatchSlugger{
		codec:   codec,
		workers: workers,
	}
}

// Slugify возвращает ровно одну пару на каждый входной идентификатор, без дедупликации
func (b *BatchSlugger) Slugify(ctx context.Context, ids []model.CounselorID) ([]model.SlugPair, error) {
	pairs := make([]model.SlugPair, len(ids))
	if len(ids) == 0 {
		return pairs, nil
	}

	workers := min(b.workers, len(ids))
	chunk := (len(ids) + workers - 1) / workers

	g, gctx := errgroup.WithContext(ctx)
	for start := 0; start < len(ids); start += chunk {
		end := min(start+chunk, len(ids))

		g.Go(func() error {
			for i := start; i < end; i++ {
				if err := gctx.Err(); err != nil {
					return err
				}

				slug, err := b.codec.Encode(ids[i])
				if err != nil {
					return fmt.Errorf("identifier at index %d: %w", i, err)
				}
				pairs[i] = model.SlugPair{ID: ids[i], Slug: slug}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return pairs, nil
}
