package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc-dev/counselor-profiles/internal/model"
	"github.com/avc-dev/counselor-profiles/internal/service"
)

// SampleCounselorID используется самопроверкой, если справочник пуст
const SampleCounselorID model.CounselorID = "13c8bb1e-f7d4-4823-8185-a36b951f27ed"

// SlugSelfCheck проверяет ключ, детерминированность кодирования и разрешение slug первого консультанта
func (u *ProfileUsecase) SlugSelfCheck(ctx context.Context) (model.SlugCheckReport, error) {
	report := model.SlugCheckReport{
		KeyValid: service.ValidateKey(u.cfg, u.logger),
		SampleID: SampleCounselorID,
	}

	refs, err := u.repo.ListCounselorRefs(ctx, 1)
	if err != nil {
		return model.SlugCheckReport{}, fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}
	if len(refs) > 0 {
		report.SampleID = refs[0].ID
	}

	first, err := u.resolver.SlugFor(report.SampleID)
	if err != nil {
		return model.SlugCheckReport{}, fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}
	second, err := u.resolver.SlugFor(report.SampleID)
	if err != nil {
		return model.SlugCheckReport{}, fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}

	report.SampleSlug = first
	report.Deterministic = first == second

	if len(refs) == 0 {
		return report, nil
	}

	// Отрицательный результат проверки допустим только при ErrProfileNotFound, сбой справочника пробрасывается
	resolved, err := u.ResolveProfileID(ctx, first.String())
	if err != nil && !errors.Is(err, ErrProfileNotFound) {
		return model.SlugCheckReport{}, fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}
	roundTrip := err == nil && resolved == report.SampleID
	report.RoundTrip = &roundTrip

	return report, nil
}
