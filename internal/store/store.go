package store

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/avc-dev/counselor-profiles/internal/model"
)

var (
	ErrAlreadyExists    = errors.New("counselor already exists")
	ErrInvalidCounselor = errors.New("invalid counselor")
)

// CounselorMap представляет справочник консультантов по идентификатору
type CounselorMap = map[model.CounselorID]model.Counselor

// Store in-memory справочник консультантов
type Store struct {
	counselors CounselorMap
	mutex      sync.RWMutex
}

func NewStore() *Store {
	return &Store{
		counselors: make(CounselorMap),
	}
}

func normalize(counselor model.Counselor) (model.Counselor, error) {
	if counselor.ID == "" {
		return counselor, fmt.Errorf("%w: empty profile id", ErrInvalidCounselor)
	}
	if counselor.Role == "" {
		counselor.Role = model.RoleCounselor
	}
	return counselor, nil
}

// InitializeWith добавляет набор консультантов в справочник.
// При ошибке в любой записи, включая совпадение с уже загруженным идентификатором, справочник не изменяется.
func (s *Store) InitializeWith(counselors []model.Counselor) error {
	batch := make(CounselorMap, len(counselors))
	for i, counselor := range counselors {
		normalized, err := normalize(counselor)
		if err != nil {
			return fmt.Errorf("entry %d: %w", i, err)
		}
		if _, exists := batch[normalized.ID]; exists {
			return fmt.Errorf("entry %d: counselor %s: %w", i, normalized.ID, ErrAlreadyExists)
		}
		batch[normalized.ID] = normalized
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	for id := range batch {
		if _, exists := s.counselors[id]; exists {
			return fmt.Errorf("counselor %s: %w", id, ErrAlreadyExists)
		}
	}
	for id, counselor := range batch {
		s.counselors[id] = counselor
	}

	return nil
}

// GetCounselorByID возвращает карточку консультанта
func (s *Store) GetCounselorByID(ctx context.Context, id model.CounselorID) (model.Counselor, error) {
	if err := ctx.Err(); err != nil {
		return model.Counselor{}, err
	}

	s.mutex.RLock()
	defer s.mutex.RUnlock()

	counselor, ok := s.counselors[id]
	if !ok || counselor.Role != model.RoleCounselor {
		return model.Counselor{}, fmt.Errorf("counselor %s: %w", id, model.ErrCounselorNotFound)
	}

	return counselor, nil
}

// ListCounselorRefs возвращает консультантов, упорядоченных по имени и идентификатору.
// limit <= 0 означает отсутствие ограничения.
func (s *Store) ListCounselorRefs(ctx context.Context, limit int) ([]model.CounselorRef, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mutex.RLock()
	refs := make([]model.CounselorRef, 0, len(s.counselors))
	for _, counselor := range s.counselors {
		if counselor.Role == model.RoleCounselor {
			refs = append(refs, counselor.Ref())
		}
	}
	s.mutex.RUnlock()

	slices.SortFunc(refs, func(a, b model.CounselorRef) int {
		return cmp.Or(cmp.Compare(a.Name, b.Name), cmp.Compare(a.ID, b.ID))
	})

	if limit > 0 && len(refs) > limit {
		refs = refs[:limit]
	}

	return refs, nil
}

// Ping всегда успешен для in-memory справочника
func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

// Len возвращает число записей в справочнике
func (s *Store) Len() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return len(s.counselors)
}
