package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/avc-dev/counselor-profiles/internal/config"
	"github.com/avc-dev/counselor-profiles/internal/mocks"
	"github.com/avc-dev/counselor-profiles/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testSlugConfig() config.SlugConfig {
	return config.SlugConfig{
		ResolveCandidateLimit: config.DefaultResolveCandidateLimit,
		BatchLimit:            config.DefaultBatchSlugLimit,
		BatchWorkers:          config.DefaultBatchWorkers,
	}
}

func seedCounselors() []model.CounselorRef {
	return []model.CounselorRef{
		{ID: "067e6162-3b6f-4ae2-a171-2470b63dff00", Name: "김지훈"},
		{ID: sampleCounselorID, Name: "홍길동"},
		{ID: "f47ac10b-58cc-4372-a567-0e02b2c3d479", Name: "박민수"},
	}
}

func TestDirectoryResolver_Resolve_RoundTrip(t *testing.T) {
	for _, counselor := range seedCounselors() {
		t.Run(counselor.Name, func(t *testing.T) {
			// Arrange
			directory := mocks.NewMockCounselorDirectory(t)
			directory.EXPECT().
				ListCounselorRefs(mock.Anything, config.DefaultResolveCandidateLimit).
				Return(seedCounselors(), nil).
				Once()

			resolver := NewDirectoryResolver(NewSlugCodec(config.DefaultSecretKey), directory, testSlugConfig())

			slug, err := resolver.SlugFor(counselor.ID)
			require.NoError(t, err)

			// Act
			id, err := resolver.Resolve(context.Background(), slug)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, counselor.ID, id)
		})
	}
}

func TestDirectoryResolver_Resolve_ConformanceSlug(t *testing.T) {
	directory := mocks.NewMockCounselorDirectory(t)
	directory.EXPECT().
		ListCounselorRefs(mock.Anything, mock.Anything).
		Return(seedCounselors(), nil).
		Once()

	resolver := NewDirectoryResolver(NewSlugCodec(config.DefaultSecretKey), directory, testSlugConfig())

	id, err := resolver.Resolve(context.Background(), "1RSSdM2mtIvPZGRy")

	require.NoError(t, err)
	assert.Equal(t, sampleCounselorID, id)
}

func TestDirectoryResolver_Resolve_NotFound(t *testing.T) {
	directory := mocks.NewMockCounselorDirectory(t)
	directory.EXPECT().
		ListCounselorRefs(mock.Anything, config.DefaultResolveCandidateLimit).
		Return(seedCounselors(), nil).
		Once()

	resolver := NewDirectoryResolver(NewSlugCodec(config.DefaultSecretKey), directory, testSlugConfig())

	id, err := resolver.Resolve(context.Background(), "AAAAAAAAAAAAAAAA")

	assert.ErrorIs(t, err, ErrSlugNotFound)
	assert.NotErrorIs(t, err, ErrDirectoryUnavailable)
	assert.Empty(t, id)
}

func TestDirectoryResolver_Resolve_EmptyDirectory(t *testing.T) {
	directory := mocks.NewMockCounselorDirectory(t)
	directory.EXPECT().
		ListCounselorRefs(mock.Anything, mock.Anything).
		Return(nil, nil).
		Once()

	resolver := NewDirectoryResolver(NewSlugCodec(config.DefaultSecretKey), directory, testSlugConfig())

	_, err := resolver.Resolve(context.Background(), "1RSSdM2mtIvPZGRy")

	assert.ErrorIs(t, err, ErrSlugNotFound)
}

func TestDirectoryResolver_Resolve_InvalidFormat(t *testing.T) {
	tests := []struct {
		name string
		slug model.Slug
	}{
		{name: "empty", slug: ""},
		{name: "too short", slug: "1RSSdM2mtIvPZGR"},
		{name: "too long", slug: "1RSSdM2mtIvPZGRyy"},
		{name: "name-prefixed legacy format", slug: "홍길동-1RSSdM2mtIvP"},
		{name: "forbidden character", slug: "1RSSdM2mtIvPZG.y"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Справочник не должен вызываться
			directory := mocks.NewMockCounselorDirectory(t)
			resolver := NewDirectoryResolver(NewSlugCodec(config.DefaultSecretKey), directory, testSlugConfig())

			_, err := resolver.Resolve(context.Background(), tt.slug)

			assert.ErrorIs(t, err, ErrInvalidSlugFormat)
			assert.NotErrorIs(t, err, ErrSlugNotFound)
		})
	}
}

func TestDirectoryResolver_Resolve_DirectoryUnavailable(t *testing.T) {
	directory := mocks.NewMockCounselorDirectory(t)
	cause := errors.New("connection refused")
	directory.EXPECT().
		ListCounselorRefs(mock.Anything, mock.Anything).
		Return(nil, cause).
		Once()

	resolver := NewDirectoryResolver(NewSlugCodec(config.DefaultSecretKey), directory, testSlugConfig())

	_, err := resolver.Resolve(context.Background(), "1RSSdM2mtIvPZGRy")

	assert.ErrorIs(t, err, ErrDirectoryUnavailable)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrSlugNotFound)
}

func TestDirectoryResolver_Resolve_PassesContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	directory := mocks.NewMockCounselorDirectory(t)
	directory.EXPECT().
		ListCounselorRefs(ctx, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ int) ([]model.CounselorRef, error) {
			return nil, ctx.Err()
		}).
		Once()

	resolver := NewDirectoryResolver(NewSlugCodec(config.DefaultSecretKey), directory, testSlugConfig())

	_, err := resolver.Resolve(ctx, "1RSSdM2mtIvPZGRy")

	assert.ErrorIs(t, err, ErrDirectoryUnavailable)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDirectoryResolver_Resolve_UsesConfiguredLimit(t *testing.T) {
	cfg := testSlugConfig()
	cfg.ResolveCandidateLimit = 2

	directory := mocks.NewMockCounselorDirectory(t)
	directory.EXPECT().
		ListCounselorRefs(mock.Anything, 2).
		Return(seedCounselors()[:2], nil).
		Once()

	resolver := NewDirectoryResolver(NewSlugCodec(config.DefaultSecretKey), directory, cfg)

	// Третий консультант за пределами лимита перебора
	slug, err := resolver.SlugFor("f47ac10b-58cc-4372-a567-0e02b2c3d479")
	require.NoError(t, err)

	_, err = resolver.Resolve(context.Background(), slug)

	assert.ErrorIs(t, err, ErrSlugNotFound)
}

func TestDirectoryResolver_Resolve_SkipsEmptyCandidates(t *testing.T) {
	directory := mocks.NewMockCounselorDirectory(t)
	directory.EXPECT().
		ListCounselorRefs(mock.Anything, mock.Anything).
		Return(append([]model.CounselorRef{{ID: "", Name: "broken"}}, seedCounselors()...), nil).
		Once()

	resolver := NewDirectoryResolver(NewSlugCodec(config.DefaultSecretKey), directory, testSlugConfig())

	id, err := resolver.Resolve(context.Background(), "1RSSdM2mtIvPZGRy")

	require.NoError(t, err)
	assert.Equal(t, sampleCounselorID, id)
}

func TestDirectoryResolver_Resolve_DifferentKeyDoesNotMatch(t *testing.T) {
	directory := mocks.NewMockCounselorDirectory(t)
	directory.EXPECT().
		ListCounselorRefs(mock.Anything, mock.Anything).
		Return(seedCounselors(), nil).
		Once()

	resolver := NewDirectoryResolver(NewSlugCodec("rotated-secret-key-with-at-least-32-chars"), directory, testSlugConfig())

	// slug выдан со старым ключом
	_, err := resolver.Resolve(context.Background(), "1RSSdM2mtIvPZGRy")

	assert.ErrorIs(t, err, ErrSlugNotFound)
}

func TestDirectoryResolver_Resolve_Concurrent(t *testing.T) {
	directory := mocks.NewMockCounselorDirectory(t)
	directory.EXPECT().
		ListCounselorRefs(mock.Anything, mock.Anything).
		Return(seedCounselors(), nil)

	resolver := NewDirectoryResolver(NewSlugCodec(config.DefaultSecretKey), directory, testSlugConfig())

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		counselor := seedCounselors()[i%3]
		wg.Add(1)
		go func() {
			defer wg.Done()

			slug, err := resolver.SlugFor(counselor.ID)
			assert.NoError(t, err)

			id, err := resolver.Resolve(context.Background(), slug)
			assert.NoError(t, err)
			assert.Equal(t, counselor.ID, id)
		}()
	}
	wg.Wait()
}

func TestDirectoryResolver_SlugFor(t *testing.T) {
	resolver := NewDirectoryResolver(NewSlugCodec(config.DefaultSecretKey), mocks.NewMockCounselorDirectory(t), testSlugConfig())

	slug, err := resolver.SlugFor(sampleCounselorID)
	require.NoError(t, err)
	assert.Equal(t, model.Slug("1RSSdM2mtIvPZGRy"), slug)

	_, err = resolver.SlugFor("")
	assert.ErrorIs(t, err, ErrEmptyIdentifier)
}

func TestDirectoryResolver_BatchSlugify(t *testing.T) {
	// Справочник не используется пакетной генерацией
	resolver := NewDirectoryResolver(NewSlugCodec(config.DefaultSecretKey), mocks.NewMockCounselorDirectory(t), testSlugConfig())

	ids := []model.CounselorID{
		"f47ac10b-58cc-4372-a567-0e02b2c3d479",
		sampleCounselorID,
		"067e6162-3b6f-4ae2-a171-2470b63dff00",
	}

	pairs, err := resolver.BatchSlugify(context.Background(), ids)

	require.NoError(t, err)
	assert.Equal(t, []model.SlugPair{
		{ID: "f47ac10b-58cc-4372-a567-0e02b2c3d479", Slug: "4o8syF2GQR1kK5C1"},
		{ID: sampleCounselorID, Slug: "1RSSdM2mtIvPZGRy"},
		{ID: "067e6162-3b6f-4ae2-a171-2470b63dff00", Slug: "myXw4S5CVdh9C67o"},
	}, pairs)
}
