package store

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/avc-dev/counselor-profiles/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCounselor(id, name string) model.Counselor {
	return model.Counselor{
		ID:   model.CounselorID(id),
		Name: name,
		Role: model.RoleCounselor,
	}
}

// TestNewStore проверяет создание нового хранилища
func TestNewStore(t *testing.T) {
	// Act
	store := NewStore()

	// Assert
	require.NotNil(t, store)
	assert.Equal(t, 0, store.Len(), "Expected empty store")
}

func TestStore_InitializeWith(t *testing.T) {
	tests := []struct {
		name      string
		existing  []model.Counselor
		counselor model.Counselor
		wantErr   error
		wantRole  string
	}{
		{
			name:      "new counselor",
			counselor: newCounselor("13c8bb1e-f7d4-4823-8185-a36b951f27ed", "김상담"),
			wantRole:  model.RoleCounselor,
		},
		{
			name:      "empty role defaults to counselor",
			counselor: model.Counselor{ID: "067e6162-3b6f-4ae2-a171-2470b63dff00", Name: "이상담"},
			wantRole:  model.RoleCounselor,
		},
		{
			name:      "empty id",
			counselor: model.Counselor{Name: "no id"},
			wantErr:   ErrInvalidCounselor,
		},
		{
			name:      "duplicate id",
			existing:  []model.Counselor{newCounselor("f47ac10b-58cc-4372-a567-0e02b2c3d479", "박상담")},
			counselor: newCounselor("f47ac10b-58cc-4372-a567-0e02b2c3d479", "other"),
			wantErr:   ErrAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			store := NewStore()
			require.NoError(t, store.InitializeWith(tt.existing))

			// Act
			err := store.InitializeWith([]model.Counselor{tt.counselor})

			// Assert
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			stored, err := store.GetCounselorByID(context.Background(), tt.counselor.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.wantRole, stored.Role)
			assert.Equal(t, tt.counselor.Name, stored.Name)
		})
	}
}

func TestStore_InitializeWith_IsAtomic(t *testing.T) {
	store := NewStore()
	require.NoError(t, store.InitializeWith([]model.Counselor{newCounselor("id-1", "first")}))

	err := store.InitializeWith([]model.Counselor{
		newCounselor("id-2", "second"),
		newCounselor("id-1", "duplicate of existing"),
	})

	assert.ErrorIs(t, err, ErrAlreadyExists)
	assert.Equal(t, 1, store.Len(), "Failed batch must not change the store")
}

func TestStore_InitializeWith_DuplicateInBatch(t *testing.T) {
	store := NewStore()

	err := store.InitializeWith([]model.Counselor{
		newCounselor("id-1", "a"),
		newCounselor("id-1", "b"),
	})

	assert.ErrorIs(t, err, ErrAlreadyExists)
	assert.Equal(t, 0, store.Len())
}

func TestStore_GetCounselorByID(t *testing.T) {
	store := NewStore()
	require.NoError(t, store.InitializeWith([]model.Counselor{
		newCounselor("id-1", "counselor"),
		{ID: "id-2", Name: "client", Role: "client"},
	}))

	tests := []struct {
		name    string
		id      model.CounselorID
		wantErr bool
	}{
		{name: "existing counselor", id: "id-1"},
		{name: "profile with another role", id: "id-2", wantErr: true},
		{name: "unknown id", id: "missing", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counselor, err := store.GetCounselorByID(context.Background(), tt.id)
			if tt.wantErr {
				assert.ErrorIs(t, err, model.ErrCounselorNotFound)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.id, counselor.ID)
		})
	}
}

func TestStore_ListCounselorRefs(t *testing.T) {
	store := NewStore()
	require.NoError(t, store.InitializeWith([]model.Counselor{
		newCounselor("id-c", "Bravo"),
		newCounselor("id-b", "Alpha"),
		newCounselor("id-a", "Bravo"),
		{ID: "id-admin", Name: "Admin", Role: "admin"},
	}))

	tests := []struct {
		name  string
		limit int
		want  []model.CounselorRef
	}{
		{
			name:  "no limit",
			limit: 0,
			want: []model.CounselorRef{
				{ID: "id-b", Name: "Alpha"},
				{ID: "id-a", Name: "Bravo"},
				{ID: "id-c", Name: "Bravo"},
			},
		},
		{
			name:  "limit truncates in stable order",
			limit: 2,
			want: []model.CounselorRef{
				{ID: "id-b", Name: "Alpha"},
				{ID: "id-a", Name: "Bravo"},
			},
		},
		{
			name:  "limit larger than directory",
			limit: 100,
			want: []model.CounselorRef{
				{ID: "id-b", Name: "Alpha"},
				{ID: "id-a", Name: "Bravo"},
				{ID: "id-c", Name: "Bravo"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			refs, err := store.ListCounselorRefs(context.Background(), tt.limit)

			require.NoError(t, err)
			assert.Equal(t, tt.want, refs)
		})
	}
}

func TestStore_ListCounselorRefs_CanceledContext(t *testing.T) {
	store := NewStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.ListCounselorRefs(ctx, 0)

	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, store.Ping(ctx), context.Canceled)
}

// TestStore_ConcurrentAccess проверяет потокобезопасность при одновременных записях и чтениях
func TestStore_ConcurrentAccess(t *testing.T) {
	store := NewStore()
	const goroutines = 50

	var wg sync.WaitGroup
	for i := range goroutines {
		wg.Add(2)
		go func() {
			defer wg.Done()
			counselor := newCounselor(fmt.Sprintf("id-%d", i), fmt.Sprintf("name-%d", i))
			assert.NoError(t, store.InitializeWith([]model.Counselor{counselor}))
		}()
		go func() {
			defer wg.Done()
			_, err := store.ListCounselorRefs(context.Background(), 10)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, goroutines, store.Len())
}
