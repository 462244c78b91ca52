package store

import (
	"context"
	"fmt"

	"github.com/avc-dev/counselor-profiles/internal/model"
)

// FileStore справочник, загружаемый из JSON файла при старте. Только для чтения.
type FileStore struct {
	store       *Store
	fileStorage *FileStorage
}

// NewFileStore создаёт FileStore и загружает данные из файла
func NewFileStore(filePath string) (*FileStore, error) {
	fs := &FileStore{
		store:       NewStore(),
		fileStorage: NewFileStorage(filePath),
	}

	counselors, err := fs.fileStorage.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load data from file: %w", err)
	}

	if err := fs.store.InitializeWith(counselors); err != nil {
		return nil, fmt.Errorf("failed to initialize directory from %s: %w", filePath, err)
	}

	return fs, nil
}

func (fs *FileStore) GetCounselorByID(ctx context.Context, id model.CounselorID) (model.Counselor, error) {
	return fs.store.GetCounselorByID(ctx, id)
}

func (fs *FileStore) ListCounselorRefs(ctx context.Context, limit int) ([]model.CounselorRef, error) {
	return fs.store.ListCounselorRefs(ctx, limit)
}

func (fs *FileStore) Ping(ctx context.Context) error {
	return fs.store.Ping(ctx)
}

// Len возвращает число загруженных записей
func (fs *FileStore) Len() int {
	return fs.store.Len()
}
