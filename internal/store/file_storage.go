package store

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/avc-dev/counselor-profiles/internal/model"
)

// FileStorage читает справочник консультантов из JSON файла
type FileStorage struct {
	filePath string
}

// NewFileStorage создаёт новый FileStorage
func NewFileStorage(filePath string) *FileStorage {
	return &FileStorage{
		filePath: filePath,
	}
}

// Load загружает все записи из файла. Отсутствующий или пустой файл дает пустой справочник.
func (fs *FileStorage) Load() ([]model.Counselor, error) {
	data, err := os.ReadFile(fs.filePath)
	if os.IsNotExist(err) {
		return []model.Counselor{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	if len(data) == 0 {
		return []model.Counselor{}, nil
	}

	var counselors []model.Counselor
	if err := json.Unmarshal(data, &counselors); err != nil {
		return nil, fmt.Errorf("failed to unmarshal JSON: %w", err)
	}

	return counselors, nil
}

// Save сохраняет все записи в файл
func (fs *FileStorage) Save(counselors []model.Counselor) error {
	data, err := json.MarshalIndent(counselors, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if err := os.WriteFile(fs.filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}
