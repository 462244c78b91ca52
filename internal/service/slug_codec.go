package service

import (
	"crypto/sha256"
	"encoding/base64"
	"fmt"

	"github.com/avc-dev/counselor-profiles/internal/model"
)

const (
	// SlugLength длина slug в символах
	SlugLength = 16
	// SlugAlphabet допустимые символы slug (URL-safe Base64)
	SlugAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"
)

// SlugCodec детерминированно и необратимо превращает идентификатор консультанта в slug.
// Не хранит изменяемого состояния и безопасен для конкурентного использования.
type SlugCodec struct {
	secretKey string
}

// NewSlugCodec создает кодек с заданным ключом
func NewSlugCodec(secretKey string) *SlugCodec {
	return &SlugCodec{secretKey: secretKey}
}

// Encode вычисляет slug: SHA-256 от "key:id", URL-safe Base64 без паддинга, первые 16 символов.
// Идентификатор не обязан быть UUID.
func (c *SlugCodec) Encode(id model.CounselorID) (model.Slug, error) {
	if id == "" {
		return "", ErrEmptyIdentifier
	}

	h := sha256.New()
	if _, err := h.Write([]byte(c.secretKey + ":" + string(id))); err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncodingFailure, err)
	}

	encoded := base64.RawURLEncoding.EncodeToString(h.Sum(nil))

	return model.Slug(encoded[:SlugLength]), nil
}

// IsValidFormat проверяет только синтаксис slug, без обращения к справочнику
func IsValidFormat(candidate string) bool {
	if len(candidate) != SlugLength {
		return false
	}

	for i := 0; i < len(candidate); i++ {
		if !isSlugByte(candidate[i]) {
			return false
		}
	}

	return true
}

func isSlugByte(b byte) bool {
	switch {
	case b >= 'A' && b <= 'Z', b >= 'a' && b <= 'z', b >= '0' && b <= '9':
		return true
	case b == '-' || b == '_':
		return true
	}
	return false
}
