package service

import (
	"github.com/avc-dev/counselor-profiles/internal/config"
	"go.uber.org/zap"
)

// ValidateKey проверяет ключ slug при старте: задан ли он явно и хватает ли длины.
// Проблемы только логируются, решение об остановке принимает вызывающий код.
func ValidateKey(cfg *config.Config, logger *zap.Logger) bool {
	if !cfg.SecretKeyConfigured || cfg.SecretKey.IsDefault() {
		logger.Warn("PROFILE_ENCRYPT_KEY not set, using default key (not secure for production)")
		return false
	}

	if cfg.SecretKey.Len() < config.MinSecretKeyLength {
		logger.Error("PROFILE_ENCRYPT_KEY is too short",
			zap.Int("length", cfg.SecretKey.Len()),
			zap.Int("min_length", config.MinSecretKeyLength),
		)
		return false
	}

	return true
}
