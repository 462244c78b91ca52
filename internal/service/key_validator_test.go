package service

import (
	"testing"

	"github.com/avc-dev/counselor-profiles/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestValidateKey(t *testing.T) {
	tests := []struct {
		name          string
		key           config.SecretKey
		configured    bool
		expected      bool
		expectedLevel zapcore.Level
		expectLog     bool
	}{
		{
			name:          "key not configured",
			key:           config.DefaultSecretKey,
			configured:    false,
			expected:      false,
			expectedLevel: zapcore.WarnLevel,
			expectLog:     true,
		},
		{
			name:          "default key configured explicitly",
			key:           config.DefaultSecretKey,
			configured:    true,
			expected:      false,
			expectedLevel: zapcore.WarnLevel,
			expectLog:     true,
		},
		{
			name:          "key too short",
			key:           "short-key",
			configured:    true,
			expected:      false,
			expectedLevel: zapcore.ErrorLevel,
			expectLog:     true,
		},
		{
			name:          "31 characters",
			key:           "abcdefghijklmnopqrstuvwxyz01234",
			configured:    true,
			expected:      false,
			expectedLevel: zapcore.ErrorLevel,
			expectLog:     true,
		},
		{
			name:       "exactly 32 characters",
			key:        "abcdefghijklmnopqrstuvwxyz012345",
			configured: true,
			expected:   true,
		},
		{
			name:       "long key",
			key:        "production-secret-key-that-is-definitely-long-enough",
			configured: true,
			expected:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			core, logs := observer.New(zapcore.DebugLevel)
			logger := zap.New(core)

			cfg := config.NewDefaultConfig()
			cfg.SecretKey = tt.key
			cfg.SecretKeyConfigured = tt.configured

			// Act
			result := ValidateKey(cfg, logger)

			// Assert
			assert.Equal(t, tt.expected, result)
			if !tt.expectLog {
				assert.Equal(t, 0, logs.Len())
				return
			}
			require.Equal(t, 1, logs.Len())
			entry := logs.All()[0]
			assert.Equal(t, tt.expectedLevel, entry.Level)
			assert.Contains(t, entry.Message, "PROFILE_ENCRYPT_KEY")
		})
	}
}
