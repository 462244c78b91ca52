package service

import (
	"strings"
	"testing"

	"github.com/avc-dev/counselor-profiles/internal/config"
	"github.com/avc-dev/counselor-profiles/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCounselorID = model.CounselorID("13c8bb1e-f7d4-4823-8185-a36b951f27ed")

// TestSlugCodec_Encode_ConformanceVector фиксирует значение, совпадающее с эталонной реализацией
func TestSlugCodec_Encode_ConformanceVector(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		id       model.CounselorID
		expected model.Slug
	}{
		{
			name:     "default key and seed counselor",
			key:      config.DefaultSecretKey,
			id:       sampleCounselorID,
			expected: "1RSSdM2mtIvPZGRy",
		},
		{
			name:     "default key and second counselor",
			key:      config.DefaultSecretKey,
			id:       "067e6162-3b6f-4ae2-a171-2470b63dff00",
			expected: "myXw4S5CVdh9C67o",
		},
		{
			name:     "default key and third counselor",
			key:      config.DefaultSecretKey,
			id:       "f47ac10b-58cc-4372-a567-0e02b2c3d479",
			expected: "4o8syF2GQR1kK5C1",
		},
		{
			name:     "non-UUID identifier is hashed as is",
			key:      config.DefaultSecretKey,
			id:       "상담사",
			expected: "5yUikknC2IxufGca",
		},
		{
			name:     "another key",
			key:      "another-secret-key-with-32-chars-min!!",
			id:       sampleCounselorID,
			expected: "xhtzLl7T-h2DTyuS",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			codec := NewSlugCodec(tt.key)

			slug, err := codec.Encode(tt.id)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, slug)
		})
	}
}

func TestSlugCodec_Encode_Deterministic(t *testing.T) {
	codec := NewSlugCodec(config.DefaultSecretKey)

	first, err := codec.Encode(sampleCounselorID)
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		slug, err := codec.Encode(sampleCounselorID)
		require.NoError(t, err)
		assert.Equal(t, first, slug)
	}

	// Новый экземпляр с тем же ключом дает тот же результат
	other, err := NewSlugCodec(config.DefaultSecretKey).Encode(sampleCounselorID)
	require.NoError(t, err)
	assert.Equal(t, first, other)
}

func TestSlugCodec_Encode_LengthAndAlphabet(t *testing.T) {
	codec := NewSlugCodec(config.DefaultSecretKey)

	inputs := []model.CounselorID{
		sampleCounselorID,
		"a",
		"not-a-uuid",
		"홍길동",
		"with spaces and @ symbols.",
		model.CounselorID(strings.Repeat("x", 10000)),
		"\x00",
	}

	for _, input := range inputs {
		slug, err := codec.Encode(input)
		require.NoError(t, err)

		assert.Len(t, string(slug), SlugLength)
		for _, r := range string(slug) {
			assert.True(t, strings.ContainsRune(SlugAlphabet, r), "unexpected character %q in %s", r, slug)
		}
		assert.True(t, IsValidFormat(string(slug)))
	}
}

func TestSlugCodec_Encode_KeySensitivity(t *testing.T) {
	first, err := NewSlugCodec("first-secret-key-which-is-32-chars-long").Encode(sampleCounselorID)
	require.NoError(t, err)

	second, err := NewSlugCodec("second-secret-key-which-is-32-chars-lon").Encode(sampleCounselorID)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestSlugCodec_Encode_DistinctIdentifiers(t *testing.T) {
	codec := NewSlugCodec(config.DefaultSecretKey)

	first, err := codec.Encode("067e6162-3b6f-4ae2-a171-2470b63dff00")
	require.NoError(t, err)
	second, err := codec.Encode("f47ac10b-58cc-4372-a567-0e02b2c3d479")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestSlugCodec_Encode_EmptyIdentifier(t *testing.T) {
	codec := NewSlugCodec(config.DefaultSecretKey)

	slug, err := codec.Encode("")

	assert.ErrorIs(t, err, ErrEmptyIdentifier)
	assert.Empty(t, slug)
}

func TestIsValidFormat(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		valid     bool
	}{
		{name: "encoded slug", candidate: "1RSSdM2mtIvPZGRy", valid: true},
		{name: "all A", candidate: "AAAAAAAAAAAAAAAA", valid: true},
		{name: "dashes and underscores", candidate: "abc-DEF_123-xyz_", valid: true},
		{name: "empty", candidate: "", valid: false},
		{name: "15 characters", candidate: "AAAAAAAAAAAAAAA", valid: false},
		{name: "17 characters", candidate: "AAAAAAAAAAAAAAAAA", valid: false},
		{name: "contains space", candidate: "AAAAAAA AAAAAAAA", valid: false},
		{name: "contains at sign", candidate: "AAAAAAA@AAAAAAAA", valid: false},
		{name: "contains dot", candidate: "AAAAAAA.AAAAAAAA", valid: false},
		{name: "contains plus", candidate: "AAAAAAA+AAAAAAAA", valid: false},
		{name: "contains slash", candidate: "AAAAAAA/AAAAAAAA", valid: false},
		{name: "contains padding", candidate: "AAAAAAAAAAAAAAA=", valid: false},
		{name: "16 Hangul runes", candidate: strings.Repeat("가", 16), valid: false},
		{name: "non-ASCII with 16 bytes", candidate: "AAAAAAAAAAAAAA가"[:16], valid: false},
		{name: "non-ASCII rune among ASCII", candidate: "AAAAAAAAAAAAAAé", valid: false},
		{name: "trailing newline", candidate: "AAAAAAAAAAAAAAA\n", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidFormat(tt.candidate))
		})
	}
}
