package config

const (
	// DefaultSecretKey используется, если PROFILE_ENCRYPT_KEY не задан. Не для продакшена.
	DefaultSecretKey = "default-32-char-secret-key-change-me!"
	// MinSecretKeyLength минимальная допустимая длина ключа
	MinSecretKeyLength = 32
)

// SecretKey ключ, которым подписываются все slug профилей.
// Смена ключа делает недействительными все ранее выданные ссылки.
type SecretKey string

// Value возвращает сам ключ
func (k SecretKey) Value() string {
	return string(k)
}

// String маскирует ключ, чтобы он не попадал в логи
func (k SecretKey) String() string {
	if k == "" {
		return ""
	}
	return "********"
}

// IsDefault сообщает, что используется встроенный небезопасный ключ
func (k SecretKey) IsDefault() bool {
	return k == DefaultSecretKey
}

// Len длина ключа в символах
func (k SecretKey) Len() int {
	return len([]rune(string(k)))
}
