package config

import (
	"fmt"
	"net/url"
	"strings"
)

// URLPrefix базовый адрес, от которого строятся канонические ссылки на профили
type URLPrefix string

func (p URLPrefix) String() string {
	return string(p)
}

func (p *URLPrefix) Set(value string) error {
	parsed, err := url.Parse(value)
	if err != nil {
		return fmt.Errorf("invalid URL prefix %q: %w", value, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("invalid URL prefix format: %s", value)
	}
	if parsed.Host == "" {
		return fmt.Errorf("URL prefix without host: %s", value)
	}

	*p = URLPrefix(strings.TrimSuffix(value, "/"))

	return nil
}

func (p *URLPrefix) UnmarshalText(text []byte) error {
	return p.Set(string(text))
}
