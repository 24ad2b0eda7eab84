package config

import (
	"fmt"
	"strings"
)

// URLPrefix представляет базовый URL, из которого собираются короткие ссылки.
// Хранится нормализованным, с одним завершающим слэшем.
type URLPrefix string

func (p URLPrefix) String() string {
	return string(p)
}

func (p *URLPrefix) Set(value string) error {
	if !strings.HasPrefix(value, "http") {
		return fmt.Errorf("invalid URL prefix format: %s", value)
	}

	value = strings.TrimSuffix(value, "/") + "/"

	*p = URLPrefix(value)

	return nil
}

func (p *URLPrefix) UnmarshalText(text []byte) error {
	return p.Set(string(text))
}
