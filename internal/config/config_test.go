package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvIntParsesPositiveValues(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{"positive", "42", 42},
		{"zero falls back", "0", 100},
		{"negative falls back", "-5", 100},
		{"garbage falls back", "abc", 100},
		{"empty falls back", "", 100},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("RATE_LIMIT_MAX", tc.value)
			assert.Equal(t, tc.want, getEnvInt("RATE_LIMIT_MAX", 100))
		})
	}
}

func TestGetEnvIntUnsetUsesFallback(t *testing.T) {
	assert.Equal(t, 100, getEnvInt("RATE_LIMIT_MAX_UNSET_KEY", 100))
}
