package env

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv_LoadedFileWinsOverProcess(t *testing.T) {
	t.Setenv("GRAPHQL_ENDPOINT", "http://process")
	Env = map[string]string{"GRAPHQL_ENDPOINT": "http://file"}
	t.Cleanup(func() { Env = nil })

	assert.Equal(t, "http://file", GetEnv("GRAPHQL_ENDPOINT", "def"))

	Env = nil
	assert.Equal(t, "http://process", GetEnv("GRAPHQL_ENDPOINT", "def"))
	assert.Equal(t, "def", GetEnv("STORE2070_UNSET_KEY", "def"))
}

func TestGetDuration(t *testing.T) {
	tests := []struct {
		raw  string
		want time.Duration
	}{
		{"", 10 * time.Second},
		{"3s", 3 * time.Second},
		{"1m", time.Minute},
		{"15", 15 * time.Second},
		{"soon", 10 * time.Second},
		{"-5s", 10 * time.Second},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Setenv("AUTH_TIMEOUT", tt.raw)
			assert.Equal(t, tt.want, GetDuration("AUTH_TIMEOUT", 10*time.Second))
		})
	}
}

func TestIsDev(t *testing.T) {
	t.Setenv("APP_ENV", "dev")
	assert.True(t, IsDev())
	t.Setenv("APP_ENV", "prod")
	assert.False(t, IsDev())
}
