package config

import (
	"testing"
	"time"

	"github.com/tj/assert"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, key := range []string{
		"OPENWEATHER_API_KEY", "OPENWEATHER_BASE_URL", "PORT",
		"HTTP_CLIENT_TIMEOUT", "STATIC_DIR", "CORS_ORIGIN", "LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}

	cfg, err := FromEnv()
	assert.Nil(t, err)
	assert.Equal(t, DemoAPIKey, cfg.OpenWeatherAPIKey)
	assert.Equal(t, DefaultBaseURL, cfg.OpenWeatherBaseURL)
	assert.Equal(t, "10000", cfg.Port)
	assert.Equal(t, 10*time.Second, cfg.HTTPClientTimeout)
	assert.Equal(t, "static", cfg.StaticDir)
	assert.Equal(t, "*", cfg.CORSOrigin)
	assert.True(t, cfg.DemoMode())
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("OPENWEATHER_API_KEY", "secret")
	t.Setenv("OPENWEATHER_BASE_URL", "http://localhost:9999/data/2.5")
	t.Setenv("PORT", "8080")
	t.Setenv("HTTP_CLIENT_TIMEOUT", "5s")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := FromEnv()
	assert.Nil(t, err)
	assert.Equal(t, "secret", cfg.OpenWeatherAPIKey)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 5*time.Second, cfg.HTTPClientTimeout)
	assert.False(t, cfg.DemoMode())
}

func TestFromEnvInvalid(t *testing.T) {
	cases := []struct {
		name  string
		key   string
		value string
	}{
		{name: "bad timeout", key: "HTTP_CLIENT_TIMEOUT", value: "soon"},
		{name: "negative timeout", key: "HTTP_CLIENT_TIMEOUT", value: "-1s"},
		{name: "bad base url", key: "OPENWEATHER_BASE_URL", value: "not a url"},
		{name: "bad port", key: "PORT", value: "http"},
		{name: "bad log level", key: "LOG_LEVEL", value: "chatty"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)

			_, err := FromEnv()
			assert.NotNil(t, err)
		})
	}
}

func TestDemoMode(t *testing.T) {
	assert.True(t, (&Config{}).DemoMode())
	assert.True(t, (&Config{OpenWeatherAPIKey: DemoAPIKey}).DemoMode())
	assert.False(t, (&Config{OpenWeatherAPIKey: "abc"}).DemoMode())
}
