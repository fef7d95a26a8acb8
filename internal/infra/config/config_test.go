package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	require.NoError(t, defaultConfig().Validate())
}

func TestLoadFromFileThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
http:
  address: ":9090"
faq:
  path: "corpus/faqs.csv"
  similarityThreshold: 0.5
assistant:
  conversationTtl: 10m
`), 0o600))

	t.Setenv("CONFIG_PATH", path)
	t.Setenv("FAQ_FUZZY_THRESHOLD", "0.8")
	t.Setenv("HTTP_ALLOWED_ORIGINS", "https://hr.example.com, https://demo.example.com")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":9090", cfg.HTTP.Address)
	require.Equal(t, "corpus/faqs.csv", cfg.FAQ.Path)
	require.Equal(t, 0.5, cfg.FAQ.SimilarityThreshold)
	require.Equal(t, 0.8, cfg.FAQ.FuzzyThreshold)
	require.Equal(t, 10*time.Minute, cfg.Assistant.ConversationTTL)
	require.Equal(t, []string{"https://hr.example.com", "https://demo.example.com"}, cfg.HTTP.AllowedOrigins)
	require.Equal(t, SourceFile, cfg.Employees.Source)
}

func TestLoadRejectsBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("http: ["), 0o600))
	t.Setenv("CONFIG_PATH", path)

	_, err := Load()
	require.ErrorContains(t, err, "parse config file")
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		err    string
	}{
		{name: "unknown faq source", mutate: func(c *Config) { c.FAQ.Source = "ftp" }, err: "faq.source"},
		{name: "postgres without dsn", mutate: func(c *Config) { c.FAQ.Source = SourcePostgres }, err: "postgres.dsn"},
		{name: "object without bucket", mutate: func(c *Config) { c.FAQ.Source = SourceObject; c.FAQ.ObjectStore.Endpoint = "s3.local" }, err: "objectStore"},
		{name: "watch on postgres", mutate: func(c *Config) {
			c.FAQ.Source = SourcePostgres
			c.Postgres.DSN = "postgres://localhost/hr"
			c.FAQ.Watch = true
		}, err: "faq.watch"},
		{name: "threshold above one", mutate: func(c *Config) { c.FAQ.SimilarityThreshold = 1.5 }, err: "similarityThreshold"},
		{name: "redis without addr", mutate: func(c *Config) { c.Redis.Enabled = true }, err: "redis.addr"},
		{name: "rate limit burst", mutate: func(c *Config) { c.HTTP.RateLimit.Burst = 0 }, err: "burst"},
	}
	for _, tc := range cases {
		cfg := defaultConfig()
		tc.mutate(cfg)
		require.ErrorContains(t, cfg.Validate(), tc.err, tc.name)
	}
}
