package config_test

import (
	"os"
	"path/filepath"
	"spacescope/internal/config"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_envOnlyWhenFileMissing(t *testing.T) {
	t.Setenv("UPSTREAM_TIMEOUT", "3s")
	t.Setenv("GEMINI_API_KEY", "from-env")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)
	require.Equal(t, 3*time.Second, cfg.Upstream.Timeout)
	require.Equal(t, "from-env", cfg.Assistant.APIKey)
	require.Equal(t, "DEMO_KEY", cfg.Upstream.NASAAPIKey)
	require.Equal(t, ":8000", cfg.HTTP.Addr)
	require.Equal(t, 3, cfg.RAG.TopK)
	require.Equal(t, []string{"*"}, cfg.HTTP.AllowedOrigins)
}

func TestLoad_fileWithDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
environment: production
http:
  addr: ":9090"
upstream:
  timeout: 2s
  issURL: http://iss.local/now.json
rag:
  dir: /srv/rag
worker:
  enabled: false
`), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, ":9090", cfg.HTTP.Addr)
	require.Equal(t, 2*time.Second, cfg.Upstream.Timeout)
	require.Equal(t, "http://iss.local/now.json", cfg.Upstream.ISSURL)
	require.Equal(t, "/srv/rag", cfg.RAG.Dir)
	require.False(t, cfg.Worker.Enabled)
	require.Equal(t, 5*time.Minute, cfg.Worker.RefreshInterval)
	require.Equal(t, int64(4194304), cfg.Upstream.MaxBodyBytes)
}

func TestLoad_invalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("http: [\n"), 0o600))

	_, err := config.Load(path)
	require.Error(t, err)
}
