package resource

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProperties(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "application.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestInit(t *testing.T) {
	t.Cleanup(func() { _ = Init("does-not-exist.yml") })

	t.Run("resolves placeholders", func(t *testing.T) {
		t.Setenv("HABITAT_PORT", "9090")
		path := writeProperties(t, `
app:
  server:
    port: ${HABITAT_PORT:8080}
    context-path: ${HABITAT_CONTEXT:/habitat}
  redis:
    cache:
      rating-summaries:
        ttl: 30s
  queue:
    rating-events:
      enabled: true
`)
		require.NoError(t, Init(path))
		assert.Equal(t, "9090", GetString("app.server.port"))
		assert.Equal(t, "/habitat", GetString("app.server.context-path"))
		assert.Equal(t, 30*time.Second, GetDuration("app.redis.cache.rating-summaries.ttl"))
		assert.True(t, GetBool("app.queue.rating-events.enabled"))
		assert.Equal(t, "sqlc", GetString("app.db.driver"), "keys absent from the file keep their default")
	})

	t.Run("missing file keeps defaults", func(t *testing.T) {
		err := Init(filepath.Join(t.TempDir(), "missing.yml"))
		require.Error(t, err)
		assert.Equal(t, "8080", GetString("app.server.port"))
		assert.Equal(t, 3, GetInt("app.location.search.min-length"))
	})
}

func TestResolveEnvVariable(t *testing.T) {
	t.Setenv("HABITAT_HOST", "db")
	assert.Equal(t, "postgres://db:5432", resolveEnvVariable("postgres://${HABITAT_HOST:localhost}:${HABITAT_DB_PORT:5432}"))
	assert.Equal(t, "plain", resolveEnvVariable("plain"))
	assert.Equal(t, "", resolveEnvVariable("${HABITAT_UNSET_VARIABLE}"))
}
