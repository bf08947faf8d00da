package resource

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadResolvesEnvironmentPlaceholders(t *testing.T) {
	t.Setenv("TODO_TEST_DB_HOST", "db.internal")

	require.NoError(t, Load([]byte(`
app:
  name: todo-api
  db:
    host: ${TODO_TEST_DB_HOST:localhost}
    port: ${TODO_TEST_DB_PORT:5432}
    password: ${TODO_TEST_DB_PASSWORD}
  stats:
    cache-ttl: ${TODO_TEST_STATS_TTL:5m}
  events:
    enabled: ${TODO_TEST_EVENTS:false}
  auth:
    url: http://${TODO_TEST_AUTH_HOST:localhost}:${TODO_TEST_AUTH_PORT:54321}
  sign-in:
    max-attempts: 5
`)))

	assert.Equal(t, "todo-api", GetString("app.name"))
	assert.Equal(t, "db.internal", GetString("app.db.host"))
	assert.Equal(t, 5432, GetInt("app.db.port"))
	assert.Equal(t, "", GetString("app.db.password"))
	assert.Equal(t, 5*time.Minute, GetDuration("app.stats.cache-ttl"))
	assert.False(t, GetBool("app.events.enabled"))
	assert.Equal(t, "http://localhost:54321", GetString("app.auth.url"))
	assert.Equal(t, 5, GetInt("app.sign-in.max-attempts"))
}

func TestResolveEnvVariable(t *testing.T) {
	t.Setenv("TODO_TEST_SET", "value")

	tests := []struct {
		in   string
		want string
	}{
		{in: "plain", want: "plain"},
		{in: "${TODO_TEST_SET:fallback}", want: "value"},
		{in: "${TODO_TEST_UNSET:fallback}", want: "fallback"},
		{in: "${TODO_TEST_UNSET}", want: ""},
		{in: "${TODO_TEST_UNSET:}", want: ""},
		{in: "prefix-${TODO_TEST_SET}-suffix", want: "prefix-value-suffix"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, resolveEnvVariable(tt.in))
		})
	}
}
