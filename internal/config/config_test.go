package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()

	tmpFile, err := os.CreateTemp(t.TempDir(), "test_config_*.yaml")
	require.NoError(t, err)

	_, err = tmpFile.WriteString(content)
	require.NoError(t, err)
	require.NoError(t, tmpFile.Close())

	return tmpFile.Name()
}

func TestMustLoad_ValidConfig(t *testing.T) {
	configContent := `
env: test
http_server:
  addresshttp: ":8080"
  timeouthttp: 30s
  idle_timeout: 60s
storage:
  data_dir: "/tmp/lowmax-data"
quota:
  policy: rolling
  limit: 3
  window_days: 7
scoring:
  strategy: remote
  analyze_url: "http://localhost:8081/functions/v1/analyze-face"
  analyze_timeout: 45s
gateway:
  url: "https://ai.gateway.lovable.dev/v1/chat/completions"
  model: "google/gemini-2.5-flash"
  timeoutgw: 50s
redis_connection:
  addressredis: "localhost:6379"
  password: "redis_pass"
  db: 1
  max_retries: 3
  dial_timeout: 5s
  timeoutredis: 10s
`

	t.Setenv("CONFIG_PATH", writeTempConfig(t, configContent))

	cfg := MustLoad()

	assert.Equal(t, "test", cfg.Env)
	assert.Equal(t, ":8080", cfg.AddressHTTP)
	assert.Equal(t, 30*time.Second, cfg.TimeoutHTTP)
	assert.Equal(t, 60*time.Second, cfg.IdleTimeout)
	assert.Equal(t, "/tmp/lowmax-data", cfg.Storage.DataDir)
	assert.Equal(t, "rolling", cfg.Quota.Policy)
	assert.Equal(t, 3, cfg.Quota.Limit)
	assert.Equal(t, 7, cfg.Quota.WindowDays)
	assert.Equal(t, 7*24*time.Hour, cfg.Quota.Window())
	assert.Equal(t, "remote", cfg.Scoring.Strategy)
	assert.Equal(t, "http://localhost:8081/functions/v1/analyze-face", cfg.Scoring.AnalyzeURL)
	assert.Equal(t, 45*time.Second, cfg.Scoring.AnalyzeTimeout)
	assert.Equal(t, "google/gemini-2.5-flash", cfg.Gateway.Model)
	assert.Equal(t, 50*time.Second, cfg.Gateway.TimeoutGW)
	assert.Equal(t, "localhost:6379", cfg.RedisConnection.AddressRedis)
	assert.Equal(t, "redis_pass", cfg.RedisConnection.Password)
	assert.Equal(t, 1, cfg.RedisConnection.DB)
}

func TestConfig_DefaultValues(t *testing.T) {
	// Минимальный конфиг: всё остальное должно получить значения по умолчанию.
	configContent := `
env: test
`

	t.Setenv("CONFIG_PATH", writeTempConfig(t, configContent))

	cfg := MustLoad()

	assert.Equal(t, "test", cfg.Env)
	assert.Equal(t, "localhost:8080", cfg.AddressHTTP)
	assert.Equal(t, 90*time.Second, cfg.TimeoutHTTP)
	assert.Equal(t, 60*time.Second, cfg.IdleTimeout)
	assert.Equal(t, "./data", cfg.Storage.DataDir)
	assert.Equal(t, "rolling", cfg.Quota.Policy)
	assert.Equal(t, 3, cfg.Quota.Limit)
	assert.Equal(t, 7, cfg.Quota.WindowDays)
	assert.Equal(t, "remote", cfg.Scoring.Strategy)
	assert.Equal(t, 60*time.Second, cfg.Scoring.AnalyzeTimeout)
	assert.Equal(t, "https://ai.gateway.lovable.dev/v1/chat/completions", cfg.Gateway.URL)
	assert.Equal(t, "google/gemini-2.5-flash", cfg.Gateway.Model)

	// Пустой адрес Redis отключает кеш.
	assert.Equal(t, "", cfg.RedisConnection.AddressRedis)
}

func TestMustLoad_EnvOverrides(t *testing.T) {
	configContent := `
env: test
`

	t.Setenv("CONFIG_PATH", writeTempConfig(t, configContent))
	t.Setenv("ANALYZE_FUNCTION_KEY", "function-secret")
	t.Setenv("GATEWAY_API_KEY", "gateway-secret")

	cfg := MustLoad()

	assert.Equal(t, "function-secret", cfg.Scoring.AnalyzeKey)
	assert.Equal(t, "function-secret", cfg.Gateway.ServeKey)
	assert.Equal(t, "gateway-secret", cfg.Gateway.APIKey)
}
