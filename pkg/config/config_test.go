package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "5001", cfg.API.Port)
	assert.Equal(t, "excel", cfg.Data.Source)
	assert.Equal(t, "data/customers.xlsx", cfg.Data.File)
	assert.Equal(t, "qwen-turbo", cfg.LLM.Model)
	assert.Equal(t, Duration(30*time.Second), cfg.LLM.Timeout)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.yaml")
	content := `
api:
  port: "8080"
data:
  source: excel
  file: testdata/customers.xlsx
llm:
  model: qwen-plus
  timeout: 10s
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.API.Port)
	assert.Equal(t, "testdata/customers.xlsx", cfg.Data.File)
	assert.Equal(t, "qwen-plus", cfg.LLM.Model)
	assert.Equal(t, Duration(10*time.Second), cfg.LLM.Timeout)

	// 未设置项取默认值
	assert.Equal(t, "disable", cfg.Data.Postgres.SSLMode)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "不存在.yaml"))
	assert.Error(t, err)
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DASHSCOPE_API_KEY", "sk-test")
	t.Setenv("DATA_FILE", "/tmp/data.xlsx")

	cfg := DefaultConfig()

	assert.Equal(t, "9090", cfg.API.Port)
	assert.Equal(t, "sk-test", cfg.LLM.APIKey)
	assert.Equal(t, "/tmp/data.xlsx", cfg.Data.File)
}
