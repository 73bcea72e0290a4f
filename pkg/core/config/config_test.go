package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwerror "github.com/msto63/rawtime/foundation/core/error"
	mdwlog "github.com/msto63/rawtime/foundation/core/log"
	"github.com/msto63/rawtime/pkg/rawtime"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "log", cfg.Format.Layout)
	assert.Equal(t, 15, cfg.Rounding.Interval)
	assert.Equal(t, rawtime.RoundMath, cfg.RoundingPolicy())
	assert.Equal(t, "en", cfg.Locale().String())
	assert.NoError(t, cfg.Validate())
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "rawtime.toml", `
[log]
level = "debug"
format = "json"

[format]
layout = "display-date"
locale = "de-AT"
parse_layouts = ["raw", "business"]

[rounding]
interval = 5
policy = "ceiling"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, mdwlog.LevelDebug, cfg.LogLevel())
	assert.Equal(t, mdwlog.FormatJSON, cfg.LogFormat())
	assert.Equal(t, "display-date", cfg.FormatSpec().Layout)
	assert.Equal(t, "de-AT", cfg.Locale().String())
	assert.Equal(t, []string{"raw", "business"}, cfg.ParseRules().Layouts)
	assert.Equal(t, 5, cfg.Rounding.Interval)
	assert.Equal(t, rawtime.RoundCeiling, cfg.RoundingPolicy())
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "rawtime.yaml", `
log:
  level: warn
format:
  locale: fr
rounding:
  policy: floor
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, mdwlog.LevelWarn, cfg.LogLevel())
	assert.Equal(t, "text", cfg.Log.Format, "unset keys take defaults")
	assert.Equal(t, "fr", cfg.Locale().String())
	assert.Equal(t, rawtime.RoundFloor, cfg.RoundingPolicy())
	assert.Equal(t, 15, cfg.Rounding.Interval)
}

func TestLoadErrors(t *testing.T) {
	testCases := []struct {
		name     string
		file     string
		content  string
		wantCode mdwerror.Code
	}{
		{"unknown extension", "rawtime.ini", "level=info", mdwerror.CodeConfigError},
		{"malformed toml", "rawtime.toml", "[log\nlevel=", mdwerror.CodeInvalidConfig},
		{"unknown yaml key", "rawtime.yml", "log:\n  colour: red\n", mdwerror.CodeInvalidConfig},
		{"bad level", "rawtime.toml", "[log]\nlevel = \"loud\"\n", mdwerror.CodeInvalidConfig},
		{"bad policy", "rawtime.toml", "[rounding]\npolicy = \"banker\"\n", mdwerror.CodeInvalidConfig},
		{"bad interval", "rawtime.toml", "[rounding]\ninterval = 90\n", mdwerror.CodeInvalidConfig},
		{"bad locale", "rawtime.toml", "[format]\nlocale = \"not a tag!\"\n", mdwerror.CodeInvalidConfig},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.file, tt.content))
			require.Error(t, err)
			assert.True(t, mdwerror.HasCode(err, tt.wantCode), "got %v", err)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeConfigError))
}

func TestLoadFromEnv(t *testing.T) {
	path := writeFile(t, "custom.toml", "[rounding]\ninterval = 30\n")
	t.Setenv(EnvConfigPath, path)

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.Rounding.Interval)
}

func TestLoadFromEnvWithoutFile(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	t.Setenv("HOME", t.TempDir())
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
