package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Korupama/euit-datatools/pkg/model"
)

// unsetEnv clears key for the duration of the test
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{
		"EXPAND_SOURCE", "EXPAND_OUTPUT", "EXPAND_ID_START", "EXPAND_ID_END", "EXPAND_SEED",
		"EXPAND_DELIMITER", "REGULATIONS_DOCUMENTS_DIR", "REGULATIONS_TABLE", "LOG_FORMAT",
	} {
		unsetEnv(t, key)
	}

	cfg, err := LoadConfig("", false)
	require.NoError(t, err)

	assert.Equal(t, DefaultExpandSource, cfg.Expand.SourcePath)
	assert.Equal(t, model.IDRange{Start: 23520542, End: 23520589}, cfg.Expand.IDs)
	assert.Equal(t, 48, cfg.Expand.IDs.Len())
	assert.Equal(t, int64(12345), cfg.Expand.Seed)
	assert.Equal(t, ',', cfg.Expand.Delimiter)
	assert.Equal(t, 5.0, cfg.Expand.ScoreMin)
	assert.Equal(t, 10.0, cfg.Expand.ScoreMax)
	assert.Equal(t, 0.5, cfg.Expand.ScoreStep)
	assert.Equal(t, DefaultDocumentsDir, cfg.Regulations.DocumentsDir)
	assert.Equal(t, "van_ban", cfg.Regulations.Table)
	assert.Equal(t, "console", cfg.LogFormat)
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("EXPAND_SEED", "42")
	t.Setenv("EXPAND_ID_START", "100")
	t.Setenv("EXPAND_ID_END", "109")
	t.Setenv("EXPAND_DELIMITER", "tab")
	t.Setenv("REGULATIONS_DOCUMENTS_DIR", "/srv/documents")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := LoadConfig("", false)
	require.NoError(t, err)
	assert.Equal(t, int64(42), cfg.Expand.Seed)
	assert.Equal(t, 10, cfg.Expand.IDs.Len())
	assert.Equal(t, '\t', cfg.Expand.Delimiter)
	assert.Equal(t, "/srv/documents", cfg.Regulations.DocumentsDir)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadConfigEnvFile(t *testing.T) {
	unsetEnv(t, "EXPAND_SEED")
	unsetEnv(t, "REGULATIONS_TABLE")
	t.Setenv("REGULATIONS_EXTENSION", ".PDF")

	path := filepath.Join(t.TempDir(), ".env")
	content := "EXPAND_SEED=7\nREGULATIONS_TABLE=public.van_ban\nREGULATIONS_EXTENSION=.doc\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path, true)
	require.NoError(t, err)
	assert.Equal(t, int64(7), cfg.Expand.Seed)
	assert.Equal(t, "public.van_ban", cfg.Regulations.Table)
	// The environment wins over the file
	assert.Equal(t, ".PDF", cfg.Regulations.Extension)
}

func TestLoadConfigMissingEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.env")

	_, err := LoadConfig(path, false)
	assert.NoError(t, err)

	_, err = LoadConfig(path, true)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), path)
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	t.Run("delimiter", func(t *testing.T) {
		t.Setenv("EXPAND_DELIMITER", ";;")
		_, err := LoadConfig("", false)
		assert.Error(t, err)
	})
	t.Run("id range", func(t *testing.T) {
		t.Setenv("EXPAND_ID_START", "10")
		t.Setenv("EXPAND_ID_END", "9")
		_, err := LoadConfig("", false)
		assert.Error(t, err)
	})
	t.Run("log format", func(t *testing.T) {
		t.Setenv("LOG_FORMAT", "xml")
		_, err := LoadConfig("", false)
		assert.Error(t, err)
	})
}

func TestExpandConfigValidate(t *testing.T) {
	cfg := DefaultExpandConfig()
	require.NoError(t, cfg.Validate())

	bad := *cfg
	bad.ScoreStep = 0
	assert.Error(t, bad.Validate())

	bad = *cfg
	bad.ScoreMin, bad.ScoreMax = 10, 5
	assert.Error(t, bad.Validate())

	bad = *cfg
	bad.Delimiter = '"'
	assert.Error(t, bad.Validate())

	bad = *cfg
	bad.OutputPath = ""
	assert.Error(t, bad.Validate())
}

func TestRegulationsConfigValidate(t *testing.T) {
	cfg := DefaultRegulationsConfig()
	require.NoError(t, cfg.Validate())

	bad := *cfg
	bad.Extension = ""
	assert.Error(t, bad.Validate())

	bad = *cfg
	bad.DateColumn = ""
	assert.Error(t, bad.Validate())
}

func TestParseDelimiter(t *testing.T) {
	for in, want := range map[string]rune{",": ',', ";": ';', `\t`: '\t', "tab": '\t', "|": '|'} {
		got, err := parseDelimiter(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := parseDelimiter("")
	assert.Error(t, err)
}
