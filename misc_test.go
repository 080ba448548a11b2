package dcmtree

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntFromEnv(t *testing.T) {
	testCases := []struct {
		input  string
		output int
	}{
		{input: "100", output: 100},
		{input: "-100", output: -100},
	}
	for _, testCase := range testCases {
		t.Setenv("DCMTREE_TEST", testCase.input)
		val, found := intFromEnv("DCMTREE_TEST")
		assert.True(t, found, "DCMTREE_TEST was not found in environment")
		assert.Equal(t, testCase.output, val)
	}
	t.Setenv("DCMTREE_TEST", "one hundred")
	_, found := intFromEnv("DCMTREE_TEST")
	assert.False(t, found)

	// unset environment variable then try to retrieve
	require.NoError(t, os.Unsetenv("DCMTREE_TEST"))
	_, found = intFromEnv("DCMTREE_TEST")
	assert.False(t, found, "DCMTREE_TEST was found after unsetting")
}

func TestIntFromEnvDefault(t *testing.T) {
	t.Setenv("DCMTREE_TEST", "")
	require.NoError(t, os.Unsetenv("DCMTREE_TEST"))
	assert.Equal(t, 9000, intFromEnvDefault("DCMTREE_TEST", 9000))
	t.Setenv("DCMTREE_TEST", "42")
	assert.Equal(t, 42, intFromEnvDefault("DCMTREE_TEST", 9000))
}

func TestBoolFromEnvDefault(t *testing.T) {
	t.Setenv("DCMTREE_TEST", "true")
	assert.True(t, boolFromEnvDefault("DCMTREE_TEST", false))
	t.Setenv("DCMTREE_TEST", "maybe")
	assert.False(t, boolFromEnvDefault("DCMTREE_TEST", false))
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("DCMTREE_OPENFILELIMIT", "8")
	t.Setenv("DCMTREE_STRICTMODE", "1")
	t.Setenv("DCMTREE_MAXDEPTH", "not a number")
	t.Setenv("DCMTREE_LOGLEVEL", "DEBUG")
	cfg := ConfigFromEnv()
	assert.Equal(t, 8, cfg.OpenFileLimit)
	assert.True(t, cfg.StrictMode)
	assert.Equal(t, DefaultMaxDepth, cfg.MaxDepth)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.NoError(t, cfg.Validate())
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()
	valid := Config{OpenFileLimit: 1, MaxDepth: 1, ReadBufferSize: minReadBufferSize, LogFormat: "json"}
	assert.NoError(t, valid.Validate())

	invalid := []func(c *Config){
		func(c *Config) { c.OpenFileLimit = 0 },
		func(c *Config) { c.MaxDepth = -1 },
		func(c *Config) { c.ReadBufferSize = minReadBufferSize - 1 },
		func(c *Config) { c.LogFormat = "xml" },
	}
	for i, mutate := range invalid {
		cfg := valid
		mutate(&cfg)
		assert.Error(t, cfg.Validate(), "case %d", i)
		assert.Error(t, OverrideConfig(cfg), "case %d", i)
	}
}

func TestLoadConfigFile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	base := Config{OpenFileLimit: 4, MaxDepth: DefaultMaxDepth, ReadBufferSize: DefaultReadBufferSize, LogLevel: "info", LogFormat: "console"}

	path := filepath.Join(dir, "dcmtree.toml")
	require.NoError(t, os.WriteFile(path, []byte("max_depth = 8\nstrict_mode = true\nlog_format = \"json\"\n"), 0o600))
	cfg, err := LoadConfigFile(path, base)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.MaxDepth)
	assert.True(t, cfg.StrictMode)
	assert.Equal(t, "json", cfg.LogFormat)
	// keys missing from the file are kept
	assert.Equal(t, 4, cfg.OpenFileLimit)
	assert.Equal(t, DefaultReadBufferSize, cfg.ReadBufferSize)

	invalid := filepath.Join(dir, "invalid.toml")
	require.NoError(t, os.WriteFile(invalid, []byte("read_buffer_size = 1\n"), 0o600))
	cfg, err = LoadConfigFile(invalid, base)
	assert.Error(t, err)
	assert.Equal(t, base, cfg)

	malformed := filepath.Join(dir, "malformed.toml")
	require.NoError(t, os.WriteFile(malformed, []byte("max_depth = [\n"), 0o600))
	_, err = LoadConfigFile(malformed, base)
	assert.Error(t, err)

	_, err = LoadConfigFile(filepath.Join(dir, "missing.toml"), base)
	assert.Error(t, err)
}
