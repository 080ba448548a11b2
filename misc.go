package dcmtree

import (
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
)

/*
===============================================================================
    Configuration
===============================================================================
*/

// Config represents the application configuration
type Config struct {
	// OpenFileLimit restricts the number of files parsed concurrently by WalkDir
	OpenFileLimit int `toml:"open_file_limit"`
	// StrictMode rejects streams declaring a transfer syntax that is not natively supported
	StrictMode bool `toml:"strict_mode"`
	// MaxDepth bounds the nesting depth of sequences and items
	MaxDepth int `toml:"max_depth"`
	// ReadBufferSize is the number of bytes buffered from the source when parsing
	ReadBufferSize int    `toml:"read_buffer_size"`
	LogLevel       string `toml:"log_level"`
	// LogFormat is "console" or "json"
	LogFormat string `toml:"log_format"`
}

// Defaults
const (
	DefaultOpenFileLimit  = 64
	DefaultMaxDepth       = 64
	DefaultReadBufferSize = 64 * 1024
	minReadBufferSize     = 16
)

// intFromEnv retrieves `key` from the OS environment.
// if the key is not found, or cannot be expressed as an integer,
// `found` will be false.
func intFromEnv(key string) (val int, found bool) {
	valStr, found := os.LookupEnv(key)
	if !found {
		return
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		found = false
	}
	return
}

func intFromEnvDefault(key string, def int) int {
	if val, found := intFromEnv(key); found {
		return val
	}
	return def
}

func strFromEnvDefault(key string, def string) string {
	if val, found := os.LookupEnv(key); found {
		return val
	}
	return def
}

func boolFromEnv(key string) (val bool, found bool) {
	valStr, found := os.LookupEnv(key)
	if !found {
		return
	}
	val, err := strconv.ParseBool(valStr)
	if err != nil {
		found = false
	}
	return
}

func boolFromEnvDefault(key string, def bool) bool {
	if val, found := boolFromEnv(key); found {
		return val
	}
	return def
}

// ConfigFromEnv builds a Config from DCMTREE_* environment variables, using
// defaults for anything unset or unparseable.
func ConfigFromEnv() Config {
	return Config{
		OpenFileLimit:  intFromEnvDefault("DCMTREE_OPENFILELIMIT", DefaultOpenFileLimit),
		StrictMode:     boolFromEnvDefault("DCMTREE_STRICTMODE", false),
		MaxDepth:       intFromEnvDefault("DCMTREE_MAXDEPTH", DefaultMaxDepth),
		ReadBufferSize: intFromEnvDefault("DCMTREE_BUFFERSIZE", DefaultReadBufferSize),
		LogLevel:       strings.ToLower(strFromEnvDefault("DCMTREE_LOGLEVEL", "info")),
		LogFormat:      strings.ToLower(strFromEnvDefault("DCMTREE_LOGFORMAT", "console")),
	}
}

// Validate reports the first invalid setting in `c`
func (c Config) Validate() error {
	switch {
	case c.OpenFileLimit < 1:
		return errors.Errorf("open_file_limit must be positive (got %d)", c.OpenFileLimit)
	case c.MaxDepth < 1:
		return errors.Errorf("max_depth must be positive (got %d)", c.MaxDepth)
	case c.ReadBufferSize < minReadBufferSize:
		return errors.Errorf("read_buffer_size must be at least %d (got %d)", minReadBufferSize, c.ReadBufferSize)
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return errors.Errorf(`log_format must be "console" or "json" (got %q)`, c.LogFormat)
	}
	return nil
}

var (
	configMu  sync.Mutex
	config    Config
	configSet bool
)

// GetConfig returns the application configuration.
// Will set from environment if not already set.
func GetConfig() Config {
	configMu.Lock()
	defer configMu.Unlock()
	if !configSet {
		config = ConfigFromEnv()
		if err := SetLoggingLevel(config.LogLevel); err != nil {
			Warnf("%v; using info", err)
			config.LogLevel = "info"
		}
		configSet = true
	}
	return config
}

// OverrideConfig overrides the configuration parsed from environment with the one provided
func OverrideConfig(newconfig Config) error {
	if err := newconfig.Validate(); err != nil {
		return err
	}
	if err := SetLoggingLevel(newconfig.LogLevel); err != nil {
		return err
	}
	configMu.Lock()
	defer configMu.Unlock()
	config = newconfig
	configSet = true
	return nil
}

// LoadConfigFile decodes the TOML file at `path` over `base`. A leading "~" in
// `path` is expanded to the home directory. Keys missing from the file keep
// their value from `base`.
func LoadConfigFile(path string, base Config) (Config, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return base, errors.Wrap(err, "failed to expand config path")
	}
	f, err := os.Open(expanded)
	if err != nil {
		return base, errors.Wrap(err, "failed to open config file")
	}
	defer f.Close()

	cfg := base
	if err := toml.NewDecoder(f).Decode(&cfg); err != nil {
		return base, errors.Wrap(err, "failed to decode config file")
	}
	if err := cfg.Validate(); err != nil {
		return base, errors.Wrapf(err, "invalid config file %s", expanded)
	}
	return cfg, nil
}
