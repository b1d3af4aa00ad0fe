package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/kbukum/grantkit/errors"
	"github.com/kbukum/grantkit/logger"
)

// envPrefix namespaces environment variable overrides (e.g. GRANTS_DEBUG).
const envPrefix = "GRANTS"

// FileSystem interface for file operations (useful for testing).
type FileSystem interface {
	Exists(path string) bool
	ReadFile(path string) ([]byte, error)
	LoadEnv(path string) error
}

// RealFileSystem implements FileSystem using actual file operations.
type RealFileSystem struct{}

func (rfs *RealFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (rfs *RealFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (rfs *RealFileSystem) LoadEnv(path string) error {
	return godotenv.Load(path)
}

// LoaderConfig holds dependencies and optional file overrides.
type LoaderConfig struct {
	FileSystem FileSystem
	EnvFile    string
}

// LoaderOption is a functional option for Load.
type LoaderOption func(*LoaderConfig)

// WithFileSystem sets a custom filesystem for the loader.
func WithFileSystem(fs FileSystem) LoaderOption {
	return func(lc *LoaderConfig) { lc.FileSystem = fs }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.EnvFile = path }
}

// searchPaths are the standard locations for grants.yml, tried in order
// when no explicit path is given.
var searchPaths = []string{
	"./grants.yml",
	"./config/grants.yml",
	"../config/grants.yml",
}

// rulesDocument carries only the rules section of the configuration file.
type rulesDocument struct {
	Rules []Rule `yaml:"rules"`
}

// Load reads, validates, and normalizes permission configuration. If path is
// empty, standard locations are searched. Environment variables override
// envelope values under the GRANTS_ prefix; a .env file is loaded first when
// present.
func Load(path string, opts ...LoaderOption) (*Config, error) {
	var lc LoaderConfig
	for _, opt := range opts {
		opt(&lc)
	}
	if lc.FileSystem == nil {
		lc.FileSystem = &RealFileSystem{}
	}

	if path == "" {
		path = findConfigFile(lc.FileSystem)
	}
	if path == "" || !lc.FileSystem.Exists(path) {
		return nil, errors.InvalidConfig("no permission configuration file found")
	}

	if lc.EnvFile != "" && lc.FileSystem.Exists(lc.EnvFile) {
		if err := lc.FileSystem.LoadEnv(lc.EnvFile); err != nil {
			logger.Warn("failed to load .env file", logger.ErrorFields("config.load", err))
		}
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.InvalidConfig("failed to read " + path).WithCause(err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.InvalidConfig("failed to unmarshal " + path).WithCause(err)
	}

	// Viper lowercases map keys; grant masks are case-sensitive, so the
	// rules section is decoded from the raw document instead.
	raw, err := lc.FileSystem.ReadFile(path)
	if err != nil {
		return nil, errors.InvalidConfig("failed to read " + path).WithCause(err)
	}
	var doc rulesDocument
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, errors.InvalidConfig("failed to parse rules in " + path).WithCause(err)
	}
	cfg.Rules = doc.Rules

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.Normalize()

	logger.Debug("permission configuration loaded", logger.Fields(
		logger.FieldOperation, "config.load",
		logger.FieldRuleCount, len(cfg.Rules),
	))

	return cfg, nil
}

func findConfigFile(fs FileSystem) string {
	for _, path := range searchPaths {
		if fs.Exists(path) {
			return path
		}
	}
	return ""
}
