package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"

	DefaultStorageKey = "studyTrackerData"
)

type Config struct {
	DataDir   string
	StatePath string
	DBPath    string
	LogPath   string

	Storage StorageConfig `mapstructure:"storage"`
	Log     LogConfig     `mapstructure:"log"`
}

type StorageConfig struct {
	Backend string `mapstructure:"backend"`
	Key     string `mapstructure:"key"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// New returns defaults for dataDir without consulting files or env.
func New(dataDir string) (Config, error) {
	if dataDir == "" {
		return Config{}, fmt.Errorf("data dir is required")
	}
	cfg := Config{
		Storage: StorageConfig{Backend: BackendFile, Key: DefaultStorageKey},
		Log:     LogConfig{Level: "info", Format: "console"},
	}
	return withPaths(cfg, dataDir), nil
}

// Load layers <dataDir>/studytrack.yaml (or configFile) and STUDYTRACK_* env
// vars over the defaults.
func Load(dataDir, configFile string) (Config, error) {
	defaults, err := New(dataDir)
	if err != nil {
		return Config{}, err
	}
	v := viper.New()
	v.SetDefault("storage.backend", defaults.Storage.Backend)
	v.SetDefault("storage.key", defaults.Storage.Key)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.format", defaults.Log.Format)

	v.SetEnvPrefix("STUDYTRACK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("studytrack")
		v.SetConfigType("yaml")
		v.AddConfigPath(dataDir)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := Config{}
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := validate(cfg); err != nil {
		return Config{}, err
	}
	return withPaths(cfg, dataDir), nil
}

func validate(cfg Config) error {
	switch cfg.Storage.Backend {
	case BackendFile, BackendSQLite:
	default:
		return fmt.Errorf("storage.backend must be %q or %q, got %q", BackendFile, BackendSQLite, cfg.Storage.Backend)
	}
	if strings.TrimSpace(cfg.Storage.Key) == "" {
		return fmt.Errorf("storage.key is required")
	}
	return nil
}

func withPaths(cfg Config, dataDir string) Config {
	dir := filepath.Join(dataDir, ".studytrack")
	cfg.DataDir = dataDir
	cfg.StatePath = filepath.Join(dir, "state.json")
	cfg.DBPath = filepath.Join(dir, "studytrack.db")
	cfg.LogPath = filepath.Join(dir, "studytrack.log")
	return cfg
}
