package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Catalog store backends
const (
	StoreJSON   = "json"
	StoreSQLite = "sqlite"
)

// DefaultSourceURL is the enterprise ATT&CK STIX bundle.
const DefaultSourceURL = "https://raw.githubusercontent.com/mitre/cti/master/enterprise-attack/enterprise-attack.json"

// ValidStores lists the supported catalog backends.
var ValidStores = []string{StoreJSON, StoreSQLite}

// Config represents the navcsv configuration
type Config struct {
	Catalog CatalogConfig `yaml:"catalog"`
	Logging LoggingConfig `yaml:"logging"`
}

// CatalogConfig controls where the technique catalog lives and where it is fetched from.
type CatalogConfig struct {
	Path       string `yaml:"path"`        // JSON catalog file
	Store      string `yaml:"store"`       // "json" or "sqlite"
	SQLitePath string `yaml:"sqlite_path"` // used when store is sqlite
	SourceURL  string `yaml:"source_url"`
	Timeout    string `yaml:"timeout"` // duration string, e.g. "5m"
}

// LoggingConfig controls diagnostic logging.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Catalog: CatalogConfig{
			Path:       "techniques.json",
			Store:      StoreJSON,
			SQLitePath: "techniques.db",
			SourceURL:  DefaultSourceURL,
			Timeout:    "5m",
		},
		Logging: LoggingConfig{
			Level: "warn",
		},
	}
}

// Path returns the config file location inside dir.
func Path(dir string) string {
	return filepath.Join(dir, ".navcsv", "config.yaml")
}

// LoadConfig reads .navcsv/config.yaml from the specified directory.
// A missing file yields the defaults. Environment overrides are applied last.
func LoadConfig(dir string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path(dir))
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// SaveConfig writes config.yaml to directory
func SaveConfig(dir string, cfg *Config) error {
	navDir := filepath.Join(dir, ".navcsv")
	if err := os.MkdirAll(navDir, 0755); err != nil {
		return fmt.Errorf("failed to create .navcsv dir: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(Path(dir), data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if path := os.Getenv("NAVCSV_CATALOG_PATH"); path != "" {
		c.Catalog.Path = path
	}
	if store := os.Getenv("NAVCSV_CATALOG_STORE"); store != "" {
		c.Catalog.Store = store
	}
	if url := os.Getenv("NAVCSV_SOURCE_URL"); url != "" {
		c.Catalog.SourceURL = url
	}
	if level := os.Getenv("NAVCSV_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	validStore := false
	for _, s := range ValidStores {
		if c.Catalog.Store == s {
			validStore = true
			break
		}
	}
	if !validStore {
		return fmt.Errorf("invalid catalog store: %s (valid: %v)", c.Catalog.Store, ValidStores)
	}

	if c.Catalog.SourceURL == "" {
		return fmt.Errorf("catalog source_url must not be empty")
	}

	if _, err := c.FetchTimeout(); err != nil {
		return err
	}

	if _, err := c.LogLevel(); err != nil {
		return err
	}

	return nil
}

// FetchTimeout parses catalog.timeout. An empty value means the 5m default.
func (c *Config) FetchTimeout() (time.Duration, error) {
	if c.Catalog.Timeout == "" {
		return 5 * time.Minute, nil
	}
	d, err := time.ParseDuration(c.Catalog.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid catalog timeout %q: %w", c.Catalog.Timeout, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid catalog timeout %q: must be positive", c.Catalog.Timeout)
	}
	return d, nil
}

// LogLevel parses logging.level. An empty value means warn.
func (c *Config) LogLevel() (zapcore.Level, error) {
	if c.Logging.Level == "" {
		return zapcore.WarnLevel, nil
	}
	level, err := zapcore.ParseLevel(c.Logging.Level)
	if err != nil {
		return 0, fmt.Errorf("invalid logging level %q: %w", c.Logging.Level, err)
	}
	return level, nil
}
