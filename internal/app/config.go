package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"cipherbox/internal/store"
)

// ConfigFilename is the config file name under the home directory.
const ConfigFilename = "config.yaml"

// EnvFilename is an optional dotenv file under the home directory. Process
// environment variables take precedence over its entries.
const EnvFilename = ".env"

// Config holds runtime wiring options for building the app.
type Config struct {
	Home        string `yaml:"-"`            // config directory, e.g. $HOME/.cipherbox
	HistoryFile string `yaml:"history_file"` // defaults to <home>/history.txt(.enc)
	Passphrase  string `yaml:"-"`            // non-empty selects the sealed history store

	Morse     MorseConfig     `yaml:"morse"`
	Caesar    CaesarConfig    `yaml:"caesar"`
	Animation AnimationConfig `yaml:"animation"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// MorseConfig configures the Morse converter.
type MorseConfig struct {
	Strict bool `yaml:"strict"` // report unknown tokens instead of skipping them
}

// CaesarConfig configures the Caesar converter.
type CaesarConfig struct {
	DefaultKey int `yaml:"default_key"`
}

// AnimationConfig configures the shell's border animation.
type AnimationConfig struct {
	Enabled bool          `yaml:"enabled"`
	Frames  int           `yaml:"frames"`
	Delay   time.Duration `yaml:"delay"`
	Color   string        `yaml:"color"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// DefaultConfig returns the default configuration rooted at home.
func DefaultConfig(home string) *Config {
	return &Config{
		Home:   home,
		Caesar: CaesarConfig{DefaultKey: 3},
		Animation: AnimationConfig{
			Enabled: true,
			Frames:  3,
			Delay:   time.Second,
			Color:   "#8BC34A",
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

// LoadConfig overlays the YAML file at path onto the defaults, then applies
// CIPHERBOX_* environment overrides. A missing file yields the defaults.
func LoadConfig(home, path string) (*Config, error) {
	cfg := DefaultConfig(home)
	if path == "" {
		path = filepath.Join(home, ConfigFilename)
	}

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	dotenv, err := readDotenv(filepath.Join(home, EnvFilename))
	if err != nil {
		return nil, err
	}
	lookup := func(key string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		return dotenv[key]
	}
	if err := cfg.applyEnvOverrides(lookup); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// HistoryPath resolves the history file for the selected store.
func (c *Config) HistoryPath() string {
	if c.HistoryFile != "" {
		return c.HistoryFile
	}
	if c.Passphrase != "" {
		return filepath.Join(c.Home, store.SealedHistoryFilename)
	}
	return filepath.Join(c.Home, store.HistoryFilename)
}

func readDotenv(path string) (map[string]string, error) {
	vars, err := godotenv.Read(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return vars, nil
}

func (c *Config) applyEnvOverrides(getenv func(string) string) error {
	if v := getenv("CIPHERBOX_HISTORY_FILE"); v != "" {
		c.HistoryFile = v
	}
	if v := getenv("CIPHERBOX_PASSPHRASE"); v != "" && c.Passphrase == "" {
		c.Passphrase = v
	}
	if v := getenv("CIPHERBOX_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := getenv("CIPHERBOX_CAESAR_KEY"); v != "" {
		k, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("CIPHERBOX_CAESAR_KEY: %w", err)
		}
		c.Caesar.DefaultKey = k
	}
	if v := getenv("CIPHERBOX_NO_ANIMATION"); v != "" {
		c.Animation.Enabled = false
	}
	return nil
}
