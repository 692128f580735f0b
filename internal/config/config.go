package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

const (
	UILine = "line"
	UITUI  = "tui"
)

type Config struct {
	DBPath         string        `mapstructure:"db_path"`
	Verbose        bool          `mapstructure:"verbose"`
	LogFile        string        `mapstructure:"log_file"`
	UI             string        `mapstructure:"ui"`
	RemindWindow   time.Duration `mapstructure:"remind_window"`
	RemindInterval time.Duration `mapstructure:"remind_interval"`
}

func Default() Config {
	return Config{
		DBPath:       "todo.db",
		UI:           UILine,
		RemindWindow: 24 * time.Hour,
	}
}

func DefaultConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "todo", "config.json"), nil
}

func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}

// Load reads the config file at path on top of the defaults. A missing file
// is not an error. The encoding follows the file extension, JSON when there
// is none.
func Load(path string) (Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, err
	}

	v := newViper(path)
	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := EnsureDir(path); err != nil {
		return err
	}

	v := newViper(path)
	v.Set("db_path", cfg.DBPath)
	v.Set("verbose", cfg.Verbose)
	v.Set("log_file", cfg.LogFile)
	v.Set("ui", cfg.UI)
	v.Set("remind_window", cfg.RemindWindow.String())
	v.Set("remind_interval", cfg.RemindInterval.String())
	return v.WriteConfigAs(path)
}

func (c Config) Validate() error {
	if c.UI != UILine && c.UI != UITUI {
		return fmt.Errorf("ui must be %q or %q, got %q", UILine, UITUI, c.UI)
	}
	if c.RemindWindow < 0 {
		return fmt.Errorf("remind_window must not be negative")
	}
	if c.RemindInterval < 0 {
		return fmt.Errorf("remind_interval must not be negative")
	}
	return nil
}

func newViper(path string) *viper.Viper {
	v := viper.New()
	v.SetConfigFile(path)
	if filepath.Ext(path) == "" {
		v.SetConfigType("json")
	}
	return v
}
