package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/theoremus-urban-solutions/pns-helper/notification"
)

// ErrNoConfig is returned when an explicitly requested file does not exist
var ErrNoConfig = errors.New("config: file not found")

// DefaultPaths are searched when no path is given
var DefaultPaths = []string{"config.yml", "./config/config.yml"}

// LoadAppConfig loads, overrides from the environment and validates the
// configuration. With an empty path the default locations are tried and
// built-in defaults apply when none exists.
func LoadAppConfig(path string) (AppConfig, error) {
	// .env is optional
	_ = godotenv.Load()

	cfg := Default()

	data, src, err := readConfigFile(path)
	if err != nil {
		return AppConfig{}, err
	}
	if data != nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return AppConfig{}, fmt.Errorf("parse %s: %w", src, err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return AppConfig{}, fmt.Errorf("environment overrides: %w", err)
	}

	if cfg.Notification.CodesFile != "" {
		codesPath := cfg.Notification.CodesFile
		if !filepath.IsAbs(codesPath) && src != "" {
			codesPath = filepath.Join(filepath.Dir(src), codesPath)
		}
		fileCodes, err := notification.LoadCodeTable(codesPath)
		if err != nil {
			return AppConfig{}, err
		}
		cfg.Notification.Codes = cfg.Notification.Codes.Merge(fileCodes)
	}
	if cfg.Notification.Codes == nil {
		cfg.Notification.Codes = notification.CodeTable{}
	}

	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

func readConfigFile(path string) ([]byte, string, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			return nil, "", fmt.Errorf("%w: %s", ErrNoConfig, path)
		}
		if err != nil {
			return nil, "", err
		}
		return data, path, nil
	}
	for _, p := range DefaultPaths {
		data, err := os.ReadFile(p)
		if err == nil {
			return data, p, nil
		}
	}
	return nil, "", nil
}
