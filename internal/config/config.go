package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Server  ServerConfig
	Upload  UploadConfig
	Display DisplayConfig
}

type ServerConfig struct {
	BaseURL           string  `toml:"base_url"`
	TimeoutSeconds    int     `toml:"timeout_seconds"`
	RequestsPerSecond float64 `toml:"requests_per_second"`
}

type UploadConfig struct {
	MaxFileBytes int64    `toml:"max_file_bytes"`
	AllowedTypes []string `toml:"allowed_types"`
}

type DisplayConfig struct {
	RefreshRateMS int `toml:"refresh_rate_ms"`
	MaskLength    int `toml:"mask_length"`
}

type LoadResult struct {
	Config   Config
	Warnings []string
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "wifiqr", "config.toml")
}

func Load() (*LoadResult, error) {
	return LoadFrom(defaultConfigPath())
}

func LoadFrom(path string) (*LoadResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &LoadResult{Config: DefaultConfig()}, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return LoadFromString(string(data))
}

type tomlFile struct {
	Server  *ServerConfig  `toml:"server"`
	Upload  *UploadConfig  `toml:"upload"`
	Display *DisplayConfig `toml:"display"`
}

func LoadFromString(data string) (*LoadResult, error) {
	cfg := DefaultConfig()
	result := &LoadResult{Config: cfg}

	if data == "" {
		return result, nil
	}

	var raw map[string]any
	if _, err := toml.Decode(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	knownTopLevel := map[string]bool{
		"server":  true,
		"upload":  true,
		"display": true,
	}
	for key := range raw {
		if !knownTopLevel[key] {
			result.Warnings = append(result.Warnings, fmt.Sprintf("unknown config key: %q", key))
		}
	}

	var tf tomlFile
	if _, err := toml.Decode(data, &tf); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	mergeFromRaw(&result.Config, &tf, raw)

	if err := validate(&result.Config); err != nil {
		return nil, err
	}

	return result, nil
}

// mergeFromRaw applies only the keys actually present in the document,
// so a partial config keeps the defaults for everything it omits.
func mergeFromRaw(cfg *Config, tf *tomlFile, raw map[string]any) {
	if tf.Server != nil {
		if section, ok := rawSection(raw, "server"); ok {
			if _, exists := section["base_url"]; exists {
				cfg.Server.BaseURL = tf.Server.BaseURL
			}
			if _, exists := section["timeout_seconds"]; exists {
				cfg.Server.TimeoutSeconds = tf.Server.TimeoutSeconds
			}
			if _, exists := section["requests_per_second"]; exists {
				cfg.Server.RequestsPerSecond = tf.Server.RequestsPerSecond
			}
		}
	}
	if tf.Upload != nil {
		if section, ok := rawSection(raw, "upload"); ok {
			if _, exists := section["max_file_bytes"]; exists {
				cfg.Upload.MaxFileBytes = tf.Upload.MaxFileBytes
			}
			if _, exists := section["allowed_types"]; exists {
				cfg.Upload.AllowedTypes = tf.Upload.AllowedTypes
			}
		}
	}
	if tf.Display != nil {
		if section, ok := rawSection(raw, "display"); ok {
			if _, exists := section["refresh_rate_ms"]; exists {
				cfg.Display.RefreshRateMS = tf.Display.RefreshRateMS
			}
			if _, exists := section["mask_length"]; exists {
				cfg.Display.MaskLength = tf.Display.MaskLength
			}
		}
	}
}

func rawSection(raw map[string]any, key string) (map[string]any, bool) {
	v, ok := raw[key]
	if !ok {
		return nil, false
	}
	m, ok := v.(map[string]any)
	return m, ok
}

func validate(cfg *Config) error {
	var errs []string

	if strings.TrimSpace(cfg.Server.BaseURL) == "" {
		errs = append(errs, "server base_url must not be empty")
	} else if !strings.HasPrefix(cfg.Server.BaseURL, "http://") && !strings.HasPrefix(cfg.Server.BaseURL, "https://") {
		errs = append(errs, fmt.Sprintf("server base_url must be an http(s) URL, got %q", cfg.Server.BaseURL))
	}
	if cfg.Server.TimeoutSeconds < 1 {
		errs = append(errs, fmt.Sprintf("server timeout_seconds must be positive, got %d", cfg.Server.TimeoutSeconds))
	}
	if cfg.Server.RequestsPerSecond <= 0 {
		errs = append(errs, fmt.Sprintf("server requests_per_second must be positive, got %f", cfg.Server.RequestsPerSecond))
	}

	if cfg.Upload.MaxFileBytes < 1 {
		errs = append(errs, fmt.Sprintf("upload max_file_bytes must be positive, got %d", cfg.Upload.MaxFileBytes))
	}
	if len(cfg.Upload.AllowedTypes) == 0 {
		errs = append(errs, "upload allowed_types must not be empty")
	}

	if cfg.Display.RefreshRateMS < 1 {
		errs = append(errs, fmt.Sprintf("display refresh_rate_ms must be positive, got %d", cfg.Display.RefreshRateMS))
	}
	if cfg.Display.MaskLength < 1 {
		errs = append(errs, fmt.Sprintf("display mask_length must be positive, got %d", cfg.Display.MaskLength))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation error: %s", strings.Join(errs, "; "))
	}
	return nil
}
