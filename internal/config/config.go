package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"extract-wish-url/internal/game"
	"extract-wish-url/internal/scan"
	"extract-wish-url/internal/util"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Scan   ScanConfig   `yaml:"scan"`
	Titles []game.Title `yaml:"titles"`
}

type ScanConfig struct {
	MaxURLLength int `yaml:"max_url_length"`
}

var ErrConfigExists = errors.New("config_already_exists")

func Default() Config {
	return Config{
		Scan:   ScanConfig{MaxURLLength: scan.DefaultMaxURLLength},
		Titles: game.Builtin(),
	}
}

func ResolvePath(input string) (string, error) {
	if input != "" {
		return util.ExpandHome(input)
	}
	return util.DefaultConfigPath()
}

// Load reads path and overlays it on the defaults. Titles in the file
// replace built-in titles of the same name and are otherwise appended. An
// empty path yields the defaults.
func Load(path string) (Config, error) {
	def := Default()
	if path == "" {
		return def, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("读取配置失败: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("解析配置失败: %w", err)
	}
	if cfg.Scan.MaxURLLength <= 0 {
		cfg.Scan.MaxURLLength = def.Scan.MaxURLLength
	}
	cfg.Titles = game.Merge(def.Titles, cfg.Titles)
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("配置无效 %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Scan.MaxURLLength <= 0 {
		return fmt.Errorf("scan.max_url_length 必须大于 0")
	}
	return game.ValidateAll(c.Titles)
}

func Marshal(cfg Config) ([]byte, error) {
	b, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("序列化配置失败: %w", err)
	}
	return b, nil
}

// Init writes the default config to path. An existing file is left alone.
func Init(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%w: %s", ErrConfigExists, path)
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("读取配置失败: %w", err)
	}
	return Save(path, Default())
}

func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("创建配置目录失败: %w", err)
	}
	b, err := Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("写配置失败: %w", err)
	}
	return nil
}
