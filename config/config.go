// Package config loads rubyalign settings from a YAML file, with a .env file
// and environment variables layered on top.
package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"rubyalign/furigana"
	"rubyalign/logger"
	"rubyalign/model"
	"rubyalign/tokenize"
)

const (
	// EnvConfigPath names the variable that points at the config file.
	EnvConfigPath = "RUBYALIGN_CONFIG"
	// EnvLogLevel overrides log.level from the file.
	EnvLogLevel = "RUBYALIGN_LOG_LEVEL"

	DefaultPath = "rubyalign.yaml"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// LogConfig controls the structured logger.
type LogConfig struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

// SegmentConfig is the YAML form of one exception segment.
type SegmentConfig struct {
	Text string `yaml:"text"`
	Ruby string `yaml:"ruby,omitempty"`
}

// Config is the root configuration structure.
type Config struct {
	Log        LogConfig                  `yaml:"log"`
	LogsDir    string                     `yaml:"logs_dir"`
	Format     string                     `yaml:"format"`
	Dict       string                     `yaml:"dict"`
	Workers    int                        `yaml:"workers"`
	Exceptions map[string][]SegmentConfig `yaml:"exceptions"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Log.Level == "" {
		cfg.Log.Level = string(logger.InfoLevel)
	}
	if cfg.LogsDir == "" {
		cfg.LogsDir = "logs"
	}
	if cfg.Format == "" {
		cfg.Format = string(furigana.StyleBrackets)
	}
	if cfg.Dict == "" {
		cfg.Dict = string(tokenize.DictIPA)
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
}

// Load reads the config at path. A missing file yields defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	applyDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadEnv reads KEY=VALUE pairs from the given .env files into the process
// environment without overriding variables that are already set. Missing
// files are skipped.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("config: load %s: %w", f, err)
		}
	}
	return nil
}

// Path returns the config path from the environment, or DefaultPath.
func Path() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	return DefaultPath
}

// ApplyEnv overrides file settings with environment variables.
func (c *Config) ApplyEnv() {
	if lvl := os.Getenv(EnvLogLevel); lvl != "" {
		c.Log.Level = lvl
	}
}

// Validate checks enum fields and every configured exception.
func (c *Config) Validate() error {
	switch furigana.Style(c.Format) {
	case furigana.StyleBrackets, furigana.StyleHTML, furigana.StyleTerminal, furigana.StyleJSON:
	default:
		return fmt.Errorf("%w: format %q", ErrInvalid, c.Format)
	}
	switch tokenize.DictName(c.Dict) {
	case tokenize.DictIPA, tokenize.DictUni:
	default:
		return fmt.Errorf("%w: dict %q", ErrInvalid, c.Dict)
	}
	for title, segs := range c.ExceptionSegments() {
		if err := furigana.ValidateException(title, segs); err != nil {
			return fmt.Errorf("%w: exception: %w", ErrInvalid, err)
		}
	}
	return nil
}

// ExceptionSegments converts configured exceptions to engine segments.
func (c *Config) ExceptionSegments() map[string][]model.Segment {
	if len(c.Exceptions) == 0 {
		return nil
	}
	out := make(map[string][]model.Segment, len(c.Exceptions))
	for title, segs := range c.Exceptions {
		conv := make([]model.Segment, len(segs))
		for i, s := range segs {
			conv[i] = model.Segment{Text: s.Text, Ruby: s.Ruby}
		}
		out[title] = conv
	}
	return out
}

// LoggerConfig builds the logger settings for this config.
func (c *Config) LoggerConfig() *logger.Config {
	lc := logger.DefaultConfig()
	lc.Level = logger.ParseLevel(c.Log.Level)
	lc.JSON = c.Log.JSON
	return lc
}
