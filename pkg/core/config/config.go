package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/wandler/foundation/core/error"
	mdwlog "github.com/msto63/wandler/foundation/core/log"
	"github.com/msto63/wandler/foundation/utils/stringx"
	"github.com/msto63/wandler/internal/transform"
)

// Config holds the complete application configuration
type Config struct {
	General GeneralConfig `toml:"general" yaml:"general"`
	TUI     TUIConfig     `toml:"tui" yaml:"tui"`
	Server  ServerConfig  `toml:"server" yaml:"server"`
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
	LogFile   string `toml:"log_file" yaml:"log_file"`
}

// TUIConfig holds terminal UI settings
type TUIConfig struct {
	StartTab  string `toml:"start_tab" yaml:"start_tab"`
	ShowHelp  bool   `toml:"show_help" yaml:"show_help"`
	Clipboard bool   `toml:"clipboard" yaml:"clipboard"`
}

// ServerConfig holds websocket session host settings
type ServerConfig struct {
	Host           string   `toml:"host" yaml:"host"`
	Port           int      `toml:"port" yaml:"port"`
	ReadTimeout    Duration `toml:"read_timeout" yaml:"read_timeout"`
	WriteTimeout   Duration `toml:"write_timeout" yaml:"write_timeout"`
	AllowedOrigins []string `toml:"allowed_origins" yaml:"allowed_origins"`
	MaxSessions    int      `toml:"max_sessions" yaml:"max_sessions"`
}

// Address returns host:port
func (s ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Duration wraps time.Duration for TOML and YAML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// UnmarshalYAML parses a duration scalar
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	return d.UnmarshalText([]byte(s))
}

// Environment variables that override file values
const (
	EnvConfig     = "WANDLER_CONFIG"
	EnvLogLevel   = "WANDLER_LOG_LEVEL"
	EnvLogFormat  = "WANDLER_LOG_FORMAT"
	EnvServerPort = "WANDLER_SERVER_PORT"
)

// DefaultConfig returns the configuration used when no file is given
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.TUI.ShowHelp = true
	cfg.TUI.Clipboard = true
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file, chosen by extension
func Load(path string) (*Config, error) {
	// Expand environment variables in path
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, mdwerror.Newf("config file not found: %s", path).
				WithCode(mdwerror.CodeMissingConfig).
				WithOperation("config.load")
		}
		return nil, mdwerror.Wrap(err, "failed to read config").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.load")
	}

	cfg := &Config{TUI: TUIConfig{ShowHelp: true, Clipboard: true}}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		_, err = toml.Decode(string(data), cfg)
	}
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to parse config").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.load").
			WithDetail("path", path)
	}

	// Apply defaults
	cfg.applyDefaults()

	// Expand environment variables in paths
	cfg.expandEnvVars()

	return cfg, nil
}

// LoadFromEnv loads the file named by WANDLER_CONFIG or the first default
// location that exists. Without any file the defaults are returned.
func LoadFromEnv() (*Config, error) {
	path := os.Getenv(EnvConfig)
	if path == "" {
		for _, p := range DefaultPaths() {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return DefaultConfig(), nil
	}
	return Load(path)
}

// DefaultPaths lists the locations searched by LoadFromEnv
func DefaultPaths() []string {
	paths := []string{
		"./wandler.toml",
		"./wandler.yaml",
	}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths,
			filepath.Join(dir, "wandler", "config.toml"),
			filepath.Join(dir, "wandler", "config.yaml"),
		)
	}
	return paths
}

// ApplyEnv overrides file values with WANDLER_* environment variables
func (c *Config) ApplyEnv() error {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.General.LogLevel = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.General.LogFormat = v
	}
	if v := os.Getenv(EnvServerPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return mdwerror.Wrap(err, "invalid "+EnvServerPort).
				WithCode(mdwerror.CodeInvalidConfig).
				WithOperation("config.env")
		}
		c.Server.Port = port
	}
	return nil
}

// Validate checks value ranges and enumerations
func (c *Config) Validate() error {
	var problems []string

	if _, err := mdwlog.ParseLevel(c.General.LogLevel); err != nil {
		problems = append(problems, fmt.Sprintf("general.log_level %q is not a log level", c.General.LogLevel))
	}
	if _, err := mdwlog.ParseFormat(c.General.LogFormat); err != nil {
		problems = append(problems, fmt.Sprintf("general.log_format %q is not one of json, text, console, logfmt", c.General.LogFormat))
	}
	if !isGroup(c.TUI.StartTab) {
		problems = append(problems, fmt.Sprintf("tui.start_tab %q is not one of misc, case, sql, regex", c.TUI.StartTab))
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		problems = append(problems, fmt.Sprintf("server.port %d is out of range", c.Server.Port))
	}
	if c.Server.ReadTimeout.Duration < 0 || c.Server.WriteTimeout.Duration < 0 {
		problems = append(problems, "server timeouts must not be negative")
	}
	if c.Server.MaxSessions < 0 {
		problems = append(problems, "server.max_sessions must not be negative")
	}

	if len(problems) > 0 {
		return mdwerror.New("invalid configuration: "+strings.Join(problems, "; ")).
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.validate").
			WithDetail("problems", problems)
	}
	return nil
}

func isGroup(name string) bool {
	for _, g := range transform.Default().Groups() {
		if string(g) == name {
			return true
		}
	}
	return false
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	// General
	c.General.LogLevel = stringx.FirstNonEmpty(c.General.LogLevel, "info")
	c.General.LogFormat = stringx.FirstNonEmpty(c.General.LogFormat, "text")

	// TUI
	c.TUI.StartTab = stringx.FirstNonEmpty(c.TUI.StartTab, string(transform.GroupMisc))

	// Server
	c.Server.Host = stringx.FirstNonEmpty(c.Server.Host, "127.0.0.1")
	if c.Server.Port == 0 {
		c.Server.Port = 8765
	}
	if c.Server.ReadTimeout.Duration == 0 {
		c.Server.ReadTimeout.Duration = 60 * time.Second
	}
	if c.Server.WriteTimeout.Duration == 0 {
		c.Server.WriteTimeout.Duration = 10 * time.Second
	}
}

// expandEnvVars expands environment variables in configuration values
func (c *Config) expandEnvVars() {
	c.General.LogFile = os.ExpandEnv(c.General.LogFile)
}
