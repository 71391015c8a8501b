package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"gopkg.in/yaml.v3"
)

const (
	DefaultPath = "config/config.yaml"
	PathEnv     = "LIBRARY_CONFIG"
	envPrefix   = "LIBRARY_"
)

type DatabaseConfig struct {
	Driver          string        `yaml:"driver" koanf:"driver" validate:"required,oneof=mysql sqlite3"`
	Host            string        `yaml:"host" koanf:"host" validate:"required_if=Driver mysql"`
	Port            int           `yaml:"port" koanf:"port" validate:"required_if=Driver mysql"`
	Username        string        `yaml:"user" koanf:"user" validate:"required_if=Driver mysql"`
	Password        string        `yaml:"password" koanf:"password"`
	DBName          string        `yaml:"dbname" koanf:"dbname" validate:"required_if=Driver mysql"`
	Path            string        `yaml:"path" koanf:"path" validate:"required_if=Driver sqlite3"`
	MaxOpenConns    int           `yaml:"max_open_conns" koanf:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns" koanf:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" koanf:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `yaml:"conn_max_idle_time" koanf:"conn_max_idle_time"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr" koanf:"addr" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout" koanf:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout" koanf:"write_timeout"`
}

type LogConfig struct {
	Level string `yaml:"level" koanf:"level" validate:"omitempty,oneof=trace debug info warn error"`
}

type Certs struct {
	Cert string `yaml:"cert" koanf:"cert"`
	Key  string `yaml:"key" koanf:"key"`
}

// Enabled reports whether both halves of the key pair are configured.
func (c Certs) Enabled() bool { return c.Cert != "" && c.Key != "" }

type Config struct {
	Version     string         `yaml:"version" koanf:"version"`
	Mode        string         `yaml:"mode" koanf:"mode" validate:"required,oneof=dev release"`
	Server      ServerConfig   `yaml:"server" koanf:"server"`
	DB          DatabaseConfig `yaml:"database" koanf:"database"`
	Log         LogConfig      `yaml:"log" koanf:"log"`
	Certificate Certs          `yaml:"certificate" koanf:"certificate"`
}

func defaults() Config {
	return Config{
		Mode: "release",
		Server: ServerConfig{
			Addr:         ":8080",
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
		},
		DB: DatabaseConfig{
			Driver:          "mysql",
			Port:            3306,
			MaxOpenConns:    80,
			MaxIdleConns:    20,
			ConnMaxLifetime: 30 * time.Minute,
			ConnMaxIdleTime: 5 * time.Minute,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Path returns the config file location, honouring LIBRARY_CONFIG.
func Path() string {
	if p := os.Getenv(PathEnv); p != "" {
		return p
	}
	return DefaultPath
}

// Load reads the YAML file at path, applies LIBRARY_* environment overrides
// (LIBRARY_DATABASE__PASSWORD -> database.password) and validates the result.
func Load(path string) (*Config, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return parse(buf)
}

func parse(buf []byte) (*Config, error) {
	cfg := defaults()
	if err := yaml.Unmarshal(buf, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	k := koanf.New(".")
	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "__", ".")
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("load env overrides: %w", err)
	}
	if len(k.Keys()) > 0 {
		if err := k.Unmarshal("", &cfg); err != nil {
			return nil, fmt.Errorf("apply env overrides: %w", err)
		}
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}
