package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

type Configs struct {
	Env      string `toml:"env" env:"ENV" envDefault:"local"`
	LogLevel string `toml:"log_level" env:"LOG_LEVEL" envDefault:"info"`

	ApiServer APIServerConfigs `toml:"api_server"`
	Database  DatabaseConfigs  `toml:"database"`
	Auth      AuthConfigs      `toml:"auth"`
}

type APIServerConfigs struct {
	Host string `toml:"host" env:"API_HOST" envDefault:"0.0.0.0"`
	Port string `toml:"port" env:"API_PORT" envDefault:"8000"`
	Cert string `toml:"cert" env:"API_CERT"`
	Key  string `toml:"key" env:"API_KEY_FILE"`

	// DefaultLimit applies when a list request carries no limit, MaxLimit is
	// the hard cap a client may ask for.
	DefaultLimit int `toml:"default_limit" env:"API_DEFAULT_LIMIT" envDefault:"100"`
	MaxLimit     int `toml:"max_limit" env:"API_MAX_LIMIT" envDefault:"1000"`
}

func (s APIServerConfigs) Address() string {
	return fmt.Sprintf("%s:%s", s.Host, s.Port)
}

type DatabaseConfigs struct {
	// Driver is sqlite or mysql. The sqlite file is the default store; mysql
	// is a deployment option.
	Driver string `toml:"driver" env:"DB_DRIVER" envDefault:"sqlite"`
	File   string `toml:"file" env:"DB_FILE" envDefault:"users.db"`

	Host     string `toml:"host" env:"DB_HOST" envDefault:"localhost"`
	Port     string `toml:"port" env:"DB_PORT" envDefault:"3306"`
	User     string `toml:"user" env:"DB_USER" envDefault:"root"`
	Password string `toml:"password" env:"DB_PASSWORD"`
	Database string `toml:"database" env:"DB_NAME" envDefault:"userhub"`
}

func (d DatabaseConfigs) ConnectionString() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.User,
		d.Password,
		d.Host,
		d.Port,
		d.Database,
	)
}

type AuthConfigs struct {
	TokenSecret string       `toml:"token_secret" env:"AUTH_TOKEN_SECRET" envDefault:"secret"`
	AccessToken TokenConfigs `toml:"access_token"`
}

type TokenConfigs struct {
	Name       string        `toml:"name" env:"AUTH_ACCESS_TOKEN_NAME" envDefault:"access_token"`
	Expiration time.Duration `toml:"-" env:"AUTH_ACCESS_TOKEN_EXPIRATION" envDefault:"24h"`
}

// Load parses configuration from the environment (with defaults), then
// overlays values from the optional TOML file. The file wins where both are
// set.
func Load(path string) (Configs, error) {
	var cfg Configs
	if err := env.Parse(&cfg); err != nil {
		return Configs{}, fmt.Errorf("parse env: %w", err)
	}

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Configs{}, fmt.Errorf("decode config file: %w", err)
		}
	}

	return cfg, nil
}
