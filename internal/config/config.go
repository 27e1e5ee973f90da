package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	HTTP HTTPConfig `mapstructure:"http"`
	DB   DBConfig   `mapstructure:"db"`
	JWT  JWTConfig  `mapstructure:"jwt"`
	Geo  GeoConfig  `mapstructure:"geo"`
	Log  LogConfig  `mapstructure:"log"`
	OTel OTelConfig `mapstructure:"otel"`
}

type HTTPConfig struct {
	Addr           string   `mapstructure:"addr"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	// RateLimit is the number of requests per minute and client IP allowed on
	// the public login, registration and failed-attempt endpoints.
	RateLimit int `mapstructure:"rate_limit"`
}

type DBConfig struct {
	Source string `mapstructure:"source"`
}

type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Issuer string        `mapstructure:"issuer"`
	TTL    time.Duration `mapstructure:"ttl"`
}

type GeoConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}

type OTelConfig struct {
	Endpoint string `mapstructure:"endpoint"`
}

var (
	ErrMissingDBSource  = errors.New("db.source (DB_SOURCE) is required")
	ErrMissingJWTSecret = errors.New("jwt.secret (JWT_SECRET) is required")
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("http.addr", ":5000")
	v.SetDefault("http.allowed_origins", []string{"http://localhost:3000"})
	v.SetDefault("http.rate_limit", 20)
	v.SetDefault("db.source", "")
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.issuer", "assessment-portal")
	v.SetDefault("jwt.ttl", 12*time.Hour)
	v.SetDefault("geo.base_url", "http://ip-api.com")
	v.SetDefault("geo.timeout", 3*time.Second)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
	v.SetDefault("otel.endpoint", "")
}

// Load reads configs/settings.yml when present and overlays environment
// variables, where a key such as jwt.secret maps to JWT_SECRET.
func Load() (*Config, error) {
	v := viper.New()
	v.AddConfigPath("./configs")
	v.AddConfigPath("/configs")
	v.SetConfigName("settings")
	v.SetConfigType("yml")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.DB.Source == "" {
		return ErrMissingDBSource
	}
	if c.JWT.Secret == "" {
		return ErrMissingJWTSecret
	}
	return nil
}
