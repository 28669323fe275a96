package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	neopixel "neopixel_controller"

	"github.com/spf13/viper"
)

const (
	DriverLog    = "log"
	DriverSerial = "serial"

	envPrefix = "NEOPIXEL"
)

type Config struct {
	Port    string        `mapstructure:"port"`
	DB      DBConfig      `mapstructure:"db"`
	Log     LogConfig     `mapstructure:"log"`
	Radio   RadioConfig   `mapstructure:"radio"`
	Gateway GatewayConfig `mapstructure:"gateway"`
	Peers   PeersConfig   `mapstructure:"peers"`
	Auth    AuthConfig    `mapstructure:"auth"`
}

type DBConfig struct {
	Path string `mapstructure:"path"`
}

type LogConfig struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
}

// RadioConfig mirrors the compiled radio constants so a deployment can
// assert it was built for the channel and peer table it expects.
type RadioConfig struct {
	Channel        int           `mapstructure:"channel"`
	MaxPeers       int           `mapstructure:"max_peers"`
	ResendInterval time.Duration `mapstructure:"resend_interval"`
}

type GatewayConfig struct {
	Driver       string        `mapstructure:"driver"`
	Port         string        `mapstructure:"port"`
	Baud         int           `mapstructure:"baud"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

type PeersConfig struct {
	File string `mapstructure:"file"`
}

type AuthConfig struct {
	SigningKey string        `mapstructure:"signing_key"`
	TokenTTL   time.Duration `mapstructure:"token_ttl"`
}

var (
	ErrChannelMismatch  = errors.New("radio.channel does not match the compiled channel")
	ErrMaxPeersMismatch = errors.New("radio.max_peers does not match the compiled peer table size")
	ErrUnknownDriver    = errors.New("gateway.driver must be \"log\" or \"serial\"")
	ErrMissingPort      = errors.New("gateway.port is required for the serial driver")
	ErrMissingKey       = errors.New("auth.signing_key is required")
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("db.path", "neopixel.db")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", 0)
	v.SetDefault("log.max_backups", 0)
	v.SetDefault("log.max_age_days", 0)
	v.SetDefault("radio.channel", neopixel.Channel)
	v.SetDefault("radio.max_peers", neopixel.MaxPeers)
	v.SetDefault("radio.resend_interval", time.Duration(0))
	v.SetDefault("gateway.driver", DriverLog)
	v.SetDefault("gateway.port", "")
	v.SetDefault("gateway.baud", 115200)
	v.SetDefault("gateway.write_timeout", time.Second)
	v.SetDefault("peers.file", "")
	v.SetDefault("auth.signing_key", "")
	v.SetDefault("auth.token_ttl", time.Hour)
}

// Load reads config.yml from dir (if present) and applies NEOPIXEL_* env
// overrides, e.g. NEOPIXEL_GATEWAY_PORT. Every key needs a default above for
// its env override to reach Unmarshal.
func Load(dir string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.AddConfigPath(dir)
	v.SetConfigName("config")
	v.SetConfigType("yml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks cross-field constraints.
func (c *Config) Validate() error {
	if c.Radio.Channel != neopixel.Channel {
		return fmt.Errorf("%w: got %d, built for %d", ErrChannelMismatch, c.Radio.Channel, neopixel.Channel)
	}
	if c.Radio.MaxPeers != neopixel.MaxPeers {
		return fmt.Errorf("%w: got %d, built for %d", ErrMaxPeersMismatch, c.Radio.MaxPeers, neopixel.MaxPeers)
	}
	switch c.Gateway.Driver {
	case DriverLog:
	case DriverSerial:
		if c.Gateway.Port == "" {
			return ErrMissingPort
		}
	default:
		return fmt.Errorf("%w: got %q", ErrUnknownDriver, c.Gateway.Driver)
	}
	if c.Auth.SigningKey == "" {
		return ErrMissingKey
	}
	return nil
}
