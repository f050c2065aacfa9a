package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	// EnvDebug включает подробный цветной лог
	EnvDebug = "local"

	envPrefix            = "sitecms"
	defaultServerAddress = "http://localhost:4000"
	defaultEnv           = "prod"
	defaultTimeout       = 2 * time.Minute
)

type Config struct {
	Env       string
	ServerURL string
	Timeout   time.Duration
}

// MustLoad загружает конфигурацию клиента: .env, затем SITECMS_* переменные
func MustLoad() *Config {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			fmt.Fprintf(os.Stderr, "Ошибка загрузки .env файла: %v\n", err)
		}
	}

	cfg, err := Load(viper.New())
	if err != nil {
		panic(fmt.Sprintf("Ошибка конфигурации: %v", err))
	}
	return cfg
}

// Load читает SITECMS_SERVER, SITECMS_TIMEOUT и SITECMS_ENV из окружения.
func Load(v *viper.Viper) (*Config, error) {
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	v.SetDefault("env", defaultEnv)
	v.SetDefault("server", defaultServerAddress)
	v.SetDefault("timeout", defaultTimeout)

	cfg := &Config{
		Env:       v.GetString("env"),
		ServerURL: strings.TrimRight(v.GetString("server"), "/"),
		Timeout:   v.GetDuration("timeout"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.ServerURL == "" {
		return fmt.Errorf("server не может быть пустым")
	}
	u, err := url.Parse(c.ServerURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("server должен быть абсолютным URL, получено %q", c.ServerURL)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout должен быть положительным")
	}
	return nil
}
