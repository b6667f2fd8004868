package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type AppConfig struct {
	Host             string
	Port             string
	DBDriver         string
	DBDSN            string
	DroneRatePerAcre float64
	LogLevel         string
	LogFormat        string
	RateLimitRPS     float64
	Debug            bool
}

func (c AppConfig) Addr() string { return c.Host + ":" + c.Port }

// Load reads .env (if present), then environment variables, with an optional
// config file underneath. Environment always wins over the file.
func Load(configFile string) (AppConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return AppConfig{}, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	v.SetDefault("HOST", "0.0.0.0")
	v.SetDefault("PORT", "8080")
	v.SetDefault("DB_DRIVER", "sqlite")
	v.SetDefault("DB_DSN", "farmers.db")
	v.SetDefault("DRONE_RATE_PER_ACRE", 200.0)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("RATE_LIMIT_RPS", 0.0)
	v.SetDefault("DEBUG", false)
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return AppConfig{}, fmt.Errorf("read config %s: %w", configFile, err)
		}
	}

	cfg := AppConfig{
		Host:             v.GetString("HOST"),
		Port:             v.GetString("PORT"),
		DBDriver:         v.GetString("DB_DRIVER"),
		DBDSN:            v.GetString("DB_DSN"),
		DroneRatePerAcre: v.GetFloat64("DRONE_RATE_PER_ACRE"),
		LogLevel:         v.GetString("LOG_LEVEL"),
		LogFormat:        v.GetString("LOG_FORMAT"),
		RateLimitRPS:     v.GetFloat64("RATE_LIMIT_RPS"),
		Debug:            v.GetBool("DEBUG"),
	}
	return cfg, cfg.validate()
}

func (c AppConfig) validate() error {
	switch c.DBDriver {
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q (want sqlite or postgres)", c.DBDriver)
	}
	if c.DBDSN == "" {
		return errors.New("DB_DSN is required")
	}
	if c.DroneRatePerAcre < 0 {
		return fmt.Errorf("DRONE_RATE_PER_ACRE must not be negative, got %v", c.DroneRatePerAcre)
	}
	if c.RateLimitRPS < 0 {
		return fmt.Errorf("RATE_LIMIT_RPS must not be negative, got %v", c.RateLimitRPS)
	}
	return nil
}
