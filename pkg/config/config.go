package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env string

	Database DatabaseConfig
	Seed     SeedConfig
	Export   ExportConfig
	Log      LogConfig
}

type DatabaseConfig struct {
	Path        string
	BusyTimeout time.Duration
}

// SeedConfig locates the bundled roadmap document used for first-run import.
type SeedConfig struct {
	Path string
}

// ExportConfig controls where roadmap reports are written.
type ExportConfig struct {
	Dir string
}

type LogConfig struct {
	Level  string
	Format string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")

	cfg.Database = DatabaseConfig{
		Path:        v.GetString("DB_PATH"),
		BusyTimeout: parseDuration(v.GetString("DB_BUSY_TIMEOUT"), 5*time.Second),
	}

	cfg.Seed = SeedConfig{Path: v.GetString("SEED_PATH")}
	cfg.Export = ExportConfig{Dir: v.GetString("EXPORT_DIR")}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)

	v.SetDefault("DB_PATH", "data/courses.db")
	v.SetDefault("DB_BUSY_TIMEOUT", "5s")

	v.SetDefault("SEED_PATH", "data/roadmap.json")
	v.SetDefault("EXPORT_DIR", "exports")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}
