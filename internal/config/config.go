package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/UnknownOlympus/groundtruth/internal/geodetic"
	"github.com/UnknownOlympus/groundtruth/internal/models"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Conversion modes accepted in GT_MODE.
const (
	ModeCorrected = "corrected"
	ModeLegacy    = "legacy"
)

// Config holds the configuration settings for the ground truth service.
//
// Fields:
// - Env: The current environment (e.g., local, development, production).
// - Port: The port for the monitoring server.
// - Reference: The origin of the local NED frame.
// - Mode: The conversion mode, corrected or legacy.
// - ProviderType: The elevation provider to use (fixed, google, openelevation).
// - APIKey: The API key for the elevation provider (required for Google).
// - RateLimit: Requests per second allowed against the elevation provider.
// - Workers: The number of concurrent workers converting fixes.
// - Interval: The duration between polls for pending fixes.
// - Database: Configuration settings for the PostgreSQL database.
type Config struct {
	Env          string                `yaml:"env"`
	Port         int                   `yaml:"health_port"`
	Reference    models.ReferencePoint `yaml:"reference"`
	Mode         string                `yaml:"mode"`
	ProviderType string                `yaml:"elevation.provider"`
	APIKey       string                `yaml:"elevation.key"`
	RateLimit    int                   `yaml:"elevation.rate"`
	Workers      int                   `yaml:"workers"`
	Interval     time.Duration         `yaml:"interval"`
	Database     PostgresConfig        `yaml:"postgres"`
}

// PostgresConfig struct holds the configuration details for connecting to a PostgreSQL database.
type PostgresConfig struct {
	Host     string `yaml:"host"`     // Host is the database server address.
	Port     string `yaml:"port"`     // Port is the database server port.
	User     string `yaml:"user"`     // User is the database user.
	Password string `yaml:"password"` // Password is the database user's password.
	Name     string `yaml:"db_name"`  // Name is the name of the database.
}

// ConverterOptions maps Mode onto the converter options.
func (c *Config) ConverterOptions() geodetic.Options {
	if c.Mode == ModeLegacy {
		return geodetic.LegacyOptions()
	}

	return geodetic.CorrectedOptions()
}

// bindings maps configuration keys to their environment variables.
var bindings = map[string]string{
	"env":                 "GT_ENV",
	"health_port":         "GT_HEALTH_PORT",
	"reference.latitude":  "GT_REF_LATITUDE",
	"reference.longitude": "GT_REF_LONGITUDE",
	"reference.altitude":  "GT_REF_ALTITUDE",
	"mode":                "GT_MODE",
	"elevation.provider":  "GT_ELEVATION_PROVIDER",
	"elevation.key":       "GT_ELEVATION_KEY",
	"elevation.rate":      "GT_ELEVATION_RATE",
	"workers":             "GT_WORKERS",
	"interval":            "GT_INTERVAL",
	"postgres.host":       "DB_HOST",
	"postgres.port":       "DB_PORT",
	"postgres.user":       "DB_USERNAME",
	"postgres.password":   "DB_PASSWORD",
	"postgres.db_name":    "DB_NAME",
}

// MustLoad reads the optional YAML file named by GT_CONFIG_FILE, overlays the
// environment (including a .env file) and returns the resulting Config.
// It panics when a value cannot be parsed.
func MustLoad() *Config {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	for key, env := range bindings {
		_ = v.BindEnv(key, env)
	}

	if path := os.Getenv("GT_CONFIG_FILE"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			panic("failed to read configuration file")
		}
	}

	interval, err := time.ParseDuration(v.GetString("interval"))
	if err != nil {
		panic("failed to parse interval from configuration")
	}

	healthPort, err := strconv.Atoi(v.GetString("health_port"))
	if err != nil {
		panic("failed to parse port for monitoring server from configuration")
	}

	workers, err := strconv.Atoi(v.GetString("workers"))
	if err != nil || workers < 1 {
		panic("failed to parse workers from configuration, must be a positive integer")
	}

	rateLimit, err := strconv.Atoi(v.GetString("elevation.rate"))
	if err != nil {
		panic("failed to parse elevation rate limit from configuration")
	}

	altitude, err := strconv.ParseFloat(v.GetString("reference.altitude"), 64)
	if err != nil {
		panic("failed to parse reference altitude from configuration")
	}

	mode := strings.ToLower(v.GetString("mode"))
	if mode != ModeCorrected && mode != ModeLegacy {
		panic("failed to parse mode from configuration, must be corrected or legacy")
	}

	return &Config{
		Env:  v.GetString("env"),
		Port: healthPort,
		Reference: models.ReferencePoint{
			Latitude:  v.GetString("reference.latitude"),
			Longitude: v.GetString("reference.longitude"),
			Altitude:  altitude,
		},
		Mode:         mode,
		ProviderType: v.GetString("elevation.provider"),
		APIKey:       v.GetString("elevation.key"),
		RateLimit:    rateLimit,
		Workers:      workers,
		Interval:     interval,
		Database: PostgresConfig{
			Host:     v.GetString("postgres.host"),
			Port:     v.GetString("postgres.port"),
			User:     v.GetString("postgres.user"),
			Password: v.GetString("postgres.password"),
			Name:     v.GetString("postgres.db_name"),
		},
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "production")
	v.SetDefault("health_port", "8080")
	v.SetDefault("reference.latitude", geodetic.DefaultReference.Latitude)
	v.SetDefault("reference.longitude", geodetic.DefaultReference.Longitude)
	v.SetDefault("reference.altitude", strconv.FormatFloat(geodetic.DefaultReference.Altitude, 'f', -1, 64))
	v.SetDefault("mode", ModeCorrected)
	v.SetDefault("elevation.provider", "fixed")
	v.SetDefault("elevation.rate", "1")
	v.SetDefault("workers", "10")
	v.SetDefault("interval", "1m")
	v.SetDefault("postgres.port", "5432")
}
