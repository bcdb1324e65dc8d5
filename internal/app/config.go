package app

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"

	"futures-etl/internal/feature"
)

// Config holds application configuration from env (.env is honored).
type Config struct {
	DataProvider string // synthetic | csv
	CSVDir       string
	DataDir      string
	SaveFormat   string // csv | json | parquet
	LogLevel     string // debug | info | warn | error
	Primary      string // instrument quoted in the ratio numerator
	Secondary    string // instrument quoted in the ratio denominator
	UnitScale    float64
	Window       int
	Workers      int
	Seed         int64
	Days         int
}

// LoadConfig reads config from environment.
func LoadConfig() *Config {
	_ = godotenv.Load()

	return &Config{
		DataProvider: getEnv("DATA_PROVIDER", "synthetic"),
		CSVDir:       getEnv("CSV_DIR", "data/raw"),
		DataDir:      getEnv("DATA_DIR", "data"),
		SaveFormat:   getSaveFormat(),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		Primary:      getEnv("PRIMARY", "AU"),
		Secondary:    getEnv("SECONDARY", "AG"),
		UnitScale:    getEnvFloat("UNIT_SCALE", 1000), // gold CNY/gram vs silver CNY/kg
		Window:       getEnvInt("WINDOW", feature.DefaultWindow),
		Workers:      getEnvInt("WORKERS", 4),
		Seed:         int64(getEnvInt("SEED", 42)),
		Days:         getEnvInt("DAYS", 100),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getSaveFormat() string {
	if v := os.Getenv("SAVE_FORMAT"); v != "" {
		return v
	}
	switch os.Getenv("PROFILE") {
	case "dev", "development":
		return "csv"
	case "prod", "production", "":
		return "parquet"
	default:
		return "parquet"
	}
}

// AdjustedPath returns where one instrument's adjusted series is saved.
func (c *Config) AdjustedPath(instrument, ext string) string {
	return filepath.Join(c.DataDir, "adjusted_"+instrument+"."+ext)
}

// FeaturesPath returns where the pair's feature table is saved.
func (c *Config) FeaturesPath(ext string) string {
	return filepath.Join(c.DataDir, "features_"+c.Primary+"_"+c.Secondary+"."+ext)
}
