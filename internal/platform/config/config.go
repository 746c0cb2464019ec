package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr           string
	Environment    string
	JWTSecret      string
	PayslipDir     string
	MaxBodyBytes   int64
	MetricsEnabled bool
	// ARLRates maps an occupational-risk class to its deduction fraction.
	// Classes without an entry deduct nothing.
	ARLRates map[int]float64
}

func Load() Config {
	_ = godotenv.Load()

	return Config{
		Addr:           getEnv("APP_ADDR", ":8080"),
		Environment:    getEnv("APP_ENV", "development"),
		JWTSecret:      getEnv("JWT_SECRET", ""),
		PayslipDir:     getEnv("PAYSLIP_DIR", "storage/payslips"),
		MaxBodyBytes:   int64(getEnvInt("MAX_BODY_BYTES", 1048576)),
		MetricsEnabled: getEnvBool("METRICS_ENABLED", true),
		ARLRates:       parseARLRates(getEnv("ARL_RISK_RATES", "")),
	}
}

// RiskRate resolves the ARL fraction for a risk class. Zero when the class
// is absent from the schedule.
func (c Config) RiskRate(class int) float64 {
	return c.ARLRates[class]
}

func (c Config) Validate() error {
	if c.MaxBodyBytes < 1024 {
		return fmt.Errorf("MAX_BODY_BYTES must be at least 1024")
	}
	if c.Environment == "production" && strings.TrimSpace(c.JWTSecret) == "" {
		return fmt.Errorf("JWT_SECRET must be set in production")
	}
	for class, rate := range c.ARLRates {
		if class < 1 || class > 5 {
			return fmt.Errorf("ARL_RISK_RATES: risk class %d out of range", class)
		}
		if rate < 0 || rate >= 1 {
			return fmt.Errorf("ARL_RISK_RATES: rate for class %d must be a fraction below 1", class)
		}
	}
	return nil
}

// parseARLRates parses "class:rate" pairs, e.g. "1:0.00522,2:0.01044".
// Malformed pairs are skipped; Validate rejects out-of-range values.
func parseARLRates(raw string) map[int]float64 {
	rates := make(map[int]float64)
	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		parts := strings.SplitN(pair, ":", 2)
		if len(parts) != 2 {
			continue
		}
		class, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			continue
		}
		rate, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			continue
		}
		rates[class] = rate
	}
	return rates
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
