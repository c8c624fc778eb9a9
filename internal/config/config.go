package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port      string
	DbHost    string
	DbPort    string
	DbUser    string
	DbPass    string
	DbName    string
	DbSSLMode string
	DbMaxConn int32

	AutoMigrate bool

	Log      string // dev|prod
	LogLevel string
	LogDir   string
	Env      string // development|test|production

	CORSOrigins    []string
	RateLimitRPS   float64
	RateLimitBurst int

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// LoadConfig reads .env.<ENV> and .env (both optional), then the process
// environment, and fills in defaults. It does not log so that the logger can
// depend on it.
func LoadConfig() (*Config, error) {
	env := strings.ToLower(def(os.Getenv("ENV"), "development"))
	_ = godotenv.Load(".env." + env)
	_ = godotenv.Load(".env")

	maxConns, err := intEnv("DB_MAX_CONNS", 10)
	if err != nil {
		return nil, err
	}
	burst, err := intEnv("RATE_LIMIT_BURST", 20)
	if err != nil {
		return nil, err
	}
	rps, err := floatEnv("RATE_LIMIT_RPS", 0)
	if err != nil {
		return nil, err
	}
	readTimeout, err := durationEnv("READ_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}
	writeTimeout, err := durationEnv("WRITE_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}
	shutdownTimeout, err := durationEnv("SHUTDOWN_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Port:      def(os.Getenv("PORT"), "8080"),
		DbHost:    os.Getenv("DB_HOST"),
		DbPort:    def(os.Getenv("DB_PORT"), "5432"),
		DbUser:    os.Getenv("DB_USER"),
		DbPass:    os.Getenv("DB_PASSWORD"),
		DbName:    os.Getenv("DB_NAME"),
		DbSSLMode: def(os.Getenv("DB_SSLMODE"), "disable"),
		DbMaxConn: int32(maxConns),

		AutoMigrate: strings.EqualFold(strings.TrimSpace(os.Getenv("AUTO_MIGRATE")), "true"),

		Log:      strings.ToLower(def(os.Getenv("LOG"), "prod")),
		LogLevel: strings.ToLower(def(os.Getenv("LOGLEVEL"), "info")),
		LogDir:   def(os.Getenv("LOG_DIR"), "logs"),
		Env:      env,

		CORSOrigins:    splitList(def(os.Getenv("CORS_ORIGINS"), "*")),
		RateLimitRPS:   rps,
		RateLimitBurst: burst,

		ReadTimeout:     readTimeout,
		WriteTimeout:    writeTimeout,
		ShutdownTimeout: shutdownTimeout,
	}

	return cfg, nil
}

// Validate returns warnings and a fatal error when the config is unusable.
func (c *Config) Validate() (warnings []string, err error) {
	if c.DbHost == "" || c.DbUser == "" || c.DbName == "" {
		return nil, fmt.Errorf("incomplete DB config (DB_HOST/DB_USER/DB_NAME)")
	}

	if c.DbMaxConn <= 0 {
		return nil, fmt.Errorf("DB_MAX_CONNS must be positive, got %d", c.DbMaxConn)
	}

	if c.Port == "" {
		warnings = append(warnings, "PORT is empty, using default 8080")
	}

	if c.RateLimitRPS > 0 && c.RateLimitBurst <= 0 {
		warnings = append(warnings, "RATE_LIMIT_BURST is not positive, rate limiting will reject every request")
	}

	if len(c.CORSOrigins) == 1 && c.CORSOrigins[0] == "*" && c.Env == "production" {
		warnings = append(warnings, "CORS allows any origin in production")
	}

	return warnings, nil
}

// GetDSN returns the full DSN, password included.
func (c *Config) GetDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DbUser, c.DbPass, c.DbHost, c.DbPort, c.DbName, c.DbSSLMode,
	)
}

// GetDSNSafe returns the DSN with the password masked, for logs.
func (c *Config) GetDSNSafe() string {
	return fmt.Sprintf(
		"postgres://%s:***@%s:%s/%s?sslmode=%s",
		c.DbUser, c.DbHost, c.DbPort, c.DbName, c.DbSSLMode,
	)
}

func def(v, d string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return d
	}
	return v
}

func intEnv(key string, d int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return d, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return n, nil
}

func floatEnv(key string, d float64) (float64, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return d, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return f, nil
}

func durationEnv(key string, d time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return d, nil
	}
	dur, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return dur, nil
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
