package config

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Dashboard guard levels.
const (
	GuardNone     = "none"
	GuardIdentity = "identity"
	GuardAdmin    = "admin"
)

type Config struct {
	App struct {
		Env string `mapstructure:"env"`
	} `mapstructure:"app"`

	Server struct {
		Port               string        `mapstructure:"port"`
		ReadTimeout        time.Duration `mapstructure:"read_timeout"`
		WriteTimeout       time.Duration `mapstructure:"write_timeout"`
		IdleTimeout        time.Duration `mapstructure:"idle_timeout"`
		CorsAllowedOrigins []string      `mapstructure:"cors_allowed_origins"`
	} `mapstructure:"server"`

	Database struct {
		Host       string `mapstructure:"host"`
		Port       string `mapstructure:"port"`
		User       string `mapstructure:"user"`
		Password   string `mapstructure:"password"`
		Name       string `mapstructure:"name"`
		SSLMode    string `mapstructure:"sslmode"`
		MaxRetries int    `mapstructure:"max_retries"`
	} `mapstructure:"database"`

	JWT struct {
		Secret string        `mapstructure:"secret"`
		TTL    time.Duration `mapstructure:"ttl"`
	} `mapstructure:"jwt"`

	Auth struct {
		// Status returned when a bearer token is present but does not verify.
		InvalidTokenStatus int `mapstructure:"invalid_token_status"`
	} `mapstructure:"auth"`

	Dashboard struct {
		Guard    string        `mapstructure:"guard"`
		CacheTTL time.Duration `mapstructure:"cache_ttl"`
	} `mapstructure:"dashboard"`

	Redis struct {
		Addr string `mapstructure:"addr"`
	} `mapstructure:"redis"`

	Kafka struct {
		Broker       string        `mapstructure:"broker"`
		PollInterval time.Duration `mapstructure:"poll_interval"`
	} `mapstructure:"kafka"`
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

// DSN builds the postgres connection string used by gorm.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.Database.Host, c.Database.User, c.Database.Password,
		c.Database.Name, c.Database.Port, c.Database.SSLMode,
	)
}

// envBindings maps config keys to the environment variables that override
// them. The PG* names are the libpq variables and are accepted as aliases.
var envBindings = map[string][]string{
	"app.env":                     {"APP_ENV"},
	"server.port":                 {"PORT"},
	"server.cors_allowed_origins": {"CORS_ALLOWED_ORIGINS"},
	"database.host":               {"DB_HOST", "PGHOST"},
	"database.port":               {"DB_PORT", "PGPORT"},
	"database.user":               {"DB_USER", "PGUSER"},
	"database.password":           {"DB_PASSWORD", "PGPASSWORD"},
	"database.name":               {"DB_NAME", "PGDATABASE"},
	"database.sslmode":            {"DB_SSLMODE"},
	"jwt.secret":                  {"JWT_SECRET"},
	"jwt.ttl":                     {"JWT_TTL"},
	"auth.invalid_token_status":   {"AUTH_INVALID_TOKEN_STATUS"},
	"dashboard.guard":             {"DASHBOARD_GUARD"},
	"dashboard.cache_ttl":         {"DASHBOARD_CACHE_TTL"},
	"redis.addr":                  {"REDIS_ADDR"},
	"kafka.broker":                {"KAFKA_BROKER"},
	"kafka.poll_interval":         {"KAFKA_POLL_INTERVAL"},
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.env", "development")
	v.SetDefault("server.port", "5000")
	v.SetDefault("server.read_timeout", 5*time.Second)
	v.SetDefault("server.write_timeout", 10*time.Second)
	v.SetDefault("server.idle_timeout", 60*time.Second)
	v.SetDefault("server.cors_allowed_origins", []string{"*"})
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.name", "leave")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_retries", 5)
	v.SetDefault("jwt.ttl", time.Hour)
	v.SetDefault("auth.invalid_token_status", http.StatusUnauthorized)
	v.SetDefault("dashboard.guard", GuardNone)
	v.SetDefault("dashboard.cache_ttl", 5*time.Minute)
	v.SetDefault("redis.addr", "")
	v.SetDefault("kafka.broker", "")
	v.SetDefault("kafka.poll_interval", 3*time.Second)
}

// Load reads .env (optional), configs/config.yaml (optional) and the
// environment, in increasing order of precedence.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile(configPath())
	setDefaults(v)

	for key, envs := range envBindings {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return nil, err
		}
	}

	if err := v.ReadInConfig(); err != nil {
		zap.L().Debug("no config file found, using defaults and environment", zap.Error(err))
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config unmarshal: %w", err)
	}

	// the environment form is a comma separated list
	cfg.Server.CorsAllowedOrigins = splitList(strings.Join(cfg.Server.CorsAllowedOrigins, ","))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("jwt.secret (JWT_SECRET) is required")
	}
	if c.JWT.TTL <= 0 {
		return fmt.Errorf("jwt.ttl must be positive")
	}
	switch c.Auth.InvalidTokenStatus {
	case http.StatusUnauthorized, http.StatusForbidden:
	default:
		return fmt.Errorf("auth.invalid_token_status must be 401 or 403, got %d", c.Auth.InvalidTokenStatus)
	}
	switch c.Dashboard.Guard {
	case GuardNone, GuardIdentity, GuardAdmin:
	default:
		return fmt.Errorf("dashboard.guard must be one of none, identity, admin, got %q", c.Dashboard.Guard)
	}
	return nil
}

func configPath() string {
	if p := os.Getenv("CONFIG_FILE"); p != "" {
		return p
	}
	return "configs/config.yaml"
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
