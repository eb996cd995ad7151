package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/luisrmz-dev/vendoria-backend/api/validators"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Analytics    AnalyticsConfig
	FeatureFlags FeatureFlagsConfig
	CORS         CORSConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	if err := validators.ValidateStruct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"VENDORIA_APP_ENV" required:"true"`
	Port         string `envconfig:"VENDORIA_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"VENDORIA_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"VENDORIA_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"VENDORIA_DB_DSN"`
	Driver string `envconfig:"VENDORIA_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"VENDORIA_DB_HOST"`
	LegacyPort     int    `envconfig:"VENDORIA_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"VENDORIA_DB_USER"`
	LegacyPassword string `envconfig:"VENDORIA_DB_PASSWORD"`
	LegacyName     string `envconfig:"VENDORIA_DB_NAME"`
	LegacySSLMode  string `envconfig:"VENDORIA_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"VENDORIA_DB_MAX_OPEN_CONNS" default:"20" validate:"min=1"`
	MaxIdleConns    int           `envconfig:"VENDORIA_DB_MAX_IDLE_CONNS" default:"10" validate:"min=0"`
	ConnMaxLifetime time.Duration `envconfig:"VENDORIA_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"VENDORIA_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

// AnalyticsConfig bounds the report query parameters accepted over HTTP.
type AnalyticsConfig struct {
	MaxPeriodDays int `envconfig:"VENDORIA_ANALYTICS_MAX_PERIOD_DAYS" default:"365" validate:"min=1"`
	MaxWeeks      int `envconfig:"VENDORIA_ANALYTICS_MAX_WEEKS" default:"104" validate:"min=1"`
	MaxLimit      int `envconfig:"VENDORIA_ANALYTICS_MAX_LIMIT" default:"100" validate:"min=1"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"VENDORIA_AUTO_MIGRATE" default:"false"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"VENDORIA_CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
