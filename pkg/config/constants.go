package config

// EnvPrefix is the envconfig prefix shared by every binary.
const EnvPrefix = "vendoria"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

// Environment variable names, kept in one place so tests and docs stay honest.
const (
	EnvAppEnv   = "VENDORIA_APP_ENV"
	EnvPort     = "VENDORIA_APP_PORT"
	EnvLogLevel = "VENDORIA_LOG_LEVEL"

	EnvDBDSN      = "VENDORIA_DB_DSN"
	EnvDBDriver   = "VENDORIA_DB_DRIVER"
	EnvDBHost     = "VENDORIA_DB_HOST"
	EnvDBPort     = "VENDORIA_DB_PORT"
	EnvDBUser     = "VENDORIA_DB_USER"
	EnvDBPassword = "VENDORIA_DB_PASSWORD"
	EnvDBName     = "VENDORIA_DB_NAME"
	EnvDBSSLMode  = "VENDORIA_DB_SSLMODE"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
