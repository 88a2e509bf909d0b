package config

const EnvPrefix = "BOARDCAMP"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "production"
)

const (
	EnvAppEnv   = "BOARDCAMP_APP_ENV"
	EnvPort     = "BOARDCAMP_APP_PORT"
	EnvDBDSN    = "BOARDCAMP_DB_DSN"
	EnvDBHost   = "BOARDCAMP_DB_HOST"
	EnvDBUser   = "BOARDCAMP_DB_USER"
	EnvDBName   = "BOARDCAMP_DB_NAME"
	EnvRedisURL = "BOARDCAMP_REDIS_URL"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
