package config

// EnvPrefix scopes every configuration variable of this service.
const EnvPrefix = "STITCH"

const (
	EnvAppEnv       = "STITCH_APP_ENV"
	EnvPort         = "STITCH_APP_PORT"
	EnvLogLevel     = "STITCH_LOG_LEVEL"
	EnvLogWarnStack = "STITCH_LOG_WARN_STACK"
	EnvCORSOrigin   = "STITCH_CORS_ORIGIN"
)

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)
