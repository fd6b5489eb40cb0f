package config

const EnvPrefix = "SKB"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvAppEnv       = "SKB_APP_ENV"
	EnvPort         = "SKB_APP_PORT"
	EnvLogLevel     = "SKB_LOG_LEVEL"
	EnvLogFormat    = "SKB_LOG_FORMAT"
	EnvLogWarnStack = "SKB_LOG_WARN_STACK"
	EnvShutdownWait = "SKB_SHUTDOWN_TIMEOUT"

	EnvRedisURL       = "SKB_REDIS_URL"
	EnvRedisAddr      = "SKB_REDIS_ADDR"
	EnvRedisPassword  = "SKB_REDIS_PASSWORD"
	EnvRedisNamespace = "SKB_REDIS_NAMESPACE"

	EnvPasscodeHash        = "SKB_PASSCODE_HASH"
	EnvPasscodeRateWindow  = "SKB_PASSCODE_RATE_WINDOW"
	EnvPasscodeRateIPLimit = "SKB_PASSCODE_RATE_IP_LIMIT"

	EnvSessionTTL = "SKB_SESSION_TTL"
)
