package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App      AppConfig
	Redis    RedisConfig
	Passcode PasscodeConfig
	Session  SessionConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string        `envconfig:"SKB_APP_ENV" required:"true"`
	Port         string        `envconfig:"SKB_APP_PORT" default:"8080"`
	LogLevel     string        `envconfig:"SKB_LOG_LEVEL" default:"info"`
	LogFormat    string        `envconfig:"SKB_LOG_FORMAT" default:"json"`
	LogWarnStack bool          `envconfig:"SKB_LOG_WARN_STACK" default:"false"`
	ShutdownWait time.Duration `envconfig:"SKB_SHUTDOWN_TIMEOUT" default:"10s"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type RedisConfig struct {
	URL          string        `envconfig:"SKB_REDIS_URL"`
	Address      string        `envconfig:"SKB_REDIS_ADDR"`
	Password     string        `envconfig:"SKB_REDIS_PASSWORD"`
	DB           int           `envconfig:"SKB_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"SKB_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"SKB_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"SKB_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"SKB_REDIS_READ_TIMEOUT" default:"3s"`
	WriteTimeout time.Duration `envconfig:"SKB_REDIS_WRITE_TIMEOUT" default:"3s"`
	Namespace    string        `envconfig:"SKB_REDIS_NAMESPACE" default:"skb"`
}

// PasscodeConfig guards the agent API with one shared passcode. Hash is an
// encoded argon2id string; the Argon* fields apply when hashing a new one.
type PasscodeConfig struct {
	Hash             string        `envconfig:"SKB_PASSCODE_HASH" required:"true"`
	ArgonMemoryKB    int           `envconfig:"SKB_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int           `envconfig:"SKB_ARGON_TIME" default:"3"`
	ArgonParallelism int           `envconfig:"SKB_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int           `envconfig:"SKB_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int           `envconfig:"SKB_ARGON_KEY_LEN" default:"32"`
	RateWindow       time.Duration `envconfig:"SKB_PASSCODE_RATE_WINDOW" default:"1m"`
	RateIPLimit      int           `envconfig:"SKB_PASSCODE_RATE_IP_LIMIT" default:"30"`
}

type SessionConfig struct {
	TTL time.Duration `envconfig:"SKB_SESSION_TTL" default:"12h"`
}

func (c *Config) validate() error {
	if c.Redis.URL == "" && c.Redis.Address == "" {
		return fmt.Errorf("either %s or %s is required", EnvRedisURL, EnvRedisAddr)
	}
	if c.Session.TTL <= 0 {
		return fmt.Errorf("%s must be positive", EnvSessionTTL)
	}
	if c.Passcode.RateIPLimit <= 0 || c.Passcode.RateWindow <= 0 {
		return fmt.Errorf("%s and %s must be positive", EnvPasscodeRateIPLimit, EnvPasscodeRateWindow)
	}
	return nil
}
