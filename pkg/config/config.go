package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "udongsi"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvDBDSN  = "UDONGSI_DB_DSN"
	EnvDBHost = "UDONGSI_DB_HOST"
	EnvDBUser = "UDONGSI_DB_USER"
	EnvDBName = "UDONGSI_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

type Config struct {
	App          AppConfig
	HTTP         HTTPConfig
	DB           DBConfig
	Redis        RedisConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"UDONGSI_APP_ENV" default:"dev"`
	Port         string `envconfig:"UDONGSI_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"UDONGSI_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"UDONGSI_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type HTTPConfig struct {
	ReadTimeout     time.Duration `envconfig:"UDONGSI_HTTP_READ_TIMEOUT" default:"15s"`
	WriteTimeout    time.Duration `envconfig:"UDONGSI_HTTP_WRITE_TIMEOUT" default:"30s"`
	ShutdownTimeout time.Duration `envconfig:"UDONGSI_HTTP_SHUTDOWN_TIMEOUT" default:"10s"`
	RequestTimeout  time.Duration `envconfig:"UDONGSI_HTTP_REQUEST_TIMEOUT" default:"10s"`
}

type DBConfig struct {
	DSN    string `envconfig:"UDONGSI_DB_DSN"`
	Driver string `envconfig:"UDONGSI_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"UDONGSI_DB_HOST"`
	LegacyPort     int    `envconfig:"UDONGSI_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"UDONGSI_DB_USER"`
	LegacyPassword string `envconfig:"UDONGSI_DB_PASSWORD"`
	LegacyName     string `envconfig:"UDONGSI_DB_NAME"`
	LegacySSLMode  string `envconfig:"UDONGSI_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"UDONGSI_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"UDONGSI_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"UDONGSI_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"UDONGSI_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"UDONGSI_REDIS_URL"`
	Address      string        `envconfig:"UDONGSI_REDIS_ADDR"`
	Password     string        `envconfig:"UDONGSI_REDIS_PASSWORD"`
	DB           int           `envconfig:"UDONGSI_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"UDONGSI_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"UDONGSI_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"UDONGSI_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"UDONGSI_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"UDONGSI_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"UDONGSI_FEATURE_AUTO_MIGRATE" default:"true"`
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
