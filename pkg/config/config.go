package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	Shopify      ShopifyConfig
	Shipping     ShippingConfig
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
	Env          string `envconfig:"ANDES_APP_ENV" required:"true"`
	Port         string `envconfig:"ANDES_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"ANDES_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"ANDES_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"ANDES_DB_DSN"`
	Driver string `envconfig:"ANDES_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"ANDES_DB_HOST"`
	LegacyPort     int    `envconfig:"ANDES_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"ANDES_DB_USER"`
	LegacyPassword string `envconfig:"ANDES_DB_PASSWORD"`
	LegacyName     string `envconfig:"ANDES_DB_NAME"`
	LegacySSLMode  string `envconfig:"ANDES_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"ANDES_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"ANDES_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"ANDES_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"ANDES_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"ANDES_REDIS_URL"`
	Address      string        `envconfig:"ANDES_REDIS_ADDR"`
	Password     string        `envconfig:"ANDES_REDIS_PASSWORD"`
	DB           int           `envconfig:"ANDES_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"ANDES_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"ANDES_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"ANDES_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"ANDES_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"ANDES_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Enabled reports whether a redis endpoint was configured at all. The quote
// pipeline runs without redis; only the platform zone cache needs it.
func (r RedisConfig) Enabled() bool {
	return r.URL != "" || r.Address != ""
}

type ShopifyConfig struct {
	APIVersion    string        `envconfig:"ANDES_SHOPIFY_API_VERSION" default:"2023-10"`
	Timeout       time.Duration `envconfig:"ANDES_SHOPIFY_TIMEOUT" default:"10s"`
	ZonesCacheTTL time.Duration `envconfig:"ANDES_SHOPIFY_ZONES_CACHE_TTL" default:"5m"`
}

type ShippingConfig struct {
	DefaultOptionTitle string `envconfig:"ANDES_SHIPPING_DEFAULT_TITLE" default:"Envío estándar"`
	DefaultPriceCents  int    `envconfig:"ANDES_SHIPPING_DEFAULT_PRICE" default:"3990"`
	DefaultItemGrams   int    `envconfig:"ANDES_SHIPPING_DEFAULT_ITEM_GRAMS" default:"500"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"ANDES_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"ANDES_AUTO_MIGRATE" default:"false"`
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
