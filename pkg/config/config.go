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
	Service      ServiceConfig
	DB           DBConfig
	Redis        RedisConfig
	FeatureFlags FeatureFlagsConfig
	Items        ItemsConfig
	Sweeper      SweeperConfig
	Dashboard    DashboardConfig
	GCP          GCPConfig
	PubSub       PubSubConfig
}

// Load reads the full configuration. The DB section is only validated for services that use it.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// LoadWithDB loads the configuration and requires a usable database DSN.
func LoadWithDB() (*Config, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}
	if err := cfg.DB.ensureDSN(cfg.FeatureFlags.UseSQLite); err != nil {
		return nil, err
	}
	return cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"QUIZWIZARD_APP_ENV" required:"true"`
	Port         string `envconfig:"QUIZWIZARD_APP_PORT" default:"8001"`
	LogLevel     string `envconfig:"QUIZWIZARD_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"QUIZWIZARD_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type ServiceConfig struct {
	Kind string `envconfig:"QUIZWIZARD_SERVICE_KIND" default:"api"`
}

type DBConfig struct {
	DSN    string `envconfig:"QUIZWIZARD_DB_DSN"`
	Driver string `envconfig:"QUIZWIZARD_DB_DRIVER" default:"postgres"`

	SQLitePath string `envconfig:"QUIZWIZARD_DB_SQLITE_PATH" default:"quizwizard.db"`

	LegacyHost     string `envconfig:"QUIZWIZARD_DB_HOST"`
	LegacyPort     int    `envconfig:"QUIZWIZARD_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"QUIZWIZARD_DB_USER"`
	LegacyPassword string `envconfig:"QUIZWIZARD_DB_PASSWORD"`
	LegacyName     string `envconfig:"QUIZWIZARD_DB_NAME"`
	LegacySSLMode  string `envconfig:"QUIZWIZARD_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"QUIZWIZARD_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"QUIZWIZARD_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"QUIZWIZARD_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"QUIZWIZARD_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

// IsSQLite reports whether the store runs on the embedded SQLite driver.
func (db DBConfig) IsSQLite() bool {
	return strings.EqualFold(db.Driver, "sqlite")
}

type RedisConfig struct {
	URL          string        `envconfig:"QUIZWIZARD_REDIS_URL"`
	Address      string        `envconfig:"QUIZWIZARD_REDIS_ADDR"`
	Password     string        `envconfig:"QUIZWIZARD_REDIS_PASSWORD"`
	DB           int           `envconfig:"QUIZWIZARD_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"QUIZWIZARD_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"QUIZWIZARD_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"QUIZWIZARD_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"QUIZWIZARD_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"QUIZWIZARD_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Enabled reports whether any redis endpoint was configured.
func (r RedisConfig) Enabled() bool {
	return strings.TrimSpace(r.URL) != "" || strings.TrimSpace(r.Address) != ""
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"QUIZWIZARD_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"QUIZWIZARD_AUTO_MIGRATE" default:"false"`
}

type ItemsConfig struct {
	BaseURL           string        `envconfig:"QUIZWIZARD_ITEMS_API_BASE_URL"`
	DemoModeOnFailure bool          `envconfig:"QUIZWIZARD_ITEMS_DEMO_MODE_ON_FAILURE" default:"true"`
	RequestTimeout    time.Duration `envconfig:"QUIZWIZARD_ITEMS_REQUEST_TIMEOUT" default:"0s"`
}

// ResolveBaseURL mirrors the browser build: dev always targets the local backend,
// other environments use the override or the production placeholder.
func (i ItemsConfig) ResolveBaseURL(app AppConfig) string {
	if app.IsDev() {
		return DevItemsBaseURL
	}
	if trimmed := strings.TrimSpace(i.BaseURL); trimmed != "" {
		return strings.TrimRight(trimmed, "/")
	}
	return PlaceholderItemsBaseURL
}

type SweeperConfig struct {
	Interval  time.Duration `envconfig:"QUIZWIZARD_SWEEPER_INTERVAL" default:"1h"`
	GraceDays int           `envconfig:"QUIZWIZARD_SWEEPER_GRACE_DAYS" default:"7"`
	LockTTL   time.Duration `envconfig:"QUIZWIZARD_SWEEPER_LOCK_TTL" default:"55m"`
}

type DashboardConfig struct {
	Port             string   `envconfig:"QUIZWIZARD_DASHBOARD_PORT" default:"8080"`
	FabricateMetrics bool     `envconfig:"QUIZWIZARD_DASHBOARD_FABRICATE_METRICS" default:"false"`
	CORSOrigins      []string `envconfig:"QUIZWIZARD_DASHBOARD_CORS_ORIGINS" default:"http://localhost:5173,http://localhost:8080"`
}

type GCPConfig struct {
	ProjectID string `envconfig:"QUIZWIZARD_GCP_PROJECT_ID"`
}

type PubSubConfig struct {
	ItemsTopic string `envconfig:"QUIZWIZARD_PUBSUB_ITEMS_TOPIC"`
}

// Enabled reports whether item events should be published.
func (p PubSubConfig) Enabled(gcp GCPConfig) bool {
	return strings.TrimSpace(gcp.ProjectID) != "" && strings.TrimSpace(p.ItemsTopic) != ""
}

func (db *DBConfig) ensureDSN(useSQLite bool) error {
	if useSQLite {
		db.Driver = "sqlite"
	}
	if db.IsSQLite() {
		if db.DSN == "" {
			db.DSN = db.SQLitePath
		}
		return nil
	}
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
