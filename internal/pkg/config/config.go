package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Cookie  CookieConfig
	Funnel  FunnelConfig
	Metrics MetricsConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host          string `envconfig:"DB_HOST" default:"localhost"`
	Port          string `envconfig:"DB_PORT" default:"5432"`
	User          string `envconfig:"DB_USER" default:"mynbala"`
	Password      string `envconfig:"DB_PASSWORD" default:""`
	DBName        string `envconfig:"DB_NAME" default:"mynbala"`
	SSLMode       string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone      string `envconfig:"DB_TIMEZONE" default:"Asia/Almaty"`
	MaxConns      int32  `envconfig:"DB_MAX_CONNS" default:"20"`
	AutoMigrate   bool   `envconfig:"DB_AUTO_MIGRATE" default:"false"`
	MigrationsDir string `envconfig:"DB_MIGRATIONS_DIR" default:"file://migrations"`
	AtlasBin      string `envconfig:"ATLAS_BIN" default:"atlas"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Content-Disposition"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Almaty"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"18000"` // 5*60*60
}

// Tokens are issued by the external auth service; only validation happens here.
type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

type FunnelConfig struct {
	// LocalMode serves the demo catalog from CatalogFile and keeps orders in memory.
	LocalMode       bool          `envconfig:"FUNNEL_LOCAL_MODE" default:"false"`
	CatalogFile     string        `envconfig:"FUNNEL_CATALOG_FILE" default:""`
	DraftStore      string        `envconfig:"FUNNEL_DRAFT_STORE" default:"memory"` // memory | postgres | off
	DraftTTL        time.Duration `envconfig:"FUNNEL_DRAFT_TTL" default:"12h"`
	SessionTTL      time.Duration `envconfig:"FUNNEL_SESSION_TTL" default:"2h"`
	SweepInterval   time.Duration `envconfig:"FUNNEL_SWEEP_INTERVAL" default:"5m"`
	LoginPath       string        `envconfig:"FUNNEL_LOGIN_PATH" default:"/auth/login"`
	ReturnPath      string        `envconfig:"FUNNEL_RETURN_PATH" default:"/tickets"`
	SuccessPath     string        `envconfig:"FUNNEL_SUCCESS_PATH" default:"/tickets/success"`
	RedirectDelay   time.Duration `envconfig:"FUNNEL_REDIRECT_DELAY" default:"500ms"`
	OrderValidity   time.Duration `envconfig:"FUNNEL_ORDER_VALIDITY" default:"24h"`
	ReferencePrefix string        `envconfig:"FUNNEL_REFERENCE_PREFIX" default:"MYNBALA"`
}

type MetricsConfig struct {
	Enabled   bool   `envconfig:"METRICS_ENABLED" default:"true"`
	Path      string `envconfig:"METRICS_PATH" default:"/metrics"`
	Namespace string `envconfig:"METRICS_NAMESPACE" default:"mynbala"`
}

// BuildURL returns a plain postgres URL, usable by external tools.
func (c *DBConfig) BuildURL() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

// BuildDSN adds pgxpool settings to BuildURL.
func (c *DBConfig) BuildDSN() string {
	dsn := c.BuildURL()
	if c.MaxConns > 0 {
		dsn += fmt.Sprintf("&pool_max_conns=%d", c.MaxConns)
	}
	return dsn
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Asia/Almaty",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Almaty",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 18000,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Cookie: CookieConfig{
			SameSite: "Lax",
		},
		Funnel: FunnelConfig{
			DraftStore:      "memory",
			DraftTTL:        time.Hour,
			SessionTTL:      time.Hour,
			SweepInterval:   time.Minute,
			LoginPath:       "/auth/login",
			ReturnPath:      "/tickets",
			SuccessPath:     "/tickets/success",
			RedirectDelay:   500 * time.Millisecond,
			OrderValidity:   24 * time.Hour,
			ReferencePrefix: "MYNBALA",
		},
		Metrics: MetricsConfig{
			Enabled:   false,
			Path:      "/metrics",
			Namespace: "mynbala_test",
		},
	}
}
