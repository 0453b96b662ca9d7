package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection,
//   credentials for the PMS account)
// - default: Values common across all environments (timeouts, TTLs, paging)
// -----------------------------------------------------------------------------

type Config struct {
	Server ServerConfig
	DB     DBConfig
	Redis  RedisConfig
	CORS   CORSConfig
	Log    LogConfig
	JWT    JWTConfig
	PMS    PMSConfig
	Sync   SyncConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"America/Caracas"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"-14400"` // -4*60*60
}

type JWTConfig struct {
	Secret   string        `envconfig:"JWT_SECRET" required:"true"`
	Duration time.Duration `envconfig:"JWT_DURATION" default:"24h"`
}

// PMSConfig drives the property-management-system integration. TZOffset is
// the offset, in seconds, of the timezone the PMS reports modification
// timestamps in; it is a deployment fact, not a universal constant.
type PMSConfig struct {
	APIURL            string        `envconfig:"PMS_API_URL" default:"https://api.cloudbeds.com/api/v1.1"`
	APIKey            string        `envconfig:"PMS_API_KEY" required:"true"`
	PropertyID        string        `envconfig:"PMS_PROPERTY_ID" required:"true"`
	Enabled           bool          `envconfig:"PMS_ENABLED" default:"true"`
	RequestTimeout    time.Duration `envconfig:"PMS_REQUEST_TIMEOUT" default:"10s"`
	CatalogCacheTTL   time.Duration `envconfig:"PMS_CATALOG_CACHE_TTL" default:"24h"`
	InventoryCacheTTL time.Duration `envconfig:"PMS_INVENTORY_CACHE_TTL" default:"5m"`
	PageSize          int           `envconfig:"PMS_PAGE_SIZE" default:"100"`
	MaxPages          int           `envconfig:"PMS_MAX_PAGES" default:"50"`
	TZOffset          int           `envconfig:"PMS_TZ_OFFSET" default:"-14400"` // UTC-4
}

type SyncConfig struct {
	Enabled                  bool          `envconfig:"SYNC_CRON_ENABLED" default:"true"`
	Interval                 time.Duration `envconfig:"SYNC_INTERVAL" default:"5m"`
	WatermarkSkew            time.Duration `envconfig:"SYNC_WATERMARK_SKEW" default:"15m"`
	NotificationMaxAge       time.Duration `envconfig:"NOTIFICATION_MAX_AGE" default:"120h"` // 5 days
	NotificationCleanupEvery time.Duration `envconfig:"NOTIFICATION_CLEANUP_EVERY" default:"24h"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
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
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "America/Caracas",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: -14400,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: time.Hour,
		},
		PMS: PMSConfig{
			APIURL:            "http://localhost:18080",
			APIKey:            "test-key",
			PropertyID:        "test-property",
			Enabled:           false,
			RequestTimeout:    2 * time.Second,
			CatalogCacheTTL:   time.Minute,
			InventoryCacheTTL: time.Second,
			PageSize:          10,
			MaxPages:          3,
			TZOffset:          -14400,
		},
		Sync: SyncConfig{
			Enabled:       false,
			Interval:      5 * time.Minute,
			WatermarkSkew: 15 * time.Minute,
		},
	}
}
