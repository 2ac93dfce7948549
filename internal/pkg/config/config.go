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
	Server    ServerConfig
	Storage   StorageConfig
	DB        DBConfig
	Redis     RedisConfig
	Booking   BookingConfig
	Notify    NotifyConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Telemetry TelemetryConfig
}

type ServerConfig struct {
	Port            string        `envconfig:"PORT" required:"true"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`
}

const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

// memory keeps every store in process; used for local runs and tests without docker
type StorageConfig struct {
	Driver string `envconfig:"STORAGE_DRIVER" default:"postgres"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER"`
	Password string `envconfig:"DB_PASSWORD"`
	DBName   string `envconfig:"DB_NAME" default:"care_booking"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DraftDB  int    `envconfig:"REDIS_DRAFT_DB" default:"0"`
	QueueDB  int    `envconfig:"REDIS_QUEUE_DB" default:"1"`
}

type BookingConfig struct {
	SessionDuration   time.Duration `envconfig:"BOOKING_SESSION_DURATION" default:"60m"`
	SlotTimes         []string      `envconfig:"BOOKING_SLOT_TIMES" default:"09:00,10:00,11:00,12:00,14:00,15:00,16:00,17:00,18:00"`
	TimeZoneName      string        `envconfig:"BOOKING_TIMEZONE" default:"GMT+2"`
	TimeZoneOffset    int           `envconfig:"BOOKING_TIMEZONE_OFFSET" default:"7200"` // 2*60*60
	LowQuotaThreshold int           `envconfig:"BOOKING_LOW_QUOTA_THRESHOLD" default:"2"`
	DraftTTL          time.Duration `envconfig:"BOOKING_DRAFT_TTL" default:"30m"`
}

type NotifyConfig struct {
	// inline delivers in-process without a queue (memory storage / local runs)
	Mode           string `envconfig:"NOTIFY_MODE" default:"queue"`
	WorkerEnabled  bool   `envconfig:"NOTIFY_WORKER_ENABLED" default:"true"`
	Concurrency    int    `envconfig:"NOTIFY_CONCURRENCY" default:"10"`
	MaxRetry       int    `envconfig:"NOTIFY_MAX_RETRY" default:"5"`
	HighPriorityQ  string `envconfig:"NOTIFY_HIGH_QUEUE" default:"critical"`
	NormalPriority string `envconfig:"NOTIFY_NORMAL_QUEUE" default:"default"`
}

const (
	NotifyModeQueue  = "queue"
	NotifyModeInline = "inline"
)

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
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"GMT+2"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"7200"`
}

// tokens are issued by the external auth provider; only the shared secret is needed here
type JWTConfig struct {
	Secret string        `envconfig:"JWT_SECRET" required:"true"`
	Issuer string        `envconfig:"JWT_ISSUER"`
	Leeway time.Duration `envconfig:"JWT_LEEWAY" default:"30s"`
}

type TelemetryConfig struct {
	ServiceName string `envconfig:"OTEL_SERVICE_NAME" default:"care-booking"`
	Endpoint    string `envconfig:"OTEL_EXPORTER_ENDPOINT"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c BookingConfig) Location() *time.Location {
	return time.FixedZone(c.TimeZoneName, c.TimeZoneOffset)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if cfg.Storage.Driver != StorageDriverPostgres && cfg.Storage.Driver != StorageDriverMemory {
		return Config{}, fmt.Errorf("unsupported STORAGE_DRIVER %q", cfg.Storage.Driver)
	}
	if cfg.Notify.Mode != NotifyModeQueue && cfg.Notify.Mode != NotifyModeInline {
		return Config{}, fmt.Errorf("unsupported NOTIFY_MODE %q", cfg.Notify.Mode)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:            "8889", // Test port
			ShutdownTimeout: 5 * time.Second,
		},
		Storage: StorageConfig{
			Driver: StorageDriverMemory,
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 10,
		},
		Redis: RedisConfig{
			Addr:    "localhost:16379",
			DraftDB: 0,
			QueueDB: 1,
		},
		Booking: BookingConfig{
			SessionDuration:   60 * time.Minute,
			SlotTimes:         []string{"09:00", "10:00", "11:00", "12:00", "14:00", "15:00", "16:00", "17:00", "18:00"},
			TimeZoneName:      "GMT+2",
			TimeZoneOffset:    7200,
			LowQuotaThreshold: 2,
			DraftTTL:          30 * time.Minute,
		},
		Notify: NotifyConfig{
			Mode:           NotifyModeInline,
			WorkerEnabled:  false,
			Concurrency:    2,
			MaxRetry:       1,
			HighPriorityQ:  "critical",
			NormalPriority: "default",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "GMT+2",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 7200,
		},
		JWT: JWTConfig{
			Secret: "test-secret-key-for-booking-flow",
		},
		Telemetry: TelemetryConfig{
			ServiceName: "care-booking-test",
		},
	}
}
