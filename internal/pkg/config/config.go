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
	Server       ServerConfig
	Store        StoreConfig
	Redis        RedisConfig
	Events       EventsConfig
	Booking      BookingConfig
	Notification NotificationConfig
	CORS         CORSConfig
	Log          LogConfig
	JWT          JWTConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

const (
	StoreDriverPostgres = "postgres"
	StoreDriverDynamoDB = "dynamodb"
)

type StoreConfig struct {
	Driver      string        `envconfig:"STORE_DRIVER" default:"postgres"`
	CallTimeout time.Duration `envconfig:"STORE_CALL_TIMEOUT" default:"3s"`
	ReadRetries uint64        `envconfig:"STORE_READ_RETRIES" default:"2"`
	Postgres    PostgresConfig
	DynamoDB    DynamoDBConfig
}

type PostgresConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER"`
	Password string `envconfig:"DB_PASSWORD"`
	DBName   string `envconfig:"DB_NAME"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type DynamoDBConfig struct {
	TableName string `envconfig:"MAIN_TABLE" default:"BadmintonClubTable"`
	Region    string `envconfig:"AWS_REGION" default:"ap-southeast-2"`
	// Endpoint overrides the service endpoint (DynamoDB Local, LocalStack).
	Endpoint string `envconfig:"DYNAMODB_ENDPOINT"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type EventsConfig struct {
	PublishTimeout time.Duration `envconfig:"EVENTS_PUBLISH_TIMEOUT" default:"2s"`
	WorkerEnabled  bool          `envconfig:"WORKER_ENABLED" default:"true"`
	ConsumerGroup  string        `envconfig:"EVENTS_CONSUMER_GROUP" default:"badminton-club"`
}

type BookingConfig struct {
	DurationPolicy    string `envconfig:"BOOKING_DURATION_POLICY" default:"whole_hour"`
	AdmissionAttempts int    `envconfig:"BOOKING_ADMISSION_ATTEMPTS" default:"3"`
}

type NotificationConfig struct {
	// Empty sender disables SES and falls back to logging notifications.
	FromEmail string `envconfig:"SES_FROM_EMAIL"`
	Region    string `envconfig:"SES_REGION" default:"ap-southeast-2"`
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
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret   string        `envconfig:"JWT_SECRET" required:"true"`
	Duration time.Duration `envconfig:"JWT_DURATION" default:"24h"`
}

func (c *PostgresConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c *StoreConfig) Validate() error {
	switch c.Driver {
	case StoreDriverPostgres:
		if c.Postgres.User == "" || c.Postgres.DBName == "" {
			return fmt.Errorf("DB_USER and DB_NAME are required for store driver %q", c.Driver)
		}
	case StoreDriverDynamoDB:
		if c.DynamoDB.TableName == "" {
			return fmt.Errorf("MAIN_TABLE is required for store driver %q", c.Driver)
		}
	default:
		return fmt.Errorf("unknown store driver %q", c.Driver)
	}
	return nil
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Store.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Store: StoreConfig{
			Driver:      StoreDriverPostgres,
			CallTimeout: time.Second,
			ReadRetries: 2,
			Postgres: PostgresConfig{
				Host:     "localhost",
				Port:     "15433", // Test DB port
				User:     "test",
				Password: "test",
				DBName:   "test_db",
				SSLMode:  "disable",
				TimeZone: "UTC",
				MaxConns: 5,
			},
		},
		Events: EventsConfig{
			PublishTimeout: time.Second,
			ConsumerGroup:  "badminton-club-test",
		},
		Booking: BookingConfig{
			DurationPolicy:    "whole_hour",
			AdmissionAttempts: 3,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: time.Hour,
		},
	}
}
