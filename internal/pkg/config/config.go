package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB credentials, etc.)
// - default: Values common across all environments (timezone, retry policy, etc.)
// -----------------------------------------------------------------------------

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

type Config struct {
	Server ServerConfig
	DB     DBConfig
	Store  StoreConfig
	Tx     TxConfig
	CORS   CORSConfig
	Log    LogConfig
	Kafka  KafkaConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host        string `envconfig:"DB_HOST" default:"localhost"`
	Port        string `envconfig:"DB_PORT" default:"5432"`
	User        string `envconfig:"DB_USER" default:"postgres"`
	Password    string `envconfig:"DB_PASSWORD"`
	DBName      string `envconfig:"DB_NAME" default:"commerce"`
	SSLMode     string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone    string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns    int32  `envconfig:"DB_MAX_CONNS" default:"20"`
	AutoMigrate bool   `envconfig:"DB_AUTO_MIGRATE" default:"true"`
}

// memory keeps all state in process; used for local runs and workflow tests.
// SeedFile is a JSON file of users and products loaded into the memory store
// at startup.
type StoreConfig struct {
	Driver   string `envconfig:"STORE_DRIVER" default:"postgres"`
	SeedFile string `envconfig:"STORE_SEED_FILE"`
}

// Bounded retry of a whole unit of work on serialization failures and
// conditional-update conflicts.
type TxConfig struct {
	MaxRetries  int           `envconfig:"TX_MAX_RETRIES" default:"3"`
	BaseBackoff time.Duration `envconfig:"TX_BASE_BACKOFF" default:"20ms"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Location"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

// Empty Brokers disables Kafka; refund notifications are then only logged.
type KafkaConfig struct {
	Brokers      []string      `envconfig:"KAFKA_BROKERS"`
	RefundTopic  string        `envconfig:"KAFKA_REFUND_TOPIC" default:"purchase-refunds"`
	WriteTimeout time.Duration `envconfig:"KAFKA_WRITE_TIMEOUT" default:"5s"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c *StoreConfig) Validate() error {
	switch c.Driver {
	case StoreDriverMemory:
		return nil
	case StoreDriverPostgres:
		if c.SeedFile != "" {
			return fmt.Errorf("STORE_SEED_FILE is only supported with STORE_DRIVER=%s", StoreDriverMemory)
		}
		return nil
	default:
		return fmt.Errorf("unsupported STORE_DRIVER %q", c.Driver)
	}
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
	if cfg.Tx.MaxRetries < 0 {
		return Config{}, fmt.Errorf("TX_MAX_RETRIES must not be negative, got %d", cfg.Tx.MaxRetries)
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
			TimeZone: "UTC",
			MaxConns: 10,
		},
		Store: StoreConfig{Driver: StoreDriverMemory},
		Tx: TxConfig{
			MaxRetries:  3,
			BaseBackoff: time.Millisecond,
		},
		CORS: CORSConfig{
			AllowOrigins:  []string{"http://localhost:3000"},
			AllowMethods:  []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
			ExposeHeaders: []string{"Content-Length", "Location"},
			MaxAge:        12 * time.Hour,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		Kafka: KafkaConfig{
			RefundTopic:  "purchase-refunds",
			WriteTimeout: time.Second,
		},
	}
}
