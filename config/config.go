package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Kafka    KafkaConfig    `yaml:"kafka"`
	Cache    CacheConfig    `yaml:"cache"`
	Log      LogConfig      `yaml:"log"`
	Worker   WorkerConfig   `yaml:"worker"`
}

type HTTPConfig struct {
	Address             string   `yaml:"address" validate:"required"`
	SwaggerDir          string   `yaml:"swagger_dir"`
	AllowedOrigins      []string `yaml:"allowed_origins" validate:"min=1,dive,required"`
	ReadTimeoutSeconds  int      `yaml:"read_timeout_seconds" validate:"gte=0"`
	WriteTimeoutSeconds int      `yaml:"write_timeout_seconds" validate:"gte=0"`
	RateLimitRPS        float64  `yaml:"rate_limit_rps" validate:"gte=0"`
	RateLimitBurst      int      `yaml:"rate_limit_burst" validate:"gte=0"`
}

func (h HTTPConfig) ReadTimeout() time.Duration {
	return time.Duration(h.ReadTimeoutSeconds) * time.Second
}

func (h HTTPConfig) WriteTimeout() time.Duration {
	return time.Duration(h.WriteTimeoutSeconds) * time.Second
}

type DatabaseConfig struct {
	Host        string `yaml:"host" validate:"required"`
	Port        int    `yaml:"port" validate:"required,gt=0,lt=65536"`
	User        string `yaml:"user" validate:"required"`
	Password    string `yaml:"password"`
	Name        string `yaml:"name" validate:"required"`
	SSLMode     string `yaml:"ssl_mode" validate:"omitempty,oneof=disable allow prefer require verify-ca verify-full"`
	MaxConns    int32  `yaml:"max_conns" validate:"gte=0"`
	AutoMigrate bool   `yaml:"auto_migrate"`
}

func (d DatabaseConfig) DSN() string {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s", d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
	if d.MaxConns > 0 {
		dsn += fmt.Sprintf(" pool_max_conns=%d", d.MaxConns)
	}
	return dsn
}

// RedisConfig with an empty Addr selects the in-process flight cache.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db" validate:"gte=0"`
}

// KafkaConfig with no brokers disables event publishing.
type KafkaConfig struct {
	Brokers            []string `yaml:"brokers"`
	FlightsTopic       string   `yaml:"flights_topic" validate:"required_with=Brokers"`
	BookingsTopic      string   `yaml:"bookings_topic" validate:"required_with=Brokers"`
	NotificationsTopic string   `yaml:"notifications_topic"`
	GroupID            string   `yaml:"group_id"`
	PublishRetries     int      `yaml:"publish_retries" validate:"gte=0,lte=10"`
}

func (k KafkaConfig) Enabled() bool {
	return len(k.Brokers) > 0
}

// BookingEventsTopic is the topic the worker reads booking events from. The
// notifications topic, when set, carries a copy of every booking event.
func (k KafkaConfig) BookingEventsTopic() string {
	if k.NotificationsTopic != "" {
		return k.NotificationsTopic
	}
	return k.BookingsTopic
}

// ConsumerGroup derives a group id per consumed stream so readers of
// different topics never share a group.
func (k KafkaConfig) ConsumerGroup(stream string) string {
	return k.GroupID + "-" + stream
}

type CacheConfig struct {
	FlightsTTLSeconds int `yaml:"flights_ttl_seconds" validate:"gte=0"`
}

func (c CacheConfig) FlightsTTL() time.Duration {
	return time.Duration(c.FlightsTTLSeconds) * time.Second
}

type LogConfig struct {
	Env string `yaml:"env" validate:"oneof=development production"`
}

type WorkerConfig struct {
	NotifyPassengers bool `yaml:"notify_passengers"`
}

var defaultAllowedOrigins = []string{
	"http://localhost:3000",
	"http://127.0.0.1:3000",
	"http://172.16.29.6:3000",
	"https://flights.tanishqtyagi.com",
}

func (c *Config) applyDefaults() {
	if c.HTTP.Address == "" {
		c.HTTP.Address = ":8080"
	}
	if len(c.HTTP.AllowedOrigins) == 0 {
		c.HTTP.AllowedOrigins = append([]string(nil), defaultAllowedOrigins...)
	}
	if c.HTTP.ReadTimeoutSeconds == 0 {
		c.HTTP.ReadTimeoutSeconds = 15
	}
	if c.HTTP.WriteTimeoutSeconds == 0 {
		c.HTTP.WriteTimeoutSeconds = 15
	}
	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Cache.FlightsTTLSeconds == 0 {
		c.Cache.FlightsTTLSeconds = 60
	}
	if c.Log.Env == "" {
		c.Log.Env = "development"
	}
	if c.Kafka.GroupID == "" {
		c.Kafka.GroupID = "airline-worker"
	}
	if c.Kafka.PublishRetries == 0 {
		c.Kafka.PublishRetries = 3
	}
}

var validate = validator.New()

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return fmt.Errorf("invalid config: %w", validationErrs)
		}
		return err
	}
	return nil
}

// Parse decodes YAML, fills defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadConfig reads the YAML file at path. Environment references such as
// ${DB_PASSWORD} are expanded after an optional .env file is loaded.
func LoadConfig(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return Parse([]byte(os.ExpandEnv(string(data))))
}

// Path returns the config location from CONFIG_PATH, defaulting to config.yaml.
func Path() string {
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p
	}
	return "config.yaml"
}
