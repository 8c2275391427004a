package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

var (
	// ErrInvalidConfig некорректные значения конфигурации
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Переменные окружения, перекрывающие секреты из config.toml
const (
	envDBPassword    = "JOBCONNECT_DB_PASSWORD"
	envJWTSecret     = "JOBCONNECT_JWT_SECRET"
	envRedisPassword = "JOBCONNECT_REDIS_PASSWORD"
)

type Config struct {
	Server     ServerConfig     `toml:"server"`
	Database   DatabaseConfig   `toml:"database"`
	Logs       LogsConfig       `toml:"logs"`
	Metrics    MetricsConfig    `toml:"metrics"`
	Scheduling SchedulingConfig `toml:"scheduling"`
	Auth       AuthConfig       `toml:"auth"`
	Kafka      KafkaConfig      `toml:"kafka"`
	Realtime   RealtimeConfig   `toml:"realtime"`
	Redis      RedisConfig      `toml:"redis"`
	Tracing    TracingConfig    `toml:"tracing"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type SchedulingConfig struct {
	Timezone                 string `toml:"timezone"`
	InterviewDurationMinutes int    `toml:"interview_duration_minutes"`
	DefaultRangeDays         int    `toml:"default_range_days"`
	MaxRangeDays             int    `toml:"max_range_days"`
	MinNoticeDays            int    `toml:"min_notice_days"`
	JoinWindowMinutes        int    `toml:"join_window_minutes"`
}

// InterviewDuration длительность одного собеседования
func (s SchedulingConfig) InterviewDuration() time.Duration {
	return time.Duration(s.InterviewDurationMinutes) * time.Minute
}

// JoinWindow за сколько до начала можно подключиться к комнате
func (s SchedulingConfig) JoinWindow() time.Duration {
	return time.Duration(s.JoinWindowMinutes) * time.Minute
}

// Location часовой пояс, в котором считаются все слоты
func (s SchedulingConfig) Location() (*time.Location, error) {
	return time.LoadLocation(s.Timezone)
}

type AuthConfig struct {
	// Пустой секрет: доверяем заголовкам X-User-ID / X-User-Role от gateway
	JWTSecret string `toml:"jwt_secret"`
}

type KafkaConfig struct {
	Enabled    bool     `toml:"enabled"`
	Brokers    []string `toml:"brokers"`
	Topic      string   `toml:"topic"`
	QueueSize  int      `toml:"queue_size"`
	MaxRetries int      `toml:"max_retries"`
}

type RealtimeConfig struct {
	Enabled bool   `toml:"enabled"`
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
}

type RedisConfig struct {
	Enabled       bool   `toml:"enabled"`
	Addr          string `toml:"addr"`
	Password      string `toml:"password"`
	DB            int    `toml:"db"`
	RateLimit     int    `toml:"rate_limit"`
	WindowSeconds int    `toml:"window_seconds"`
}

type TracingConfig struct {
	Enabled      bool    `toml:"enabled"`
	OTLPEndpoint string  `toml:"otlp_endpoint"`
	SampleRatio  float64 `toml:"sample_ratio"`
}

// Load читает конфигурацию из TOML файла, применяет значения по умолчанию
// и перекрывает секреты переменными окружения (.env загружается, если есть)
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := defaults()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{Level: "info"},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "jobconnect-interviews",
		},
		Scheduling: SchedulingConfig{
			Timezone:                 "UTC",
			InterviewDurationMinutes: 90,
			DefaultRangeDays:         14,
			MaxRangeDays:             60,
			MinNoticeDays:            1,
			JoinWindowMinutes:        15,
		},
		Kafka: KafkaConfig{
			Topic:      "interview-events",
			QueueSize:  256,
			MaxRetries: 3,
		},
		Realtime: RealtimeConfig{Timeout: 3},
		Redis: RedisConfig{
			RateLimit:     10,
			WindowSeconds: 60,
		},
		Tracing: TracingConfig{
			OTLPEndpoint: "localhost:4317",
			SampleRatio:  1,
		},
	}
}

func (c *Config) applyEnv() {
	if v, ok := os.LookupEnv(envDBPassword); ok {
		c.Database.Password = v
	}
	if v, ok := os.LookupEnv(envJWTSecret); ok {
		c.Auth.JWTSecret = v
	}
	if v, ok := os.LookupEnv(envRedisPassword); ok {
		c.Redis.Password = v
	}
}

// Validate проверяет значения, без которых сервис не может работать
func (c *Config) Validate() error {
	if c.Database.Host == "" {
		return fmt.Errorf("%w: database.host is empty", ErrInvalidConfig)
	}
	if c.Scheduling.InterviewDurationMinutes <= 0 {
		return fmt.Errorf("%w: scheduling.interview_duration_minutes must be positive", ErrInvalidConfig)
	}
	if _, err := c.Scheduling.Location(); err != nil {
		return fmt.Errorf("%w: scheduling.timezone: %v", ErrInvalidConfig, err)
	}
	if c.Scheduling.DefaultRangeDays <= 0 || c.Scheduling.MaxRangeDays < c.Scheduling.DefaultRangeDays {
		return fmt.Errorf("%w: scheduling range days", ErrInvalidConfig)
	}
	if c.Scheduling.MinNoticeDays < 0 || c.Scheduling.JoinWindowMinutes < 0 {
		return fmt.Errorf("%w: scheduling notice/join window must not be negative", ErrInvalidConfig)
	}
	if c.Kafka.Enabled && len(c.Kafka.Brokers) == 0 {
		return fmt.Errorf("%w: kafka.brokers is empty", ErrInvalidConfig)
	}
	if c.Realtime.Enabled && c.Realtime.URL == "" {
		return fmt.Errorf("%w: realtime.url is empty", ErrInvalidConfig)
	}
	return nil
}
