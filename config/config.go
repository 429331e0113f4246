package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	HttpServer    HttpServerConfig
	Backend       BackendConfig
	HttpClient    HttpClientConfig
	Redis         RedisConfig
	MessageStream MessageStreamConfig
	Scheduler     SchedulerConfig
	Cache         CacheConfig
	Search        SearchConfig
	RateLimit     RateLimitConfig
	Registration  RegistrationConfig
}

type HttpServerConfig struct {
	Port            string        `envconfig:"HTTP_PORT" default:"8080"`
	ShutdownTimeout time.Duration `envconfig:"HTTP_SHUTDOWN_TIMEOUT" default:"10s"`
}

// BackendConfig points at the ticketing REST API every data-bearing call is forwarded to.
type BackendConfig struct {
	BaseURL string `envconfig:"BACKEND_BASE_URL" default:"http://localhost:8000"`
}

type HttpClientConfig struct {
	// Type selects the breaker: threshold, consecutive or rate.
	Type       string        `envconfig:"HTTP_CLIENT_BREAKER_TYPE" default:"consecutive"`
	Timeout    time.Duration `envconfig:"HTTP_CLIENT_TIMEOUT" default:"5s"`
	Threshold  int64         `envconfig:"HTTP_CLIENT_BREAKER_THRESHOLD" default:"5"`
	Rate       float64       `envconfig:"HTTP_CLIENT_BREAKER_RATE" default:"0.5"`
	MinSamples int64         `envconfig:"HTTP_CLIENT_BREAKER_MIN_SAMPLES" default:"20"`
}

type RedisConfig struct {
	Host     string `envconfig:"REDIS_HOST" default:"localhost"`
	Port     string `envconfig:"REDIS_PORT" default:"6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type MessageStreamConfig struct {
	Host     string `envconfig:"AMQP_HOST" default:"localhost"`
	Port     string `envconfig:"AMQP_PORT" default:"5672"`
	Username string `envconfig:"AMQP_USERNAME" default:"guest"`
	Password string `envconfig:"AMQP_PASSWORD" default:"guest"`
}

type SchedulerConfig struct {
	Concurrency       int    `envconfig:"SCHEDULER_CONCURRENCY" default:"10"`
	MonitoringEnabled bool   `envconfig:"SCHEDULER_MONITORING_ENABLED" default:"false"`
	MonitoringPort    string `envconfig:"SCHEDULER_MONITORING_PORT" default:"8081"`
}

type CacheConfig struct {
	TTL time.Duration `envconfig:"CACHE_TTL" default:"30s"`
}

type SearchConfig struct {
	Debounce time.Duration `envconfig:"SEARCH_DEBOUNCE" default:"500ms"`
	PageSize int           `envconfig:"SEARCH_PAGE_SIZE" default:"6"`
}

type RateLimitConfig struct {
	RPS     float64       `envconfig:"RATE_LIMIT_RPS" default:"20"`
	Burst   int           `envconfig:"RATE_LIMIT_BURST" default:"40"`
	IdleTTL time.Duration `envconfig:"RATE_LIMIT_IDLE_TTL" default:"3m"`
}

type RegistrationConfig struct {
	MaxTickets int `envconfig:"REGISTRATION_MAX_TICKETS" default:"5"`
}

func InitConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment variables")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("error load config: %v", err)
	}

	return &cfg
}
