package config

import "time"

type HTTPConfig struct {
	Host string `env:"HOST" envDefault:"0.0.0.0"`
	Port int    `env:"PORT" envDefault:"8080"`
}

// UpstreamConfig points the gateway at the brokerage-core service that every
// inbound API call is forwarded to.
type UpstreamConfig struct {
	// e.g. "http://brokerage-core.internal:3001" (no trailing slash)
	BaseURL string `env:"BASE_URL" envDefault:"http://localhost:3001"`
	// Bound on every outbound forwarding call.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"10s"`
}

type RedisConfig struct {
	// When disabled, the idempotency store falls back to an in-process map.
	Enabled  bool   `env:"ENABLED" envDefault:"false"`
	Addr     string `env:"ADDR" envDefault:"localhost:6379"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" envDefault:"0"`
	// How long a completed idempotent response stays replayable.
	IdempotencyTTL time.Duration `env:"IDEMPOTENCY_TTL" envDefault:"24h"`
}

type KafkaConfig struct {
	Enabled     bool     `env:"ENABLED" envDefault:"false"`
	Brokers     []string `env:"BROKERS" envDefault:"localhost:9092"`
	ClientID    string   `env:"CLIENT_ID" envDefault:"slidegate"`
	TopicPrefix string   `env:"TOPIC_PREFIX" envDefault:"slide."`
}

// ObservabilityConfig Observability / telemetry configuration
type ObservabilityConfig struct {
	ServiceName string `env:"SERVICE_NAME" envDefault:"slidegate"`
	ServiceEnv  string `env:"SERVICE_ENV" envDefault:"Development"`
	// e.g. "otel-collector:4317"
	OtelEndpoint string `env:"EXPORTER_OTLP_ENDPOINT"`
}

type Config struct {
	// Global environment: Development, Staging, Production...
	Environment string `env:"APP_ENV" envDefault:"Development"`

	HTTP          HTTPConfig          `envPrefix:"HTTP_"`
	Upstream      UpstreamConfig      `envPrefix:"UPSTREAM_"`
	Redis         RedisConfig         `envPrefix:"REDIS_"`
	Kafka         KafkaConfig         `envPrefix:"KAFKA_"`
	Observability ObservabilityConfig `envPrefix:"OTEL_"`
}
