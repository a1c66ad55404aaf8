package configs

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v9"
)

type Config struct {
	KafkaBrokers     string `env:"KAFKA_BROKERS" envDefault:"localhost:9092"`
	KafkaStatusTopic string `env:"KAFKA_STATUS_TOPIC" envDefault:"order-status"`
	KafkaStatusDLQ   string `env:"KAFKA_STATUS_DLQ" envDefault:"order-status-dlq"`
	KafkaGroupID     string `env:"KAFKA_GROUP_ID" envDefault:"shop-core"`
	AnalyticsTopic   string `env:"KAFKA_ANALYTICS_TOPIC" envDefault:"shop-analytics"`

	HTTPAddr string `env:"HTTP_ADDR" envDefault:":8081"`

	// RevealTrackingCodes returns raw one-time codes in API responses
	// instead of handing them to a delivery provider. Never enable in
	// production.
	RevealTrackingCodes bool `env:"REVEAL_TRACKING_CODES" envDefault:"false"`

	StatusSamplePath string `env:"STATUS_SAMPLE_PATH" envDefault:"web/status.json"`

	DatabaseURL     string `env:"DATABASE_URL" envDefault:""`
	PostgresHost    string `env:"POSTGRES_HOST" envDefault:"localhost"`
	PostgresPort    string `env:"POSTGRES_PORT" envDefault:"5432"`
	PostgresUser    string `env:"POSTGRES_USER" envDefault:"postgres"`
	PostgresPass    string `env:"POSTGRES_PASSWORD" envDefault:"postgres"`
	PostgresDB      string `env:"POSTGRES_DB" envDefault:"shop"`
	PostgresSSLMode string `env:"POSTGRES_SSLMODE" envDefault:"disable"`
}

func LoadConfig() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("config parse: %w", err)
	}
	return c, nil
}

func (c Config) KafkaBrokersSlice() []string {
	parts := strings.Split(c.KafkaBrokers, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (c Config) PgDSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}

	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.PostgresUser,
		c.PostgresPass,
		c.PostgresHost,
		c.PostgresPort,
		c.PostgresDB,
		c.PostgresSSLMode,
	)
}
