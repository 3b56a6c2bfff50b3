package config

import (
	"os"
	"strings"
	"time"
)

// Config captures process-level configuration. It is computed once at startup
// and passed down explicitly; components never read the environment
// themselves.
type Config struct {
	Addr            string
	DatabaseURL     string
	Redis           RedisConfig
	Kafka           KafkaConfig
	JWTSigningKey   string
	ShutdownTimeout time.Duration
}

// RedisConfig configures the optional decision cache.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// KafkaConfig configures the optional audit publisher.
type KafkaConfig struct {
	Brokers    []string
	AuditTopic string
}

// FromEnv builds a Config from environment variables so main stays lean.
func FromEnv() Config {
	cfg := Config{
		Addr:            getenv("CENTREG_ADDR", ":8080"),
		DatabaseURL:     os.Getenv("CENTREG_DATABASE_URL"),
		JWTSigningKey:   getenv("CENTREG_JWT_SIGNING_KEY", "dev-secret-key-change-in-production"),
		ShutdownTimeout: 10 * time.Second,
		Redis: RedisConfig{
			URL:          os.Getenv("CENTREG_REDIS_URL"),
			PoolSize:     10,
			MinIdleConns: 2,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		},
		Kafka: KafkaConfig{
			AuditTopic: getenv("CENTREG_AUDIT_TOPIC", "centreg.management.audit"),
		},
	}
	if brokers := os.Getenv("CENTREG_KAFKA_BROKERS"); brokers != "" {
		cfg.Kafka.Brokers = strings.Split(brokers, ",")
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
