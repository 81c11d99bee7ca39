package kafka

import (
	"time"
)

// ProducerConfig configures the order event producer
type ProducerConfig struct {
	// Brokers is a list of Kafka broker addresses
	Brokers []string

	// Topic is the topic order item events are published to
	Topic string

	// BatchSize is the number of messages to batch before sending
	BatchSize int

	// BatchTimeout is the maximum time to wait before sending a partial batch
	BatchTimeout time.Duration

	// MaxAttempts is the number of attempts before giving up on a send
	MaxAttempts int

	// WriteTimeout is the timeout for write operations
	WriteTimeout time.Duration

	// Async determines if writes are asynchronous
	Async bool

	// Compression algorithm: "gzip", "snappy", "lz4", "zstd", or "" for none
	Compression string

	// RequiredAcks controls acknowledgment level (0, 1, or -1 for all)
	RequiredAcks int
}

// DefaultProducerConfig returns a ProducerConfig with sensible defaults
func DefaultProducerConfig() ProducerConfig {
	return ProducerConfig{
		Brokers:      []string{"localhost:9092"},
		Topic:        "order-form-events",
		BatchSize:    100,
		BatchTimeout: 100 * time.Millisecond,
		MaxAttempts:  3,
		WriteTimeout: 10 * time.Second,
		Async:        false,
		Compression:  "snappy",
		RequiredAcks: 1,
	}
}
