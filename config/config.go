package config

import "time"

type Config struct {
	AppName                       string   `env:"APP_NAME" env-default:"order-form-sub001"`
	Port                          int      `env:"PORT" env-default:"3000"`
	LogLevel                      string   `env:"LOG_LEVEL" env-default:"info"`
	PrettyLogs                    bool     `env:"PRETTY_LOGS" env-default:"false"`
	HttpServerWriteTimeoutSeconds int      `env:"HTTP_SERVER_WRITE_TIMEOUT_SECONDS" env-default:"10"`
	HttpServerReadTimeoutSeconds  int      `env:"HTTP_SERVER_READ_TIMEOUT_SECONDS" env-default:"10"`
	HttpServerIdleTimeoutSeconds  int      `env:"HTTP_SERVER_IDLE_TIMEOUT_SECONDS" env-default:"10"`
	MaxHeaderBytes                int      `env:"HTTP_SERVER_MAX_HEADER_BYTES" env-default:"64000"` // 64KB
	ReadHeaderTimeoutSeconds      int      `env:"HTTP_SERVER_READ_HEADER_TIMEOUT_SECONDS" env-default:"10"`
	AllowOrigins                  []string `env:"HTTP_SERVER_ALLOW_ORIGINS" env-default:"*"`
	AllowMethods                  []string `env:"HTTP_SERVER_ALLOW_METHODS" env-default:"GET,POST"`

	// Auth Enabled - when false, allows X-User-ID and X-Organisation-ID headers for testing
	AuthEnabled bool `env:"AUTH_ENABLED" env-default:"false"`
	// Auth Issuer URL
	AuthIssuerURL string `env:"AUTH_ISSUER_URL" env-default:""`
	// Auth Client ID
	AuthClientID string `env:"AUTH_CLIENT_ID" env-default:""`

	// Order API base URL
	OrderAPIBaseURL string `env:"ORDER_API_BASE_URL" env-default:"http://localhost:5104"`
	// Buying catalogue API base URL
	BuyingCatalogueAPIBaseURL string `env:"BUYING_CATALOGUE_API_BASE_URL" env-default:"http://localhost:5101"`
	// Organisations API base URL
	OrganisationsAPIBaseURL string `env:"ORGANISATIONS_API_BASE_URL" env-default:"http://localhost:5102"`
	// Outbound HTTP timeout
	APIRequestTimeout time.Duration `env:"API_REQUEST_TIMEOUT" env-default:"30s"`

	// Redis session store
	RedisHost     string        `env:"REDIS_HOST" env-default:"localhost"`
	RedisPort     int           `env:"REDIS_PORT" env-default:"6379"`
	RedisPassword string        `env:"REDIS_PASSWORD" env-default:""`
	RedisDB       int           `env:"REDIS_DB" env-default:"0"`
	SessionTTL    time.Duration `env:"SESSION_TTL" env-default:"1h"`

	// Kafka Producer
	KafkaBrokers      []string `env:"KAFKA_BROKERS" env-default:"localhost:9092"`
	KafkaTopic        string   `env:"KAFKA_TOPIC" env-default:"order-form-events"`
	KafkaBatchSize    int      `env:"KAFKA_BATCH_SIZE" env-default:"100"`
	KafkaBatchTimeout int      `env:"KAFKA_BATCH_TIMEOUT_MS" env-default:"100"`
	KafkaRequiredAcks int      `env:"KAFKA_REQUIRED_ACKS" env-default:"1"`
	KafkaCompression  string   `env:"KAFKA_COMPRESSION" env-default:"snappy"`
	KafkaEnabled      bool     `env:"KAFKA_ENABLED" env-default:"false"`

	// Form manifests
	ManifestDir string `env:"MANIFEST_DIR" env-default:"manifests"`

	// Tracing
	TracingEnabled   bool   `env:"TRACING_ENABLED" env-default:"false"`
	OTLPEndpoint     string `env:"OTLP_ENDPOINT" env-default:"localhost:4317"`
	OTLPProtocol     string `env:"OTLP_PROTOCOL" env-default:"grpc"`
	OTLPInsecure     bool   `env:"OTLP_INSECURE" env-default:"true"`
	TracingSamplePct int    `env:"TRACING_SAMPLE_PCT" env-default:"100"`
}
