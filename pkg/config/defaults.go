package config

import "time"

const (
	DefaultEnvFile = ".env"

	DefaultPort     = "8080"
	DefaultLogLevel = "info"

	DefaultStorageBackend = "file"
	DefaultDataDir        = "./data"
	DefaultStoreTimeout   = 5 * time.Second

	DefaultMongoURI          = "mongodb://localhost:27017"
	DefaultMongoDatabaseName = "rentals"
	DefaultMongoConnTimeout  = 10 * time.Second

	DefaultRedisAddr        = "localhost:6379"
	DefaultRedisDB          = 0
	DefaultRedisKeyPrefix   = "rentals"
	DefaultRedisConnTimeout = 5 * time.Second

	DefaultCatalogCacheTTL = 5 * time.Minute

	DefaultKafkaEnabled          = false
	DefaultKafkaBookingsTopic    = "rentals.bookings"
	DefaultKafkaBookingsDLQTopic = "rentals.bookings.dlq"

	DefaultRateLimitRequests = 60
	DefaultRateLimitWindow   = 1 * time.Minute

	DefaultRequestTimeout = 30 * time.Second
	DefaultIdempotencyTTL = 24 * time.Hour
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second
)
