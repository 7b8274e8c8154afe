package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// MongoDB
	MongoURI      string
	MongoDatabase string

	// Kafka
	KafkaBrokers string
	EventsTopic  string

	// API Configuration
	APIPort string
	APIHost string

	// Shopify Storefront API
	ShopifyStoreDomain     string
	ShopifyStorefrontToken string

	// Sync behaviour
	SyncDrainPages bool
	SyncOnRead     bool

	// Feed export
	FeedExportPath string

	// Environment
	Env      string
	LogLevel string
}

func Load() (*Config, error) {
	// Load .env file
	godotenv.Load()

	return &Config{
		MongoURI:               getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDatabase:          getEnv("MONGODB_DATABASE", "storefront"),
		KafkaBrokers:           getEnv("KAFKA_BROKERS", "localhost:9092"),
		EventsTopic:            getEnv("EVENTS_TOPIC", "catalog-events"),
		APIPort:                getEnv("API_PORT", "8080"),
		APIHost:                getEnv("API_HOST", "0.0.0.0"),
		ShopifyStoreDomain:     getEnv("SHOPIFY_STORE_DOMAIN", ""),
		ShopifyStorefrontToken: getEnv("SHOPIFY_STOREFRONT_ACCESS_TOKEN", ""),
		SyncDrainPages:         getEnvAsBool("SYNC_DRAIN_PAGES", false),
		SyncOnRead:             getEnvAsBool("SYNC_ON_READ", true),
		FeedExportPath:         getEnv("FEED_EXPORT_PATH", "feed.xml"),
		Env:                    getEnv("ENV", "development"),
		LogLevel:               getEnv("LOG_LEVEL", "info"),
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
