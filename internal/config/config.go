package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Environment string
	// Kafka Configuration
	KafkaBrokers        []string
	KafkaTopicOrders    string
	KafkaTopicShipments string
	KafkaTopicInventory string
	KafkaClientID       string
	KafkaAcks           string
	KafkaRetries        int
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	// Parse Kafka brokers (comma-separated)
	kafkaBrokersStr := getEnv("KAFKA_BROKERS", "localhost:9093")
	kafkaBrokers := strings.Split(kafkaBrokersStr, ",")
	for i, broker := range kafkaBrokers {
		kafkaBrokers[i] = strings.TrimSpace(broker)
	}

	return &Config{
		Port:        getEnv("PORT", "5000"),
		Environment: getEnv("ENVIRONMENT", "development"),
		// Kafka Configuration
		KafkaBrokers:        kafkaBrokers,
		KafkaTopicOrders:    getEnv("KAFKA_TOPIC_ORDERS", "logistics.orders"),
		KafkaTopicShipments: getEnv("KAFKA_TOPIC_SHIPMENTS", "logistics.shipments"),
		KafkaTopicInventory: getEnv("KAFKA_TOPIC_INVENTORY", "logistics.inventory"),
		KafkaClientID:       getEnv("KAFKA_CLIENT_ID", "logistics-service"),
		KafkaAcks:           getEnv("KAFKA_ACKS", "all"),
		KafkaRetries:        getEnvAsInt("KAFKA_RETRIES", 3),
	}
}

func getEnvAsInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return result
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
