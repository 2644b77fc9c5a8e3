package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration values
type Config struct {
	// Server configuration
	Port        int    `json:"port"`
	Environment string `json:"environment"`

	// MongoDB configuration
	MongoURI      string `json:"mongo_uri"`
	MongoDatabase string `json:"mongo_database"`

	// Redis configuration
	RedisURI      string        `json:"redis_uri"`
	RedisPassword string        `json:"redis_password"`
	RedisDB       int           `json:"redis_db"`
	RedisTTL      time.Duration `json:"redis_ttl"`

	// Collection names
	DriverProfileCollection string `json:"mongo_driver_profile_collection"`
	ApplicationCollection   string `json:"mongo_application_collection"`
	VerificationCollection  string `json:"mongo_verification_collection"`

	// Pincode lookup configuration
	PincodeLookupURL      string        `json:"pincode_lookup_url"`
	PincodeLookupDebounce time.Duration `json:"pincode_lookup_debounce"`

	// Interview scheduling configuration
	InterviewMinLeadTime time.Duration `json:"interview_min_lead_time"`

	// Tracing configuration
	TracingEnabled  bool   `json:"tracing_enabled"`
	TracingEndpoint string `json:"tracing_endpoint"`
}

var (
	AppConfig *Config
)

// LoadConfig loads configuration from environment variables
func LoadConfig() error {
	// Best-effort .env load for local development
	_ = godotenv.Load()

	port, err := strconv.Atoi(getEnvOrDefault("PORT", "8080"))
	if err != nil {
		return fmt.Errorf("invalid PORT: %w", err)
	}

	redisDB, err := strconv.Atoi(getEnvOrDefault("REDIS_DB", "0"))
	if err != nil {
		return fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	redisTTL, err := time.ParseDuration(getEnvOrDefault("REDIS_TTL", "60m"))
	if err != nil {
		return fmt.Errorf("invalid REDIS_TTL: %w", err)
	}

	// Check if MONGODB_DRIVER_PROFILE_COLLECTION is set
	driverProfileCollection := os.Getenv("MONGODB_DRIVER_PROFILE_COLLECTION")
	if driverProfileCollection == "" {
		return fmt.Errorf("MONGODB_DRIVER_PROFILE_COLLECTION environment variable is required")
	}

	pincodeDebounce, err := time.ParseDuration(getEnvOrDefault("PINCODE_LOOKUP_DEBOUNCE", "500ms"))
	if err != nil {
		return fmt.Errorf("invalid PINCODE_LOOKUP_DEBOUNCE: %w", err)
	}

	interviewMinLeadTime, err := time.ParseDuration(getEnvOrDefault("INTERVIEW_MIN_LEAD_TIME", "15m"))
	if err != nil {
		return fmt.Errorf("invalid INTERVIEW_MIN_LEAD_TIME: %w", err)
	}

	AppConfig = &Config{
		// Server configuration
		Port:        port,
		Environment: getEnvOrDefault("ENVIRONMENT", "development"),

		// MongoDB configuration
		MongoURI:      getEnvOrDefault("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDatabase: getEnvOrDefault("MONGODB_DATABASE", "freightlink"),

		// Redis configuration
		RedisURI:      getEnvOrDefault("REDIS_URI", "localhost:6379"),
		RedisPassword: getEnvOrDefault("REDIS_PASSWORD", ""),
		RedisDB:       redisDB,
		RedisTTL:      redisTTL,

		// Collection names
		DriverProfileCollection: driverProfileCollection,
		ApplicationCollection:   getEnvOrDefault("MONGODB_APPLICATION_COLLECTION", "applications"),
		VerificationCollection:  getEnvOrDefault("MONGODB_VERIFICATION_COLLECTION", "verifications"),

		// Pincode lookup configuration
		PincodeLookupURL:      getEnvOrDefault("PINCODE_LOOKUP_URL", "https://api.postalpincode.in/pincode"),
		PincodeLookupDebounce: pincodeDebounce,

		// Interview scheduling configuration
		InterviewMinLeadTime: interviewMinLeadTime,

		// Tracing configuration
		TracingEnabled:  getEnvOrDefault("TRACING_ENABLED", "false") == "true",
		TracingEndpoint: getEnvOrDefault("TRACING_ENDPOINT", "localhost:4317"),
	}

	return nil
}

// getEnvOrDefault returns environment variable value or default if not set
func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
