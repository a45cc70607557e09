package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"truleadai/store"
)

var (
	KV        store.Store
	AppConfig Config
)

type RedisConfig struct {
	Enabled  bool   `json:"enabled"`
	Address  string `json:"address"`
	Password string `json:"-"`
	DB       int    `json:"db"`
}

type Config struct {
	Environment        string      `json:"environment"`
	ServerPort         string      `json:"server_port"`
	CORSAllowOrigin    string      `json:"cors_allow_origin"`
	Redis              RedisConfig `json:"redis"`
	DiscoveryBatchSize int         `json:"discovery_batch_size"`
	RateLimitDiscovery int         `json:"rate_limit_discovery"`
	ActivityTrimMins   int         `json:"activity_trim_mins"`
	SentryDSN          string      `json:"-"`
}

func init() {
	// Try to load .env file, but don't fail if it doesn't exist
	_ = godotenv.Load()
}

func LoadConfig() error {
	AppConfig = Config{
		Environment:     getEnv("ENVIRONMENT", "development"),
		ServerPort:      getEnv("SERVER_PORT", "5000"),
		CORSAllowOrigin: getEnv("CORS_ALLOW_ORIGIN", "http://localhost:3000"),
		Redis: RedisConfig{
			Enabled:  getEnv("REDIS_ENABLED", "false") == "true",
			Address:  getEnv("REDIS_ADDRESS", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		DiscoveryBatchSize: getEnvAsInt("DISCOVERY_BATCH_SIZE", 8),
		RateLimitDiscovery: getEnvAsInt("RATE_LIMIT_DISCOVERY", 10),
		ActivityTrimMins:   getEnvAsInt("ACTIVITY_TRIM_MINUTES", 15),
		SentryDSN:          getEnv("SENTRY_DSN", ""),
	}

	if AppConfig.DiscoveryBatchSize <= 0 {
		return fmt.Errorf("DISCOVERY_BATCH_SIZE must be positive")
	}
	if AppConfig.RateLimitDiscovery <= 0 {
		return fmt.Errorf("RATE_LIMIT_DISCOVERY must be positive")
	}
	if AppConfig.Environment == "production" && !AppConfig.Redis.Enabled {
		return fmt.Errorf("Redis is required in production; in-memory storage loses all data on restart")
	}

	logConfig()
	return nil
}

// ConnectStore initializes the key-value store the pipeline persists
// through: Redis when enabled, an in-process store otherwise.
func ConnectStore() error {
	if !AppConfig.Redis.Enabled {
		log.Println("Redis disabled, using in-memory store")
		KV = store.NewMemoryStore()
		return nil
	}

	log.Printf("Connecting to Redis at %s...", AppConfig.Redis.Address)
	rs, err := store.NewRedisStore(store.RedisOptions{
		Address:  AppConfig.Redis.Address,
		Password: AppConfig.Redis.Password,
		DB:       AppConfig.Redis.DB,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	KV = rs
	log.Println("✅ Successfully connected to Redis")
	return nil
}

// Helper functions
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback
	}
	var value int
	_, err := fmt.Sscanf(valueStr, "%d", &value)
	if err != nil {
		return fallback
	}
	return value
}

func logConfig() {
	log.Println("🔧 Loaded configuration:")
	log.Printf("Environment: %s", AppConfig.Environment)
	log.Printf("Server Port: %s", AppConfig.ServerPort)
	log.Printf("Redis: enabled=%t address=%s db=%d",
		AppConfig.Redis.Enabled,
		AppConfig.Redis.Address,
		AppConfig.Redis.DB)
	log.Printf("Discovery: batch_size=%d rate_limit=%d/min",
		AppConfig.DiscoveryBatchSize,
		AppConfig.RateLimitDiscovery)
}
