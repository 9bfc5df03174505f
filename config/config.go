package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	StoreDriver       string `mapstructure:"STORE_DRIVER"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration. An empty address disables idempotency and reminders.
	RedisAddr            string `mapstructure:"REDIS_ADDR"`
	RedisPassword        string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB         int    `mapstructure:"REDIS_CACHE_DB"`
	RedisReminderQueueDB int    `mapstructure:"REDIS_REMINDER_QUEUE_DB"`

	IdempotencyTTL time.Duration `mapstructure:"IDEMPOTENCY_TTL"`
	ReminderLead   time.Duration `mapstructure:"REMINDER_LEAD"`

	// Matching engine tuning.
	SuggestionLimit       int     `mapstructure:"SUGGESTION_LIMIT"`
	SameDayFactor         float64 `mapstructure:"SAME_DAY_FACTOR"`
	ScoreEfficiencyWeight float64 `mapstructure:"SCORE_EFFICIENCY_WEIGHT"`
	ScoreWorkloadCeiling  float64 `mapstructure:"SCORE_WORKLOAD_CEILING"`
	ScoreWorkloadPenalty  float64 `mapstructure:"SCORE_WORKLOAD_PENALTY"`
	ScoreRecencyCeiling   float64 `mapstructure:"SCORE_RECENCY_CEILING"`
	ScoreRecencyPenalty   float64 `mapstructure:"SCORE_RECENCY_PENALTY"`
}

var AppConfig Config

func LoadConfig() {
	// A local .env is optional; real environment variables win.
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	setDefaults(viper.GetViper())

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "3001")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MAX_REQUESTS_PER_MIN", 200)
	v.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	v.SetDefault("DATABASE_NAME", "painter-booking")
	v.SetDefault("STORE_DRIVER", "mongo")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_CACHE_DB", 0)
	v.SetDefault("REDIS_REMINDER_QUEUE_DB", 3)
	v.SetDefault("IDEMPOTENCY_TTL", "10m")
	v.SetDefault("REMINDER_LEAD", "1h")

	v.SetDefault("SUGGESTION_LIMIT", 3)
	v.SetDefault("SAME_DAY_FACTOR", 0.01)
	v.SetDefault("SCORE_EFFICIENCY_WEIGHT", 100.0)
	v.SetDefault("SCORE_WORKLOAD_CEILING", 50.0)
	v.SetDefault("SCORE_WORKLOAD_PENALTY", 10.0)
	v.SetDefault("SCORE_RECENCY_CEILING", 30.0)
	v.SetDefault("SCORE_RECENCY_PENALTY", 2.0)
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// UseMemoryStore reports whether the process keeps data in memory instead of MongoDB.
func UseMemoryStore() bool {
	return AppConfig.StoreDriver == "memory"
}
