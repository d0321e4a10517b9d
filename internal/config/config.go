package config

import (
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Cache    CacheConfig
	Storage  StorageConfig
	Planning PlanningConfig
}

type ServerConfig struct {
	Port           string
	Mode           string
	ReadTimeout    int
	WriteTimeout   int
	AllowedOrigins []string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type CacheConfig struct {
	Enabled        bool
	RedisURL       string
	RedisHost      string
	RedisPort      string
	RedisPassword  string
	RedisDB        int
	ItemTTLSeconds int
}

type StorageConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// PlanningConfig holds the cost-model constants and default planning
// parameters of the engine.
type PlanningConfig struct {
	TargetDaysOfCoverage      int
	SafetyStockDays           int
	MinimumReorderQuantity    int
	MaximumReorderQuantity    int
	LeadTimeDays              int
	StorageRatePerUnit        float64
	FulfillmentFeePerUnit     float64
	MonthlyStorageFeePerUnit  float64
	LongTermStorageFeePerUnit float64
	ReferralFeePercent        float64
	DefaultUnitCost           float64
	WorkerCount               int
}

var (
	once     sync.Once
	instance *Config
)

func Load() *Config {
	once.Do(func() {
		// Load .env file if it exists
		_ = godotenv.Load()

		// Set default values
		viper.SetDefault("SERVER_PORT", "8080")
		viper.SetDefault("SERVER_MODE", "debug")
		viper.SetDefault("SERVER_ALLOWED_ORIGINS", []string{"*"})
		viper.SetDefault("DB_HOST", "localhost")
		viper.SetDefault("DB_PORT", "5432")
		viper.SetDefault("DB_USER", "postgres")
		viper.SetDefault("DB_PASSWORD", "postgres")
		viper.SetDefault("DB_NAME", "restockly")
		viper.SetDefault("DB_SSLMODE", "disable")
		viper.SetDefault("CACHE_ENABLED", false)
		viper.SetDefault("REDIS_URL", "")
		viper.SetDefault("REDIS_HOST", "127.0.0.1")
		viper.SetDefault("REDIS_PORT", "6379")
		viper.SetDefault("REDIS_PASSWORD", "")
		viper.SetDefault("REDIS_DB", 0)
		viper.SetDefault("CACHE_ITEM_TTL_SECONDS", 60)
		viper.SetDefault("STORAGE_ENDPOINT", "")
		viper.SetDefault("STORAGE_ACCESS_KEY", "")
		viper.SetDefault("STORAGE_SECRET_KEY", "")
		viper.SetDefault("STORAGE_BUCKET", "restockly-plans")
		viper.SetDefault("STORAGE_USE_SSL", true)
		viper.SetDefault("PLANNING_TARGET_DAYS_OF_COVERAGE", 60)
		viper.SetDefault("PLANNING_SAFETY_STOCK_DAYS", 14)
		viper.SetDefault("PLANNING_MIN_REORDER_QTY", 1)
		viper.SetDefault("PLANNING_MAX_REORDER_QTY", 10000)
		viper.SetDefault("PLANNING_LEAD_TIME_DAYS", 30)
		viper.SetDefault("PLANNING_STORAGE_RATE_PER_UNIT", 0.75)
		viper.SetDefault("PLANNING_FULFILLMENT_FEE_PER_UNIT", 3.50)
		viper.SetDefault("PLANNING_MONTHLY_STORAGE_FEE_PER_UNIT", 0.75)
		viper.SetDefault("PLANNING_LONG_TERM_STORAGE_FEE_PER_UNIT", 6.90)
		viper.SetDefault("PLANNING_REFERRAL_FEE_PERCENT", 15.0)
		viper.SetDefault("PLANNING_DEFAULT_UNIT_COST", 10.0)
		viper.SetDefault("PLANNING_WORKER_COUNT", 8)

		// Read from environment variables
		viper.AutomaticEnv()

		instance = &Config{
			Server: ServerConfig{
				Port:           viper.GetString("SERVER_PORT"),
				Mode:           viper.GetString("SERVER_MODE"),
				ReadTimeout:    viper.GetInt("SERVER_READ_TIMEOUT"),
				WriteTimeout:   viper.GetInt("SERVER_WRITE_TIMEOUT"),
				AllowedOrigins: viper.GetStringSlice("SERVER_ALLOWED_ORIGINS"),
			},
			Database: DatabaseConfig{
				Host:     viper.GetString("DB_HOST"),
				Port:     viper.GetString("DB_PORT"),
				User:     viper.GetString("DB_USER"),
				Password: viper.GetString("DB_PASSWORD"),
				DBName:   viper.GetString("DB_NAME"),
				SSLMode:  viper.GetString("DB_SSLMODE"),
			},
			Cache: CacheConfig{
				Enabled:        viper.GetBool("CACHE_ENABLED"),
				RedisURL:       viper.GetString("REDIS_URL"),
				RedisHost:      viper.GetString("REDIS_HOST"),
				RedisPort:      viper.GetString("REDIS_PORT"),
				RedisPassword:  viper.GetString("REDIS_PASSWORD"),
				RedisDB:        viper.GetInt("REDIS_DB"),
				ItemTTLSeconds: viper.GetInt("CACHE_ITEM_TTL_SECONDS"),
			},
			Storage: StorageConfig{
				Endpoint:  viper.GetString("STORAGE_ENDPOINT"),
				AccessKey: viper.GetString("STORAGE_ACCESS_KEY"),
				SecretKey: viper.GetString("STORAGE_SECRET_KEY"),
				Bucket:    viper.GetString("STORAGE_BUCKET"),
				UseSSL:    viper.GetBool("STORAGE_USE_SSL"),
			},
			Planning: PlanningConfig{
				TargetDaysOfCoverage:      viper.GetInt("PLANNING_TARGET_DAYS_OF_COVERAGE"),
				SafetyStockDays:           viper.GetInt("PLANNING_SAFETY_STOCK_DAYS"),
				MinimumReorderQuantity:    viper.GetInt("PLANNING_MIN_REORDER_QTY"),
				MaximumReorderQuantity:    viper.GetInt("PLANNING_MAX_REORDER_QTY"),
				LeadTimeDays:              viper.GetInt("PLANNING_LEAD_TIME_DAYS"),
				StorageRatePerUnit:        viper.GetFloat64("PLANNING_STORAGE_RATE_PER_UNIT"),
				FulfillmentFeePerUnit:     viper.GetFloat64("PLANNING_FULFILLMENT_FEE_PER_UNIT"),
				MonthlyStorageFeePerUnit:  viper.GetFloat64("PLANNING_MONTHLY_STORAGE_FEE_PER_UNIT"),
				LongTermStorageFeePerUnit: viper.GetFloat64("PLANNING_LONG_TERM_STORAGE_FEE_PER_UNIT"),
				ReferralFeePercent:        viper.GetFloat64("PLANNING_REFERRAL_FEE_PERCENT"),
				DefaultUnitCost:           viper.GetFloat64("PLANNING_DEFAULT_UNIT_COST"),
				WorkerCount:               viper.GetInt("PLANNING_WORKER_COUNT"),
			},
		}
	})

	return instance
}
