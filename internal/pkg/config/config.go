package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/Juankcba/choapp-back/internal/pkg/models"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// InitConfig loads the .env file in local environments and reads every setting
// from the environment (or an optional config.yaml next to it) through viper.
func InitConfig(configPath string) *models.Config {
	if GetEnv("APP_ENV", "local") == "local" && configPath != "" {
		if err := godotenv.Load(configPath); err != nil {
			log.Println("error loading config from file", err)
		}
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Printf("error reading config file: %s", err)
		}
	}

	return loadConfig(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_NAME", "choapp-matching")
	v.SetDefault("APP_ENV", "local")
	v.SetDefault("APP_DEBUG", true)
	v.SetDefault("APP_VERSION", "dev")
	v.SetDefault("FRONTEND_URL", "http://localhost:3000")

	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("SERVER_READ_TIMEOUT", 15)
	v.SetDefault("SERVER_WRITE_TIMEOUT", 15)
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", 30)

	v.SetDefault("DB_DRIVER", "pgx")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USERNAME", "postgres")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_DATABASE", "choapp")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 20)
	v.SetDefault("DB_IDLE_CONNS", 5)
	v.SetDefault("DB_AUTO_MIGRATE", true)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_POOL_SIZE", 10)

	v.SetDefault("MONGO_URI", "")
	v.SetDefault("MONGO_DATABASE", "choapp")
	v.SetDefault("MONGO_CONNECT_TIMEOUT", "10s")

	v.SetDefault("NATS_URL", "nats://localhost:4222")

	v.SetDefault("NSQ_NSQD_ADDRESS", "localhost:4150")
	v.SetDefault("NSQ_MAIL_TOPIC", "mail.send")
	v.SetDefault("NSQ_MAIL_CHANNEL", "mailer")

	v.SetDefault("JWT_ISSUER", "choapp")

	v.SetDefault("MATCH_SWEEP_INTERVAL", "10m")
	v.SetDefault("MATCH_SWEEP_WINDOW", "168h")
	v.SetDefault("MATCH_SWEEP_MIN_NOTIFICATIONS", 5)
	v.SetDefault("MATCH_RENOTIFY_WINDOW", "24h")
	v.SetDefault("MATCH_DEFAULT_RADIUS_METERS", models.DefaultServiceRadiusMeters)
	v.SetDefault("MATCH_AREA_PRECISION", 5)

	v.SetDefault("PAYMENT_CURRENCY", "usd")
	v.SetDefault("PAYMENT_COMMISSION_RATE", 0.10)

	v.SetDefault("EMAIL_API_BASE_URL", "https://api.postmarkapp.com")
	v.SetDefault("EMAIL_FROM_EMAIL", "noreply@choapp.com")
	v.SetDefault("EMAIL_FROM_NAME", "ChoApp")
	v.SetDefault("EMAIL_TIMEOUT", "10s")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FILE_PATH", "")
	v.SetDefault("LOG_FORMAT", "json")
}

func loadConfig(v *viper.Viper) *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = v.GetString("APP_NAME")
	configs.App.Environment = v.GetString("APP_ENV")
	configs.App.Debug = v.GetBool("APP_DEBUG")
	configs.App.Version = v.GetString("APP_VERSION")
	configs.App.FrontendURL = v.GetString("FRONTEND_URL")

	// Server config
	configs.Server.Host = v.GetString("SERVER_HOST")
	configs.Server.Port = v.GetInt("SERVER_PORT")
	configs.Server.ReadTimeout = v.GetInt("SERVER_READ_TIMEOUT")
	configs.Server.WriteTimeout = v.GetInt("SERVER_WRITE_TIMEOUT")
	configs.Server.ShutdownTimeout = v.GetInt("SERVER_SHUTDOWN_TIMEOUT")

	// Database config
	configs.Database.Driver = v.GetString("DB_DRIVER")
	configs.Database.Host = v.GetString("DB_HOST")
	configs.Database.Port = v.GetInt("DB_PORT")
	configs.Database.Username = v.GetString("DB_USERNAME")
	configs.Database.Password = v.GetString("DB_PASSWORD")
	configs.Database.Database = v.GetString("DB_DATABASE")
	configs.Database.SSLMode = v.GetString("DB_SSL_MODE")
	configs.Database.MaxConns = v.GetInt("DB_MAX_CONNS")
	configs.Database.IdleConns = v.GetInt("DB_IDLE_CONNS")
	configs.Database.AutoMigrate = v.GetBool("DB_AUTO_MIGRATE")

	// Redis config
	configs.Redis.Host = v.GetString("REDIS_HOST")
	configs.Redis.Port = v.GetInt("REDIS_PORT")
	configs.Redis.Password = v.GetString("REDIS_PASSWORD")
	configs.Redis.DB = v.GetInt("REDIS_DB")
	configs.Redis.PoolSize = v.GetInt("REDIS_POOL_SIZE")

	// Mongo config
	configs.Mongo.URI = v.GetString("MONGO_URI")
	configs.Mongo.Database = v.GetString("MONGO_DATABASE")
	configs.Mongo.ConnectTimeout = v.GetDuration("MONGO_CONNECT_TIMEOUT")

	// NATS config
	configs.NATS.URL = v.GetString("NATS_URL")

	// NSQ config
	configs.NSQ.NSQDAddress = v.GetString("NSQ_NSQD_ADDRESS")
	configs.NSQ.MailTopic = v.GetString("NSQ_MAIL_TOPIC")
	configs.NSQ.MailChannel = v.GetString("NSQ_MAIL_CHANNEL")

	// JWT config
	configs.JWT.Secret = v.GetString("JWT_SECRET")
	configs.JWT.Issuer = v.GetString("JWT_ISSUER")

	// Match config
	configs.Match.SweepInterval = v.GetDuration("MATCH_SWEEP_INTERVAL")
	configs.Match.SweepWindow = v.GetDuration("MATCH_SWEEP_WINDOW")
	configs.Match.SweepMinNotifications = v.GetInt("MATCH_SWEEP_MIN_NOTIFICATIONS")
	configs.Match.RenotifyWindow = v.GetDuration("MATCH_RENOTIFY_WINDOW")
	configs.Match.DefaultRadiusMeters = v.GetInt("MATCH_DEFAULT_RADIUS_METERS")
	configs.Match.AreaPrecision = v.GetUint("MATCH_AREA_PRECISION")

	// Payment config
	configs.Payment.StripeSecretKey = v.GetString("STRIPE_SECRET_KEY")
	configs.Payment.WebhookSecret = v.GetString("STRIPE_WEBHOOK_SECRET")
	configs.Payment.Currency = v.GetString("PAYMENT_CURRENCY")
	configs.Payment.CommissionRate = v.GetFloat64("PAYMENT_COMMISSION_RATE")
	configs.Payment.SuccessURL = v.GetString("PAYMENT_SUCCESS_URL")
	configs.Payment.CancelURL = v.GetString("PAYMENT_CANCEL_URL")
	if configs.Payment.SuccessURL == "" {
		configs.Payment.SuccessURL = configs.App.FrontendURL + "/payment/success?service_id={SERVICE_ID}"
	}
	if configs.Payment.CancelURL == "" {
		configs.Payment.CancelURL = configs.App.FrontendURL + "/payment/cancel?service_id={SERVICE_ID}"
	}

	// Email config
	configs.Email.PostmarkToken = v.GetString("POSTMARK_SERVER_TOKEN")
	configs.Email.APIBaseURL = v.GetString("EMAIL_API_BASE_URL")
	configs.Email.FromEmail = v.GetString("EMAIL_FROM_EMAIL")
	configs.Email.FromName = v.GetString("EMAIL_FROM_NAME")
	configs.Email.Timeout = v.GetDuration("EMAIL_TIMEOUT")

	// Logger config
	configs.Logger.Level = v.GetString("LOG_LEVEL")
	configs.Logger.FilePath = v.GetString("LOG_FILE_PATH")
	configs.Logger.Format = v.GetString("LOG_FORMAT")

	return configs
}

// GetEnv returns the environment variable or the default when unset
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// GetEnvAsDuration parses a duration environment variable
func GetEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid duration value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}
