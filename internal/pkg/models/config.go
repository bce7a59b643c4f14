package models

import "time"

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Mongo    MongoConfig
	NATS     NATSConfig
	NSQ      NSQConfig
	JWT      JWTConfig
	Match    MatchConfig
	Payment  PaymentConfig
	Email    EmailConfig
	Logger   LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
	FrontendURL string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver      string
	Host        string
	Port        int
	Username    string
	Password    string
	Database    string
	SSLMode     string
	MaxConns    int
	IdleConns   int
	AutoMigrate bool
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// MongoConfig contains the chat store connection. An empty URI disables chat.
type MongoConfig struct {
	URI            string
	Database       string
	ConnectTimeout time.Duration
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// NSQConfig contains NSQ connection and topic configuration
type NSQConfig struct {
	NSQDAddress string
	MailTopic   string
	MailChannel string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret string
	Issuer string
}

// MatchConfig contains matching and re-matching configuration
type MatchConfig struct {
	SweepInterval         time.Duration // how often pending services are re-checked
	SweepWindow           time.Duration // only services created within this window are re-checked
	SweepMinNotifications int           // services with fewer notification rows are re-matched
	RenotifyWindow        time.Duration // 0 disables suppression of repeat offers in the sweep
	DefaultRadiusMeters   int
	AreaPrecision         uint // geohash precision of the area shared in offers
}

// PaymentConfig contains payment gateway configuration
type PaymentConfig struct {
	StripeSecretKey string
	WebhookSecret   string
	Currency        string
	CommissionRate  float64
	SuccessURL      string
	CancelURL       string
}

// EmailConfig contains transactional email configuration
type EmailConfig struct {
	PostmarkToken string
	APIBaseURL    string
	FromEmail     string
	FromName      string
	Timeout       time.Duration
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
	Format   string
}
