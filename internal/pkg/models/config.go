package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NSQ      NSQConfig
	JWT      JWTConfig
	Auth     AuthConfig
	Pricing  PricingConfig
	Tracking TrackingConfig
	NewRelic NewRelicConfig
	Logger   LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
	BaseURL     string
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
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NSQConfig contains NSQ connection configuration
type NSQConfig struct {
	NSQDAddress    string
	LookupdAddress string
	Channel        string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret             string
	Expiration         int // in minutes
	TrackingExpiration int // passenger tracking link lifetime, in minutes
	Issuer             string
}

// AuthConfig contains login throttling configuration
type AuthConfig struct {
	LoginRateLimit     int // attempts per window per source IP
	LoginRatePeriodSec int // window length in seconds
}

// PricingConfig contains quote pricing configuration
type PricingConfig struct {
	BaseFare  float64
	PerKmRate float64
	Currency  string
}

// TrackingConfig contains tracking subsystem configuration
type TrackingConfig struct {
	MinUpdateIntervalSec int // minimum seconds between accepted writes per ride
	LocationTTLMin       int // minutes before a stored sample is considered stale
	BroadcastIntervalSec int // seconds between broadcast ticks
}

// NewRelicConfig contains New Relic agent configuration
type NewRelicConfig struct {
	LicenseKey string
	AppName    string
	Enabled    bool
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
