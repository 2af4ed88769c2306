package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server       ServerConfig       `yaml:"server"`
	Database     DatabaseConfig     `yaml:"database"`
	Auth         AuthConfig         `yaml:"auth"`
	Cloud        CloudConfig        `yaml:"cloud"`
	Connectivity ConnectivityConfig `yaml:"connectivity"`
	Lockout      LockoutConfig      `yaml:"lockout"`
	Sync         SyncConfig         `yaml:"sync"`
	Log          LogConfig          `yaml:"log"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	// LoginRateLimit is the number of auth requests allowed per client IP per minute.
	LoginRateLimit int `yaml:"login_rate_limit" env:"SERVER_LOGIN_RATE_LIMIT" env-default:"20"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	MigrateOnStart  bool          `yaml:"migrate_on_start"   env:"DATABASE_MIGRATE_ON_START"   env-default:"true"`
}

// AuthConfig holds password hashing and session token settings.
type AuthConfig struct {
	JWTSecret  string        `yaml:"jwt_secret"  env:"AUTH_JWT_SECRET"  env-required:"true"`
	JWTIssuer  string        `yaml:"jwt_issuer"  env:"AUTH_JWT_ISSUER"  env-default:"roadworks"`
	SessionTTL time.Duration `yaml:"session_ttl" env:"AUTH_SESSION_TTL" env-default:"24h"`
	BcryptCost int           `yaml:"bcrypt_cost" env:"AUTH_BCRYPT_COST" env-default:"10"`
	// AdminEmails may list blocked accounts, unlock them, edit the lockout
	// policy and trigger a sync pass.
	AdminEmails []string `yaml:"admin_emails" env:"AUTH_ADMIN_EMAILS" env-separator:","`
}

// CloudConfig holds the Firebase project settings. An empty ProjectID runs
// the service local-only.
type CloudConfig struct {
	ProjectID         string        `yaml:"project_id"         env:"CLOUD_PROJECT_ID"`
	CredentialsFile   string        `yaml:"credentials_file"   env:"CLOUD_CREDENTIALS_FILE"`
	WebAPIKey         string        `yaml:"web_api_key"        env:"CLOUD_WEB_API_KEY"`
	IdentityEndpoint  string        `yaml:"identity_endpoint"  env:"CLOUD_IDENTITY_ENDPOINT"  env-default:"https://identitytoolkit.googleapis.com/v1"`
	RecordsCollection string        `yaml:"records_collection" env:"CLOUD_RECORDS_COLLECTION" env-default:"signalements"`
	PhotosCollection  string        `yaml:"photos_collection"  env:"CLOUD_PHOTOS_COLLECTION"  env-default:"photos"`
	IdentityTimeout   time.Duration `yaml:"identity_timeout"   env:"CLOUD_IDENTITY_TIMEOUT"   env-default:"10s"`
	DocumentTimeout   time.Duration `yaml:"document_timeout"   env:"CLOUD_DOCUMENT_TIMEOUT"   env-default:"10s"`
	RetryMax          int           `yaml:"retry_max"          env:"CLOUD_RETRY_MAX"          env-default:"2"`
}

// Enabled reports whether a cloud project is configured.
func (c CloudConfig) Enabled() bool {
	return c.ProjectID != ""
}

// ConnectivityConfig holds the reachability probe settings.
type ConnectivityConfig struct {
	Address string        `yaml:"address" env:"CONNECTIVITY_ADDRESS" env-default:"8.8.8.8:53"`
	Timeout time.Duration `yaml:"timeout" env:"CONNECTIVITY_TIMEOUT" env-default:"2s"`
}

// LockoutConfig holds failed-login lockout settings.
type LockoutConfig struct {
	DefaultMaxAttempts int           `yaml:"default_max_attempts" env:"LOCKOUT_DEFAULT_MAX_ATTEMPTS" env-default:"3"`
	PolicyCacheTTL     time.Duration `yaml:"policy_cache_ttl"     env:"LOCKOUT_POLICY_CACHE_TTL"     env-default:"30s"`
}

// SyncConfig holds record synchronisation settings. A zero Interval disables
// the background worker.
type SyncConfig struct {
	Interval    time.Duration `yaml:"interval"    env:"SYNC_INTERVAL"    env-default:"5m"`
	Parallelism int           `yaml:"parallelism" env:"SYNC_PARALLELISM" env-default:"4"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
