package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.BcryptCost < bcrypt.MinCost || c.Auth.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.bcrypt_cost must be in [%d, %d] (got %d)", bcrypt.MinCost, bcrypt.MaxCost, c.Auth.BcryptCost)
	}
	if c.Auth.SessionTTL <= 0 {
		return fmt.Errorf("auth.session_ttl must be > 0 (got %s)", c.Auth.SessionTTL)
	}

	if c.Server.LoginRateLimit < 1 {
		return fmt.Errorf("server.login_rate_limit must be >= 1 (got %d)", c.Server.LoginRateLimit)
	}

	if err := c.Cloud.validate(); err != nil {
		return fmt.Errorf("cloud: %w", err)
	}

	if c.Connectivity.Address == "" {
		return fmt.Errorf("connectivity.address is required")
	}
	if c.Connectivity.Timeout <= 0 {
		return fmt.Errorf("connectivity.timeout must be > 0 (got %s)", c.Connectivity.Timeout)
	}

	if c.Lockout.DefaultMaxAttempts < 1 {
		return fmt.Errorf("lockout.default_max_attempts must be >= 1 (got %d)", c.Lockout.DefaultMaxAttempts)
	}
	if c.Lockout.PolicyCacheTTL < 0 {
		return fmt.Errorf("lockout.policy_cache_ttl must be >= 0 (got %s)", c.Lockout.PolicyCacheTTL)
	}

	if c.Sync.Interval < 0 {
		return fmt.Errorf("sync.interval must be >= 0 (got %s)", c.Sync.Interval)
	}
	if c.Sync.Parallelism < 1 {
		return fmt.Errorf("sync.parallelism must be >= 1 (got %d)", c.Sync.Parallelism)
	}

	return nil
}

func (c *CloudConfig) validate() error {
	if !c.Enabled() {
		return nil
	}
	if c.WebAPIKey == "" {
		return fmt.Errorf("web_api_key is required when project_id is set")
	}
	if c.RecordsCollection == "" || c.PhotosCollection == "" {
		return fmt.Errorf("records_collection and photos_collection are required")
	}
	if c.IdentityTimeout <= 0 || c.DocumentTimeout <= 0 {
		return fmt.Errorf("identity_timeout and document_timeout must be > 0")
	}
	if c.RetryMax < 0 {
		return fmt.Errorf("retry_max must be >= 0 (got %d)", c.RetryMax)
	}
	return nil
}
