// Package config handles configuration for the backend server, including
// defaults, environment overlay (with optional .env file), and command-line
// flags.
package config

import (
	"errors"
	"time"
)

// Config holds runtime settings for the doxxd backend server.
//
// Fields:
//   - EndpointAddr: bind address for the public HTTP endpoint.
//   - DatabaseDSN: PostgreSQL DSN (pgx).
//   - SecretKey: HMAC secret for signing JWTs (HS256). Never logged.
//   - TokenValidityDuration: access token lifetime.
//   - UploadDir: directory where uploaded avatars are stored.
//   - UploadURLPrefix: URL prefix under which UploadDir is served.
//   - DefaultAvatarURL: avatar path used when a user has not uploaded one.
//   - CORSOrigin: comma-separated list of allowed browser origins.
type Config struct {
	EndpointAddr          string
	DatabaseDSN           string
	SecretKey             string
	TokenValidityDuration time.Duration
	UploadDir             string
	UploadURLPrefix       string
	DefaultAvatarURL      string
	CORSOrigin            string
}

var (
	ErrNoDatabaseDSN = errors.New("config: database DSN is required (set DATABASE_URL)")
	ErrNoSecretKey   = errors.New("config: token signing secret is required (set JWT_SECRET)")
)

// LoadDefaults populates Config with development defaults. The database DSN
// and signing secret have no default and must be supplied via environment or
// flags.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":5000"
	c.TokenValidityDuration = 1 * time.Hour
	c.UploadDir = "uploads"
	c.UploadURLPrefix = "/uploads"
	c.DefaultAvatarURL = "/img/default-avatar.png"
	c.CORSOrigin = "http://localhost:3000"
}

// Validate reports the first missing required setting. A failing Validate is
// a fatal startup condition.
func (c *Config) Validate() error {
	if c.DatabaseDSN == "" {
		return ErrNoDatabaseDSN
	}
	if c.SecretKey == "" {
		return ErrNoSecretKey
	}
	return nil
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from the environment and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
