package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	c := &Config{}
	c.LoadDefaults()

	if c.EndpointAddr != ":5000" {
		t.Fatalf("unexpected default addr: %q", c.EndpointAddr)
	}
	if c.TokenValidityDuration != time.Hour {
		t.Fatalf("unexpected default token TTL: %v", c.TokenValidityDuration)
	}
	if c.DefaultAvatarURL != "/img/default-avatar.png" {
		t.Fatalf("unexpected default avatar: %q", c.DefaultAvatarURL)
	}
	if c.DatabaseDSN != "" || c.SecretKey != "" {
		t.Fatalf("DSN and secret must have no default")
	}
}

func TestValidate(t *testing.T) {
	c := &Config{}
	c.LoadDefaults()

	if err := c.Validate(); err != ErrNoDatabaseDSN {
		t.Fatalf("expected ErrNoDatabaseDSN, got %v", err)
	}

	c.DatabaseDSN = "postgres://localhost/doxxd"
	if err := c.Validate(); err != ErrNoSecretKey {
		t.Fatalf("expected ErrNoSecretKey, got %v", err)
	}

	c.SecretKey = "k"
	if err := c.Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
}

func TestParseEnv_Overlay(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("DATABASE_URL", "postgres://env/db")
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("TOKEN_TTL", "30")
	t.Setenv("UPLOAD_DIR", "/tmp/up")
	t.Setenv("CORS_ORIGIN", "https://doxxd.example")

	c := &Config{}
	c.LoadDefaults()
	parseEnv(c)

	if c.EndpointAddr != ":8080" {
		t.Fatalf("PORT not applied: %q", c.EndpointAddr)
	}
	if c.DatabaseDSN != "postgres://env/db" {
		t.Fatalf("DATABASE_URL not applied: %q", c.DatabaseDSN)
	}
	if c.SecretKey != "env-secret" {
		t.Fatalf("JWT_SECRET not applied")
	}
	if c.TokenValidityDuration != 30*time.Minute {
		t.Fatalf("TOKEN_TTL not applied: %v", c.TokenValidityDuration)
	}
	if c.UploadDir != "/tmp/up" {
		t.Fatalf("UPLOAD_DIR not applied: %q", c.UploadDir)
	}
	if c.CORSOrigin != "https://doxxd.example" {
		t.Fatalf("CORS_ORIGIN not applied: %q", c.CORSOrigin)
	}
}

func TestParseEnv_AddressWinsOverPort(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("ADDRESS", "127.0.0.1:9999")

	c := &Config{}
	c.LoadDefaults()
	parseEnv(c)

	if c.EndpointAddr != "127.0.0.1:9999" {
		t.Fatalf("ADDRESS must take precedence, got %q", c.EndpointAddr)
	}
}

func TestParseEnv_BadTTLIgnored(t *testing.T) {
	t.Setenv("TOKEN_TTL", "not-a-number")

	c := &Config{}
	c.LoadDefaults()
	parseEnv(c)

	if c.TokenValidityDuration != time.Hour {
		t.Fatalf("invalid TOKEN_TTL must keep default, got %v", c.TokenValidityDuration)
	}
}
