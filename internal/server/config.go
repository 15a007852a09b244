package server

import (
	"errors"
	"fmt"
	"os"
	"time"
)

type Config struct {
	Addr                  string
	MongoURI              string
	MongoDB               string
	CredentialsCollection string
	IdentityCollection    string
	SecretKey             string
	TokenTTL              time.Duration
}

func (c *Config) setDefaults() {
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.MongoURI == "" {
		c.MongoURI = "mongodb://localhost:27017"
	}
	if c.MongoDB == "" {
		c.MongoDB = "identity"
	}
	if c.CredentialsCollection == "" {
		c.CredentialsCollection = "credentials"
	}
	if c.IdentityCollection == "" {
		c.IdentityCollection = "identities"
	}
	if c.TokenTTL <= 0 {
		c.TokenTTL = 15 * time.Minute
	}
}

// FromEnv builds a Config from environment variables. SECRET_KEY has
// no default: the process must not start with a guessable secret.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Addr:                  os.Getenv("ADDR"),
		MongoURI:              os.Getenv("MONGO_URI"),
		MongoDB:               os.Getenv("MONGO_DB"),
		CredentialsCollection: os.Getenv("CREDENTIALS_COLLECTION"),
		IdentityCollection:    os.Getenv("IDENTITY_COLLECTION"),
		SecretKey:             os.Getenv("SECRET_KEY"),
	}
	if cfg.SecretKey == "" {
		return nil, errors.New("SECRET_KEY env not set")
	}
	if raw := os.Getenv("TOKEN_TTL"); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("parse TOKEN_TTL: %w", err)
		}
		cfg.TokenTTL = ttl
	}
	cfg.setDefaults()
	return cfg, nil
}
