// Package config loads the runtime configuration for the server. The whole
// configuration is read once in main and injected; no other package reads
// the environment.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// DefaultSecret is the fallback JWT signing secret used when JWT_SECRET is
// unset. Deployments must always set an explicit secret; the server logs a
// warning at startup when running on this value.
const DefaultSecret = "escena-dev-secret-change-me"

// DefaultTokenLifetime is the single canonical session token lifetime.
const DefaultTokenLifetime = 8 * time.Hour

// Gate presets name the two shapes the public-path allow-list can take.
// Environments pick a preset instead of editing path lists.
const (
	// GateStrict keeps only the login and health endpoints public.
	GateStrict = "strict"
	// GateOpen additionally exposes the read-only content endpoints and
	// the contact form.
	GateOpen = "open"
)

// Config carries every runtime setting consumed by the server.
type Config struct {
	Addr        string
	DatabaseURL string
	WebDir      string

	JWTSecret     string
	TokenLifetime time.Duration
	// RelaxedExpiry lets the request verifier accept expired tokens via an
	// unverified decode. Development convenience only.
	RelaxedExpiry bool
	GatePreset    string

	// BootstrapEnabled controls the default-administrator fallback on an
	// empty credential store.
	BootstrapEnabled bool

	OIDCIssuer       string
	OIDCClientID     string
	OIDCClientSecret string
	OIDCRedirectURL  string
}

// Load builds a Config from the environment, reading a .env file first if
// one is present in the working directory.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Addr:        env("ADDR", ":8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		WebDir:      env("WEB_DIR", "web"),

		JWTSecret:     env("JWT_SECRET", DefaultSecret),
		TokenLifetime: durationEnv("TOKEN_LIFETIME", DefaultTokenLifetime),
		RelaxedExpiry: boolEnv("RELAXED_EXPIRY", false),
		GatePreset:    env("GATE_PRESET", GateOpen),

		BootstrapEnabled: boolEnv("BOOTSTRAP_ENABLED", true),

		OIDCIssuer:       os.Getenv("OIDC_ISSUER"),
		OIDCClientID:     os.Getenv("OIDC_CLIENT_ID"),
		OIDCClientSecret: os.Getenv("OIDC_CLIENT_SECRET"),
		OIDCRedirectURL:  os.Getenv("OIDC_REDIRECT_URL"),
	}
}

// SSOEnabled reports whether the OIDC login flow is configured.
func (c Config) SSOEnabled() bool {
	return c.OIDCIssuer != "" && c.OIDCClientID != ""
}

// PublicPrefixes returns the allow-list of always-public API path prefixes
// for the configured gate preset. This is the only place the lists exist.
func (c Config) PublicPrefixes() []string {
	strict := []string{
		"/api/auth/login",
		"/api/auth/sso/",
		"/api/health",
	}
	if c.GatePreset == GateStrict {
		return strict
	}
	return append(strict,
		"/api/hero",
		"/api/gallery",
		"/api/genres",
		"/api/tracks",
		"/api/social",
		"/api/site",
		"/api/contact",
	)
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func boolEnv(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
