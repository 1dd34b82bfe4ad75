package configuration

import (
	"os"
	"strings"

	"trending-board/infrastructure/logger"

	"github.com/spf13/viper"
)

// Configuration keys understood by the application. Secrets take precedence
// over environment variables for every key.
const (
	KeyAPIKey       = "YOUTUBE_API_KEY"
	KeyRegionCode   = "REGION_CODE"
	KeyMaxResults   = "MAX_RESULTS"
	KeyAuthUsername = "AUTH_USERNAME"
	KeyAuthHash     = "AUTH_PASSWORD_HASH"
	KeySecretKey    = "SECRET_KEY"
)

// Resolver resolves named configuration values from a layered source: a
// secrets file first, then process environment variables. Lookups never fail;
// a missing or unreadable layer is treated as absence.
type Resolver struct {
	secrets *viper.Viper
}

// NewResolver loads the secrets file (secrets.toml in the working directory or
// ./config) and returns a resolver over it. A missing or unparsable secrets
// file is not an error; the resolver simply falls through to the environment.
func NewResolver() *Resolver {
	v := viper.New()
	v.SetConfigName("secrets")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			logger.GetLogger().Debug("No secrets file found; using environment variables only")
		} else {
			logger.GetLogger().WithField("error", err).Warn("Secrets file unreadable; using environment variables only")
		}
		v = nil
	}
	return &Resolver{secrets: v}
}

// NewResolverWithSecrets wires an explicit secrets store; used by tests and by
// callers that manage their own viper instance.
func NewResolverWithSecrets(secrets *viper.Viper) *Resolver {
	return &Resolver{secrets: secrets}
}

// GetConfig returns the value for key from the secrets store, then the process
// environment, then the supplied default. Empty values are treated as absent
// and fall through to the next layer.
func (r *Resolver) GetConfig(key, defaultValue string) string {
	if r != nil && r.secrets != nil {
		if val := strings.TrimSpace(r.secrets.GetString(key)); val != "" {
			return val
		}
	}
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultValue
}

// AuthConfigured reports whether both credential keys are present, which is
// what switches the login gate on.
func (r *Resolver) AuthConfigured() bool {
	return r.GetConfig(KeyAuthUsername, "") != "" && r.GetConfig(KeyAuthHash, "") != ""
}
