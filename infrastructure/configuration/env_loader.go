package configuration

import (
	"os"

	"trending-board/infrastructure/logger"

	"github.com/joho/godotenv"
)

// LoadEnvFromFile loads KEY=VALUE pairs from one or more env files (e.g.
// config.env, .env). Missing files are skipped and existing environment
// variables are never overridden, so the OS environment keeps precedence.
func LoadEnvFromFile(paths ...string) {
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			logger.GetLogger().WithField("error", err).WithField("path", p).Warn("Failed loading env file")
			continue
		}
		logger.GetLogger().WithField("path", p).Info("Loaded env file")
	}
}
