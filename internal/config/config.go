// Package config populates runtime configuration from environment
// variables, in the teacher's getEnvOrDefault style — no viper, no cobra.
package config

import (
	"log"
	"os"
	"strings"

	"github.com/anchorpq/integrity/internal/pqenvelope"
)

// Config is the process-wide configuration for the verification server.
type Config struct {
	ListenAddr      string
	KEMParameterSet pqenvelope.ParameterSet
	KEMKeyFilePath  string
	MerkleExcludes  []string
}

// Load reads Config from the environment, applying teacher-style defaults
// and logged fallbacks rather than hard failures.
func Load() Config {
	return Config{
		ListenAddr:      getEnvOrDefault("LISTEN_ADDR", ":8443"),
		KEMParameterSet: resolveParameterSet(getEnvOrDefault("KEM_PARAMETER_SET", string(pqenvelope.DefaultParameterSet))),
		KEMKeyFilePath:  getEnvOrDefault("KEM_KEY_FILE_PATH", ""),
		MerkleExcludes:  splitNonEmpty(getEnvOrDefault("MERKLE_EXCLUDE_PATTERNS", "")),
	}
}

// resolveParameterSet validates the configured KEM parameter set. An
// unrecognized value logs a warning and falls back to
// pqenvelope.DefaultParameterSet rather than hard-failing startup —
// matching the teacher's Redis URL parsing in internal/db/db.go, which logs
// a warning and continues with a default instead of refusing to boot.
func resolveParameterSet(raw string) pqenvelope.ParameterSet {
	switch pqenvelope.ParameterSet(raw) {
	case pqenvelope.MLKEM512, pqenvelope.MLKEM768, pqenvelope.MLKEM1024:
		return pqenvelope.ParameterSet(raw)
	default:
		log.Printf("[config] unknown KEM_PARAMETER_SET %q, falling back to %s", raw, pqenvelope.DefaultParameterSet)
		return pqenvelope.DefaultParameterSet
	}
}

func splitNonEmpty(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
