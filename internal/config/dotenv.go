package config

import (
	"os"

	"github.com/joho/godotenv"
)

// dotenvCandidates in precedence order. godotenv never overwrites
// variables that are already set, so OS environment always wins and
// .env.local takes precedence over .env.
var dotenvCandidates = []string{".env.local", ".env"}

// LoadDotEnv loads the dotenv files that exist and returns their names
func LoadDotEnv() []string {
	var found []string
	for _, name := range dotenvCandidates {
		if _, err := os.Stat(name); err == nil {
			found = append(found, name)
		}
	}
	if len(found) > 0 {
		_ = godotenv.Load(found...)
	}
	return found
}
