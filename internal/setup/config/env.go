package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnvFile loads variables from the given file when it exists.
// Missing files are tolerated so production can rely on real env vars.
func LoadEnvFile(path string) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return
	}

	if err := godotenv.Load(path); err != nil {
		log.Printf("could not load env file %s: %v", path, err)
	}
}
