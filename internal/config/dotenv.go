package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// dotenvFiles lists the files read for appEnv, highest precedence first.
// .env.local is skipped in the test environment so local overrides never leak
// into test runs.
func dotenvFiles(appEnv string) []string {
	if appEnv == "" {
		appEnv = "development"
	}
	files := []string{".env." + appEnv + ".local"}
	if appEnv != "test" {
		files = append(files, ".env.local")
	}
	return append(files, ".env."+appEnv, ".env")
}

// loadDotenv populates the process environment from the dotenv files in dir.
// Variables that are already set are never overwritten, so the process
// environment wins over every file and earlier files win over later ones.
func loadDotenv(dir, appEnv string) error {
	for _, name := range dotenvFiles(appEnv) {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("config: stat %s: %w", path, err)
		}
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("config: load %s: %w", path, err)
		}
	}
	return nil
}
