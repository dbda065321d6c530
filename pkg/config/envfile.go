package config

import (
	"os"
	"path/filepath"
)

const defaultEnvFile = ".env"

// FindEnvFile walks from the working directory up to the filesystem root and
// returns the first path where filename exists. An empty filename means .env.
func FindEnvFile(filename string) (string, error) {
	if filename == "" {
		filename = defaultEnvFile
	}
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err != nil {
			return "", err
		}
		return filename, nil
	}

	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		candidate := filepath.Join(dir, filename)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}
