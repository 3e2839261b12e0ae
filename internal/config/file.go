package config

import (
	"os"
	"path/filepath"
)

// FindFile returns userValue or the first existing configuration file in
// standard locations.
//
// Returns empty string if no file is found.
func FindFile(userValue string) (configpath string) {
	if userValue != "" {
		return userValue
	}

	home, _ := os.UserHomeDir()
	candidates := []string{
		"./permutate.yml",
		"./permutate.yaml",
		filepath.Join(home, ".config/permutate.yml"),
		filepath.Join(home, ".config/permutate.yaml"),
		"/etc/permutate.yml",
		"/etc/permutate.yaml",
	}

	for _, candidate := range candidates {
		_, err := os.Stat(candidate)
		if err == nil {
			return candidate
		}
	}
	return ""
}
