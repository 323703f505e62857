package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Locate returns the path of the first config file named DefaultPath found
// in dirs. found is false if none of the directories holds one.
func Locate(dirs ...string) (path string, found bool, err error) {
	for _, dir := range dirs {
		candidate := filepath.Join(dir, DefaultPath)
		exists, err := FileExists(candidate)
		if err != nil {
			return "", false, err
		}

		if exists {
			return candidate, true, nil
		}
	}
	return "", false, nil
}

// SearchDirs are the directories Locate is pointed at by the cli: the
// working directory first, then the user's home directory.
func SearchDirs() []string {
	dirs := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, home)
	}
	return dirs
}

func FileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false, nil
	} else if err != nil {
		return false, fmt.Errorf("failed to check if file '%s' exists: %w", path, err)
	}

	return true, nil
}
