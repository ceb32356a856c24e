package util

import (
	"os"
	"path/filepath"
)

// GetCurrentAbPathByExecutable returns the absolute directory of the running
// executable, with symlinks resolved. Used to locate the default config file.
func GetCurrentAbPathByExecutable() (string, error) {
	exePath, err := os.Executable()
	if err != nil {
		return "", err
	}
	res, _ := filepath.EvalSymlinks(filepath.Dir(exePath))
	return res, nil
}
