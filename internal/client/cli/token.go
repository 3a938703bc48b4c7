package cli

import (
	"os"
	"path/filepath"
	"strings"
)

// SaveToken writes the bearer token to path, creating the parent directory
// when needed. The file is user-only readable.
func SaveToken(path, token string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(token), 0o600)
}

// LoadToken reads a previously saved bearer token. A missing file returns
// an empty token so the caller can tell the user to log in.
func LoadToken(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}
