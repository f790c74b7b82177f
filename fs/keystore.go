// Package fs provides file-based storage: the persisted API key and
// exported scrape results.
package fs

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/sitegrab"
)

// Ensure KeyStore implements sitegrab.KeyStore at compile time.
var _ sitegrab.KeyStore = (*KeyStore)(nil)

// KeyStore persists the scraping service API key in a single file.
type KeyStore struct {
	path string
}

// NewKeyStore creates a KeyStore backed by the file at path.
func NewKeyStore(path string) *KeyStore {
	return &KeyStore{path: path}
}

// DefaultKeyPath returns ~/.sitegrab/api_key, or a relative path when the
// home directory cannot be determined.
func DefaultKeyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".sitegrab", "api_key")
	}
	return filepath.Join(home, ".sitegrab", "api_key")
}

// Path returns the file backing the store.
func (s *KeyStore) Path() string {
	return s.path
}

// APIKey returns the stored key.
// Returns ENOTFOUND if no key is stored.
func (s *KeyStore) APIKey() (string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return "", sitegrab.Errorf(sitegrab.ENOTFOUND, "no API key stored at %s", s.path)
	} else if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// SetAPIKey writes key to the store, readable only by the current user.
func (s *KeyStore) SetAPIKey(key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return sitegrab.Errorf(sitegrab.EINVALID, "API key required")
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return err
	}
	return writeFileAtomic(s.path, []byte(key+"\n"), 0600)
}

// DeleteAPIKey removes the stored key.
// Returns ENOTFOUND if no key is stored.
func (s *KeyStore) DeleteAPIKey() error {
	err := os.Remove(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return sitegrab.Errorf(sitegrab.ENOTFOUND, "no API key stored at %s", s.path)
	}
	return err
}

// writeFileAtomic writes data to a temporary file in the target directory
// and renames it into place.
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
