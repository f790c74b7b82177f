package mock

import "github.com/fwojciec/sitegrab"

var _ sitegrab.KeyStore = (*KeyStore)(nil)

// KeyStore is a mock implementation of sitegrab.KeyStore.
type KeyStore struct {
	APIKeyFn       func() (string, error)
	SetAPIKeyFn    func(key string) error
	DeleteAPIKeyFn func() error
}

func (s *KeyStore) APIKey() (string, error) {
	return s.APIKeyFn()
}

func (s *KeyStore) SetAPIKey(key string) error {
	return s.SetAPIKeyFn(key)
}

func (s *KeyStore) DeleteAPIKey() error {
	return s.DeleteAPIKeyFn()
}
