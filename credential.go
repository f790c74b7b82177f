package sitegrab

import "strings"

// CredentialSource provides the API key for the scraping service.
type CredentialSource interface {
	// APIKey returns the configured key, or an empty string when none is set.
	APIKey() (string, error)
}

// KeyStore persists the API key locally between runs.
type KeyStore interface {
	CredentialSource

	// SetAPIKey stores key, replacing any previous value.
	SetAPIKey(key string) error

	// DeleteAPIKey removes the stored key.
	// Returns ENOTFOUND if no key is stored.
	DeleteAPIKey() error
}

// StaticCredential is a key fixed at build time or read from the environment.
type StaticCredential string

// APIKey returns the trimmed key.
func (c StaticCredential) APIKey() (string, error) {
	return strings.TrimSpace(string(c)), nil
}

// CredentialChain resolves the API key from sources in precedence order.
// The first source returning a non-empty key wins.
type CredentialChain []CredentialSource

// APIKey walks the chain and returns the first non-empty key.
// A source reporting ENOTFOUND is treated as empty.
// Returns EMISSINGCREDENTIAL when no source has a key.
func (c CredentialChain) APIKey() (string, error) {
	for _, src := range c {
		if src == nil {
			continue
		}
		key, err := src.APIKey()
		if err != nil {
			if ErrorCode(err) == ENOTFOUND {
				continue
			}
			return "", err
		}
		if key = strings.TrimSpace(key); key != "" {
			return key, nil
		}
	}
	return "", Errorf(EMISSINGCREDENTIAL, "no API key configured")
}
