// Package auth stores and resolves the personal access token used to call
// the Hub platform API. Tokens live in the OS keyring, one entry per
// configuration profile.
package auth

import (
	"fmt"

	"github.com/zalando/go-keyring"
)

// keyringService is the service name tokens are filed under in the OS
// keyring.
const keyringService = "hubctl"

// SaveToken stores a token for a profile in the OS keyring.
func SaveToken(profileName, token string) error {
	if token == "" {
		return fmt.Errorf("token cannot be empty")
	}
	if err := keyring.Set(keyringService, profileName, token); err != nil {
		return fmt.Errorf("failed to store token in keyring: %w", err)
	}
	return nil
}

// LoadToken retrieves the token for a profile. A missing entry is not an
// error; it returns the empty string.
func LoadToken(profileName string) (string, error) {
	token, err := keyring.Get(keyringService, profileName)
	if err != nil {
		if err == keyring.ErrNotFound {
			return "", nil
		}
		return "", fmt.Errorf("failed to retrieve token from keyring: %w", err)
	}
	return token, nil
}

// DeleteToken removes the token for a profile. Deleting a missing entry is
// not an error.
func DeleteToken(profileName string) error {
	if err := keyring.Delete(keyringService, profileName); err != nil {
		if err == keyring.ErrNotFound {
			return nil
		}
		return fmt.Errorf("failed to delete token from keyring: %w", err)
	}
	return nil
}

// ResolveToken picks the token to use: an explicit token (flag or
// environment) wins over the keyring entry for the profile.
func ResolveToken(explicit, profileName string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	return LoadToken(profileName)
}
