package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/sitegrab"
)

// Run executes the key set command.
func (c *KeySetCmd) Run(deps *Dependencies) error {
	if err := deps.Keys.SetAPIKey(c.Key); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitegrab.ErrorMessage(err))
		return err
	}
	fmt.Fprintln(deps.Stdout, "API key saved")
	return nil
}

// Run executes the key show command.
func (c *KeyShowCmd) Run(deps *Dependencies) error {
	key, err := deps.Keys.APIKey()
	if sitegrab.ErrorCode(err) == sitegrab.ENOTFOUND {
		fmt.Fprintln(deps.Stdout, "No API key stored. Use 'sitegrab key set' to add one.")
		return nil
	} else if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitegrab.ErrorMessage(err))
		return err
	}
	fmt.Fprintln(deps.Stdout, maskKey(key))
	return nil
}

// Run executes the key clear command.
func (c *KeyClearCmd) Run(deps *Dependencies) error {
	err := deps.Keys.DeleteAPIKey()
	if sitegrab.ErrorCode(err) == sitegrab.ENOTFOUND {
		fmt.Fprintln(deps.Stdout, "No API key stored")
		return nil
	} else if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitegrab.ErrorMessage(err))
		return err
	}
	fmt.Fprintln(deps.Stdout, "API key removed")
	return nil
}

// maskKey keeps the first and last four characters of keys long enough
// to stay unguessable.
func maskKey(key string) string {
	if len(key) <= 8 {
		return strings.Repeat("*", len(key))
	}
	return key[:4] + strings.Repeat("*", len(key)-8) + key[len(key)-4:]
}
