package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/sitegrab"
	main "github.com/fwojciec/sitegrab/cmd/sitegrab"
	"github.com/fwojciec/sitegrab/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMain(t *testing.T) *main.Main {
	t.Helper()
	return &main.Main{
		KeyPath: filepath.Join(t.TempDir(), "api_key"),
		Getenv:  func(string) string { return "" },
	}
}

func TestMain_Run(t *testing.T) {
	t.Parallel()

	t.Run("no arguments prints help and fails", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		err := newTestMain(t).Run(context.Background(), nil, stdout, &bytes.Buffer{})

		require.Error(t, err)
		assert.Contains(t, stdout.String(), "scrape")
	})

	t.Run("help flag succeeds", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		err := newTestMain(t).Run(context.Background(), []string{"--help"}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "key")
	})

	t.Run("rejects unknown mode", func(t *testing.T) {
		t.Parallel()

		err := newTestMain(t).Run(context.Background(), []string{"scrape", "--mode", "fancy", "example.com"}, &bytes.Buffer{}, &bytes.Buffer{})

		require.Error(t, err)
	})

	t.Run("scrape uses injected scraper", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(t)
		m.Scraper = &mock.Scraper{
			ScrapeFn: func(_ context.Context, url string) (*sitegrab.ScrapeResult, error) {
				r := sitegrab.EmptyResult("https://" + url)
				r.Title = "Injected"
				return r, nil
			},
		}

		stdout := &bytes.Buffer{}
		err := m.Run(context.Background(), []string{"scrape", "--rps", "0", "example.com"}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "# Injected")
		assert.Contains(t, stdout.String(), "https://example.com")
	})

	t.Run("missing credential fails without network", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		err := newTestMain(t).Run(context.Background(), []string{"scrape", "--format", "json", "--base-url", "http://127.0.0.1:1", "example.com"}, stdout, stderr)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "no API key configured")

		var got sitegrab.ScrapeResult
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &got))
		assert.Equal(t, sitegrab.DefaultTitle, got.Title)
		assert.Empty(t, got.Text)
	})

	t.Run("key set then show", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(t)
		require.NoError(t, m.Run(context.Background(), []string{"key", "set", "fc-1234567890abcd"}, &bytes.Buffer{}, &bytes.Buffer{}))

		data, err := os.ReadFile(m.KeyPath)
		require.NoError(t, err)
		assert.Contains(t, string(data), "fc-1234567890abcd")

		stdout := &bytes.Buffer{}
		require.NoError(t, m.Run(context.Background(), []string{"key", "show"}, stdout, &bytes.Buffer{}))
		assert.Equal(t, "fc-1*********abcd\n", stdout.String())
	})
}
