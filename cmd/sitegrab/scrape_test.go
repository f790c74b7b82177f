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

func fakeScraper() *mock.Scraper {
	return &mock.Scraper{
		ScrapeFn: func(_ context.Context, url string) (*sitegrab.ScrapeResult, error) {
			if url == "broken.test" {
				return nil, sitegrab.Errorf(sitegrab.ESERVICE, "page could not be scraped")
			}
			return &sitegrab.ScrapeResult{
				URL:         "https://" + url + "/",
				Title:       "Example",
				Description: "An example page",
				Text:        []string{"Example", "This is a long enough paragraph."},
				Images:      []sitegrab.Image{{Src: "https://" + url + "/a.png", Alt: "A"}},
				PDFs:        []sitegrab.PDF{},
			}, nil
		},
	}
}

func TestScrapeCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints summary", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Scraper: fakeScraper(),
		}

		cmd := &main.ScrapeCmd{URLs: []string{"example.com"}, Format: "summary"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "# Example")
		assert.Contains(t, stdout.String(), "## Text (2)")
		assert.Contains(t, stdout.String(), "## Images (1)")
		assert.Contains(t, stdout.String(), "## PDFs (0)")
	})

	t.Run("prints json", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Scraper: fakeScraper(),
		}

		cmd := &main.ScrapeCmd{URLs: []string{"example.com"}, Format: "json"}
		require.NoError(t, cmd.Run(deps))

		var got sitegrab.ScrapeResult
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &got))
		assert.Equal(t, "https://example.com/", got.URL)
		assert.Equal(t, []string{"Example", "This is a long enough paragraph."}, got.Text)
	})

	t.Run("prints text", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Scraper: fakeScraper(),
		}

		cmd := &main.ScrapeCmd{URLs: []string{"example.com"}, Format: "text"}
		require.NoError(t, cmd.Run(deps))

		assert.Equal(t, "Example\n\nThis is a long enough paragraph.\n", stdout.String())
	})

	t.Run("reports failures and continues", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  stderr,
			Scraper: fakeScraper(),
		}

		cmd := &main.ScrapeCmd{URLs: []string{"broken.test", "example.com"}, Format: "summary"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "1 of 2")
		assert.Contains(t, stderr.String(), "page could not be scraped")
		assert.Contains(t, stderr.String(), "[2/2]")
		assert.Contains(t, stdout.String(), "# Example")
	})

	t.Run("emits placeholder result in json on failure", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Scraper: fakeScraper(),
		}

		cmd := &main.ScrapeCmd{URLs: []string{"broken.test"}, Format: "json"}
		require.Error(t, cmd.Run(deps))

		var got sitegrab.ScrapeResult
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &got))
		assert.Equal(t, "https://broken.test", got.URL)
		assert.Equal(t, sitegrab.DefaultTitle, got.Title)
		assert.Equal(t, sitegrab.DefaultDescription, got.Description)
	})

	t.Run("keeps unnormalizable input in json placeholder", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Scraper: &mock.Scraper{
				ScrapeFn: func(_ context.Context, url string) (*sitegrab.ScrapeResult, error) {
					return nil, sitegrab.Errorf(sitegrab.EINVALID, "invalid URL")
				},
			},
		}

		cmd := &main.ScrapeCmd{URLs: []string{"exa mple.com"}, Format: "json"}
		require.Error(t, cmd.Run(deps))

		var got sitegrab.ScrapeResult
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &got))
		assert.Equal(t, "exa mple.com", got.URL)
	})

	t.Run("writes files to output directory", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Scraper: fakeScraper(),
		}

		cmd := &main.ScrapeCmd{URLs: []string{"example.com"}, Format: "markdown", Out: dir}
		require.NoError(t, cmd.Run(deps))

		matches, err := filepath.Glob(filepath.Join(dir, "*.md"))
		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.Contains(t, stdout.String(), matches[0])

		data, err := os.ReadFile(matches[0])
		require.NoError(t, err)
		assert.Contains(t, string(data), "source: https://example.com/")
	})
}
