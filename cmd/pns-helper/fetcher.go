package main

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// fetcher reads event messages from URLs, local files or stdin.
// This is CLI-specific logic and is not part of the core library.
type fetcher struct {
	httpClient *http.Client
	stdin      io.Reader
}

// newFetcher creates a new fetcher for event messages
func newFetcher() *fetcher {
	return &fetcher{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		stdin:      os.Stdin,
	}
}

// fetch returns the raw message found at urlOrPath.
// An empty path or "-" reads stdin.
func (f *fetcher) fetch(urlOrPath string) ([]byte, error) {
	if urlOrPath == "" || urlOrPath == "-" {
		return io.ReadAll(f.stdin)
	}

	// Check if it's a local file path
	if !strings.HasPrefix(urlOrPath, "http://") && !strings.HasPrefix(urlOrPath, "https://") {
		return os.ReadFile(urlOrPath)
	}

	// HTTP fetch
	resp, err := f.httpClient.Get(urlOrPath)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", urlOrPath, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d from %s", resp.StatusCode, urlOrPath)
	}

	return io.ReadAll(resp.Body)
}
