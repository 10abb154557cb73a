// Package embed fetches the provider payloads that decoded source paths point at.
package embed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/anisan-cli/anistream/network"
	"github.com/anisan-cli/anistream/util"
)

// Fetcher GETs embed paths relative to a fixed origin.
type Fetcher struct {
	client  *http.Client
	origin  string
	referer string
}

// New returns a Fetcher resolving paths against origin and sending referer.
func New(client *http.Client, origin, referer string) *Fetcher {
	return &Fetcher{
		client:  client,
		origin:  strings.TrimSuffix(origin, "/"),
		referer: referer,
	}
}

// URL is the absolute URL fetched for path. Absolute paths are returned unchanged.
func (f *Fetcher) URL(path string) string {
	if strings.HasPrefix(path, "https://") || strings.HasPrefix(path, "http://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return f.origin + path
}

// Fetch returns the body served at path. Non-2xx responses are errors.
func (f *Fetcher) Fetch(ctx context.Context, path string) (string, error) {
	req, err := network.NewRequest(ctx, http.MethodGet, f.URL(path), nil, f.referer)
	if err != nil {
		return "", err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch embed: %w", err)
	}
	defer util.Ignore(resp.Body.Close)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("fetch embed: returned status code %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read embed: %w", err)
	}
	return string(body), nil
}
