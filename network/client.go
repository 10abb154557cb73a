// Package network provides the shared HTTP client used for every upstream request.
package network

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/anisan-cli/anistream/key"
	"github.com/spf13/viper"
)

// Client is the shared plain client.
var Client = &http.Client{
	Timeout:   time.Minute,
	Transport: newTransport(),
}

// FingerprintClient speaks to upstream with a browser TLS hello.
var FingerprintClient = &http.Client{
	Timeout:   time.Minute,
	Transport: newFingerprintTransport(),
}

func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 100
	t.MaxIdleConnsPerHost = 100
	t.MaxConnsPerHost = 200
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 30 * time.Second
	t.ExpectContinueTimeout = 30 * time.Second
	return t
}

// Default returns the client selected by network.tls_fingerprint.
func Default() *http.Client {
	if viper.GetBool(key.NetworkTLSFingerprint) {
		return FingerprintClient
	}
	return Client
}

// NewRequest builds a request carrying the configured user agent and the given referer.
// An empty referer is omitted.
func NewRequest(ctx context.Context, method, url string, body io.Reader, referer string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", viper.GetString(key.UpstreamUserAgent))
	if referer != "" {
		req.Header.Set("Referer", referer)
	}
	return req, nil
}
