// Package catalog talks to the upstream GraphQL catalog: search, show detail, episode list and
// per-episode source descriptors.
//
// Every operation is total. Transport failures, non-2xx statuses and malformed payloads are
// logged and reported as an empty result, never as an error.
package catalog

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/anisan-cli/anistream/log"
	"github.com/anisan-cli/anistream/network"
	"github.com/anisan-cli/anistream/util"
	json "github.com/goccy/go-json"
)

// Client issues catalog queries against a single endpoint.
type Client struct {
	http     *http.Client
	endpoint string
}

// New returns a Client for endpoint.
func New(client *http.Client, endpoint string) *Client {
	return &Client{http: client, endpoint: endpoint}
}

type envelope struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// do sends q and decodes the "data" member of the response into out.
func (c *Client) do(ctx context.Context, q Query, out any) error {
	req, err := c.newRequest(ctx, q)
	if err != nil {
		return err
	}

	log.Infof("catalog: sending %s query", q.Kind)
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", q.Kind, err)
	}
	defer util.Ignore(resp.Body.Close)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%s: catalog returned status code %d", q.Kind, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s: read body: %w", q.Kind, err)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return fmt.Errorf("%s: decode envelope: %w", q.Kind, err)
	}

	if len(env.Data) == 0 || string(env.Data) == "null" {
		if len(env.Errors) > 0 {
			return fmt.Errorf("%s: %s", q.Kind, env.Errors[0].Message)
		}
		return fmt.Errorf("%s: empty data", q.Kind)
	}

	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("%s: decode data: %w", q.Kind, err)
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, q Query) (*http.Request, error) {
	variables, err := json.Marshal(q.Variables)
	if err != nil {
		return nil, err
	}

	if q.method() == http.MethodPost {
		payload, err := json.Marshal(map[string]any{
			"query":     q.operation(),
			"variables": json.RawMessage(variables),
		})
		if err != nil {
			return nil, err
		}

		req, err := network.NewRequest(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload), q.referer())
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		return req, nil
	}

	params := url.Values{}
	params.Set("variables", string(variables))
	params.Set("query", q.operation())

	sep := "?"
	if strings.Contains(c.endpoint, "?") {
		sep = "&"
	}
	return network.NewRequest(ctx, http.MethodGet, c.endpoint+sep+params.Encode(), nil, q.referer())
}

// ErrQueryTooShort is returned by ValidateQuery for queries under two characters.
var ErrQueryTooShort = errors.New("query must be at least 2 characters long")

// ValidateQuery checks a search query after trimming surrounding whitespace.
func ValidateQuery(query string) error {
	if len([]rune(strings.TrimSpace(query))) < 2 {
		return ErrQueryTooShort
	}
	return nil
}
