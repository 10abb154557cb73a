// Package manifest expands HLS master playlists into one source per variant stream.
package manifest

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/anisan-cli/anistream/log"
	"github.com/anisan-cli/anistream/network"
	"github.com/anisan-cli/anistream/source"
	"github.com/anisan-cli/anistream/util"
)

const (
	header     = "EXTM3U"
	streamInf  = "#EXT-X-STREAM-INF"
	commentTag = "#"
)

var resolution = regexp.MustCompile(`RESOLUTION=\d+x(?P<height>\d+)`)

// Resolver fetches and parses master playlists.
type Resolver struct {
	client *http.Client
}

// New returns a Resolver using client.
func New(client *http.Client) *Resolver {
	return &Resolver{client: client}
}

// Resolve returns the variants of the master playlist at manifestURL, in playlist order.
// Any failure (transport, non-2xx status, a body that is not a playlist) yields an empty list.
func (r *Resolver) Resolve(ctx context.Context, manifestURL, referer string) []*source.Video {
	base, err := url.Parse(manifestURL)
	if err != nil {
		log.Warnf("manifest: invalid url %q: %s", manifestURL, err)
		return nil
	}

	body, err := r.fetch(ctx, manifestURL, referer)
	if err != nil {
		log.WithFields(log.Fields{"manifest": manifestURL}).Warn(err)
		return nil
	}

	variants := Variants(body, base, referer)
	log.Infof("manifest: %s", util.Quantify(len(variants), "variant", "variants"))
	return variants
}

func (r *Resolver) fetch(ctx context.Context, manifestURL, referer string) (string, error) {
	req, err := network.NewRequest(ctx, http.MethodGet, manifestURL, nil, referer)
	if err != nil {
		return "", err
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch manifest: %w", err)
	}
	defer util.Ignore(resp.Body.Close)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("fetch manifest: returned status code %d", resp.StatusCode)
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read manifest: %w", err)
	}
	return string(b), nil
}

// Variants parses a master playlist body. A stream-info line with a RESOLUTION attribute
// followed directly by a URI line yields one HLS source labelled with the height, e.g. "1080p".
// Relative URIs are resolved against base. Bodies without the EXTM3U header yield nothing.
func Variants(body string, base *url.URL, referer string) []*source.Video {
	if !strings.Contains(body, header) {
		return nil
	}

	lines := strings.Split(body, "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}

	var variants []*source.Video
	for i := 0; i+1 < len(lines); i++ {
		if !strings.HasPrefix(lines[i], streamInf) {
			continue
		}

		height := util.ReGroups(resolution, lines[i])["height"]
		uri := lines[i+1]
		if height == "" || uri == "" || strings.HasPrefix(uri, commentTag) {
			continue
		}

		ref, err := url.Parse(uri)
		if err != nil {
			continue
		}

		variants = append(variants, &source.Video{
			Quality:  height + "p",
			URL:      base.ResolveReference(ref).String(),
			Provider: source.KindM3U8,
			Referer:  referer,
			Type:     source.MediaHLS,
		})
	}

	return variants
}
