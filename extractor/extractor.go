// Package extractor finds media links in embed payloads and classifies them into video sources.
//
// Payloads are not parsed as JSON. The body is cut into fragments at every brace and each
// fragment is matched against a fixed, ordered list of recognizers; the first one that
// matches wins and the fragment yields at most one candidate.
package extractor

import (
	"regexp"
	"strings"

	"github.com/anisan-cli/anistream/source"
	"github.com/anisan-cli/anistream/util"
)

// DefaultQuality is assumed for direct links that carry no resolution.
const DefaultQuality = "720p"

// Candidate is a link recognized in an embed payload, before classification.
type Candidate struct {
	URL     string
	Quality string
	Kind    source.Kind
	Type    source.MediaType
}

type recognizer struct {
	name    string
	pattern *regexp.Regexp
	build   func(groups map[string]string) *Candidate
}

var recognizers = []recognizer{
	{
		name:    "link",
		pattern: regexp.MustCompile(`"link":"(?P<url>[^"]*)".*"resolutionStr":"(?P<quality>[^"]*)"`),
		build: func(groups map[string]string) *Candidate {
			quality := groups["quality"]
			if quality == "" {
				quality = DefaultQuality
			}
			return &Candidate{
				URL:     Unescape(groups["url"]),
				Quality: quality,
				Kind:    source.KindDirect,
				Type:    source.MediaMP4,
			}
		},
	},
	{
		name:    "hls",
		pattern: regexp.MustCompile(`"hls","url":"(?P<url>[^"]*)".*"hardsub_lang":"en-US"`),
		build: func(groups map[string]string) *Candidate {
			return &Candidate{
				URL:     Unescape(groups["url"]),
				Quality: source.QualityAuto,
				Kind:    source.KindM3U8,
				Type:    source.MediaHLS,
			}
		},
	},
}

// Extract returns the candidates found in body, in fragment order.
// Fragments no recognizer matches, and matches with an empty URL, are skipped.
func Extract(body string) []*Candidate {
	fragments := strings.FieldsFunc(body, func(r rune) bool {
		return r == '{' || r == '}'
	})

	var candidates []*Candidate
	for _, fragment := range fragments {
		for _, r := range recognizers {
			groups := util.ReGroups(r.pattern, fragment)
			if len(groups) == 0 {
				continue
			}

			if c := r.build(groups); c.URL != "" {
				candidates = append(candidates, c)
			}
			break
		}
	}

	return candidates
}

// Unescape undoes the JSON escaping upstream applies to URLs: \u002F becomes "/" and
// every remaining backslash is dropped.
func Unescape(raw string) string {
	raw = strings.ReplaceAll(raw, `\u002F`, "/")
	return strings.ReplaceAll(raw, `\`, "")
}
