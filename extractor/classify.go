package extractor

import (
	"regexp"
	"strings"

	"github.com/anisan-cli/anistream/source"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

const (
	wixmpHost      = "repackager.wixmp.com"
	masterMarker   = "master.m3u8"
	fast4speedHost = "tools.fast4speed.rsvp"
)

var (
	wixmpTokens     = regexp.MustCompile(`,([^/]*),/mp4`)
	wixmpFirstRun   = regexp.MustCompile(`,[^/]*`)
	wixmpQualityTok = regexp.MustCompile(`^\d+p?$`)
)

// Result is the outcome of classifying one candidate.
//
// Sources are final. Manifest, when present, is a master playlist that still has to be
// expanded into its variants; it is also the source to fall back to if that yields nothing.
type Result struct {
	Sources  []*source.Video
	Manifest mo.Option[*source.Video]
}

// Classify applies the provider rules to c, in order: wixmp repackager links expand into one
// source per listed quality, master playlists are handed back for resolution, fast4speed links
// become youtube-like sources, and anything else is kept as recognized.
// body is the payload c came from; wixmp quality lists are looked up there when the link lacks one.
func Classify(c *Candidate, body, referer string) Result {
	switch {
	case strings.Contains(c.URL, wixmpHost):
		return Result{Sources: expandWixmp(c.URL, body, referer)}

	case strings.Contains(c.URL, masterMarker):
		return Result{Manifest: mo.Some(&source.Video{
			Quality:  lo.Ternary(c.Quality != "", c.Quality, source.QualityAuto),
			URL:      c.URL,
			Provider: source.KindM3U8,
			Referer:  referer,
			Type:     source.MediaHLS,
		})}

	case strings.Contains(c.URL, fast4speedHost):
		return Result{Sources: []*source.Video{{
			Quality:  lo.Ternary(c.Quality != "", c.Quality, DefaultQuality),
			URL:      c.URL,
			Provider: source.KindYoutube,
			Referer:  referer,
			Type:     source.MediaUnknown,
		}}}

	default:
		return Result{Sources: []*source.Video{{
			Quality:  lo.Ternary(c.Quality != "", c.Quality, DefaultQuality),
			URL:      c.URL,
			Provider: c.Kind,
			Referer:  referer,
			Type:     c.Type,
		}}}
	}
}

// expandWixmp rewrites a repackager link into one direct mp4 URL per quality token.
// Links without a usable token list yield nothing.
func expandWixmp(link, body, referer string) []*source.Video {
	base := strings.Replace(link, wixmpHost+"/", "", 1)
	if i := strings.Index(base, ".urlset"); i >= 0 {
		base = base[:i]
	}

	tokens := qualityTokens(link)
	if len(tokens) == 0 {
		tokens = qualityTokens(Unescape(body))
	}

	loc := wixmpFirstRun.FindStringIndex(base)
	if loc == nil {
		return nil
	}

	return lo.Map(tokens, func(token string, _ int) *source.Video {
		return &source.Video{
			Quality:  lo.Ternary(strings.HasSuffix(token, "p"), token, token+"p"),
			URL:      base[:loc[0]] + token + base[loc[1]:],
			Provider: source.KindWixmp,
			Referer:  referer,
			Type:     source.MediaMP4,
		}
	})
}

func qualityTokens(s string) []string {
	match := wixmpTokens.FindStringSubmatch(s)
	if match == nil {
		return nil
	}

	tokens := lo.Filter(strings.Split(match[1], ","), func(token string, _ int) bool {
		return wixmpQualityTok.MatchString(token)
	})
	return lo.Uniq(tokens)
}
