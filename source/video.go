// Package source defines the domain models shared by the catalog client and the resolution pipeline.
package source

import (
	"strconv"
	"strings"
)

// Kind names the provider family a video was resolved through.
type Kind string

const (
	KindDirect  Kind = "direct"
	KindWixmp   Kind = "wixmp"
	KindM3U8    Kind = "m3u8"
	KindYoutube Kind = "youtube"
)

// MediaType is the container of a video. The zero value means unknown.
type MediaType string

const (
	MediaMP4     MediaType = "mp4"
	MediaHLS     MediaType = "hls"
	MediaUnknown MediaType = ""
)

// QualityAuto labels streams whose resolution is chosen by the player.
const QualityAuto = "auto"

// Video is one playable source for an episode.
type Video struct {
	// Quality label, e.g. "1080p" or "auto".
	Quality string `json:"quality" jsonschema:"example=1080p,example=auto"`
	// URL of the media file or playlist. Never empty.
	URL      string `json:"url" jsonschema:"format=uri"`
	Provider Kind   `json:"provider" jsonschema:"enum=direct,enum=wixmp,enum=m3u8,enum=youtube"`
	// Referer the media host expects.
	Referer string    `json:"referer,omitempty"`
	Type    MediaType `json:"type,omitempty" jsonschema:"enum=mp4,enum=hls"`
}

// String returns the quality, or the URL when the quality is unset.
func (v *Video) String() string {
	if v.Quality != "" {
		return v.Quality
	}
	return v.URL
}

// Rank is the numeric value of the quality label, used for ordering.
func (v *Video) Rank() int {
	return Rank(v.Quality)
}

// Rank strips a trailing "p" from quality and parses the leading digits.
// Labels without leading digits ("auto", "") rank 0.
func Rank(quality string) int {
	quality = strings.TrimSuffix(quality, "p")

	end := 0
	for end < len(quality) && quality[end] >= '0' && quality[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}

	n, err := strconv.Atoi(quality[:end])
	if err != nil {
		return 0
	}
	return n
}
