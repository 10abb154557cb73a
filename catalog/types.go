package catalog

import (
	"bytes"
	"strconv"

	json "github.com/goccy/go-json"
)

type showNode struct {
	ID                string         `json:"_id"`
	Name              string         `json:"name"`
	EnglishName       string         `json:"englishName"`
	Description       string         `json:"description"`
	Status            string         `json:"status"`
	Genres            []string       `json:"genres"`
	StartDate         startDate      `json:"startDate"`
	AvailableEpisodes map[string]int `json:"availableEpisodes"`

	AvailableEpisodesDetail map[string][]string `json:"availableEpisodesDetail"`
}

type searchData struct {
	Shows struct {
		Edges []*showNode `json:"edges"`
	} `json:"shows"`
}

type showData struct {
	Show *showNode `json:"show"`
}

type episodeData struct {
	Episode *struct {
		EpisodeString string `json:"episodeString"`
		SourceURLs    []struct {
			SourceURL  string  `json:"sourceUrl"`
			SourceName string  `json:"sourceName"`
			Priority   float64 `json:"priority"`
			Type       string  `json:"type"`
		} `json:"sourceUrls"`
	} `json:"episode"`
}

// startDate accepts the forms upstream has used for a show's start:
// an object with a year member, or a date string beginning with the year.
type startDate struct {
	Year string
}

func (d *startDate) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)

	switch {
	case len(b) == 0 || bytes.Equal(b, []byte("null")):
		return nil
	case b[0] == '{':
		var obj struct {
			Year json.Number `json:"year"`
		}
		if err := json.Unmarshal(b, &obj); err != nil {
			return nil
		}
		if n, err := obj.Year.Int64(); err == nil && n > 0 {
			d.Year = strconv.FormatInt(n, 10)
		}
	case b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return nil
		}
		if len(s) >= 4 {
			if _, err := strconv.Atoi(s[:4]); err == nil {
				d.Year = s[:4]
			}
		}
	}

	return nil
}
