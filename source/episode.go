package source

import "fmt"

// DefaultDuration is reported for every episode; the catalog does not expose runtimes.
const DefaultDuration = "24 min"

// Episode is one entry of a show's episode list.
type Episode struct {
	// ID is "<show>-<number>".
	ID          string `json:"id"`
	Number      string `json:"episodeNumber"`
	Title       string `json:"title"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
	Thumbnail   string `json:"thumbnail"`
}

// NewEpisode builds the list item for episode number of showID.
func NewEpisode(showID, number string) *Episode {
	return &Episode{
		ID:          showID + "-" + number,
		Number:      number,
		Title:       "Episode " + number,
		Duration:    DefaultDuration,
		Description: fmt.Sprintf("Episode %s description", number),
		Thumbnail:   PosterURL(showID),
	}
}

func (e *Episode) String() string {
	return e.Title
}
