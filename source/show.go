package source

import "github.com/anisan-cli/anistream/constant"

// Show is a catalog entry.
type Show struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Episodes    int    `json:"episodes"`
	Year        string `json:"year,omitempty"`
	Status      string `json:"status"`
	Genres      string `json:"genres,omitempty"`
	Description string `json:"description,omitempty"`
	Poster      string `json:"poster"`
}

func (s *Show) String() string {
	return s.Title
}

// PosterURL is the image URL for a show id.
func PosterURL(showID string) string {
	return constant.ImageHost + showID + ".jpg"
}
