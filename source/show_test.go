package source

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestShow(t *testing.T) {
	Convey("Show", t, func() {
		s := &Show{ID: "abc123", Title: "One Piece"}
		So(s.String(), ShouldEqual, "One Piece")
		So(PosterURL(s.ID), ShouldEqual, "https://wp.youtube-anime.com/aln.youtube-anime.com/images/abc123.jpg")
	})
}

func TestEpisode(t *testing.T) {
	Convey("NewEpisode", t, func() {
		ep := NewEpisode("abc123", "12")

		So(ep.ID, ShouldEqual, "abc123-12")
		So(ep.Number, ShouldEqual, "12")
		So(ep.String(), ShouldEqual, "Episode 12")
		So(ep.Duration, ShouldEqual, "24 min")
		So(ep.Thumbnail, ShouldEqual, PosterURL("abc123"))
	})
}
