package source

import (
	"testing"

	json "github.com/goccy/go-json"
	. "github.com/smartystreets/goconvey/convey"
)

func TestVideo(t *testing.T) {
	Convey("Video", t, func() {
		v := &Video{
			URL:      "https://cdn.example/ep1.mp4",
			Quality:  "1080p",
			Provider: KindDirect,
			Type:     MediaMP4,
		}

		Convey("String representation", func() {
			So(v.String(), ShouldEqual, "1080p")
			v.Quality = ""
			So(v.String(), ShouldEqual, "https://cdn.example/ep1.mp4")
		})

		Convey("Rank", func() {
			So(v.Rank(), ShouldEqual, 1080)
		})

		Convey("JSON omits an unknown type and empty referer", func() {
			v.Type = MediaUnknown
			b, err := json.Marshal(v)
			So(err, ShouldBeNil)
			So(string(b), ShouldEqual, `{"quality":"1080p","url":"https://cdn.example/ep1.mp4","provider":"direct"}`)
		})

		Convey("JSON keeps referer and type when set", func() {
			v.Referer = "https://allanime.to"
			b, err := json.Marshal(v)
			So(err, ShouldBeNil)
			So(string(b), ShouldContainSubstring, `"referer":"https://allanime.to"`)
			So(string(b), ShouldContainSubstring, `"type":"mp4"`)
		})
	})
}

func TestRank(t *testing.T) {
	Convey("Rank", t, func() {
		So(Rank("1080p"), ShouldEqual, 1080)
		So(Rank("720"), ShouldEqual, 720)
		So(Rank("360p"), ShouldEqual, 360)
		So(Rank("auto"), ShouldEqual, 0)
		So(Rank(""), ShouldEqual, 0)
		So(Rank("p"), ShouldEqual, 0)
		So(Rank("720p60"), ShouldEqual, 720)
	})
}
