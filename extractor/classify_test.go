package extractor

import (
	"testing"

	"github.com/anisan-cli/anistream/source"
	. "github.com/smartystreets/goconvey/convey"
)

func TestClassify(t *testing.T) {
	Convey("Given a wixmp repackager link", t, func() {
		c := &Candidate{
			URL:     "https://repackager.wixmp.com/video.wixstatic.com/video/abc/,360p,480,1080p,auto,/mp4/file.mp4.urlset/master.m3u8",
			Quality: "1080p",
			Kind:    source.KindDirect,
			Type:    source.MediaMP4,
		}

		result := Classify(c, "", referer)

		Convey("It should expand into one mp4 per numeric quality token", func() {
			So(result.Manifest.IsPresent(), ShouldBeFalse)
			So(result.Sources, ShouldHaveLength, 3)

			So(result.Sources[0].Quality, ShouldEqual, "360p")
			So(result.Sources[0].URL, ShouldEqual, "https://video.wixstatic.com/video/abc/360p/mp4/file.mp4")
			So(result.Sources[1].Quality, ShouldEqual, "480p")
			So(result.Sources[1].URL, ShouldEqual, "https://video.wixstatic.com/video/abc/480/mp4/file.mp4")
			So(result.Sources[2].Quality, ShouldEqual, "1080p")

			for _, v := range result.Sources {
				So(v.Provider, ShouldEqual, source.KindWixmp)
				So(v.Type, ShouldEqual, source.MediaMP4)
				So(v.Referer, ShouldEqual, referer)
			}
		})
	})

	Convey("Given a wixmp link whose tokens only appear in the payload", t, func() {
		c := &Candidate{URL: "https://repackager.wixmp.com/video.wixstatic.com/video/abc/,x,/file.mp4.urlset/master.m3u8"}
		body := `{"link":"https:\u002F\u002Fother,720p,720p,\u002Fmp4"}`

		result := Classify(c, body, referer)

		So(result.Sources, ShouldHaveLength, 1)
		So(result.Sources[0].Quality, ShouldEqual, "720p")
		So(result.Sources[0].URL, ShouldEqual, "https://video.wixstatic.com/video/abc/720p/file.mp4")
	})

	Convey("Given a wixmp link without any quality list", t, func() {
		c := &Candidate{URL: "https://repackager.wixmp.com/video.wixstatic.com/video/abc/file.mp4.urlset/master.m3u8"}

		So(Classify(c, "", referer).Sources, ShouldBeEmpty)
	})

	Convey("Given a master playlist", t, func() {
		c := &Candidate{URL: "https://cdn.example/hls/master.m3u8", Quality: source.QualityAuto, Kind: source.KindM3U8, Type: source.MediaHLS}

		result := Classify(c, "", referer)

		So(result.Sources, ShouldBeEmpty)
		m, ok := result.Manifest.Get()
		So(ok, ShouldBeTrue)
		So(m.URL, ShouldEqual, c.URL)
		So(m.Quality, ShouldEqual, source.QualityAuto)
		So(m.Provider, ShouldEqual, source.KindM3U8)
		So(m.Type, ShouldEqual, source.MediaHLS)
	})

	Convey("Given a fast4speed link", t, func() {
		c := &Candidate{URL: "https://tools.fast4speed.rsvp/media/ep1", Quality: "1080p", Kind: source.KindDirect, Type: source.MediaMP4}

		result := Classify(c, "", referer)

		So(result.Sources, ShouldHaveLength, 1)
		So(result.Sources[0].Provider, ShouldEqual, source.KindYoutube)
		So(result.Sources[0].Type, ShouldEqual, source.MediaUnknown)
		So(result.Sources[0].Quality, ShouldEqual, "1080p")
	})

	Convey("Given any other link", t, func() {
		c := &Candidate{URL: "https://cdn.example/ep1.mp4", Kind: source.KindDirect, Type: source.MediaMP4}

		result := Classify(c, "", referer)

		So(result.Sources, ShouldHaveLength, 1)
		So(result.Sources[0].Quality, ShouldEqual, DefaultQuality)
		So(result.Sources[0].Provider, ShouldEqual, source.KindDirect)
		So(result.Sources[0].Referer, ShouldEqual, referer)
	})
}
