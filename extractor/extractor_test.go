package extractor

import (
	"testing"

	"github.com/anisan-cli/anistream/source"
	. "github.com/smartystreets/goconvey/convey"
)

const referer = "https://allanime.to"

func TestExtract(t *testing.T) {
	Convey("Given a direct link fragment", t, func() {
		body := `{"links":[{"link":"https:\u002F\u002Fcdn.example\u002Fep1.mp4","mp4":true,"resolutionStr":"1080p","src":"x"}]}`

		candidates := Extract(body)

		So(candidates, ShouldHaveLength, 1)
		So(candidates[0].URL, ShouldEqual, "https://cdn.example/ep1.mp4")
		So(candidates[0].Quality, ShouldEqual, "1080p")
		So(candidates[0].Kind, ShouldEqual, source.KindDirect)
		So(candidates[0].Type, ShouldEqual, source.MediaMP4)
	})

	Convey("Given a direct link with an empty resolution", t, func() {
		candidates := Extract(`{"link":"https://cdn.example/a.mp4","resolutionStr":""}`)

		So(candidates, ShouldHaveLength, 1)
		So(candidates[0].Quality, ShouldEqual, DefaultQuality)
	})

	Convey("Given an english hardsub HLS fragment", t, func() {
		candidates := Extract(`{"hls","url":"https://cdn.example/master.m3u8","hardsub_lang":"en-US"}`)

		So(candidates, ShouldHaveLength, 1)
		So(candidates[0].Quality, ShouldEqual, source.QualityAuto)
		So(candidates[0].Kind, ShouldEqual, source.KindM3U8)
		So(candidates[0].Type, ShouldEqual, source.MediaHLS)
	})

	Convey("Given fragments no recognizer matches", t, func() {
		So(Extract(`{"hls","url":"https://cdn.example/master.m3u8","hardsub_lang":"ja-JP"}`), ShouldBeEmpty)
		So(Extract(`{"link":"https://cdn.example/a.mp4"}`), ShouldBeEmpty)
		So(Extract(`not json at all`), ShouldBeEmpty)
		So(Extract(``), ShouldBeEmpty)
	})

	Convey("Given several fragments", t, func() {
		body := `{"links":[` +
			`{"link":"https://cdn.example/480.mp4","resolutionStr":"480p"},` +
			`{"link":"","resolutionStr":"360p"},` +
			`{"hls","url":"https://cdn.example/master.m3u8","hardsub_lang":"en-US"},` +
			`{"link":"https://cdn.example/1080.mp4","resolutionStr":"1080p"}]}`

		Convey("Candidates keep fragment order and skip empty URLs", func() {
			candidates := Extract(body)
			So(candidates, ShouldHaveLength, 3)
			So(candidates[0].URL, ShouldEqual, "https://cdn.example/480.mp4")
			So(candidates[1].URL, ShouldEqual, "https://cdn.example/master.m3u8")
			So(candidates[2].URL, ShouldEqual, "https://cdn.example/1080.mp4")
		})
	})
}

func TestUnescape(t *testing.T) {
	Convey("Unescape", t, func() {
		So(Unescape(`https:\u002F\u002Fa.b\u002Fc`), ShouldEqual, "https://a.b/c")
		So(Unescape(`https:\/\/a.b\/c`), ShouldEqual, "https://a.b/c")
		So(Unescape(`plain`), ShouldEqual, "plain")
	})
}
