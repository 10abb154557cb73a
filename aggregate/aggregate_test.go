package aggregate

import (
	"testing"

	"github.com/anisan-cli/anistream/source"
	. "github.com/smartystreets/goconvey/convey"
)

func video(quality, url string) *source.Video {
	return &source.Video{Quality: quality, URL: url, Provider: source.KindDirect}
}

func TestAggregate(t *testing.T) {
	Convey("Given sources from several providers", t, func() {
		a := video("480p", "u1")
		b := video("1080p", "u2")
		c := video("1080p", "u1")
		d := video("auto", "u3")

		result := Aggregate([][]*source.Video{{a, b}, {c, d}})

		Convey("Duplicates by URL keep the first occurrence", func() {
			So(result, ShouldHaveLength, 3)
			So(result[1], ShouldEqual, a)
		})

		Convey("Sources are ordered by descending quality", func() {
			So(result[0], ShouldEqual, b)
			So(result[1], ShouldEqual, a)
			So(result[2], ShouldEqual, d)
		})
	})

	Convey("Equal ranks keep provider order", t, func() {
		first := video("auto", "m1")
		second := video("", "m2")
		third := video("720p", "m3")

		result := Aggregate([][]*source.Video{{first}, {second, third}})

		So(result, ShouldResemble, []*source.Video{third, first, second})
	})

	Convey("Ranks are never increasing", t, func() {
		result := Aggregate([][]*source.Video{
			{video("360p", "a"), video("720", "b")},
			{video("2160p", "c"), video("auto", "d"), video("1080p", "e")},
		})

		for i := 1; i < len(result); i++ {
			So(result[i-1].Rank(), ShouldBeGreaterThanOrEqualTo, result[i].Rank())
		}
	})

	Convey("Empty and invalid input", t, func() {
		So(Aggregate(nil), ShouldBeEmpty)
		So(Aggregate([][]*source.Video{{}, nil}), ShouldBeEmpty)
		So(Aggregate([][]*source.Video{{nil, video("720p", "")}}), ShouldBeEmpty)
	})
}
