package filesystem

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestAPI(t *testing.T) {
	Convey("Filesystem API", t, func() {
		Convey("Should default to OsFs", func() {
			SetOsFs()
			So(API().Name(), ShouldEqual, "OsFs")
		})

		Convey("Should switch to MemMapFs", func() {
			SetMemMapFs()
			So(API().Name(), ShouldEqual, "MemMapFS")

			So(API().WriteFile("/probe", []byte("x"), 0o644), ShouldBeNil)
			exists, err := API().Exists("/probe")
			So(err, ShouldBeNil)
			So(exists, ShouldBeTrue)
		})
	})
}
