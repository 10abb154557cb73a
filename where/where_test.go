package where

import (
	"path/filepath"
	"testing"

	"github.com/anisan-cli/anistream/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func TestWhere(t *testing.T) {
	filesystem.SetMemMapFs()
	t.Setenv(EnvConfigPath, "/custom")

	Convey("Given a config path override", t, func() {
		Convey("Config should honour it and create the directory", func() {
			So(Config(), ShouldEqual, "/custom")
			exists, err := filesystem.API().DirExists("/custom")
			So(err, ShouldBeNil)
			So(exists, ShouldBeTrue)
		})

		Convey("Logs should live under the config directory", func() {
			So(Logs(), ShouldEqual, filepath.Join("/custom", "logs"))
		})
	})
}
