package config

import (
	"testing"

	"github.com/anisan-cli/anistream/filesystem"
	"github.com/anisan-cli/anistream/key"
	"github.com/anisan-cli/anistream/where"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestSetup(t *testing.T) {
	filesystem.SetMemMapFs()
	t.Setenv(where.EnvConfigPath, "/anistream-config")

	Convey("Config Setup", t, func() {
		Convey("Should initialize without a config file", func() {
			So(Setup(), ShouldBeNil)
		})

		Convey("Should populate every registered default", func() {
			So(Setup(), ShouldBeNil)
			for name := range Default {
				So(viper.IsSet(name), ShouldBeTrue)
			}
			So(viper.GetInt(key.PipelineWorkers), ShouldEqual, 4)
			So(viper.GetString(key.CatalogTranslationType), ShouldEqual, "sub")
		})

		Convey("Should read values from the config file", func() {
			So(filesystem.API().WriteFile("/anistream-config/anistream.toml", []byte("[pipeline]\nworkers = 9\n"), 0o644), ShouldBeNil)
			So(Setup(), ShouldBeNil)
			So(viper.GetInt(key.PipelineWorkers), ShouldEqual, 9)
			So(filesystem.API().Remove("/anistream-config/anistream.toml"), ShouldBeNil)
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			So(EnvKeyReplacer.Replace("pipeline.fetch_timeout"), ShouldEqual, "pipeline_fetch_timeout")
		})
	})
}

func TestField(t *testing.T) {
	Convey("Given a registered field", t, func() {
		field := Default[key.PipelineWorkers]

		Convey("Env should carry the application prefix", func() {
			So(field.Env(), ShouldEqual, "ANISTREAM_PIPELINE_WORKERS")
		})

		Convey("MarshalJSON should report its type and default", func() {
			b, err := field.MarshalJSON()
			So(err, ShouldBeNil)
			So(string(b), ShouldContainSubstring, `"type":"int"`)
			So(string(b), ShouldContainSubstring, `"default":4`)
		})
	})
}
