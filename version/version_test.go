package version

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCompare(t *testing.T) {
	Convey("Given two versions", t, func() {
		Convey("Newer major wins regardless of minor", func() {
			c, err := Compare("2.0.0", "1.9.9")
			So(err, ShouldBeNil)
			So(c, ShouldEqual, 1)
		})

		Convey("A leading v is ignored", func() {
			c, err := Compare("v0.2.0", "0.2.0")
			So(err, ShouldBeNil)
			So(c, ShouldEqual, 0)
		})

		Convey("Older patch compares lower", func() {
			c, err := Compare("0.2.0", "0.2.1")
			So(err, ShouldBeNil)
			So(c, ShouldEqual, -1)
		})

		Convey("Malformed input is an error", func() {
			_, err := Compare("latest", "0.2.0")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestLatest(t *testing.T) {
	Convey("Given a releases endpoint", t, func() {
		var (
			status = http.StatusOK
			body   = `{"tag_name":"v1.4.2"}`
		)
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			_, _ = w.Write([]byte(body))
		}))
		Reset(server.Close)

		original := ReleasesURL
		ReleasesURL = server.URL
		Reset(func() { ReleasesURL = original })

		Convey("The tag is returned without its prefix", func() {
			latest, err := Latest(context.Background(), server.Client())
			So(err, ShouldBeNil)
			So(latest, ShouldEqual, "1.4.2")
		})

		Convey("An empty tag is an error", func() {
			body = `{}`
			_, err := Latest(context.Background(), server.Client())
			So(err, ShouldNotBeNil)
		})

		Convey("A non-200 status is an error", func() {
			status = http.StatusForbidden
			_, err := Latest(context.Background(), server.Client())
			So(err, ShouldNotBeNil)
		})
	})
}
