package network

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/anisan-cli/anistream/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestDefault(t *testing.T) {
	Convey("Default client selection", t, func() {
		Convey("Should use the plain client by default", func() {
			viper.Set(key.NetworkTLSFingerprint, false)
			So(Default(), ShouldEqual, Client)
		})

		Convey("Should use the fingerprint client when enabled", func() {
			viper.Set(key.NetworkTLSFingerprint, true)
			So(Default(), ShouldEqual, FingerprintClient)
			viper.Set(key.NetworkTLSFingerprint, false)
		})
	})
}

func TestNewRequest(t *testing.T) {
	Convey("Given a referer", t, func() {
		viper.Set(key.UpstreamUserAgent, "agent/1.0")

		req, err := NewRequest(context.Background(), http.MethodGet, "https://example.org/x", nil, "https://allanime.to")
		So(err, ShouldBeNil)
		So(req.Header.Get("User-Agent"), ShouldEqual, "agent/1.0")
		So(req.Header.Get("Referer"), ShouldEqual, "https://allanime.to")

		Convey("An empty referer should be omitted", func() {
			req, err := NewRequest(context.Background(), http.MethodGet, "https://example.org/x", nil, "")
			So(err, ShouldBeNil)
			So(req.Header.Get("Referer"), ShouldBeEmpty)
		})
	})
}

func TestFingerprintTransport(t *testing.T) {
	Convey("Given a plain http upstream", t, func() {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, "ok:"+r.Header.Get("Referer"))
		}))
		defer server.Close()

		Convey("The fingerprint client should still round trip over HTTP/1.1", func() {
			req, err := NewRequest(context.Background(), http.MethodGet, server.URL, nil, "ref")
			So(err, ShouldBeNil)

			resp, err := FingerprintClient.Do(req)
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			body, _ := io.ReadAll(resp.Body)
			So(strings.TrimSpace(string(body)), ShouldEqual, "ok:ref")
		})
	})
}
