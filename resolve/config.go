package resolve

import (
	"time"

	"github.com/anisan-cli/anistream/catalog"
	"github.com/anisan-cli/anistream/embed"
	"github.com/anisan-cli/anistream/key"
	"github.com/anisan-cli/anistream/manifest"
	"github.com/anisan-cli/anistream/network"
	"github.com/spf13/viper"
)

// OptionsFromConfig reads the pipeline.* and upstream referer keys.
func OptionsFromConfig() Options {
	return Options{
		Workers:          viper.GetInt(key.PipelineWorkers),
		FetchTimeout:     time.Duration(viper.GetInt(key.PipelineFetchTimeout)) * time.Second,
		ResolveManifests: viper.GetBool(key.PipelineResolveManifests),
		Referer:          viper.GetString(key.UpstreamSourcesReferer),
	}
}

// NewFromConfig wires a Resolver against the configured upstream.
func NewFromConfig(c *catalog.Client) *Resolver {
	client := network.Default()
	return New(
		c,
		embed.New(client, viper.GetString(key.UpstreamEmbedOrigin), viper.GetString(key.UpstreamSourcesReferer)),
		manifest.New(client),
		OptionsFromConfig(),
	)
}
