// Package resolve turns a show id and episode number into a ranked list of playable sources.
//
// Each provider descriptor the catalog returns is processed independently and concurrently:
// decode the path, fetch the embed payload, extract and classify links, expand master
// playlists. A provider that fails at any stage contributes nothing; the others are unaffected.
package resolve

import (
	"context"
	"time"

	"github.com/anisan-cli/anistream/aggregate"
	"github.com/anisan-cli/anistream/decoder"
	"github.com/anisan-cli/anistream/extractor"
	"github.com/anisan-cli/anistream/log"
	"github.com/anisan-cli/anistream/source"
	"github.com/anisan-cli/anistream/util"
	"golang.org/x/sync/errgroup"
)

// Catalog lists the provider descriptors of an episode.
type Catalog interface {
	EpisodeSources(ctx context.Context, showID, episode string) []*source.Descriptor
}

// Fetcher returns the embed payload at a decoded path.
type Fetcher interface {
	Fetch(ctx context.Context, path string) (string, error)
}

// ManifestResolver expands a master playlist into its variants.
type ManifestResolver interface {
	Resolve(ctx context.Context, manifestURL, referer string) []*source.Video
}

// Options tune the pipeline.
type Options struct {
	// Workers bounds how many providers are processed at once. Values below 1 mean 1.
	Workers int
	// FetchTimeout bounds each embed and manifest fetch. Zero disables the bound.
	FetchTimeout time.Duration
	// ResolveManifests expands master playlists; when false they are returned as single "auto" sources.
	ResolveManifests bool
	// Referer is attached to every emitted source.
	Referer string
}

// Resolver runs the source resolution pipeline.
type Resolver struct {
	catalog   Catalog
	fetcher   Fetcher
	manifests ManifestResolver
	options   Options
}

// New returns a Resolver.
func New(catalog Catalog, fetcher Fetcher, manifests ManifestResolver, options Options) *Resolver {
	if options.Workers < 1 {
		options.Workers = 1
	}
	return &Resolver{
		catalog:   catalog,
		fetcher:   fetcher,
		manifests: manifests,
		options:   options,
	}
}

// VideoSources returns the deduplicated sources of an episode, best quality first.
// The result is never nil; an episode nothing can be resolved for yields an empty list.
func (r *Resolver) VideoSources(ctx context.Context, showID, episode string) []*source.Video {
	descriptors := r.catalog.EpisodeSources(ctx, showID, episode)
	log.Infof("resolving %s for %s episode %s", util.Quantify(len(descriptors), "provider", "providers"), showID, episode)

	results := make([][]*source.Video, len(descriptors))

	var g errgroup.Group
	g.SetLimit(r.options.Workers)

	for i, d := range descriptors {
		g.Go(func() error {
			results[i] = r.provider(ctx, d)
			return nil
		})
	}
	_ = g.Wait()

	videos := aggregate.Aggregate(results)
	log.Infof("resolved %s for %s episode %s", util.Quantify(len(videos), "source", "sources"), showID, episode)
	return videos
}

// provider runs the per-descriptor stages. Failures are logged with the provider and stage.
func (r *Resolver) provider(ctx context.Context, d *source.Descriptor) []*source.Video {
	logger := log.WithFields(log.Fields{"provider": d.Name})

	path := decoder.Decode(d.EncodedPath)
	if path == "" {
		logger.WithField("stage", "decode").Warn("empty path")
		return nil
	}

	fetchCtx, cancel := r.bounded(ctx)
	body, err := r.fetcher.Fetch(fetchCtx, path)
	cancel()
	if err != nil {
		logger.WithField("stage", "embed").Warn(err)
		return nil
	}

	var videos []*source.Video
	for _, candidate := range extractor.Extract(body) {
		result := extractor.Classify(candidate, body, r.options.Referer)
		videos = append(videos, result.Sources...)

		if master, ok := result.Manifest.Get(); ok {
			videos = append(videos, r.expand(ctx, master)...)
		}
	}

	if len(videos) == 0 {
		logger.WithField("stage", "extract").Info("no links")
	}
	return videos
}

// expand resolves master into its variants, falling back to master itself.
func (r *Resolver) expand(ctx context.Context, master *source.Video) []*source.Video {
	if !r.options.ResolveManifests || r.manifests == nil {
		return []*source.Video{master}
	}

	manifestCtx, cancel := r.bounded(ctx)
	defer cancel()

	variants := r.manifests.Resolve(manifestCtx, master.URL, master.Referer)
	if len(variants) == 0 {
		log.WithFields(log.Fields{"stage": "manifest", "manifest": master.URL}).Info("no variants, keeping master")
		return []*source.Video{master}
	}
	return variants
}

func (r *Resolver) bounded(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.options.FetchTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, r.options.FetchTimeout)
}
