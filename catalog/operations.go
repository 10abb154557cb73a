package catalog

import (
	"context"
	"strings"

	"github.com/anisan-cli/anistream/key"
	"github.com/anisan-cli/anistream/log"
	"github.com/anisan-cli/anistream/source"
	"github.com/anisan-cli/anistream/util"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

const (
	unknown       = "Unknown"
	unknownTitle  = "Unknown Title"
	noDescription = "No description available"
	unavailable   = "Description unavailable"
)

// Search returns the shows matching query. Queries under two characters return nothing.
func (c *Client) Search(ctx context.Context, query string) []*source.Show {
	query = strings.TrimSpace(query)
	if err := ValidateQuery(query); err != nil {
		log.Warn(err)
		return nil
	}

	log.Infof("catalog: searching for %q", query)
	var data searchData
	if err := c.do(ctx, newSearchQuery(query), &data); err != nil {
		log.Error(err)
		return nil
	}

	translation := viper.GetString(key.CatalogTranslationType)
	shows := lo.FilterMap(data.Shows.Edges, func(node *showNode, _ int) (*source.Show, bool) {
		if node == nil || node.ID == "" {
			return nil, false
		}

		return &source.Show{
			ID:       node.ID,
			Title:    NormalizeTitle(node.Name),
			Episodes: node.AvailableEpisodes[translation],
			Status:   lo.Ternary(node.Status != "", node.Status, unknown),
			Poster:   source.PosterURL(node.ID),
		}, true
	})

	log.Infof("catalog: found %s", util.Quantify(len(shows), "show", "shows"))
	return shows
}

// ShowDetail returns the full record of a show. When the detail query fails the show is
// looked up through search by id instead; if that finds nothing the result is None.
func (c *Client) ShowDetail(ctx context.Context, showID string) mo.Option[*source.Show] {
	var data showData
	err := c.do(ctx, newShowDetailQuery(showID), &data)
	if err == nil && data.Show != nil {
		return mo.Some(c.detailOf(showID, data.Show))
	}

	if err != nil {
		log.Error(err)
	}
	log.Warnf("catalog: show %s unavailable, falling back to search", showID)

	match, ok := lo.Find(c.Search(ctx, showID), func(s *source.Show) bool {
		return s.ID == showID
	})
	if !ok {
		return mo.None[*source.Show]()
	}

	match.Year = unknown
	match.Genres = unknown
	match.Description = unavailable
	return mo.Some(match)
}

func (c *Client) detailOf(showID string, node *showNode) *source.Show {
	title := lo.Ternary(node.Name != "", node.Name, node.EnglishName)
	if title == "" {
		title = unknownTitle
	}

	genres := unknown
	if len(node.Genres) > 0 {
		genres = strings.Join(node.Genres, ", ")
	}

	return &source.Show{
		ID:          showID,
		Title:       NormalizeTitle(title),
		Episodes:    node.AvailableEpisodes[viper.GetString(key.CatalogTranslationType)],
		Year:        lo.Ternary(node.StartDate.Year != "", node.StartDate.Year, unknown),
		Status:      lo.Ternary(node.Status != "", node.Status, unknown),
		Genres:      genres,
		Description: lo.Ternary(node.Description != "", node.Description, noDescription),
		Poster:      source.PosterURL(showID),
	}
}

// EpisodeList returns the episode numbers available for the configured translation type,
// in upstream order.
func (c *Client) EpisodeList(ctx context.Context, showID string) []string {
	var data showData
	if err := c.do(ctx, newEpisodeListQuery(showID), &data); err != nil {
		log.Error(err)
		return nil
	}
	if data.Show == nil {
		return nil
	}

	return data.Show.AvailableEpisodesDetail[viper.GetString(key.CatalogTranslationType)]
}

// Episodes returns EpisodeList as list items.
func (c *Client) Episodes(ctx context.Context, showID string) []*source.Episode {
	return lo.Map(c.EpisodeList(ctx, showID), func(number string, _ int) *source.Episode {
		return source.NewEpisode(showID, number)
	})
}

// EpisodeSources returns the provider descriptors of an episode, in upstream order.
// Entries without a name or path are dropped.
func (c *Client) EpisodeSources(ctx context.Context, showID, episode string) []*source.Descriptor {
	var data episodeData
	if err := c.do(ctx, newEpisodeSourcesQuery(showID, episode), &data); err != nil {
		log.Error(err)
		return nil
	}
	if data.Episode == nil {
		return nil
	}

	descriptors := make([]*source.Descriptor, 0, len(data.Episode.SourceURLs))
	for _, s := range data.Episode.SourceURLs {
		if s.SourceName == "" || s.SourceURL == "" {
			continue
		}
		descriptors = append(descriptors, &source.Descriptor{
			Name:        s.SourceName,
			EncodedPath: s.SourceURL,
			Priority:    s.Priority,
			Type:        s.Type,
		})
	}

	log.Infof("catalog: episode %s of %s has %s", episode, showID, util.Quantify(len(descriptors), "provider", "providers"))
	return descriptors
}
