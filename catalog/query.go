package catalog

import (
	"net/http"

	"github.com/anisan-cli/anistream/key"
	"github.com/spf13/viper"
)

// Kind selects one of the catalog operations.
type Kind int

const (
	KindSearch Kind = iota
	KindShowDetail
	KindEpisodeList
	KindEpisodeSources
)

func (k Kind) String() string {
	switch k {
	case KindSearch:
		return "search"
	case KindShowDetail:
		return "show"
	case KindEpisodeList:
		return "episodes"
	case KindEpisodeSources:
		return "sources"
	default:
		return "unknown"
	}
}

const searchQuery = `query( $search: SearchInput $limit: Int $page: Int $translationType: VaildTranslationTypeEnumType $countryOrigin: VaildCountryOriginEnumType ) { shows( search: $search limit: $limit page: $page translationType: $translationType countryOrigin: $countryOrigin ) { edges { _id name englishName availableEpisodes status __typename } }}`

const showDetailQuery = `query ($showId: String!) { show(_id: $showId) { _id name englishName nativeLanguageName thumbnail description status score startDate endDate genres studios availableEpisodes } }`

const episodeListQuery = `query ($showId: String!) { show( _id: $showId ) { _id availableEpisodesDetail }}`

const episodeSourcesQuery = `query ($showId: String!, $translationType: VaildTranslationTypeEnumType!, $episodeString: String!) { episode( showId: $showId translationType: $translationType episodeString: $episodeString ) { episodeString sourceUrls }}`

// Query is a single catalog request, built per call.
type Query struct {
	Kind      Kind
	Variables map[string]any
}

func (q Query) operation() string {
	switch q.Kind {
	case KindShowDetail:
		return showDetailQuery
	case KindEpisodeList:
		return episodeListQuery
	case KindEpisodeSources:
		return episodeSourcesQuery
	default:
		return searchQuery
	}
}

// method is POST for show detail and GET for everything else, matching what upstream accepts.
func (q Query) method() string {
	if q.Kind == KindShowDetail {
		return http.MethodPost
	}
	return http.MethodGet
}

func (q Query) referer() string {
	if q.Kind == KindEpisodeSources {
		return viper.GetString(key.UpstreamSourcesReferer)
	}
	return viper.GetString(key.UpstreamReferer)
}

func newSearchQuery(text string) Query {
	return Query{
		Kind: KindSearch,
		Variables: map[string]any{
			"search": map[string]any{
				"allowAdult":   false,
				"allowUnknown": false,
				"query":        text,
			},
			"limit":           viper.GetInt(key.CatalogSearchLimit),
			"page":            1,
			"translationType": viper.GetString(key.CatalogTranslationType),
			"countryOrigin":   "ALL",
		},
	}
}

func newShowDetailQuery(showID string) Query {
	return Query{Kind: KindShowDetail, Variables: map[string]any{"showId": showID}}
}

func newEpisodeListQuery(showID string) Query {
	return Query{Kind: KindEpisodeList, Variables: map[string]any{"showId": showID}}
}

func newEpisodeSourcesQuery(showID, episode string) Query {
	return Query{
		Kind: KindEpisodeSources,
		Variables: map[string]any{
			"showId":          showID,
			"translationType": viper.GetString(key.CatalogTranslationType),
			"episodeString":   episode,
		},
	}
}
