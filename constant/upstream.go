package constant

// Upstream catalog and embed endpoints. These are the factory defaults for the upstream.* config keys.
const (
	UpstreamAPI = "https://api.allanime.day/api"

	// UpstreamEmbedOrigin is prefixed to every decoded provider path.
	UpstreamEmbedOrigin = "https://allanime.day"

	// CatalogReferer is sent with search, detail and episode-list queries.
	CatalogReferer = "https://allmanga.to"

	// SourcesReferer is sent with episode-source queries and embed fetches, and is attached to every emitted video.
	SourcesReferer = "https://allanime.to"

	// ImageHost serves show posters and episode thumbnails keyed by show id.
	ImageHost = "https://wp.youtube-anime.com/aln.youtube-anime.com/images/"
)

// UserAgent is the fixed browser user agent the upstream expects on every request.
const UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:109.0) Gecko/20100101 Firefox/121.0"
