// Package key defines the canonical set of configuration identifiers.
package key

// Upstream endpoints and request identity.
const (
	UpstreamAPI            = "upstream.api"
	UpstreamEmbedOrigin    = "upstream.embed_origin"
	UpstreamUserAgent      = "upstream.user_agent"
	UpstreamReferer        = "upstream.referer"
	UpstreamSourcesReferer = "upstream.sources_referer"
)

// Catalog queries.
const (
	CatalogTranslationType = "catalog.translation_type"
	CatalogSearchLimit     = "catalog.search_limit"
)

// Source resolution pipeline.
const (
	PipelineWorkers          = "pipeline.workers"
	PipelineFetchTimeout     = "pipeline.fetch_timeout"
	PipelineResolveManifests = "pipeline.resolve_manifests"
)

// Transport.
const (
	NetworkTLSFingerprint = "network.tls_fingerprint"
)

// Iconography.
const (
	IconsVariant = "icons.variant"
)

// Logging - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI output.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
