package fragmentkit

import (
	"log/slog"

	"github.com/fragmentkit/fragmentkit/pkg/adapter"
)

// Type aliases - public API
type (
	// Adapter decodes composer metadata and encodes fragment output.
	Adapter = adapter.Adapter

	// Option configures the Adapter.
	Option = adapter.Option

	// RequestData is the immutable per-request view of composer metadata.
	RequestData = adapter.RequestData

	// Response carries the metadata a fragment reports back to the composer.
	Response = adapter.Response

	// AppAssets describes a fragment's bundles and shared dependencies.
	AppAssets = adapter.AppAssets

	// Dependency is a named shared dependency bundle.
	Dependency = adapter.Dependency

	// Props is the open-ended payload the composer passes to a fragment.
	Props = adapter.Props

	// FragmentFunc renders a fragment for one decoded request.
	FragmentFunc = adapter.FragmentFunc
)

// New creates an Adapter with the given options.
//
// Example:
//
//	a := fragmentkit.New(
//	    fragmentkit.WithLogger(logger.New()),
//	    fragmentkit.WithPublicPath("/assets/"),
//	)
func New(opts ...Option) *Adapter {
	return adapter.New(opts...)
}

// WithLogger sets the logger used for decode warnings.
// Defaults to a no-op logger.
func WithLogger(log *slog.Logger) Option {
	return adapter.WithLogger(log)
}

// WithPublicPath sets the default public path for resolving relative asset
// URLs. Defaults to "/".
func WithPublicPath(publicPath string) Option {
	return adapter.WithPublicPath(publicPath)
}

// WithMetaSanitizer sets a sanitizer applied to meta markup before encoding,
// e.g. sanitizer.SanitizeMeta.
func WithMetaSanitizer(fn func(string) string) Option {
	return adapter.WithMetaSanitizer(fn)
}

// BuildLinkHeader renders an asset manifest as a Link header value against
// the given public path.
func BuildLinkHeader(assets AppAssets, publicPath string) string {
	return adapter.BuildLinkHeader(assets, publicPath)
}
