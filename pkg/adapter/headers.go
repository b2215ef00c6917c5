package adapter

// Response headers read by the composer.
const (
	HeaderTitle = "X-Head-Title"
	HeaderMeta  = "X-Head-Meta"
	HeaderLink  = "Link"
)

// Query parameters the composer sets on proxied fragment requests.
// Both carry base64-encoded JSON.
const (
	ParamRouterProps = "routerProps"
	ParamAppProps    = "appProps"
)

// PropPublicPath is the well-known props key carrying the public path under
// which the fragment's static assets are served.
const PropPublicPath = "publicPath"

// Link relation types understood by the composer.
const (
	relStylesheet         = "stylesheet"
	relFragmentScript     = "fragment-script"
	relFragmentDependency = "fragment-dependency"
)
