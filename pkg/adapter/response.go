package adapter

import (
	"encoding/base64"
	"net/http"
)

// Response carries the metadata a fragment reports back to the composer
// after rendering. Zero-value fields are omitted from the response headers.
type Response struct {
	// Title is the page title contributed by the fragment.
	Title string
	// MetaTags is already-serialized head markup (meta/link tags).
	MetaTags string
	// Assets describes the fragment's bundles and shared dependencies.
	Assets *AppAssets
}

// AppAssets is the asset manifest a fragment communicates to the composer
// via the Link response header.
type AppAssets struct {
	// SPABundle is the client-side entry script.
	SPABundle string
	// CSSBundle is the fragment's stylesheet.
	CSSBundle string
	// Dependencies are named shared bundles, emitted in slice order.
	Dependencies []Dependency
}

// Dependency is a named shared dependency bundle.
type Dependency struct {
	Name string
	URL  string
}

// SetResponseHeaders encodes the fragment output into the composer's
// response header conventions. It only mutates headers; repeated calls
// overwrite earlier values.
//
// Title and meta markup are base64-encoded so arbitrary markup survives
// header transport. The Link header is built against the public path from
// the request props when present, else the adapter default.
func (a *Adapter) SetResponseHeaders(rd *RequestData, w http.ResponseWriter, resp Response) {
	header := w.Header()

	if resp.Title != "" {
		title := "<title>" + resp.Title + "</title>"
		header.Set(HeaderTitle, base64.StdEncoding.EncodeToString([]byte(title)))
	}

	if resp.MetaTags != "" {
		meta := resp.MetaTags
		if a.sanitizeMeta != nil {
			meta = a.sanitizeMeta(meta)
		}
		header.Set(HeaderMeta, base64.StdEncoding.EncodeToString([]byte(meta)))
	}

	if resp.Assets != nil {
		if link := BuildLinkHeader(*resp.Assets, a.effectivePublicPath(rd)); link != "" {
			header.Set(HeaderLink, link)
		}
	}
}

// effectivePublicPath prefers the publicPath prop sent by the composer over
// the adapter's configured default.
func (a *Adapter) effectivePublicPath(rd *RequestData) string {
	if rd != nil {
		if pp := rd.Props().String(PropPublicPath); pp != "" {
			return pp
		}
	}
	return a.publicPath
}
