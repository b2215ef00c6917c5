// Package adapter connects a Go micro-frontend fragment to a parent page
// composer.
//
// The composer encodes routing and data-passing metadata into the query
// string of every request it proxies to a fragment, and reads response
// metadata (page title, meta tags, asset links) back from conventional
// response headers. This package decodes the former and encodes the latter.
//
// # Request Decoding
//
// ParseRequest extracts the base path, the fragment-local request URL, and
// the props object the composer attached to the request:
//
//	a := adapter.New(adapter.WithLogger(log))
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//		rd := a.ParseRequest(r)
//		rd.RequestURL() // "/news/42" — path as the fragment sees it
//		rd.BasePath()   // "/ui/news" — prefix the composer mounted us under
//		rd.Props()      // arbitrary key-value payload from the composer
//	}
//
// Missing or malformed metadata never fails the request: the decoder logs a
// warning and falls back to "/" and an empty props map.
//
// # Response Encoding
//
// SetResponseHeaders reports the fragment's rendering output back to the
// composer via headers:
//
//	a.SetResponseHeaders(rd, w, adapter.Response{
//		Title:    "News",
//		MetaTags: `<meta name="description" content="latest news">`,
//		Assets: &adapter.AppAssets{
//			SPABundle: "app.js",
//			CSSBundle: "app.css",
//		},
//	})
//
// Title and meta markup travel base64-encoded in X-Head-Title and
// X-Head-Meta so arbitrary markup survives header transport. Asset URLs are
// resolved against the public path and emitted as a single Link header.
package adapter
