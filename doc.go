// Package fragmentkit is an SDK for Go micro-frontend fragments running
// behind a parent page composer.
//
// A composer assembles independently deployed fragments into one page. It
// tells each fragment where it is mounted and what data it gets by encoding
// metadata into the query string of every proxied request, and it collects
// each fragment's page title, meta tags, and asset links from conventional
// response headers. fragmentkit decodes the former and encodes the latter;
// it does not fetch data, render pages, or route requests itself.
//
// # Quick Start
//
// Create an adapter and use it inside any net/http handler:
//
//	a := fragmentkit.New(
//	    fragmentkit.WithLogger(log),
//	    fragmentkit.WithPublicPath("/ui/news/assets/"),
//	)
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//	    rd := a.ParseRequest(r)
//
//	    // ... render using rd.RequestURL(), rd.BasePath(), rd.Props() ...
//
//	    a.SetResponseHeaders(rd, w, fragmentkit.Response{
//	        Title:  "News",
//	        Assets: &fragmentkit.AppAssets{SPABundle: "app.js"},
//	    })
//	    w.Write(body)
//	}
//
// Or let the adapter drive the whole cycle:
//
//	http.Handle("/", a.Handle(func(r *http.Request, rd *fragmentkit.RequestData) (fragmentkit.Response, []byte) {
//	    return fragmentkit.Response{Title: "News"}, renderNews(rd)
//	}))
//
// # Middleware
//
// For routers, the middlewares package decodes once per request and stores
// the result in the request context:
//
//	r := chi.NewRouter()
//	r.Use(middlewares.RequestData(a))
//
// # Subpackages
//
//   - pkg/adapter: the request decoder and response encoder
//   - pkg/manifest: asset manifest file loading
//   - pkg/sanitizer: head markup sanitization policies
//   - pkg/logger: structured logging with context extractors and Sentry
//   - middlewares: net/http middleware for fragment servers
package fragmentkit
