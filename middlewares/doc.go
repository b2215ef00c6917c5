// Package middlewares provides net/http middleware for fragment servers.
// All middleware uses the standard func(http.Handler) http.Handler shape
// and mounts on any stdlib-compatible router, including chi.
//
// # Request Data
//
// RequestData decodes the composer metadata once per request and stores it
// in the request context, so handlers deeper in the chain don't re-parse:
//
//	r := chi.NewRouter()
//	r.Use(middlewares.RequestData(a))
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//		rd := middlewares.RequestDataFromContext(r.Context())
//	}
//
// # Request ID
//
// RequestID assigns a unique ID to each request for tracing. It reuses IDs
// from upstream headers when present or generates a UUID. Pair it with
// RequestIDExtractor so every log record carries the request_id:
//
//	log := logger.New(middlewares.RequestIDExtractor())
//	r.Use(middlewares.RequestID())
package middlewares
