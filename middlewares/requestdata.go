package middlewares

import (
	"context"
	"net/http"

	"github.com/fragmentkit/fragmentkit/pkg/adapter"
)

// requestDataKey is the context key for the decoded composer metadata.
type requestDataKey struct{}

// RequestData returns middleware that decodes the composer metadata once
// per request and stores it in the request context.
func RequestData(a *adapter.Adapter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rd := a.ParseRequest(r)
			ctx := context.WithValue(r.Context(), requestDataKey{}, rd)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequestDataFromContext returns the decoded request data, or nil when the
// RequestData middleware did not run.
func RequestDataFromContext(ctx context.Context) *adapter.RequestData {
	rd, _ := ctx.Value(requestDataKey{}).(*adapter.RequestData)
	return rd
}
