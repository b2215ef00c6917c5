package adapter

import (
	"log/slog"
	"net/http"

	"github.com/fragmentkit/fragmentkit/pkg/logger"
)

// Adapter decodes composer metadata from inbound requests and encodes
// fragment output into outbound response headers.
//
// Configuration is fixed at construction; a single Adapter is safe for
// concurrent use because all per-request state lives in the values returned
// by ParseRequest.
type Adapter struct {
	log          *slog.Logger
	publicPath   string
	sanitizeMeta func(string) string // nil = pass meta markup through untouched
}

// Option configures the Adapter.
type Option func(*Adapter)

// New creates an Adapter with the given options.
// Defaults: no-op logger, public path "/".
func New(opts ...Option) *Adapter {
	a := &Adapter{
		log:        logger.NewNope(),
		publicPath: "/",
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// WithLogger sets the logger used for decode warnings.
func WithLogger(log *slog.Logger) Option {
	return func(a *Adapter) {
		if log != nil {
			a.log = log
		}
	}
}

// WithPublicPath sets the default public path used to resolve relative
// asset URLs when the composer does not pass one in the request props.
func WithPublicPath(publicPath string) Option {
	return func(a *Adapter) {
		if publicPath != "" {
			a.publicPath = publicPath
		}
	}
}

// WithMetaSanitizer sets a sanitizer applied to meta-tag markup before it is
// encoded into the X-Head-Meta header.
func WithMetaSanitizer(fn func(string) string) Option {
	return func(a *Adapter) {
		a.sanitizeMeta = fn
	}
}

// FragmentFunc renders a fragment for one decoded request. It returns the
// response metadata for the composer and the HTML body to serve.
type FragmentFunc func(r *http.Request, rd *RequestData) (Response, []byte)

// Handle adapts a FragmentFunc into a http.HandlerFunc: it decodes the
// request, invokes the fragment, sets the composer headers, and writes the
// body.
func (a *Adapter) Handle(fn FragmentFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rd := a.ParseRequest(r)
		resp, body := fn(r, rd)
		a.SetResponseHeaders(rd, w, resp)
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if _, err := w.Write(body); err != nil {
			a.log.Warn("failed to write fragment body", slog.String("error", err.Error()))
		}
	}
}
