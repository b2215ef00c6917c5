// A minimal news fragment served behind a page composer.
package main

import (
	"fmt"
	"html"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"

	"github.com/fragmentkit/fragmentkit"
	"github.com/fragmentkit/fragmentkit/middlewares"
	"github.com/fragmentkit/fragmentkit/pkg/logger"
	"github.com/fragmentkit/fragmentkit/pkg/manifest"
	"github.com/fragmentkit/fragmentkit/pkg/sanitizer"
)

func main() {
	log := logger.NewWithSentry(logger.SentryConfig{
		DSN:      os.Getenv("SENTRY_DSN"),
		MinLevel: slog.LevelWarn,
	}, middlewares.RequestIDExtractor())

	assets, err := manifest.Load("assets-manifest.yaml")
	if err != nil {
		log.Warn("asset manifest not loaded", slog.String("error", err.Error()))
	}

	a := fragmentkit.New(
		fragmentkit.WithLogger(log),
		fragmentkit.WithPublicPath("/news/assets/"),
		fragmentkit.WithMetaSanitizer(sanitizer.SanitizeMeta),
	)

	r := chi.NewRouter()
	r.Use(middlewares.RequestID())
	r.Use(middlewares.RequestData(a))

	r.Get("/*", func(w http.ResponseWriter, req *http.Request) {
		rd := middlewares.RequestDataFromContext(req.Context())

		a.SetResponseHeaders(rd, w, fragmentkit.Response{
			Title:    "News",
			MetaTags: `<meta name="description" content="latest news">`,
			Assets:   &assets,
		})

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprintf(w, "<div>news fragment at %s</div>", html.EscapeString(rd.RequestURL()))
	})

	log.Info("news fragment listening", slog.String("addr", ":8080"))
	if err := http.ListenAndServe(":8080", r); err != nil {
		log.Error("server stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
