package adapter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fragmentkit/fragmentkit/pkg/adapter"
)

func TestBuildLinkHeader(t *testing.T) {
	t.Parallel()

	t.Run("orders stylesheet, script, then dependencies", func(t *testing.T) {
		t.Parallel()

		got := adapter.BuildLinkHeader(adapter.AppAssets{
			SPABundle: "app.js",
			CSSBundle: "app.css",
			Dependencies: []adapter.Dependency{
				{Name: "vendor", URL: "vendor.js"},
				{Name: "shared", URL: "shared.js"},
			},
		}, "/")

		want := `</app.css>; rel="stylesheet",` +
			`</app.js>; rel="fragment-script"; as="script"; crossorigin="anonymous",` +
			`</vendor.js>; rel="fragment-dependency"; name="vendor",` +
			`</shared.js>; rel="fragment-dependency"; name="shared"`
		assert.Equal(t, want, got)
	})

	t.Run("leaves absolute urls untouched", func(t *testing.T) {
		t.Parallel()

		got := adapter.BuildLinkHeader(adapter.AppAssets{
			SPABundle: "http://cdn/x.js",
			CSSBundle: "https://cdn/y.css",
		}, "/some/public/path/")

		assert.Contains(t, got, "<http://cdn/x.js>")
		assert.Contains(t, got, "<https://cdn/y.css>")
	})

	t.Run("joins relative urls onto the public path without double slashes", func(t *testing.T) {
		t.Parallel()

		got := adapter.BuildLinkHeader(adapter.AppAssets{CSSBundle: "/app.css"}, "/assets/")
		assert.Equal(t, `</assets/app.css>; rel="stylesheet"`, got)
	})

	t.Run("joins onto an absolute public path", func(t *testing.T) {
		t.Parallel()

		got := adapter.BuildLinkHeader(adapter.AppAssets{SPABundle: "app.js"}, "https://cdn.example.com/news")
		assert.Equal(t, `<https://cdn.example.com/news/app.js>; rel="fragment-script"; as="script"; crossorigin="anonymous"`, got)
	})

	t.Run("empty public path falls back to root", func(t *testing.T) {
		t.Parallel()

		got := adapter.BuildLinkHeader(adapter.AppAssets{CSSBundle: "app.css"}, "")
		assert.Equal(t, `</app.css>; rel="stylesheet"`, got)
	})

	t.Run("no assets yields empty value", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, adapter.BuildLinkHeader(adapter.AppAssets{}, "/"))
	})
}
