package adapter_test

import (
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fragmentkit/fragmentkit/pkg/adapter"
)

func TestSetResponseHeaders(t *testing.T) {
	t.Parallel()

	emptyRequest := func() *adapter.RequestData {
		a := adapter.New()
		return a.ParseRequest(httptest.NewRequest(http.MethodGet, "/", nil))
	}

	t.Run("sets base64 title header only", func(t *testing.T) {
		t.Parallel()

		a := adapter.New()
		rec := httptest.NewRecorder()

		a.SetResponseHeaders(emptyRequest(), rec, adapter.Response{Title: "Hi"})

		want := base64.StdEncoding.EncodeToString([]byte("<title>Hi</title>"))
		assert.Equal(t, want, rec.Header().Get("X-Head-Title"))
		assert.Empty(t, rec.Header().Get("X-Head-Meta"))
		assert.Empty(t, rec.Header().Get("Link"))
	})

	t.Run("sets base64 meta header with raw markup", func(t *testing.T) {
		t.Parallel()

		a := adapter.New()
		rec := httptest.NewRecorder()
		markup := `<meta name="description" content="latest news">`

		a.SetResponseHeaders(emptyRequest(), rec, adapter.Response{MetaTags: markup})

		got, err := base64.StdEncoding.DecodeString(rec.Header().Get("X-Head-Meta"))
		assert.NoError(t, err)
		assert.Equal(t, markup, string(got))
	})

	t.Run("builds link header from assets with default public path", func(t *testing.T) {
		t.Parallel()

		a := adapter.New()
		rec := httptest.NewRecorder()

		a.SetResponseHeaders(emptyRequest(), rec, adapter.Response{
			Assets: &adapter.AppAssets{
				SPABundle:    "main.js",
				Dependencies: []adapter.Dependency{{Name: "shared", URL: "shared.js"}},
			},
		})

		want := `</main.js>; rel="fragment-script"; as="script"; crossorigin="anonymous",` +
			`</shared.js>; rel="fragment-dependency"; name="shared"`
		assert.Equal(t, want, rec.Header().Get("Link"))
	})

	t.Run("public path from request props wins over default", func(t *testing.T) {
		t.Parallel()

		a := adapter.New(adapter.WithPublicPath("/default/"))
		req := composerRequest(t, map[string]string{
			"appProps": `{"publicPath":"/from-props/"}`,
		})
		rd := a.ParseRequest(req)
		rec := httptest.NewRecorder()

		a.SetResponseHeaders(rd, rec, adapter.Response{
			Assets: &adapter.AppAssets{CSSBundle: "app.css"},
		})

		assert.Equal(t, `</from-props/app.css>; rel="stylesheet"`, rec.Header().Get("Link"))
	})

	t.Run("nil request data uses configured public path", func(t *testing.T) {
		t.Parallel()

		a := adapter.New(adapter.WithPublicPath("/assets"))
		rec := httptest.NewRecorder()

		a.SetResponseHeaders(nil, rec, adapter.Response{
			Assets: &adapter.AppAssets{CSSBundle: "app.css"},
		})

		assert.Equal(t, `</assets/app.css>; rel="stylesheet"`, rec.Header().Get("Link"))
	})

	t.Run("zero response sets no headers", func(t *testing.T) {
		t.Parallel()

		a := adapter.New()
		rec := httptest.NewRecorder()

		a.SetResponseHeaders(emptyRequest(), rec, adapter.Response{})

		assert.Empty(t, rec.Header())
	})

	t.Run("second call overwrites earlier values", func(t *testing.T) {
		t.Parallel()

		a := adapter.New()
		rec := httptest.NewRecorder()

		a.SetResponseHeaders(emptyRequest(), rec, adapter.Response{Title: "First"})
		a.SetResponseHeaders(emptyRequest(), rec, adapter.Response{Title: "Second"})

		want := base64.StdEncoding.EncodeToString([]byte("<title>Second</title>"))
		assert.Equal(t, want, rec.Header().Get("X-Head-Title"))
		assert.Len(t, rec.Header().Values("X-Head-Title"), 1)
	})

	t.Run("meta sanitizer runs before encoding", func(t *testing.T) {
		t.Parallel()

		a := adapter.New(adapter.WithMetaSanitizer(strings.ToUpper))
		rec := httptest.NewRecorder()

		a.SetResponseHeaders(emptyRequest(), rec, adapter.Response{MetaTags: "abc"})

		got, err := base64.StdEncoding.DecodeString(rec.Header().Get("X-Head-Meta"))
		assert.NoError(t, err)
		assert.Equal(t, "ABC", string(got))
	})
}

func TestHandle(t *testing.T) {
	t.Parallel()

	t.Run("decodes, sets headers, and writes body", func(t *testing.T) {
		t.Parallel()

		a := adapter.New()
		handler := a.Handle(func(r *http.Request, rd *adapter.RequestData) (adapter.Response, []byte) {
			return adapter.Response{Title: "Hi"}, []byte("<div>" + rd.RequestURL() + "</div>")
		})

		req := composerRequest(t, map[string]string{
			"routerProps": `{"basePath":"/foo","reqUrl":"/foo/bar"}`,
		})
		rec := httptest.NewRecorder()
		handler(rec, req)

		assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("<title>Hi</title>")), rec.Header().Get("X-Head-Title"))
		assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
		assert.Equal(t, "<div>/bar</div>", rec.Body.String())
	})
}
