package fragmentkit_test

import (
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fragmentkit/fragmentkit"
	"github.com/fragmentkit/fragmentkit/middlewares"
)

// TestFragmentRoundTrip drives a chi-mounted fragment through one full
// decode/render/encode cycle the way a composer would.
func TestFragmentRoundTrip(t *testing.T) {
	t.Parallel()

	a := fragmentkit.New(fragmentkit.WithPublicPath("/news/assets/"))

	r := chi.NewRouter()
	r.Use(middlewares.RequestID())
	r.Use(middlewares.RequestData(a))
	r.Get("/*", func(w http.ResponseWriter, req *http.Request) {
		rd := middlewares.RequestDataFromContext(req.Context())
		require.NotNil(t, rd)

		a.SetResponseHeaders(rd, w, fragmentkit.Response{
			Title: "News",
			Assets: &fragmentkit.AppAssets{
				SPABundle: "app.js",
				Dependencies: []fragmentkit.Dependency{
					{Name: "shared", URL: "https://cdn/shared.js"},
				},
			},
		})
		_, _ = w.Write([]byte("<div>" + rd.RequestURL() + "</div>"))
	})

	routerProps := base64.StdEncoding.EncodeToString([]byte(`{"basePath":"/ui/news","reqUrl":"/ui/news/article/42"}`))
	req := httptest.NewRequest(http.MethodGet, "/?routerProps="+url.QueryEscape(routerProps), nil)
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, req)

	assert.Equal(t, "<div>/article/42</div>", rec.Body.String())
	assert.Equal(t,
		base64.StdEncoding.EncodeToString([]byte("<title>News</title>")),
		rec.Header().Get("X-Head-Title"))
	assert.Equal(t,
		`</news/assets/app.js>; rel="fragment-script"; as="script"; crossorigin="anonymous",`+
			`<https://cdn/shared.js>; rel="fragment-dependency"; name="shared"`,
		rec.Header().Get("Link"))
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

// TestBuildLinkHeaderFacade checks the facade re-export against the
// documented entry format.
func TestBuildLinkHeaderFacade(t *testing.T) {
	t.Parallel()

	got := fragmentkit.BuildLinkHeader(fragmentkit.AppAssets{CSSBundle: "app.css"}, "/")
	assert.Equal(t, `</app.css>; rel="stylesheet"`, got)
}
