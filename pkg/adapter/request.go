package adapter

import (
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"path"
	"strings"
)

// routerProps is the routing payload the composer encodes into the
// routerProps query parameter.
type routerProps struct {
	BasePath string `json:"basePath"`
	ReqURL   string `json:"reqUrl"`
}

// RequestData is the immutable per-request view of the composer metadata.
// It is owned by the caller for the lifetime of that request; the accessor
// methods are pure reads and safe to call any number of times.
type RequestData struct {
	requestURL string
	basePath   string
	props      Props
}

// RequestURL returns the path (and query, if any) the fragment should treat
// as its current location, with the base path removed. Always begins with "/".
func (d *RequestData) RequestURL() string { return d.requestURL }

// BasePath returns the path prefix under which the composer mounted the
// fragment. Use it to construct links relative to the fragment root.
func (d *RequestData) BasePath() string { return d.basePath }

// Props returns the key-value payload the composer passed to the fragment.
// Never nil; empty when the composer passed nothing.
func (d *RequestData) Props() Props { return d.props }

// ParseRequest decodes the composer metadata carried in the request's query
// string. Missing or malformed parameters degrade to safe defaults with a
// logged warning; ParseRequest never fails.
func (a *Adapter) ParseRequest(r *http.Request) *RequestData {
	d := &RequestData{
		requestURL: "/",
		basePath:   "/",
		props:      Props{},
	}

	query := r.URL.Query()

	if raw := query.Get(ParamRouterProps); raw == "" {
		a.log.Warn("routerProps query parameter is missing, falling back to root",
			slog.String("url", fullRequestURL(r)))
	} else {
		var rp routerProps
		if err := decodeBase64JSON(raw, &rp); err != nil {
			a.log.Warn("malformed routerProps query parameter, falling back to root",
				slog.String("url", fullRequestURL(r)),
				slog.String("error", err.Error()))
		} else {
			d.basePath = rp.BasePath
			rel, ok := relativePath(rp.BasePath, rp.ReqURL)
			if !ok {
				a.log.Warn("request url is not nested under the base path, falling back to root",
					slog.String("base_path", rp.BasePath),
					slog.String("req_url", rp.ReqURL))
			}
			d.requestURL = "/" + rel
		}
	}

	if raw := query.Get(ParamAppProps); raw != "" {
		var props Props
		if err := decodeBase64JSON(raw, &props); err != nil {
			a.log.Warn("malformed appProps query parameter, using empty props",
				slog.String("url", fullRequestURL(r)),
				slog.String("error", err.Error()))
		} else if props != nil {
			d.props = props
		}
	}

	return d
}

// decodeBase64JSON decodes a base64 string and unmarshals the resulting
// bytes into dest.
func decodeBase64JSON(raw string, dest any) error {
	data, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dest)
}

// relativePath computes the path of target relative to base, treating both
// as absolute URL paths. A query string on target is preserved verbatim.
// Returns ok=false when target is not nested under base; the caller decides
// the fallback.
func relativePath(base, target string) (string, bool) {
	target, rawQuery, hasQuery := strings.Cut(target, "?")

	cleanBase := path.Clean("/" + base)
	cleanTarget := path.Clean("/" + target)

	var rel string
	switch {
	case cleanTarget == cleanBase:
		rel = ""
	case cleanBase == "/":
		rel = strings.TrimPrefix(cleanTarget, "/")
	case strings.HasPrefix(cleanTarget, cleanBase+"/"):
		rel = cleanTarget[len(cleanBase)+1:]
	default:
		return "", false
	}

	if hasQuery {
		rel += "?" + rawQuery
	}
	return rel, true
}

// fullRequestURL reconstructs the requested URL from the request's declared
// host and URI, for use in warning messages.
func fullRequestURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host + r.RequestURI
}
