package adapter

import "strings"

// BuildLinkHeader renders an AppAssets manifest as a single comma-joined
// Link header value: stylesheet first, then the entry script, then shared
// dependencies in slice order.
func BuildLinkHeader(assets AppAssets, publicPath string) string {
	entries := make([]string, 0, 2+len(assets.Dependencies))

	if assets.CSSBundle != "" {
		entries = append(entries,
			"<"+resolveAssetURL(assets.CSSBundle, publicPath)+`>; rel="`+relStylesheet+`"`)
	}
	if assets.SPABundle != "" {
		entries = append(entries,
			"<"+resolveAssetURL(assets.SPABundle, publicPath)+`>; rel="`+relFragmentScript+`"; as="script"; crossorigin="anonymous"`)
	}
	for _, dep := range assets.Dependencies {
		entries = append(entries,
			"<"+resolveAssetURL(dep.URL, publicPath)+`>; rel="`+relFragmentDependency+`"; name="`+dep.Name+`"`)
	}

	return strings.Join(entries, ",")
}

// resolveAssetURL leaves absolute http(s) URLs untouched and joins anything
// else onto the public path.
func resolveAssetURL(raw, publicPath string) string {
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		return raw
	}
	if publicPath == "" {
		publicPath = "/"
	}
	return joinURL(publicPath, raw)
}

// joinURL joins a path onto a base URL or base path with exactly one slash
// between them. Unlike url.ResolveReference it never drops the last segment
// of the base.
func joinURL(base, p string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(p, "/")
}
