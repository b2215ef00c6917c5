package sanitizer

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	metaPolicy *bluemonday.Policy
	initOnce   sync.Once
)

func initPolicies() {
	initOnce.Do(func() {
		metaPolicy = bluemonday.NewPolicy()
		metaPolicy.AllowStandardURLs()
		metaPolicy.AllowElements("title")
		metaPolicy.AllowAttrs("name", "content", "property", "charset", "http-equiv").
			OnElements("meta")
		metaPolicy.AllowAttrs("rel", "href", "as", "type", "media", "sizes", "crossorigin", "hreflang").
			OnElements("link")
	})
}

// SanitizeMeta strips everything that is not head metadata markup.
// Meta, link, and title elements survive with their standard attributes;
// scripts, event handlers, and javascript: URLs do not.
func SanitizeMeta(s string) string {
	initPolicies()
	return metaPolicy.Sanitize(s)
}

// SanitizeMetaCustom applies a custom bluemonday policy.
// Returns input unchanged if policy is nil.
func SanitizeMetaCustom(s string, policy *bluemonday.Policy) string {
	if policy == nil {
		return s
	}
	return policy.Sanitize(s)
}
