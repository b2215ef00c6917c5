// Package sanitizer provides bluemonday policies for head metadata markup.
//
// Fragments hand the composer already-serialized meta-tag markup, which the
// composer injects into the page head. When that markup originates from
// untrusted input (CMS content, user profiles), sanitize it before
// encoding:
//
//	a := adapter.New(
//		adapter.WithMetaSanitizer(sanitizer.SanitizeMeta),
//	)
//
// SanitizeMeta keeps meta, link, and title elements with their standard
// attributes and strips everything else, including scripts and event
// handlers.
package sanitizer
