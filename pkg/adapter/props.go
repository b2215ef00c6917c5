package adapter

// Props is the open-ended key-value payload the composer passes to a
// fragment. Values hold whatever encoding/json produces for the underlying
// JSON: nil, bool, float64, string, []any, or map[string]any.
type Props map[string]any

// String returns the string value stored under key, or "" when the key is
// absent or holds a non-string value.
func (p Props) String(key string) string {
	v, ok := p[key].(string)
	if !ok {
		return ""
	}
	return v
}

// Bool returns the bool value stored under key, or false when the key is
// absent or holds a non-bool value.
func (p Props) Bool(key string) bool {
	v, ok := p[key].(bool)
	return ok && v
}
