package message

import "strings"

// Headers is a case-insensitive header map. Keys are lower-cased on both
// insertion and lookup; setting the same key twice keeps the last value.
type Headers map[string]string

// Set stores value under the normalized key.
func (h Headers) Set(key, value string) {
	h[strings.ToLower(key)] = value
}

// Get returns the value for the key, or the empty string if absent.
func (h Headers) Get(key string) string {
	return h[strings.ToLower(key)]
}

// Has reports whether the key is present.
func (h Headers) Has(key string) bool {
	_, ok := h[strings.ToLower(key)]
	return ok
}

// Clone returns a copy of the headers.
func (h Headers) Clone() Headers {
	out := make(Headers, len(h))
	for k, v := range h {
		out[k] = v
	}
	return out
}
