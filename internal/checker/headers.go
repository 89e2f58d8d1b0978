package checker

import (
	"net/http"
	"sort"
	"strings"
)

// HeaderMap holds response headers for one crawled page, keyed by header
// name in whatever casing the upstream collector delivered. Lookups go
// through Find; the map itself is treated as immutable.
type HeaderMap map[string]string

// Find returns the value stored under name, matching the header name
// case-insensitively. The second return reports whether any matching
// key exists. When several keys collide case-insensitively, the
// lexicographically smallest key wins so repeated lookups stay
// deterministic regardless of map iteration order.
func (h HeaderMap) Find(name string) (string, bool) {
	if h == nil {
		return "", false
	}
	if v, ok := h[name]; ok {
		return v, true
	}
	if v, ok := h[http.CanonicalHeaderKey(name)]; ok {
		return v, true
	}
	lower := strings.ToLower(name)
	if v, ok := h[lower]; ok {
		return v, true
	}

	var keys []string
	for k := range h {
		if strings.ToLower(k) == lower {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return "", false
	}
	sort.Strings(keys)
	return h[keys[0]], true
}
