package remote

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	entryPolicyOnce sync.Once
	entryPolicy     *bluemonday.Policy
)

// cleanEntries keeps string entries, stripped of markup and whitespace.
// Entries that end up empty are dropped.
func cleanEntries(raw []any) []string {
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		s, ok := v.(string)
		if !ok {
			continue
		}
		if cleaned := sanitizeEntry(s); cleaned != "" {
			out = append(out, cleaned)
		}
	}
	return out
}

func sanitizeEntry(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	// the policy escapes text; entries are plain values, not markup
	return strings.TrimSpace(html.UnescapeString(entrySanitizer().Sanitize(trimmed)))
}

func entrySanitizer() *bluemonday.Policy {
	entryPolicyOnce.Do(func() {
		entryPolicy = bluemonday.StrictPolicy()
	})
	return entryPolicy
}
