package html

import (
	"sort"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	helperPolicyOnce sync.Once
	helperPolicy     *bluemonday.Policy
)

// sanitizeHelperText strips everything but basic inline markup from helper
// text and markdown block values. Template authors routinely paste HTML into
// descriptions; the preview must not become an injection vector.
func sanitizeHelperText(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	policy := helperSanitizer()
	return strings.TrimSpace(policy.Sanitize(trimmed))
}

func helperSanitizer() *bluemonday.Policy {
	helperPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements("a", "b", "strong", "i", "em", "code", "br", "p", "ul", "ol", "li")
		policy.AllowAttrs("href").OnElements("a")
		policy.RequireNoFollowOnLinks(true)
		helperPolicy = policy
	})
	return helperPolicy
}

func cssVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, key := range keys {
		if b.Len() > 0 {
			b.WriteString(" ")
		}
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(vars[key])
		b.WriteString(";")
	}
	return b.String()
}
