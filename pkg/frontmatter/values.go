package frontmatter

import (
	"fmt"
	"strings"
)

var (
	truthyTokens = map[string]bool{"true": true, "1": true, "yes": true, "on": true}
	falsyTokens  = map[string]bool{"false": true, "0": true, "no": true, "off": true}
)

// ParseBool interprets common truthy and falsy tokens. The second result is
// false when value is not a bool or a recognized token.
func ParseBool(value any) (bool, bool) {
	switch v := value.(type) {
	case bool:
		return v, true
	case string:
		normalized := strings.ToLower(strings.TrimSpace(v))
		if truthyTokens[normalized] {
			return true, true
		}
		if falsyTokens[normalized] {
			return false, true
		}
	}
	return false, false
}

// NormalizeStringList turns an array or a comma-separated string into an
// ordered list of trimmed, non-empty strings. Duplicates are kept. Null
// array elements are dropped rather than rendered as "null". Any other input
// yields an empty list.
func NormalizeStringList(value any) []string {
	out := []string{}

	switch v := value.(type) {
	case []any:
		for _, item := range v {
			if item == nil {
				continue
			}
			s, ok := scalarString(item)
			if !ok {
				s = fmt.Sprint(item)
			}
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
	case []string:
		for _, item := range v {
			if s := strings.TrimSpace(item); s != "" {
				out = append(out, s)
			}
		}
	case string:
		for _, segment := range strings.Split(v, ",") {
			if s := strings.TrimSpace(segment); s != "" {
				out = append(out, s)
			}
		}
	}

	return out
}
