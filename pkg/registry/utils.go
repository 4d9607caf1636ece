package registry

import (
	"fmt"
	"strconv"
	"strings"
)

// normalizeKey is the INDEX key form: surrounding whitespace removed
func normalizeKey(s string) string {
	return strings.TrimSpace(s)
}

// normalizeName is the NAME key and search query form
func normalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// containsFold reports whether the lowercased value contains an
// already-lowercased query
func containsFold(value, lowerQuery string) bool {
	return strings.Contains(strings.ToLower(value), lowerQuery)
}

// keyString converts a caller-supplied key to its string form
func keyString(key interface{}) string {
	switch v := key.(type) {
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case int8:
		return strconv.FormatInt(int64(v), 10)
	case int16:
		return strconv.FormatInt(int64(v), 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case uint8:
		return strconv.FormatUint(uint64(v), 10)
	case uint16:
		return strconv.FormatUint(uint64(v), 10)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case fmt.Stringer:
		return v.String()
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}
