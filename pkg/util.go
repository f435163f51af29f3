package pkg

import (
	"fmt"
	"net/url"
	"path"
	"reflect"
	"strings"
)

// RemoveEmptyProperties returns a copy of the mapping without keys whose
// values are nil or empty containers. Non-container primitives are always
// kept, so 0, "" and false survive.
func RemoveEmptyProperties(properties map[string]any) map[string]any {
	pruned := make(map[string]any, len(properties))
	for key, value := range properties {
		if isEmptyValue(value) {
			continue
		}
		pruned[key] = value
	}
	return pruned
}

func isEmptyValue(value any) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Map, reflect.Slice, reflect.Array:
		return v.Len() == 0
	}
	return false
}

// MergeKeyValues shallow-merges the mappings left to right, later entries
// winning on key collision.
func MergeKeyValues(mappings []map[string]any) map[string]any {
	merged := make(map[string]any)
	for _, mapping := range mappings {
		for key, value := range mapping {
			merged[key] = value
		}
	}
	return merged
}

// GetFileNameFromHTTP extracts the last path segment of a URL without its
// extension, e.g. "https://host/repo.git" -> "repo".
func GetFileNameFromHTTP(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	base := path.Base(parsed.Path)
	if base == "." || base == "/" {
		return ""
	}
	return strings.TrimSuffix(base, path.Ext(base))
}

func GetHostNameFromURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return parsed.Hostname()
}

func GetPortFromURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return parsed.Port()
}

// AddPrefix prepends prefix unless the value already carries it.
func AddPrefix(value, prefix string) string {
	if strings.HasPrefix(value, prefix) {
		return value
	}
	return prefix + value
}

func RemovePrefix(value, prefix string) string {
	return strings.TrimPrefix(value, prefix)
}

// RemovePathPrefix strips a leading path prefix plus any separator left
// behind, e.g. ("/a/b/c", "/a/") -> "b/c".
func RemovePathPrefix(value, prefix string) string {
	return strings.TrimPrefix(strings.TrimPrefix(value, prefix), "/")
}

// CreateUniqueName returns the first "prefix_N" (N counting up from
// startIndex) absent from usedNames, and N+1 for the next call.
func CreateUniqueName(usedNames []string, prefix string, startIndex int) (string, int) {
	used := make(map[string]struct{}, len(usedNames))
	for _, name := range usedNames {
		used[name] = struct{}{}
	}
	index := startIndex
	for {
		candidate := fmt.Sprintf("%s_%d", prefix, index)
		index++
		if _, taken := used[candidate]; !taken {
			return candidate, index
		}
	}
}
