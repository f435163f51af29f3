package pkg

import (
	"testing"

	"github.com/rocktavious/autopilot/v2023"
)

func TestRemoveEmptyProperties(t *testing.T) {
	// Arrange
	properties := map[string]any{
		"a": []string{},
		"b": nil,
		"c": 0,
		"d": "x",
		"e": map[string]any{},
	}
	// Act
	pruned := RemoveEmptyProperties(properties)
	// Assert
	autopilot.Equals(t, map[string]any{"c": 0, "d": "x"}, pruned)
}

func TestRemoveEmptyPropertiesKeepsFalsyPrimitives(t *testing.T) {
	// Arrange
	properties := map[string]any{
		"zero":  0,
		"blank": "",
		"off":   false,
	}
	// Act
	pruned := RemoveEmptyProperties(properties)
	// Assert
	autopilot.Equals(t, 3, len(pruned))
}

func TestMergeKeyValues(t *testing.T) {
	// Arrange
	mappings := []map[string]any{
		{"a": 1, "b": 2},
		{"b": 3, "c": 4},
		{"c": 5},
	}
	// Act
	merged := MergeKeyValues(mappings)
	// Assert
	autopilot.Equals(t, map[string]any{"a": 1, "b": 3, "c": 5}, merged)
}

func TestGetFileNameFromHTTP(t *testing.T) {
	// Act
	repo := GetFileNameFromHTTP("https://host/repo.git")
	nested := GetFileNameFromHTTP("https://host/a/b/data.tar.gz")
	bare := GetFileNameFromHTTP("https://host/")
	// Assert
	autopilot.Equals(t, "repo", repo)
	autopilot.Equals(t, "data.tar", nested)
	autopilot.Equals(t, "", bare)
}

func TestGetHostNameAndPortFromURL(t *testing.T) {
	// Act
	host := GetHostNameFromURL("http://storage.example.com:8080/api")
	port := GetPortFromURL("http://storage.example.com:8080/api")
	noPort := GetPortFromURL("http://storage.example.com/api")
	// Assert
	autopilot.Equals(t, "storage.example.com", host)
	autopilot.Equals(t, "8080", port)
	autopilot.Equals(t, "", noPort)
}

func TestPrefixHelpers(t *testing.T) {
	// Act
	added := AddPrefix("data", "pai_")
	already := AddPrefix("pai_data", "pai_")
	removed := RemovePrefix("pai_data", "pai_")
	pathTrimmed := RemovePathPrefix("/a/b/c", "/a/")
	pathTrimmedNoSlash := RemovePathPrefix("/a/b/c", "/a")
	// Assert
	autopilot.Equals(t, "pai_data", added)
	autopilot.Equals(t, "pai_data", already)
	autopilot.Equals(t, "data", removed)
	autopilot.Equals(t, "b/c", pathTrimmed)
	autopilot.Equals(t, "b/c", pathTrimmedNoSlash)
}

func TestCreateUniqueName(t *testing.T) {
	// Act
	first, next1 := CreateUniqueName([]string{}, "task", 0)
	second, next2 := CreateUniqueName([]string{"task_0", "task_1"}, "task", 0)
	chained, next3 := CreateUniqueName([]string{"task_0", "task_1"}, "task", next2)
	// Assert
	autopilot.Equals(t, "task_0", first)
	autopilot.Equals(t, 1, next1)
	autopilot.Equals(t, "task_2", second)
	autopilot.Equals(t, 3, next2)
	autopilot.Equals(t, "task_3", chained)
	autopilot.Equals(t, 4, next3)
}
