package platform

import (
	"path/filepath"
	"runtime"
	"strings"
)

// NormalizePath cleans a path for the current platform. Discovery and pattern
// translation both work on the normalized form so that glob results and the
// capturing expression agree (e.g. "./dir/*.txt" becomes "dir/*.txt").
func NormalizePath(path string) string {
	normalized := filepath.Clean(path)

	// On Windows, ensure UNC paths are preserved
	if runtime.GOOS == "windows" {
		if strings.HasPrefix(path, "\\\\") && !strings.HasPrefix(normalized, "\\\\") {
			normalized = "\\\\" + normalized
		}
	}

	return normalized
}

// IsUNCPath checks if a path is a UNC path (Windows network share)
func IsUNCPath(path string) bool {
	if runtime.GOOS != "windows" {
		return false
	}
	return strings.HasPrefix(path, "\\\\") || strings.HasPrefix(path, "//")
}

// EscapeGlob escapes glob metacharacters other than '*' so that only '*' acts
// as a wildcard. filepath.Match has no escape character on Windows, where
// '\' is the separator; brackets and '?' are rejected there by ValidatePath.
//
// The glob engine looks path components up literally until the first one
// holding '*', '?' or '['; only that component and the ones after it are
// matched as patterns and get escaped. ']' is literal outside a character
// class and is left alone.
func EscapeGlob(pattern string) string {
	if runtime.GOOS == "windows" {
		return pattern
	}

	segments := strings.Split(pattern, string(filepath.Separator))
	matched := false
	for i, segment := range segments {
		if !matched && !strings.ContainsAny(segment, "*?[") {
			continue
		}
		matched = true

		var b strings.Builder
		for _, r := range segment {
			switch r {
			case '?', '[', '\\':
				b.WriteByte('\\')
			}
			b.WriteRune(r)
		}
		segments[i] = b.String()
	}
	return strings.Join(segments, string(filepath.Separator))
}

// TemplateDir returns the parent directory of a target template, or "." when
// the template has no directory part
func TemplateDir(template string) string {
	return filepath.Dir(template)
}

// ValidatePath checks if a path is valid for the current platform
func ValidatePath(path string) error {
	if path == "" {
		return &PathError{Path: path, Message: "path is empty"}
	}

	if strings.ContainsRune(path, 0) {
		return &PathError{Path: path, Message: "path contains a NUL byte"}
	}

	// Check for invalid characters based on OS
	if runtime.GOOS == "windows" {
		invalidChars := []string{"<", ">", "\"", "|", "?", "[", "]"}
		for _, char := range invalidChars {
			if strings.Contains(path, char) && !IsUNCPath(path) {
				return &PathError{Path: path, Message: "path contains invalid character: " + char}
			}
		}
	}

	return nil
}

// PathError represents a path validation error
type PathError struct {
	Path    string
	Message string
}

func (e *PathError) Error() string {
	return "invalid path '" + e.Path + "': " + e.Message
}
