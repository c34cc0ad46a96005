// Package giturl decides when a typed query is really a repository
// reference, and normalizes it into a cloneable URL.
package giturl

import (
	"net/url"
	"regexp"
	"strings"
)

// ForgeHost is the hosting domain whose URLs trigger clone behavior.
const ForgeHost = "github.com"

// shorthandPattern accepts owner/repo, github.com/owner/repo, and either
// with a trailing path. A plain local name containing a single slash also
// matches; that false positive is accepted for compatibility.
var shorthandPattern = regexp.MustCompile(`^(github\.com/)?[\w\-\.]+/[\w\-\.]+(/.*)?$`)

// IsRepoRef reports whether input should be treated as a repository
// reference rather than a project name.
func IsRepoRef(input string) bool {
	if u, err := url.Parse(input); err == nil && u.IsAbs() && u.Host == ForgeHost {
		return true
	}
	return shorthandPattern.MatchString(input) && !strings.Contains(input, " ")
}

// Normalize expands shorthand references into a full https URL. Full URLs
// pass through unchanged.
func Normalize(input string) string {
	switch {
	case strings.HasPrefix(input, "http"):
		return input
	case strings.HasPrefix(input, ForgeHost+"/"):
		return "https://" + input
	default:
		return "https://" + ForgeHost + "/" + input
	}
}

// RepoName extracts the repository name from a normalized URL: the second
// path segment with any trailing .git stripped. If the URL cannot be
// parsed, the text after the last slash is used instead.
func RepoName(rawURL string) string {
	if u, err := url.Parse(rawURL); err == nil && u.IsAbs() && u.Host != "" {
		parts := strings.Split(strings.TrimPrefix(u.Path, "/"), "/")
		if len(parts) >= 2 {
			return strings.TrimSuffix(parts[1], ".git")
		}
	}

	tail := rawURL
	if idx := strings.LastIndex(rawURL, "/"); idx >= 0 {
		tail = rawURL[idx+1:]
	}
	return strings.TrimSuffix(tail, ".git")
}
