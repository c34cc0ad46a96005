package giturl

import "testing"

func TestIsRepoRef(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"shorthand", "octocat/Hello-World", true},
		{"domain prefix", "github.com/octocat/Hello-World", true},
		{"full url", "https://github.com/octocat/Hello-World", true},
		{"full url with .git", "https://github.com/foo/bar.git", true},
		{"trailing path", "octocat/Hello-World/tree/main", true},
		{"other host url", "https://example.com/foo/bar", false},
		{"plain name", "my-project", false},
		{"contains space", "my project/notes", false},
		{"empty", "", false},
		// Known false positive: a local name with one slash parses as
		// owner/repo shorthand.
		{"ambiguous local name", "docs/site", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRepoRef(tt.input); got != tt.want {
				t.Errorf("IsRepoRef(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"shorthand", "octocat/Hello-World", "https://github.com/octocat/Hello-World"},
		{"domain prefix", "github.com/user/repo", "https://github.com/user/repo"},
		{"https passthrough", "https://github.com/user/repo", "https://github.com/user/repo"},
		{"http passthrough", "http://github.com/user/repo", "http://github.com/user/repo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRepoName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"normalized shorthand", Normalize("octocat/Hello-World"), "Hello-World"},
		{"dot git suffix", "https://github.com/foo/bar.git", "bar"},
		{"trailing path ignored", "https://github.com/foo/bar/tree/main", "bar"},
		{"unparseable falls back to tail", "weird/thing.git", "thing"},
		{"no slash at all", "solo", "solo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RepoName(tt.input); got != tt.want {
				t.Errorf("RepoName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
