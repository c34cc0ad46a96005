package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/LFroesch/spark/internal/logger"
)

func TestMain(m *testing.M) {
	logger.Disable()
	os.Exit(m.Run())
}

func TestLoadDefaultsWhenMissing(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg := Load()

	if cfg.ProjectsPath == "" {
		t.Error("default ProjectsPath not set")
	}
	if !strings.HasSuffix(cfg.ProjectsPath, filepath.Join("src", "spark")) {
		t.Errorf("unexpected default ProjectsPath: %s", cfg.ProjectsPath)
	}
	if cfg.DefaultEditor != "code" {
		t.Errorf("default editor = %q, want %q", cfg.DefaultEditor, "code")
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg := &Config{
		ProjectsPath:  "/projects/here",
		DefaultEditor: "nvim",
	}
	if err := Save(cfg); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	loaded := Load()
	if loaded.ProjectsPath != cfg.ProjectsPath {
		t.Errorf("ProjectsPath mismatch: got %s, want %s", loaded.ProjectsPath, cfg.ProjectsPath)
	}
	if loaded.DefaultEditor != cfg.DefaultEditor {
		t.Errorf("DefaultEditor mismatch: got %s, want %s", loaded.DefaultEditor, cfg.DefaultEditor)
	}

	// No leftover temp file from the atomic write.
	configPath, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() failed: %v", err)
	}
	if _, err := os.Stat(configPath + ".tmp"); !os.IsNotExist(err) {
		t.Error("temp file left behind after Save")
	}
}

func TestLoadIgnoresUnknownKeysAndComments(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	configPath, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() failed: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		t.Fatal(err)
	}

	content := `# a comment
projects_path = "/tmp/work"

some_future_key = 42
not a key value line
default_editor = vim
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := Load()
	if cfg.ProjectsPath != "/tmp/work" {
		t.Errorf("ProjectsPath = %q, want %q", cfg.ProjectsPath, "/tmp/work")
	}
	if cfg.DefaultEditor != "vim" {
		t.Errorf("DefaultEditor = %q, want %q", cfg.DefaultEditor, "vim")
	}
}

func TestProjectsPathEnvOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("SPARK_PATH", "/env/projects")

	got := ProjectsPath(&Config{ProjectsPath: "/from/config"})
	if got != "/env/projects" {
		t.Errorf("ProjectsPath = %q, want env override %q", got, "/env/projects")
	}
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"tilde only", "~", home},
		{"tilde slash", "~/src", filepath.Join(home, "src")},
		{"absolute untouched", "/var/tmp", "/var/tmp"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExpandPath(tt.in); got != tt.want {
				t.Errorf("ExpandPath(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
