package testutil

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// TempSite is a throwaway blog checkout with a content directory
type TempSite struct {
	Path string
	T    *testing.T
}

// NewTempSite creates an empty site in a temp dir
func NewTempSite(t *testing.T) *TempSite {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "postkit-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}

	return &TempSite{
		Path: tmpDir,
		T:    t,
	}
}

// Cleanup removes the temporary site
func (s *TempSite) Cleanup() {
	s.T.Helper()
	if err := os.RemoveAll(s.Path); err != nil {
		s.T.Errorf("failed to cleanup temp site: %v", err)
	}
}

// Chdir switches the working directory into the site until the test ends
func (s *TempSite) Chdir() {
	s.T.Helper()

	oldWd, err := os.Getwd()
	if err != nil {
		s.T.Fatalf("failed to get working directory: %v", err)
	}
	if err := os.Chdir(s.Path); err != nil {
		s.T.Fatalf("failed to chdir: %v", err)
	}
	s.T.Cleanup(func() { os.Chdir(oldWd) })
}

// InitGit turns the site into a git repository with one commit
func (s *TempSite) InitGit() {
	s.T.Helper()

	s.git("init")
	s.git("config", "user.name", "Test User")
	s.git("config", "user.email", "test@example.com")
	s.CreateFile("README.md", "# Test Site\n")
	s.git("add", ".")
	s.git("commit", "-m", "Initial commit")
}

func (s *TempSite) git(args ...string) {
	s.T.Helper()

	cmd := exec.Command("git", args...)
	cmd.Dir = s.Path
	if output, err := cmd.CombinedOutput(); err != nil {
		s.T.Fatalf("git %v failed: %v\n%s", args, err, output)
	}
}

// CreateFile creates a file in the site
func (s *TempSite) CreateFile(name, content string) {
	s.T.Helper()
	path := filepath.Join(s.Path, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		s.T.Fatalf("failed to create directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		s.T.Fatalf("failed to create file: %v", err)
	}
}

// ReadFile returns the content of a file in the site
func (s *TempSite) ReadFile(name string) string {
	s.T.Helper()
	content, err := os.ReadFile(filepath.Join(s.Path, name))
	if err != nil {
		s.T.Fatalf("failed to read %s: %v", name, err)
	}
	return string(content)
}

// FileExists checks if a file exists in the site
func (s *TempSite) FileExists(name string) bool {
	s.T.Helper()
	_, err := os.Stat(filepath.Join(s.Path, name))
	return err == nil
}

// ListDir returns the entry names of a directory in the site
func (s *TempSite) ListDir(name string) []string {
	s.T.Helper()
	entries, err := os.ReadDir(filepath.Join(s.Path, name))
	if err != nil {
		s.T.Fatalf("failed to read dir %s: %v", name, err)
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}
