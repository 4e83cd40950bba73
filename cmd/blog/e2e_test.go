package main

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// buildBlogBinary builds the CLI into dir and returns its path.
func buildBlogBinary(t *testing.T, dir string) string {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping binary build in short mode")
	}
	if _, err := exec.LookPath("go"); err != nil {
		t.Skip("go toolchain not on PATH")
	}
	bin := filepath.Join(dir, "blog.exe")
	buildCmd := exec.Command("go", "build", "-o", bin, ".")
	if out, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build blog: %v\n%s", err, string(out))
	}
	return bin
}

// runBlog runs the binary in dir and returns stdout, stderr and the exit code.
func runBlog(t *testing.T, bin, dir string, args ...string) (string, string, int) {
	t.Helper()
	cmd := exec.Command(bin, args...)
	cmd.Dir = dir
	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return stdout.String(), stderr.String(), 0
	case errors.As(err, &exitErr):
		return stdout.String(), stderr.String(), exitErr.ExitCode()
	default:
		t.Fatalf("failed to run blog: %v", err)
		return "", "", -1
	}
}

func TestCLIExitCodes(t *testing.T) {
	bin := buildBlogBinary(t, t.TempDir())
	site := t.TempDir()
	if err := os.WriteFile(filepath.Join(site, "package.json"), []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}

	t.Run("Unreadable Directory", func(t *testing.T) {
		_, stderr, code := runBlog(t, bin, site, "list-drafts")
		if code != 1 {
			t.Errorf("expected exit 1, got %d", code)
		}
		if !strings.Contains(stderr, "Error reading blog directory") {
			t.Errorf("unexpected stderr: %q", stderr)
		}
	})

	if _, _, code := runBlog(t, bin, site, "init"); code != 0 {
		t.Fatalf("init exited %d", code)
	}

	t.Run("No Posts Exits Zero", func(t *testing.T) {
		stdout, _, code := runBlog(t, bin, site, "list-drafts")
		if code != 0 || stdout != "No blog posts found.\n" {
			t.Errorf("got code %d, stdout %q", code, stdout)
		}
	})

	t.Run("Missing Title", func(t *testing.T) {
		_, stderr, code := runBlog(t, bin, site, "new-post")
		if code != 1 {
			t.Errorf("expected exit 1, got %d", code)
		}
		if !strings.Contains(stderr, "Please provide a post title") {
			t.Errorf("unexpected stderr: %q", stderr)
		}
	})

	t.Run("Create Then Conflict", func(t *testing.T) {
		stdout, _, code := runBlog(t, bin, site, "new-post", "Hello", "World")
		if code != 0 {
			t.Fatalf("expected exit 0, got %d", code)
		}
		if !strings.Contains(stdout, "🔗 Slug: hello-world") {
			t.Errorf("unexpected stdout: %q", stdout)
		}

		path := filepath.Join(site, "src", "content", "blog", "hello-world.md")
		before, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}

		_, stderr, code := runBlog(t, bin, site, "new-post", "hello world")
		if code != 1 {
			t.Errorf("expected exit 1, got %d", code)
		}
		if !strings.Contains(stderr, "already exists") {
			t.Errorf("unexpected stderr: %q", stderr)
		}

		after, _ := os.ReadFile(path)
		if string(before) != string(after) {
			t.Error("existing post was modified")
		}
	})

	t.Run("Check Accepts Scaffolded Draft", func(t *testing.T) {
		// The template leaves description empty, which the schema allows.
		stdout, _, code := runBlog(t, bin, site, "check")
		if code != 0 {
			t.Errorf("expected exit 0, got %d: %q", code, stdout)
		}
		if !strings.Contains(stdout, "all valid") {
			t.Errorf("unexpected stdout: %q", stdout)
		}
	})

	t.Run("Check Fails On Missing Description", func(t *testing.T) {
		path := filepath.Join(site, "src", "content", "blog", "broken.md")
		if err := os.WriteFile(path, []byte("---\ntitle: Broken\npubDate: 2025-01-01\n---\n"), 0644); err != nil {
			t.Fatal(err)
		}
		defer os.Remove(path)

		stdout, _, code := runBlog(t, bin, site, "check")
		if code != 1 {
			t.Errorf("expected exit 1, got %d", code)
		}
		if !strings.Contains(stdout, "description is required") {
			t.Errorf("unexpected stdout: %q", stdout)
		}
	})

	t.Run("Missing Template", func(t *testing.T) {
		_, stderr, code := runBlog(t, bin, site, "--template", "nope.md", "new-post", "Other")
		if code != 1 {
			t.Errorf("expected exit 1, got %d", code)
		}
		if !strings.Contains(stderr, "could not read template") {
			t.Errorf("unexpected stderr: %q", stderr)
		}
	})
}
