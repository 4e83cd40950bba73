package git

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
}

func initRepo(t *testing.T, dir string) *Client {
	t.Helper()
	ctx := context.Background()
	client := NewClient(dir, nil)
	for _, args := range [][]string{
		{"init"},
		{"config", "user.email", "test@example.com"},
		{"config", "user.name", "Test"},
		{"config", "commit.gpgsign", "false"},
	} {
		if _, err := client.Run(ctx, args...); err != nil {
			t.Fatalf("git %v: %v", args, err)
		}
	}
	return client
}

func TestClient_Lock(t *testing.T) {
	tmpDir := t.TempDir()
	client := NewClient(tmpDir, nil)

	unlock, err := client.Lock(context.Background())
	if err != nil {
		t.Fatalf("Failed to acquire lock: %v", err)
	}

	lockPath := filepath.Join(tmpDir, LockFile)
	if _, err := os.Stat(lockPath); os.IsNotExist(err) {
		t.Error("Lock file not created")
	}

	t.Run("Contention Respects Context", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		if _, err := client.Lock(ctx); err == nil {
			t.Error("expected second Lock to fail while held")
		}
	})

	unlock()

	if _, err := os.Stat(lockPath); !os.IsNotExist(err) {
		t.Error("Lock file not removed after unlock")
	}
}

func TestClient_Commit(t *testing.T) {
	requireGit(t)
	ctx := context.Background()

	tmpDir := t.TempDir()
	client := initRepo(t, tmpDir)

	if !client.IsRepo(ctx) {
		t.Fatal("expected IsRepo to be true after init")
	}

	post := filepath.Join(tmpDir, "hello.md")
	other := filepath.Join(tmpDir, "other.md")
	for _, p := range []string{post, other} {
		if err := os.WriteFile(p, []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	if err := client.Commit(ctx, post, "docs(blog): draft hello"); err != nil {
		t.Fatalf("Commit failed: %v", err)
	}

	log, err := client.Run(ctx, "log", "--format=%s")
	if err != nil {
		t.Fatal(err)
	}
	if log != "docs(blog): draft hello" {
		t.Errorf("unexpected log: %q", log)
	}

	status, err := client.Run(ctx, "status", "--porcelain")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(status, "other.md") || strings.Contains(status, "hello.md") {
		t.Errorf("only hello.md should be committed, status: %q", status)
	}

	if _, err := os.Stat(filepath.Join(tmpDir, LockFile)); !os.IsNotExist(err) {
		t.Error("lock file left behind")
	}
}
