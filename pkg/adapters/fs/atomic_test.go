package fs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteFileExclusive(t *testing.T) {
	t.Run("Creates New File", func(t *testing.T) {
		tmpDir := t.TempDir()
		filename := filepath.Join(tmpDir, "test.md")
		content := []byte("hello exclusive")

		if err := writeFileExclusive(filename, content, 0644); err != nil {
			t.Fatalf("writeFileExclusive failed: %v", err)
		}

		got, err := os.ReadFile(filename)
		if err != nil {
			t.Fatalf("Failed to read file: %v", err)
		}
		if string(got) != string(content) {
			t.Errorf("Expected content 'hello exclusive', got '%s'", string(got))
		}
	})

	t.Run("Refuses Existing File", func(t *testing.T) {
		tmpDir := t.TempDir()
		filename := filepath.Join(tmpDir, "test.md")

		if err := os.WriteFile(filename, []byte("initial"), 0644); err != nil {
			t.Fatalf("Setup failed: %v", err)
		}

		err := writeFileExclusive(filename, []byte("overwritten"), 0644)
		if !os.IsExist(err) {
			t.Fatalf("Expected an exists error, got %v", err)
		}

		got, _ := os.ReadFile(filename)
		if string(got) != "initial" {
			t.Errorf("Existing file was modified: %q", got)
		}
	})

	t.Run("Leaves No Temp Files", func(t *testing.T) {
		tmpDir := t.TempDir()
		filename := filepath.Join(tmpDir, "test.md")

		if err := writeFileExclusive(filename, []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
		_ = writeFileExclusive(filename, []byte("y"), 0644)

		entries, err := os.ReadDir(tmpDir)
		if err != nil {
			t.Fatal(err)
		}
		for _, e := range entries {
			if strings.HasPrefix(e.Name(), TempFilePrefix) {
				t.Errorf("temp file left behind: %s", e.Name())
			}
		}
		if len(entries) != 1 {
			t.Errorf("expected 1 entry, got %d", len(entries))
		}
	})

	t.Run("Fails if Directory Missing", func(t *testing.T) {
		tmpDir := t.TempDir()
		filename := filepath.Join(tmpDir, "missing_folder", "test.md")

		err := writeFileExclusive(filename, []byte("fail"), 0644)
		if err == nil {
			t.Error("Expected error when directory is missing, got nil")
		}
	})
}
