package output

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dist", "tokens.css")

	changed, err := WriteFile(path, []byte("a"))
	if err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if !changed {
		t.Error("first write should report a change")
	}

	past := time.Now().Add(-time.Hour)
	if err := os.Chtimes(path, past, past); err != nil {
		t.Fatal(err)
	}

	changed, err = WriteFile(path, []byte("a"))
	if err != nil {
		t.Fatal(err)
	}
	if changed {
		t.Error("identical content should not be rewritten")
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if !info.ModTime().Equal(past) {
		t.Errorf("mtime changed to %v", info.ModTime())
	}

	changed, err = WriteFile(path, []byte("b"))
	if err != nil {
		t.Fatal(err)
	}
	if !changed {
		t.Error("new content should be written")
	}
	got, _ := os.ReadFile(path)
	if string(got) != "b" {
		t.Errorf("content = %q, want b", got)
	}
}

func TestWriteFile_ParentIsFile(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "dist")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := WriteFile(filepath.Join(blocker, "tokens.css"), []byte("a")); err == nil {
		t.Error("expected error when parent is a file")
	}
}

func TestDigest(t *testing.T) {
	if Digest([]byte("a")) == Digest([]byte("b")) {
		t.Error("different content should have different digests")
	}
	if len(Digest(nil)) != 16 {
		t.Errorf("digest length = %d, want 16", len(Digest(nil)))
	}
}
