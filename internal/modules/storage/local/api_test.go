package local

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestSave(t *testing.T) {
	t.Run("creates missing directories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "assets", "nested", "out.png")
		want := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a}
		if err := Save(want, path); err != nil {
			t.Fatalf("save failed: %v", err)
		}
		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read back failed: %v", err)
		}
		if !bytes.Equal(got, want) {
			t.Fatalf("content mismatch: got %v want %v", got, want)
		}
	})

	t.Run("overwrites existing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.png")
		if err := Save([]byte("first version, longer"), path); err != nil {
			t.Fatal(err)
		}
		if err := Save([]byte("second"), path); err != nil {
			t.Fatal(err)
		}
		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if string(got) != "second" {
			t.Fatalf("expected truncating overwrite, got %q", got)
		}
	})
}
