package session

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestFileVisibilityStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "columns.yaml")
	store := NewFileVisibilityStore(path)

	columns := []string{"name", "age", "address.city"}
	if err := store.Save(columns); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if !reflect.DeepEqual(got, columns) {
		t.Errorf("expected %v, got %v", columns, got)
	}
}

func TestFileVisibilityStoreMissingFile(t *testing.T) {
	store := NewFileVisibilityStore(filepath.Join(t.TempDir(), "never-saved.yaml"))

	got, err := store.Load()
	if err != nil {
		t.Fatalf("load of a missing file should not fail: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil (everything visible), got %v", got)
	}
}

func TestFileVisibilityStoreLoadUnderMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "columns.yaml")

	got, err := NewFileVisibilityStore(path).Load()
	if err != nil {
		t.Fatalf("load under a fresh directory should not fail: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil (everything visible), got %v", got)
	}
}

func TestFileVisibilityStoreCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "columns.yaml")
	store := NewFileVisibilityStore(path)

	if err := store.Save([]string{"a"}); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %v", err)
	}
}

func TestFileVisibilityStoreOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "columns.yaml")
	store := NewFileVisibilityStore(path)

	if err := store.Save([]string{"a", "b"}); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if err := store.Save([]string{"c"}); err != nil {
		t.Fatalf("second save failed: %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"c"}) {
		t.Errorf("expected the second set to replace the first, got %v", got)
	}
}

func TestFileVisibilityStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "columns.yaml")
	if err := os.WriteFile(path, []byte("columns: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := NewFileVisibilityStore(path).Load()
	if err == nil {
		t.Fatal("expected an error for malformed YAML")
	}
	if !strings.Contains(err.Error(), "parse column visibility") {
		t.Errorf("unexpected error: %v", err)
	}
}
