package storage

import (
	"path/filepath"
	"testing"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := NewMemoryStore()

	if _, ok, err := s.Get("missing"); ok || err != nil {
		t.Fatalf("Get missing = ok=%v err=%v", ok, err)
	}
	if err := s.Set("users", []byte(`[]`)); err != nil {
		t.Fatal(err)
	}
	data, ok, err := s.Get("users")
	if err != nil || !ok || string(data) != `[]` {
		t.Fatalf("Get = %q ok=%v err=%v", data, ok, err)
	}
	if err := s.Delete("users"); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := s.Get("users"); ok {
		t.Error("key survived delete")
	}
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kv.db")
	s, err := NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()

	if err := s.Set("current_user", []byte(`{"id":"1"}`)); err != nil {
		t.Fatal(err)
	}
	// Overwrite through the upsert path.
	if err := s.Set("current_user", []byte(`{"id":"2"}`)); err != nil {
		t.Fatal(err)
	}
	data, ok, err := s.Get("current_user")
	if err != nil || !ok {
		t.Fatalf("Get = ok=%v err=%v", ok, err)
	}
	if string(data) != `{"id":"2"}` {
		t.Errorf("Get = %q, want latest write", data)
	}
}
