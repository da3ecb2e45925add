package store

import (
	"path/filepath"
	"reflect"
	"testing"
)

func newTestCache(t *testing.T) *BoltCache {
	t.Helper()
	s, err := NewBoltCache(filepath.Join(t.TempDir(), "tokens.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestBoltCache_GetPut(t *testing.T) {
	s := newTestCache(t)

	if _, hit := s.Get("这是测试"); hit {
		t.Error("expected miss on empty cache")
	}

	s.Put("这是测试", []string{"这", "是", "测试"})
	tokens, hit := s.Get("这是测试")
	if !hit {
		t.Fatal("expected hit after Put")
	}
	if !reflect.DeepEqual(tokens, []string{"这", "是", "测试"}) {
		t.Errorf("unexpected tokens: %v", tokens)
	}
}

func TestBoltCache_CountAndClear(t *testing.T) {
	s := newTestCache(t)

	s.Put("a", []string{"a"})
	s.Put("b", []string{"b"})

	count, err := s.Count()
	if err != nil {
		t.Fatal(err)
	}
	if count != 2 {
		t.Errorf("expected 2 entries, got %d", count)
	}

	if err := s.Clear(); err != nil {
		t.Fatal(err)
	}
	count, err = s.Count()
	if err != nil {
		t.Fatal(err)
	}
	if count != 0 {
		t.Errorf("expected empty cache after Clear, got %d", count)
	}
}

func TestBoltCache_PersistsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokens.db")

	s, err := NewBoltCache(path)
	if err != nil {
		t.Fatal(err)
	}
	s.Put("持久化", []string{"持久", "化"})
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	s, err = NewBoltCache(path)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	tokens, hit := s.Get("持久化")
	if !hit {
		t.Fatal("expected entry to survive reopen")
	}
	if !reflect.DeepEqual(tokens, []string{"持久", "化"}) {
		t.Errorf("unexpected tokens: %v", tokens)
	}
}
