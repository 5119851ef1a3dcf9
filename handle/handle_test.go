package handle

import (
	"sync"
	"testing"
)

func TestShared_Lifecycle(t *testing.T) {
	t.Parallel()

	v := "payload"
	s := NewShared(&v)

	if s.Refs() != 1 {
		t.Fatalf("expected 1 owner after construction, got %d", s.Refs())
	}
	if got := s.Get(); got == nil || *got != "payload" {
		t.Fatalf("expected payload, got %v", got)
	}

	if s.Acquire() != s {
		t.Fatal("Acquire did not return the same cell")
	}
	if s.Refs() != 2 {
		t.Fatalf("expected 2 owners after Acquire, got %d", s.Refs())
	}

	if s.Release() {
		t.Fatal("first Release should not detach with an owner remaining")
	}
	if s.Get() == nil {
		t.Fatal("value detached while an owner remains")
	}

	if !s.Release() {
		t.Fatal("final Release should detach")
	}
	if s.Get() != nil {
		t.Fatal("expected nil value after final Release")
	}

	// Further operations are defined no-ops.
	if s.Release() {
		t.Fatal("Release after detach should be a no-op")
	}
	if s.Acquire() != nil {
		t.Fatal("Acquire after detach should return nil")
	}
}

func TestShared_NilSafety(t *testing.T) {
	t.Parallel()

	var s *Shared[int]
	if s.Get() != nil {
		t.Fatal("expected nil value from nil cell")
	}
	if s.Acquire() != nil {
		t.Fatal("expected nil from Acquire on nil cell")
	}
	if s.Release() {
		t.Fatal("expected no-op Release on nil cell")
	}
	if s.Refs() != 0 {
		t.Fatal("expected zero owners on nil cell")
	}
}

func TestShared_ConcurrentReads(t *testing.T) {
	t.Parallel()

	v := 42
	s := NewShared(&v)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				if got := s.Get(); got == nil || *got != 42 {
					t.Error("unexpected value during concurrent read")
					return
				}
			}
		}()
	}
	wg.Wait()

	if !s.Release() {
		t.Fatal("expected final Release to detach")
	}
}
