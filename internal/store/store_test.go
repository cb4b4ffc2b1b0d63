package store

import (
	"testing"

	"carnav-core/internal/offer"
)

func TestStore_AppendAssignsSequentialIdx(t *testing.T) {
	s := New()
	i0 := s.Append(offer.Offer{ID: "a"})
	i1 := s.Append(offer.Offer{ID: "b"})
	if i0 != 0 || i1 != 1 {
		t.Fatalf("got idx %d, %d, want 0, 1", i0, i1)
	}
	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}
	if got := s.Get(0).ID; got != "a" {
		t.Errorf("Get(0).ID = %q, want %q", got, "a")
	}
	if got := s.Get(1).ID; got != "b" {
		t.Errorf("Get(1).ID = %q, want %q", got, "b")
	}
}

func TestStore_Clear(t *testing.T) {
	s := New()
	s.Append(offer.Offer{ID: "a"})
	s.Clear()
	if s.Len() != 0 {
		t.Fatalf("Len() after Clear = %d, want 0", s.Len())
	}
	i := s.Append(offer.Offer{ID: "b"})
	if i != 0 {
		t.Fatalf("Append after Clear got idx %d, want 0", i)
	}
}
