// Package store owns the dense, append-only vector of offer records.
package store

import "carnav-core/internal/offer"

// Store is an append-only vector of offers, indexed by a stable 32-bit
// position. It is not safe for concurrent use; callers (internal/query)
// hold the appropriate RWMutex around Append/Get/Clear.
type Store struct {
	offers []offer.Offer
}

// New returns an empty Store.
func New() *Store {
	return &Store{}
}

// Append adds o to the store and returns the idx it was assigned,
// which equals its position (len-1 after the append).
func (s *Store) Append(o offer.Offer) uint32 {
	idx := uint32(len(s.offers))
	o.Idx = idx
	s.offers = append(s.offers, o)
	return idx
}

// Get returns a pointer to the offer at idx. idx must be valid for the
// current generation; an out-of-range idx is a programming fault.
func (s *Store) Get(idx uint32) *offer.Offer {
	return &s.offers[idx]
}

// Len returns the number of offers in the current generation.
func (s *Store) Len() int {
	return len(s.offers)
}

// Clear empties the store; the next Append restarts indexes at 0.
func (s *Store) Clear() {
	s.offers = nil
}
