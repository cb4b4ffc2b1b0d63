// Package query implements the region-hierarchy lookup, single-pass
// faceted search, and pagination that together form the read path, plus
// the batch ingest and purge operations that keep the shared state
// consistent with it.
package query

import "carnav-core/internal/offer"

// SortOrder selects ascending or descending price ordering for the
// returned offer page.
type SortOrder string

const (
	PriceAsc  SortOrder = "price-asc"
	PriceDesc SortOrder = "price-desc"
)

// Valid reports whether s is a known sort order.
func (s SortOrder) Valid() bool {
	return s == PriceAsc || s == PriceDesc
}

// Request is a validated search request against the offer index.
type Request struct {
	RegionID        uint8
	TimeRangeStart  uint64
	TimeRangeEnd    uint64
	NumberDays      uint64
	Page            int
	PageSize        int
	PriceRangeWidth uint32
	MinKmWidth      uint32
	SortOrder       SortOrder

	MinNumberSeats   *uint32
	CarType          *offer.CarType
	OnlyVollkasko    *bool
	MinFreeKilometer *uint32
	MinPrice         *uint32
	MaxPrice         *uint32
}

// OfferSummary is the client-facing payload for one matched offer.
type OfferSummary struct {
	ID   string
	Data string
}

// Bucket is one aligned histogram bucket: the half-open interval
// [Start, Start+width) and the number of offers falling into it.
type Bucket struct {
	Start uint64
	End   uint64
	Count int
}

// CarTypeCounts is the car-type facet.
type CarTypeCounts struct {
	Small  int
	Sports int
	Luxury int
	Family int
}

// SeatCount is one entry of the seat-count facet.
type SeatCount struct {
	NumberSeats uint32
	Count       int
}

// VollkaskoCount is the full-cover-insurance facet.
type VollkaskoCount struct {
	TrueCount  int
	FalseCount int
}

// Response is the full result of a search: the paginated offer window
// plus the five aggregate facets.
type Response struct {
	Offers             []OfferSummary
	PriceRanges        []Bucket
	CarTypeCounts      CarTypeCounts
	SeatsCount         []SeatCount
	FreeKilometerRange []Bucket
	VollkaskoCount     VollkaskoCount
}
