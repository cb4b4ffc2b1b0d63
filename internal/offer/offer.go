// Package offer defines the domain record shared by the store, region
// index, and query engine.
package offer

// CarType is the category of a rental car.
type CarType string

const (
	Small  CarType = "small"
	Sports CarType = "sports"
	Luxury CarType = "luxury"
	Family CarType = "family"
)

// Valid reports whether c is one of the known car types.
func (c CarType) Valid() bool {
	switch c {
	case Small, Sports, Luxury, Family:
		return true
	default:
		return false
	}
}

// MillisPerDay is the number of milliseconds in a rental duration day.
const MillisPerDay = 86_400_000

// Offer is the authoritative payload record, owned by the dense store.
// It is immutable once appended.
type Offer struct {
	Idx                uint32
	ID                 string
	Data               string
	MostSpecificRegion uint8
	StartDate          uint64
	EndDate            uint64
	NumberSeats        uint32
	Price              uint32
	CarType            CarType
	HasVollkasko       bool
	FreeKilometers     uint32
}

// DurationDays returns the offer's rental length in whole days, the key
// used by the region index's secondary duration map.
func (o *Offer) DurationDays() uint64 {
	return (o.EndDate - o.StartDate) / MillisPerDay
}
