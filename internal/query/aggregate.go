package query

import (
	"sort"

	"carnav-core/internal/offer"
)

// aggregator accumulates the five facet counters inline during a single
// pass over candidates, alongside the page-window heap maintained by the
// caller.
type aggregator struct {
	seats     map[uint32]int
	carType   CarTypeCounts
	vollkasko VollkaskoCount
	price     map[uint64]int
	freeKm    map[uint64]int
}

func newAggregator() *aggregator {
	return &aggregator{
		seats:  make(map[uint32]int),
		price:  make(map[uint64]int),
		freeKm: make(map[uint64]int),
	}
}

func (a *aggregator) addCarType(c offer.CarType) {
	switch c {
	case offer.Small:
		a.carType.Small++
	case offer.Sports:
		a.carType.Sports++
	case offer.Luxury:
		a.carType.Luxury++
	case offer.Family:
		a.carType.Family++
	}
}

func (a *aggregator) addVollkasko(has bool) {
	if has {
		a.vollkasko.TrueCount++
	} else {
		a.vollkasko.FalseCount++
	}
}

// addBucket increments the floor-aligned bucket of value in m, bucketed
// by width. The lower bound is always floor(value/width)*width, so
// buckets are deterministic and aligned regardless of the first
// observed value.
func (a *aggregator) addBucket(m *map[uint64]int, width uint32, value uint32) {
	lower := uint64(value/width) * uint64(width)
	(*m)[lower]++
}

// buildResponse drains the page window and sorts every facet map into
// the ascending-by-lower-bound sequences the response requires.
func (a *aggregator) buildResponse(req Request, window *pageWindow) Response {
	resp := Response{
		CarTypeCounts:  a.carType,
		VollkaskoCount: a.vollkasko,
	}

	resp.PriceRanges = sortedBuckets(a.price, req.PriceRangeWidth)
	resp.FreeKilometerRange = sortedBuckets(a.freeKm, req.MinKmWidth)

	seatKeys := make([]uint32, 0, len(a.seats))
	for k := range a.seats {
		seatKeys = append(seatKeys, k)
	}
	sort.Slice(seatKeys, func(i, j int) bool { return seatKeys[i] < seatKeys[j] })
	resp.SeatsCount = make([]SeatCount, 0, len(seatKeys))
	for _, k := range seatKeys {
		resp.SeatsCount = append(resp.SeatsCount, SeatCount{NumberSeats: k, Count: a.seats[k]})
	}

	items := window.drain()
	skip := req.Page * req.PageSize
	if skip > len(items) {
		skip = len(items)
	}
	end := skip + req.PageSize
	if end > len(items) {
		end = len(items)
	}
	resp.Offers = make([]OfferSummary, 0, end-skip)
	for _, it := range items[skip:end] {
		resp.Offers = append(resp.Offers, OfferSummary{ID: it.id, Data: it.data})
	}

	return resp
}

func sortedBuckets(m map[uint64]int, width uint32) []Bucket {
	keys := make([]uint64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	out := make([]Bucket, 0, len(keys))
	for _, k := range keys {
		out = append(out, Bucket{Start: k, End: k + uint64(width), Count: m[k]})
	}
	return out
}
