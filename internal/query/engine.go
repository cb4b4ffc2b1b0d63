package query

import (
	"sync"

	"carnav-core/internal/apperr"
	"carnav-core/internal/offer"
	"carnav-core/internal/region"
	"carnav-core/internal/store"
)

// Engine owns the two read-write-guarded resources — the region index
// and the dense offer store — and exposes the three operations that
// touch them: Query (read-only), Ingest, and Purge (both exclusive).
// Both guards are always acquired region-then-store, in that order, to
// prevent deadlock between concurrent ingest/purge/query calls.
type Engine struct {
	regionMu sync.RWMutex
	storeMu  sync.RWMutex

	region *region.Index
	store  *store.Store
}

// New builds an Engine with an empty store over the static region
// hierarchy.
func New() *Engine {
	return &Engine{
		region: region.New(),
		store:  store.New(),
	}
}

const (
	axisSeats = iota
	axisCarType
	axisVollkasko
	axisFreeKm
	axisPrice
	axisCount
)

// Query resolves req against the current generation of offers. It never
// mutates shared state and only ever holds read guards.
func (e *Engine) Query(req Request) (Response, error) {
	if err := req.Validate(); err != nil {
		return Response{}, err
	}

	e.regionMu.RLock()
	defer e.regionMu.RUnlock()
	e.storeMu.RLock()
	defer e.storeMu.RUnlock()

	if !e.region.Valid(req.RegionID) {
		return Response{}, apperr.BadRequestf("regionID %d does not exist", req.RegionID)
	}

	agg := newAggregator()
	window := newPageWindow((req.Page + 1) * req.PageSize)

	e.region.Candidates(req.RegionID, req.NumberDays, req.TimeRangeStart, req.TimeRangeEnd, func(entry region.Entry) {
		o := e.store.Get(entry.Idx)
		e.considerOffer(req, agg, window, o)
	})

	return agg.buildResponse(req, window), nil
}

// considerOffer evaluates the five optional predicates against o,
// classifies it by how many predicates it fails, and folds it into the
// aggregator and/or the page window.
func (e *Engine) considerOffer(req Request, agg *aggregator, window *pageWindow, o *offer.Offer) {
	var incl [axisCount]bool
	incl[axisSeats] = req.MinNumberSeats == nil || o.NumberSeats >= *req.MinNumberSeats
	incl[axisCarType] = req.CarType == nil || o.CarType == *req.CarType
	incl[axisVollkasko] = req.OnlyVollkasko == nil || o.HasVollkasko == *req.OnlyVollkasko
	incl[axisFreeKm] = req.MinFreeKilometer == nil || o.FreeKilometers >= *req.MinFreeKilometer
	incl[axisPrice] = (req.MinPrice == nil || o.Price >= *req.MinPrice) &&
		(req.MaxPrice == nil || o.Price < *req.MaxPrice)

	falseCount := 0
	falseAxis := -1
	for axis, ok := range incl {
		if !ok {
			falseCount++
			falseAxis = axis
		}
	}
	if falseCount >= 2 {
		return
	}
	included := falseCount == 0

	countsFor := func(axis int) bool {
		return included || falseAxis == axis
	}

	if countsFor(axisSeats) {
		agg.seats[o.NumberSeats]++
	}
	if countsFor(axisCarType) {
		agg.addCarType(o.CarType)
	}
	if countsFor(axisVollkasko) {
		agg.addVollkasko(o.HasVollkasko)
	}
	if countsFor(axisFreeKm) {
		agg.addBucket(&agg.freeKm, req.MinKmWidth, o.FreeKilometers)
	}
	if countsFor(axisPrice) {
		agg.addBucket(&agg.price, req.PriceRangeWidth, o.Price)
	}

	if included {
		window.offer(pageItem{
			sortKey: sortKey(req.SortOrder, o.Price),
			id:      o.ID,
			data:    o.Data,
		})
	}
}
