package query

import (
	"carnav-core/internal/apperr"
	"carnav-core/internal/ingest"
	"carnav-core/internal/offer"
	"carnav-core/internal/region"
)

// Ingest validates the batch concurrently, then commits offers in order
// up to (but not including) the first invalid one under the write
// guards, region index first. It returns the number of offers actually
// committed and, if the batch was truncated, a BadRequest error
// describing the first malformed offer. Earlier, successfully committed
// offers are not rolled back — ingest is not transactional across a
// batch.
func (e *Engine) Ingest(offers []offer.Offer) (int, error) {
	firstBad, verr := ingest.ValidateBatch(offers, e.region.Valid)

	n := len(offers)
	if firstBad >= 0 {
		n = firstBad
	}

	e.regionMu.Lock()
	defer e.regionMu.Unlock()
	e.storeMu.Lock()
	defer e.storeMu.Unlock()

	for i := 0; i < n; i++ {
		o := offers[i]
		idx := e.store.Append(o)
		e.region.Insert(o.MostSpecificRegion, o.DurationDays(), region.Entry{
			StartDate: o.StartDate,
			EndDate:   o.EndDate,
			Idx:       idx,
		})
	}

	if firstBad >= 0 {
		return n, apperr.BadRequestf("offer %d: %v", firstBad, verr)
	}
	return n, nil
}
