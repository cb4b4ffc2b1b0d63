// Package ingest validates incoming offer batches before they are
// committed to the store and region index.
package ingest

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"carnav-core/internal/offer"
)

// RegionValidator reports whether a region id names an existing node.
type RegionValidator func(id uint8) bool

// ValidateBatch validates every offer in the batch concurrently (parsing
// and range-checking are independent per offer and CPU-bound) and
// returns the index of the first invalid offer in batch order, or -1 if
// all offers are valid. The caller is responsible for committing only
// the offers that precede the first invalid one, per the batch's
// non-transactional partial-failure policy.
func ValidateBatch(offers []offer.Offer, validRegion RegionValidator) (int, error) {
	errs := make([]error, len(offers))

	var g errgroup.Group
	for i := range offers {
		i := i
		g.Go(func() error {
			errs[i] = validateOne(&offers[i], validRegion)
			return nil
		})
	}
	_ = g.Wait()

	for i, err := range errs {
		if err != nil {
			return i, err
		}
	}
	return -1, nil
}

func validateOne(o *offer.Offer, validRegion RegionValidator) error {
	if len(o.ID) != 36 {
		return fmt.Errorf("id must be 36 characters, got %d", len(o.ID))
	}
	if len(o.Data) > 256 {
		return fmt.Errorf("data exceeds 256 bytes")
	}
	if !validRegion(o.MostSpecificRegion) {
		return fmt.Errorf("unknown region %d", o.MostSpecificRegion)
	}
	if o.EndDate <= o.StartDate {
		return fmt.Errorf("endDate must be after startDate")
	}
	if !o.CarType.Valid() {
		return fmt.Errorf("invalid carType %q", o.CarType)
	}
	return nil
}
