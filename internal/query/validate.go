package query

import "carnav-core/internal/apperr"

// Validate checks the request against the constraints spec'd for the
// query engine's inputs. It does not consult the region index (region
// existence is checked by the engine, which owns that state).
func (r *Request) Validate() error {
	if r.TimeRangeStart >= r.TimeRangeEnd {
		return apperr.BadRequestf("timeRangeStart must be before timeRangeEnd")
	}
	if r.NumberDays < 1 {
		return apperr.BadRequestf("numberDays must be >= 1")
	}
	if r.Page < 0 {
		return apperr.BadRequestf("page must be >= 0")
	}
	if r.PageSize < 1 {
		return apperr.BadRequestf("pageSize must be >= 1")
	}
	if r.PriceRangeWidth < 1 {
		return apperr.BadRequestf("priceRangeWidth must be >= 1")
	}
	if r.MinKmWidth < 1 {
		return apperr.BadRequestf("minFreeKilometerWidth must be >= 1")
	}
	if !r.SortOrder.Valid() {
		return apperr.BadRequestf("sortOrder must be price-asc or price-desc")
	}
	if r.CarType != nil && !r.CarType.Valid() {
		return apperr.BadRequestf("carType %q is not a known car type", *r.CarType)
	}
	if r.MinPrice != nil && r.MaxPrice != nil && *r.MinPrice >= *r.MaxPrice {
		return apperr.BadRequestf("minPrice must be less than maxPrice")
	}
	return nil
}
