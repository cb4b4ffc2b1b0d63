package api

import (
	"net/url"
	"strconv"

	"carnav-core/internal/apperr"
	"carnav-core/internal/offer"
	"carnav-core/internal/query"
)

// parseQuery decodes the GET /api/offers query string into a
// query.Request. Apart from the 0..124 bound on regionID, range and
// cross-field checks (e.g. minPrice < maxPrice) are left to
// query.Request.Validate; otherwise this function only turns strings
// into the right Go types and reports missing required parameters.
func parseQuery(v url.Values) (query.Request, error) {
	var req query.Request

	regionID, err := requireUint(v, "regionID", 8)
	if err != nil {
		return req, err
	}
	if regionID > 124 {
		return req, apperr.BadRequestf("regionID must be in 0..124")
	}
	req.RegionID = uint8(regionID)

	if req.TimeRangeStart, err = requireUint(v, "timeRangeStart", 64); err != nil {
		return req, err
	}
	if req.TimeRangeEnd, err = requireUint(v, "timeRangeEnd", 64); err != nil {
		return req, err
	}
	if req.NumberDays, err = requireUint(v, "numberDays", 64); err != nil {
		return req, err
	}

	page, err := requireUint(v, "page", 64)
	if err != nil {
		return req, err
	}
	req.Page = int(page)

	pageSize, err := requireUint(v, "pageSize", 64)
	if err != nil {
		return req, err
	}
	req.PageSize = int(pageSize)

	width, err := requireUint(v, "priceRangeWidth", 32)
	if err != nil {
		return req, err
	}
	req.PriceRangeWidth = uint32(width)

	kmWidth, err := requireUint(v, "minFreeKilometerWidth", 32)
	if err != nil {
		return req, err
	}
	req.MinKmWidth = uint32(kmWidth)

	sortOrder := v.Get("sortOrder")
	if sortOrder == "" {
		return req, apperr.BadRequestf("sortOrder is required")
	}
	req.SortOrder = query.SortOrder(sortOrder)

	if req.MinNumberSeats, err = optUint(v, "minNumberSeats", 32); err != nil {
		return req, err
	}
	if req.MinPrice, err = optUint(v, "minPrice", 32); err != nil {
		return req, err
	}
	if req.MaxPrice, err = optUint(v, "maxPrice", 32); err != nil {
		return req, err
	}
	if req.MinFreeKilometer, err = optUint(v, "minFreeKilometer", 32); err != nil {
		return req, err
	}

	if ct := v.Get("carType"); ct != "" {
		c := offer.CarType(ct)
		req.CarType = &c
	}

	if ov := v.Get("onlyVollkasko"); ov != "" {
		b, err := strconv.ParseBool(ov)
		if err != nil {
			return req, apperr.BadRequestf("onlyVollkasko must be a boolean")
		}
		req.OnlyVollkasko = &b
	}

	return req, nil
}

func requireUint(v url.Values, key string, bits int) (uint64, error) {
	s := v.Get(key)
	if s == "" {
		return 0, apperr.BadRequestf("%s is required", key)
	}
	n, err := strconv.ParseUint(s, 10, bits)
	if err != nil {
		return 0, apperr.BadRequestf("%s must be an unsigned integer", key)
	}
	return n, nil
}

func optUint(v url.Values, key string, bits int) (*uint32, error) {
	s := v.Get(key)
	if s == "" {
		return nil, nil
	}
	n, err := strconv.ParseUint(s, 10, bits)
	if err != nil {
		return nil, apperr.BadRequestf("%s must be an unsigned integer", key)
	}
	u := uint32(n)
	return &u, nil
}
