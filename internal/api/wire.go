package api

import (
	"carnav-core/internal/offer"
	"carnav-core/internal/query"
)

// wireOffer is the JSON shape of one offer in the POST /api/offers body.
type wireOffer struct {
	ID                   string `json:"ID"`
	Data                 string `json:"data"`
	MostSpecificRegionID uint8  `json:"mostSpecificRegionID"`
	StartDate            uint64 `json:"startDate"`
	EndDate              uint64 `json:"endDate"`
	NumberSeats          uint32 `json:"numberSeats"`
	Price                uint32 `json:"price"`
	CarType              string `json:"carType"`
	HasVollkasko         bool   `json:"hasVollkasko"`
	FreeKilometers       uint32 `json:"freeKilometers"`
}

func (w wireOffer) toOffer() offer.Offer {
	return offer.Offer{
		ID:                 w.ID,
		Data:               w.Data,
		MostSpecificRegion: w.MostSpecificRegionID,
		StartDate:          w.StartDate,
		EndDate:            w.EndDate,
		NumberSeats:        w.NumberSeats,
		Price:              w.Price,
		CarType:            offer.CarType(w.CarType),
		HasVollkasko:       w.HasVollkasko,
		FreeKilometers:     w.FreeKilometers,
	}
}

// wireOfferSummary is the JSON shape of one offer in a GET /api/offers
// response.
type wireOfferSummary struct {
	ID   string `json:"ID"`
	Data string `json:"data"`
}

type wireBucket struct {
	Start uint64 `json:"start"`
	End   uint64 `json:"end"`
	Count int    `json:"count"`
}

type wireCarTypeCounts struct {
	Small  int `json:"small"`
	Sports int `json:"sports"`
	Luxury int `json:"luxury"`
	Family int `json:"family"`
}

type wireSeatCount struct {
	NumberSeats uint32 `json:"numberSeats"`
	Count       int    `json:"count"`
}

type wireVollkaskoCount struct {
	TrueCount  int `json:"trueCount"`
	FalseCount int `json:"falseCount"`
}

type wireResponse struct {
	Offers             []wireOfferSummary `json:"offers"`
	PriceRanges        []wireBucket       `json:"priceRanges"`
	CarTypeCounts      wireCarTypeCounts  `json:"carTypeCounts"`
	SeatsCount         []wireSeatCount    `json:"seatsCount"`
	FreeKilometerRange []wireBucket       `json:"freeKilometerRange"`
	VollkaskoCount     wireVollkaskoCount `json:"vollkaskoCount"`
}

func toWireResponse(r query.Response) wireResponse {
	out := wireResponse{
		CarTypeCounts: wireCarTypeCounts{
			Small:  r.CarTypeCounts.Small,
			Sports: r.CarTypeCounts.Sports,
			Luxury: r.CarTypeCounts.Luxury,
			Family: r.CarTypeCounts.Family,
		},
		VollkaskoCount: wireVollkaskoCount{
			TrueCount:  r.VollkaskoCount.TrueCount,
			FalseCount: r.VollkaskoCount.FalseCount,
		},
	}

	out.Offers = make([]wireOfferSummary, len(r.Offers))
	for i, o := range r.Offers {
		out.Offers[i] = wireOfferSummary{ID: o.ID, Data: o.Data}
	}

	out.PriceRanges = toWireBuckets(r.PriceRanges)
	out.FreeKilometerRange = toWireBuckets(r.FreeKilometerRange)

	out.SeatsCount = make([]wireSeatCount, len(r.SeatsCount))
	for i, s := range r.SeatsCount {
		out.SeatsCount[i] = wireSeatCount{NumberSeats: s.NumberSeats, Count: s.Count}
	}

	return out
}

func toWireBuckets(buckets []query.Bucket) []wireBucket {
	out := make([]wireBucket, len(buckets))
	for i, b := range buckets {
		out[i] = wireBucket{Start: b.Start, End: b.End, Count: b.Count}
	}
	return out
}
