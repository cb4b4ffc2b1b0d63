package api

import (
	"encoding/json"
	"net/http"

	"carnav-core/internal/apperr"
	"carnav-core/internal/logger"
	"carnav-core/internal/offer"
)

type postOffersBody struct {
	Offers []wireOffer `json:"offers"`
}

func (s *Server) handlePostOffers(w http.ResponseWriter, r *http.Request) {
	var body postOffersBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, apperr.BadRequestf("invalid JSON body"))
		return
	}

	offers := make([]offer.Offer, len(body.Offers))
	for i, wo := range body.Offers {
		offers[i] = wo.toOffer()
	}

	n, err := s.engine.Ingest(offers)
	if err != nil {
		writeErr(w, err)
		return
	}

	logger.Stats("offers ingested", n)
	writeText(w, http.StatusOK, "")
}

func (s *Server) handleGetOffers(w http.ResponseWriter, r *http.Request) {
	req, err := parseQuery(r.URL.Query())
	if err != nil {
		writeErr(w, err)
		return
	}

	resp, err := s.engine.Query(req)
	if err != nil {
		writeErr(w, err)
		return
	}

	writeJSON(w, toWireResponse(resp))
}

func (s *Server) handleDeleteOffers(w http.ResponseWriter, r *http.Request) {
	s.engine.Purge()
	writeText(w, http.StatusOK, "")
}
