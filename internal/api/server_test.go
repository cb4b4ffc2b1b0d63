package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHandleRoot(t *testing.T) {
	s := New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "carnav-core") {
		t.Errorf("body = %q, want to contain carnav-core", w.Body.String())
	}
}

func TestHandleHealth(t *testing.T) {
	s := New()
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if strings.TrimSpace(w.Body.String()) != "ok" {
		t.Errorf("body = %q, want ok", w.Body.String())
	}
}

func TestIngestThenQuery_RoundTrip(t *testing.T) {
	s := New()

	body := `{"offers":[{"ID":"11111111-1111-1111-1111-111111111111","data":"x","mostSpecificRegionID":58,"startDate":0,"endDate":86400000,"numberSeats":4,"price":100,"carType":"small","hasVollkasko":true,"freeKilometers":50}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/offers", strings.NewReader(body))
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("POST /api/offers status = %d, body = %q", w.Code, w.Body.String())
	}

	q := "/api/offers?regionID=58&timeRangeStart=0&timeRangeEnd=86400000&numberDays=1" +
		"&page=0&pageSize=10&priceRangeWidth=10&minFreeKilometerWidth=10&sortOrder=price-asc"
	getReq := httptest.NewRequest(http.MethodGet, q, nil)
	getW := httptest.NewRecorder()
	s.Handler().ServeHTTP(getW, getReq)
	if getW.Code != http.StatusOK {
		t.Fatalf("GET /api/offers status = %d, body = %q", getW.Code, getW.Body.String())
	}
	if !strings.Contains(getW.Body.String(), "11111111-1111-1111-1111-111111111111") {
		t.Errorf("GET /api/offers body = %q, want ingested offer present", getW.Body.String())
	}
}

func TestUnknownRoute_404(t *testing.T) {
	s := New()
	req := httptest.NewRequest(http.MethodGet, "/api/nonsense", nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestGetOffers_MissingRequiredParam(t *testing.T) {
	s := New()
	req := httptest.NewRequest(http.MethodGet, "/api/offers?regionID=58", nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	ct := w.Header().Get("Content-Type")
	if !strings.HasPrefix(ct, "text/plain") {
		t.Errorf("Content-Type = %q, want text/plain (errors are never JSON)", ct)
	}
}

func TestDeleteOffers_ClearsStore(t *testing.T) {
	s := New()

	body := `{"offers":[{"ID":"22222222-2222-2222-2222-222222222222","data":"x","mostSpecificRegionID":58,"startDate":0,"endDate":86400000,"numberSeats":4,"price":100,"carType":"small","hasVollkasko":true,"freeKilometers":50}]}`
	postReq := httptest.NewRequest(http.MethodPost, "/api/offers", strings.NewReader(body))
	postW := httptest.NewRecorder()
	s.Handler().ServeHTTP(postW, postReq)
	if postW.Code != http.StatusOK {
		t.Fatalf("POST /api/offers status = %d", postW.Code)
	}

	delReq := httptest.NewRequest(http.MethodDelete, "/api/offers", nil)
	delW := httptest.NewRecorder()
	s.Handler().ServeHTTP(delW, delReq)
	if delW.Code != http.StatusOK {
		t.Fatalf("DELETE /api/offers status = %d", delW.Code)
	}

	q := "/api/offers?regionID=58&timeRangeStart=0&timeRangeEnd=86400000&numberDays=1" +
		"&page=0&pageSize=10&priceRangeWidth=10&minFreeKilometerWidth=10&sortOrder=price-asc"
	getReq := httptest.NewRequest(http.MethodGet, q, nil)
	getW := httptest.NewRecorder()
	s.Handler().ServeHTTP(getW, getReq)
	if strings.Contains(getW.Body.String(), "22222222-2222-2222-2222-222222222222") {
		t.Errorf("GET /api/offers after DELETE still returned purged offer: %q", getW.Body.String())
	}
}
