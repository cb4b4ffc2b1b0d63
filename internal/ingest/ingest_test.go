package ingest

import (
	"testing"

	"github.com/google/uuid"

	"carnav-core/internal/offer"
)

func validID(suffix byte) string {
	id := []byte("00000000-0000-0000-0000-000000000000")
	id[len(id)-1] = suffix
	return string(id)
}

func validOffer(id string) offer.Offer {
	return offer.Offer{
		ID:             id,
		Data:           "opaque",
		StartDate:      1000,
		EndDate:        2000,
		NumberSeats:    4,
		Price:          100,
		FreeKilometers: 50,
		CarType:        offer.Small,
	}
}

func allValid(uint8) bool { return true }
func noneValid(uint8) bool { return false }

func TestValidateBatch_AllValid(t *testing.T) {
	batch := []offer.Offer{validOffer(uuid.NewString()), validOffer(uuid.NewString())}
	idx, err := ValidateBatch(batch, allValid)
	if idx != -1 || err != nil {
		t.Fatalf("ValidateBatch() = (%d, %v), want (-1, nil)", idx, err)
	}
}

func TestValidateBatch_FirstInvalidIndexPreserved(t *testing.T) {
	batch := []offer.Offer{
		validOffer(validID('0')),
		validOffer("too-short"),
		validOffer(validID('2')),
	}
	idx, err := ValidateBatch(batch, allValid)
	if idx != 1 || err == nil {
		t.Fatalf("ValidateBatch() = (%d, %v), want (1, non-nil)", idx, err)
	}
}

func TestValidateBatch_UnknownRegion(t *testing.T) {
	batch := []offer.Offer{validOffer(validID('0'))}
	idx, err := ValidateBatch(batch, noneValid)
	if idx != 0 || err == nil {
		t.Fatalf("ValidateBatch() = (%d, %v), want (0, non-nil)", idx, err)
	}
}

func TestValidateBatch_EndBeforeStart(t *testing.T) {
	o := validOffer(validID('0'))
	o.EndDate = o.StartDate
	idx, err := ValidateBatch([]offer.Offer{o}, allValid)
	if idx != 0 || err == nil {
		t.Fatalf("ValidateBatch() = (%d, %v), want (0, non-nil) for non-positive duration", idx, err)
	}
}

func TestValidateBatch_InvalidCarType(t *testing.T) {
	o := validOffer(validID('0'))
	o.CarType = offer.CarType("suv")
	idx, err := ValidateBatch([]offer.Offer{o}, allValid)
	if idx != 0 || err == nil {
		t.Fatalf("ValidateBatch() = (%d, %v), want (0, non-nil) for invalid carType", idx, err)
	}
}
