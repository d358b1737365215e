package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidOffer is returned when an offer fails validation.
var ErrInvalidOffer = errors.New("invalid offer")

// OfferType is the stage of an offer within a negotiation.
type OfferType string

const (
	OfferTypeInitial OfferType = "initial"
	OfferTypeCounter OfferType = "counter"
	OfferTypeFinal   OfferType = "final"
)

// OfferStatus is the lifecycle state of an offer.
type OfferStatus string

const (
	OfferStatusPending  OfferStatus = "pending"
	OfferStatusAccepted OfferStatus = "accepted"
	OfferStatusRejected OfferStatus = "rejected"
	OfferStatusExpired  OfferStatus = "expired"
)

// OfferRequest is an offer as reported by the caller.
type OfferRequest struct {
	CallID      *string     `json:"call_id,omitempty"`
	LoadID      string      `json:"load_id"`
	MCNumber    string      `json:"mc_number"`
	OfferAmount float64     `json:"offer_amount"`
	OfferType   OfferType   `json:"offer_type"`
	RoundNumber int         `json:"round_number"`
	Status      OfferStatus `json:"status"`
	Notes       string      `json:"notes"`
}

// Normalize fills defaults and validates the request.
func (r *OfferRequest) Normalize() error {
	r.LoadID = strings.TrimSpace(r.LoadID)
	r.MCNumber = strings.TrimSpace(r.MCNumber)

	if r.RoundNumber == 0 {
		r.RoundNumber = 1
	}
	if r.Status == "" {
		r.Status = OfferStatusPending
	}

	switch {
	case r.LoadID == "":
		return fmt.Errorf("%w: load_id is required", ErrInvalidOffer)
	case r.MCNumber == "":
		return fmt.Errorf("%w: mc_number is required", ErrInvalidOffer)
	case r.OfferAmount <= 0:
		return fmt.Errorf("%w: offer_amount must be positive", ErrInvalidOffer)
	case r.RoundNumber < 1:
		return fmt.Errorf("%w: round_number must be at least 1", ErrInvalidOffer)
	}

	switch r.OfferType {
	case OfferTypeInitial, OfferTypeCounter, OfferTypeFinal:
	default:
		return fmt.Errorf("%w: offer_type must be initial, counter or final", ErrInvalidOffer)
	}

	switch r.Status {
	case OfferStatusPending, OfferStatusAccepted, OfferStatusRejected, OfferStatusExpired:
	default:
		return fmt.Errorf("%w: status must be pending, accepted, rejected or expired", ErrInvalidOffer)
	}

	return nil
}

// Offer is a logged offer with the rate band it was made against.
type Offer struct {
	ID                string      `json:"offer_id"`
	CallID            *string     `json:"call_id,omitempty"`
	LoadID            string      `json:"load_id"`
	MCNumber          string      `json:"mc_number"`
	OfferAmount       float64     `json:"offer_amount"`
	OfferType         OfferType   `json:"offer_type"`
	RoundNumber       int         `json:"round_number"`
	Status            OfferStatus `json:"status"`
	Notes             string      `json:"notes"`
	OriginalRate      float64     `json:"original_rate"`
	RateDifference    float64     `json:"rate_difference"`
	RateDifferencePct float64     `json:"rate_difference_pct"`
	CreatedAt         time.Time   `json:"created_at"`
	RateFloor         float64     `json:"rate_floor"`
	RateCeiling       float64     `json:"rate_ceiling"`
}
