package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	carrierdomain "carrier-sales/internal/features/carriers/domain"
)

var (
	// ErrInvalidCall is returned when a call record fails validation.
	ErrInvalidCall = errors.New("invalid call")
	// ErrInvalidInteraction is returned when a carrier interaction fails validation.
	ErrInvalidInteraction = errors.New("invalid interaction")
)

// Outcome is how an inbound carrier call ended.
type Outcome string

const (
	OutcomeBooked            Outcome = "booked"
	OutcomeNegotiationFailed Outcome = "negotiation_failed"
	OutcomeNoLoadsAvailable  Outcome = "no_loads_available"
	OutcomeInvalidCarrier    Outcome = "invalid_carrier"
	OutcomeCarrierThinking   Outcome = "carrier_thinking"
	OutcomeTransferredToOps  Outcome = "transferred_to_ops"
	OutcomeDroppedCall       Outcome = "dropped_call"
)

// Valid reports whether o is a known outcome.
func (o Outcome) Valid() bool {
	switch o {
	case OutcomeBooked, OutcomeNegotiationFailed, OutcomeNoLoadsAvailable, OutcomeInvalidCarrier,
		OutcomeCarrierThinking, OutcomeTransferredToOps, OutcomeDroppedCall:
		return true
	}
	return false
}

// Sentiment is the carrier's mood as classified at the end of the call.
type Sentiment string

const (
	SentimentPositive   Sentiment = "positive"
	SentimentNeutral    Sentiment = "neutral"
	SentimentFrustrated Sentiment = "frustrated"
	SentimentAggressive Sentiment = "aggressive"
	SentimentConfused   Sentiment = "confused"
)

// Valid reports whether s is a known sentiment.
func (s Sentiment) Valid() bool {
	switch s {
	case SentimentPositive, SentimentNeutral, SentimentFrustrated, SentimentAggressive, SentimentConfused:
		return true
	}
	return false
}

// Call is the record of one inbound carrier call.
type Call struct {
	ID                string    `json:"id"`
	CallID            string    `json:"call_id"`
	MCNumber          string    `json:"mc_number,omitempty"`
	CarrierName       string    `json:"carrier_name,omitempty"`
	LaneOrigin        string    `json:"lane_origin,omitempty"`
	LaneDestination   string    `json:"lane_destination,omitempty"`
	EquipmentType     string    `json:"equipment_type,omitempty"`
	LoadID            string    `json:"load_id,omitempty"`
	InitialRate       *float64  `json:"initial_rate,omitempty"`
	FinalRate         *float64  `json:"final_rate,omitempty"`
	NegotiationRounds int       `json:"negotiation_rounds"`
	CarrierPhone      string    `json:"carrier_phone,omitempty"`
	SpecialRequests   string    `json:"special_requests,omitempty"`
	Outcome           Outcome   `json:"outcome"`
	Sentiment         Sentiment `json:"sentiment"`
	DurationSeconds   *int      `json:"duration_seconds,omitempty"`
	Transcript        string    `json:"transcript,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

// Normalize trims the call and checks required fields and enums.
func (c *Call) Normalize() error {
	for _, f := range []*string{
		&c.CallID, &c.CarrierName, &c.LaneOrigin, &c.LaneDestination, &c.EquipmentType,
		&c.LoadID, &c.CarrierPhone, &c.SpecialRequests,
	} {
		*f = strings.TrimSpace(*f)
	}
	if c.MCNumber != "" {
		c.MCNumber = carrierdomain.NormalizeMC(c.MCNumber)
	}
	c.Outcome = Outcome(strings.ToLower(strings.TrimSpace(string(c.Outcome))))
	c.Sentiment = Sentiment(strings.ToLower(strings.TrimSpace(string(c.Sentiment))))

	switch {
	case c.CallID == "":
		return fmt.Errorf("%w: call_id is required", ErrInvalidCall)
	case !c.Outcome.Valid():
		return fmt.Errorf("%w: unknown outcome %q", ErrInvalidCall, c.Outcome)
	case !c.Sentiment.Valid():
		return fmt.Errorf("%w: unknown sentiment %q", ErrInvalidCall, c.Sentiment)
	case c.NegotiationRounds < 0:
		return fmt.Errorf("%w: negotiation_rounds cannot be negative", ErrInvalidCall)
	case c.DurationSeconds != nil && *c.DurationSeconds < 0:
		return fmt.Errorf("%w: duration_seconds cannot be negative", ErrInvalidCall)
	case c.InitialRate != nil && *c.InitialRate < 0, c.FinalRate != nil && *c.FinalRate < 0:
		return fmt.Errorf("%w: rates cannot be negative", ErrInvalidCall)
	}
	return nil
}

// CallReceipt acknowledges a logged call.
type CallReceipt struct {
	ID        string    `json:"id"`
	CallID    string    `json:"call_id"`
	Outcome   Outcome   `json:"outcome"`
	Sentiment Sentiment `json:"sentiment"`
	CreatedAt time.Time `json:"created_at"`
}

// Interaction is one touchpoint with a carrier, kept per MC number.
type Interaction struct {
	ID                string    `json:"id"`
	MCNumber          string    `json:"mc_number"`
	CarrierName       string    `json:"carrier_name,omitempty"`
	CallID            string    `json:"call_id,omitempty"`
	CallLengthSeconds *int      `json:"call_length_seconds,omitempty"`
	Outcome           string    `json:"outcome,omitempty"`
	LoadID            string    `json:"load_id,omitempty"`
	Notes             string    `json:"notes"`
	CreatedAt         time.Time `json:"created_at"`
}

// Normalize trims the interaction and checks the MC number.
func (i *Interaction) Normalize() error {
	i.MCNumber = carrierdomain.NormalizeMC(i.MCNumber)
	for _, f := range []*string{&i.CarrierName, &i.CallID, &i.Outcome, &i.LoadID, &i.Notes} {
		*f = strings.TrimSpace(*f)
	}

	switch {
	case i.MCNumber == "":
		return fmt.Errorf("%w: mc_number is required", ErrInvalidInteraction)
	case i.CallLengthSeconds != nil && *i.CallLengthSeconds < 0:
		return fmt.Errorf("%w: call_length_seconds cannot be negative", ErrInvalidInteraction)
	}
	return nil
}

// InteractionHistory is every interaction recorded for a carrier, newest first.
type InteractionHistory struct {
	MCNumber          string        `json:"mc_number"`
	TotalInteractions int           `json:"total_interactions"`
	Interactions      []Interaction `json:"interactions"`
}
