package domain

import "time"

// Verdict is the outcome of judging a carrier's ask.
type Verdict string

const (
	VerdictAccept  Verdict = "accept"
	VerdictCounter Verdict = "counter"
	VerdictReject  Verdict = "reject"
)

// Field names an asking field, in evaluation priority order.
type Field string

const (
	FieldRadius         Field = "radius_miles"
	FieldPickupDateTime Field = "pickup_datetime"
	FieldPickupWindow   Field = "pickup_window_hours"
	FieldRate           Field = "rate"
)

// Asking is what a carrier wants. Nil fields were not asked for.
type Asking struct {
	Rate              *float64
	PickupDateTime    *time.Time
	PickupWindowHours *float64
	RadiusMiles       *int
}

// Empty reports whether nothing was asked.
func (a Asking) Empty() bool {
	return a.Rate == nil && a.PickupDateTime == nil && a.PickupWindowHours == nil && a.RadiusMiles == nil
}

// FieldResult is the judgement of one asking field.
type FieldResult struct {
	Field   Field   `json:"field"`
	Verdict Verdict `json:"verdict"`
	Message string  `json:"message"`
}

// Analysis is the overall judgement of an ask against a load.
type Analysis struct {
	LoadID  string  `json:"load_id"`
	Verdict Verdict `json:"verdict"`
	// Reason is set for accept and reject verdicts.
	Reason string `json:"reason,omitempty"`
	// CounterOffers holds one message per countering field.
	CounterOffers []string `json:"counter_offers,omitempty"`
	// CounterRate is the rate we offer when the rate field counters.
	CounterRate *float64      `json:"counter_rate,omitempty"`
	PostedRate  float64       `json:"posted_rate"`
	RateFloor   float64       `json:"rate_floor"`
	RateCeiling float64       `json:"rate_ceiling"`
	Fields      []FieldResult `json:"fields"`
}

// Policy holds the tolerance bands used to judge an ask.
type Policy struct {
	// RadiusTolerance scales the asked radius into the counter band (1.20 = 20% over).
	RadiusTolerance float64
	// PickupAcceptHours is the largest pickup difference accepted outright.
	PickupAcceptHours float64
	// PickupCounterHours is the largest pickup difference still countered.
	PickupCounterHours float64
	// WindowCounterMultiplier scales the asked window into the counter band.
	WindowCounterMultiplier float64
	// RateCeilingPct scales the posted rate into the most we pay without countering.
	RateCeilingPct float64
	// RateRejectMultiplier scales the posted rate into the reject line.
	RateRejectMultiplier float64
}

// DefaultPolicy returns the production bands with the given ceiling percentage.
func DefaultPolicy(rateCeilingPct float64) Policy {
	return Policy{
		RadiusTolerance:         1.20,
		PickupAcceptHours:       12,
		PickupCounterHours:      48,
		WindowCounterMultiplier: 2,
		RateCeilingPct:          rateCeilingPct,
		RateRejectMultiplier:    1.20,
	}
}
