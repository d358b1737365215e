package domain

import (
	"errors"
	"fmt"
)

// Setting keys as stored in the negotiation_settings table.
const (
	KeyTargetMargin          = "target_margin"
	KeyMinMargin             = "min_margin"
	KeyMaxBumpAboveLoadboard = "max_bump_above_loadboard"
	KeyMaxNegotiationRounds  = "max_negotiation_rounds"
)

// ErrInvalidSettings is returned when an update would produce unusable settings.
var ErrInvalidSettings = errors.New("invalid negotiation settings")

// Value is one stored setting: either numeric or text.
type Value struct {
	Number *float64 `json:"number,omitempty"`
	Text   *string  `json:"text,omitempty"`
}

// NumberValue wraps a numeric setting.
func NumberValue(v float64) Value { return Value{Number: &v} }

// TextValue wraps a text setting.
func TextValue(v string) Value { return Value{Text: &v} }

// NegotiationSettings are the margin knobs used to price loads and judge offers.
type NegotiationSettings struct {
	// TargetMargin is the gross margin the brokerage aims to keep (0.15 = 15%).
	TargetMargin float64 `json:"target_margin"`
	// MinMargin is the lowest acceptable margin.
	MinMargin float64 `json:"min_margin"`
	// MaxBumpAboveLoadboard is how far above the posted rate we may go (0.03 = 3%).
	MaxBumpAboveLoadboard float64 `json:"max_bump_above_loadboard"`
	// MaxNegotiationRounds caps back-and-forth offers per call.
	MaxNegotiationRounds int `json:"max_negotiation_rounds"`
	// Extra holds any other stored keys untouched.
	Extra map[string]Value `json:"-"`
}

// Defaults returns the settings used for any key missing from storage.
func Defaults() NegotiationSettings {
	return NegotiationSettings{
		TargetMargin:          0.15,
		MinMargin:             0.05,
		MaxBumpAboveLoadboard: 0.03,
		MaxNegotiationRounds:  3,
	}
}

// FromValues overlays stored values on the defaults.
func FromValues(values map[string]Value) NegotiationSettings {
	s := Defaults()
	for key, v := range values {
		switch key {
		case KeyTargetMargin:
			if v.Number != nil {
				s.TargetMargin = *v.Number
			}
		case KeyMinMargin:
			if v.Number != nil {
				s.MinMargin = *v.Number
			}
		case KeyMaxBumpAboveLoadboard:
			if v.Number != nil {
				s.MaxBumpAboveLoadboard = *v.Number
			}
		case KeyMaxNegotiationRounds:
			if v.Number != nil {
				s.MaxNegotiationRounds = int(*v.Number)
			}
		default:
			if s.Extra == nil {
				s.Extra = make(map[string]Value)
			}
			s.Extra[key] = v
		}
	}
	return s
}

// Update carries the fields a caller wants to change; nil fields are left alone.
type Update struct {
	TargetMargin          *float64 `json:"target_margin,omitempty"`
	MinMargin             *float64 `json:"min_margin,omitempty"`
	MaxBumpAboveLoadboard *float64 `json:"max_bump_above_loadboard,omitempty"`
	MaxNegotiationRounds  *int     `json:"max_negotiation_rounds,omitempty"`
}

// Values returns the update as storable key/values, validating each field.
func (u Update) Values() (map[string]Value, error) {
	values := make(map[string]Value)

	margins := []struct {
		key string
		v   *float64
	}{
		{KeyTargetMargin, u.TargetMargin},
		{KeyMinMargin, u.MinMargin},
		{KeyMaxBumpAboveLoadboard, u.MaxBumpAboveLoadboard},
	}
	for _, m := range margins {
		if m.v == nil {
			continue
		}
		if *m.v < 0 || *m.v >= 1 {
			return nil, fmt.Errorf("%w: %s must be in [0, 1)", ErrInvalidSettings, m.key)
		}
		values[m.key] = NumberValue(*m.v)
	}

	if u.MaxNegotiationRounds != nil {
		if *u.MaxNegotiationRounds < 1 {
			return nil, fmt.Errorf("%w: %s must be at least 1", ErrInvalidSettings, KeyMaxNegotiationRounds)
		}
		values[KeyMaxNegotiationRounds] = NumberValue(float64(*u.MaxNegotiationRounds))
	}

	return values, nil
}
