package domain

import (
	"encoding/json"
	"errors"
)

// ErrUnresolvedLocation is returned when no resolution stage recognizes the input.
var ErrUnresolvedLocation = errors.New("could not resolve location")

// ErrNoGeocodeResult is returned by geocoders that answered but found nothing.
var ErrNoGeocodeResult = errors.New("no geocode result")

// Kind tags the variant of a ResolvedLocation.
type Kind string

const (
	KindCity   Kind = "city"
	KindState  Kind = "state"
	KindRegion Kind = "region"
)

// ResolvedLocation is a City, a State or a Region.
// The set of variants is closed; callers switch on the concrete type.
type ResolvedLocation interface {
	Kind() Kind
	// Label is the human-readable name used in search responses and messages.
	Label() string
	resolvedLocation()
}

// City is a point location with coordinates.
type City struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}

// State is a two-letter US state abbreviation such as "TX".
type State struct {
	Abbreviation string `json:"abbreviation"`
}

// Region is one of the macro freight regions such as "South Central".
type Region struct {
	Name string `json:"name"`
}

func (City) Kind() Kind   { return KindCity }
func (State) Kind() Kind  { return KindState }
func (Region) Kind() Kind { return KindRegion }

func (c City) Label() string   { return c.Name }
func (s State) Label() string  { return s.Abbreviation }
func (r Region) Label() string { return r.Name }

func (City) resolvedLocation()   {}
func (State) resolvedLocation()  {}
func (Region) resolvedLocation() {}

// locationJSON is the wire shape shared by all variants.
type locationJSON struct {
	Type  Kind     `json:"type"`
	Label string   `json:"label"`
	Lat   *float64 `json:"lat,omitempty"`
	Lng   *float64 `json:"lng,omitempty"`
}

// MarshalJSON renders a city as {"type":"city","label":...,"lat":...,"lng":...}.
func (c City) MarshalJSON() ([]byte, error) {
	lat, lng := c.Lat, c.Lng
	return json.Marshal(locationJSON{Type: KindCity, Label: c.Name, Lat: &lat, Lng: &lng})
}

// MarshalJSON renders a state as {"type":"state","label":"TX"}.
func (s State) MarshalJSON() ([]byte, error) {
	return json.Marshal(locationJSON{Type: KindState, Label: s.Abbreviation})
}

// MarshalJSON renders a region as {"type":"region","label":"South Central"}.
func (r Region) MarshalJSON() ([]byte, error) {
	return json.Marshal(locationJSON{Type: KindRegion, Label: r.Name})
}
