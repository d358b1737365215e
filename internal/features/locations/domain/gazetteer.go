package domain

import (
	"sort"
	"strings"
)

// Place is a gazetteer entry.
type Place struct {
	Name   string  `json:"name"`
	State  string  `json:"state"`
	Region string  `json:"region"`
	Lat    float64 `json:"lat"`
	Lng    float64 `json:"lng"`
}

// City converts the place into a resolved city.
func (p Place) City() City {
	return City{Name: p.Name, Lat: p.Lat, Lng: p.Lng}
}

// Gazetteer is the static lookup data behind location resolution.
// Keys in Cities and CityAliases are lowercase "city, st".
type Gazetteer struct {
	Cities        map[string]Place
	CityAliases   map[string]string
	StateNames    map[string]string
	StateToRegion map[string]string
	RegionAliases map[string]string

	keys []string
}

// NewGazetteer builds a gazetteer and indexes its city keys.
func NewGazetteer(cities map[string]Place, cityAliases, stateNames, stateToRegion, regionAliases map[string]string) *Gazetteer {
	keys := make([]string, 0, len(cities))
	for k := range cities {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return &Gazetteer{
		Cities:        cities,
		CityAliases:   cityAliases,
		StateNames:    stateNames,
		StateToRegion: stateToRegion,
		RegionAliases: regionAliases,
		keys:          keys,
	}
}

// CityKeys returns every city key in sorted order.
func (g *Gazetteer) CityKeys() []string {
	return g.keys
}

// Lookup returns the place for a display name such as "Dallas, TX".
// Names missing from the city table still yield state and region when they
// end in a known ", ST" suffix; such places carry no coordinates.
func (g *Gazetteer) Lookup(name string) (Place, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if p, ok := g.Cities[key]; ok {
		return p, true
	}

	idx := strings.LastIndex(key, ",")
	if idx < 0 {
		return Place{}, false
	}
	abbr := strings.ToUpper(strings.TrimSpace(key[idx+1:]))
	region, ok := g.StateToRegion[abbr]
	if !ok {
		return Place{}, false
	}
	return Place{Name: strings.TrimSpace(name), State: abbr, Region: region}, true
}
