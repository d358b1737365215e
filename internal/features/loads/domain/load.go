package domain

import (
	"strings"
	"time"

	locdomain "carrier-sales/internal/features/locations/domain"
)

// Equipment is a normalized trailer category such as "dry_van".
type Equipment string

const (
	EquipmentDryVan    Equipment = "dry_van"
	EquipmentReefer    Equipment = "reefer"
	EquipmentFlatbed   Equipment = "flatbed"
	EquipmentStepDeck  Equipment = "step_deck"
	EquipmentPowerOnly Equipment = "power_only"
)

// NormalizeEquipment lowercases and trims raw input and turns spaces and
// hyphens into underscores, so "Dry Van" and "dry-van" both become dry_van.
func NormalizeEquipment(raw string) Equipment {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.NewReplacer(" ", "_", "-", "_").Replace(s)
	return Equipment(s)
}

// Label renders the code for people: "step_deck" becomes "Step Deck".
func (e Equipment) Label() string {
	words := strings.Fields(strings.ReplaceAll(string(e), "_", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}

// Status is the load lifecycle state.
type Status string

const (
	StatusAvailable Status = "available"
	StatusBooked    Status = "booked"
)

// Load is a posted shipment.
type Load struct {
	ID               string    `json:"load_id"`
	Origin           string    `json:"origin"`
	OriginLat        float64   `json:"origin_lat"`
	OriginLng        float64   `json:"origin_lng"`
	Destination      string    `json:"destination"`
	DestLat          float64   `json:"dest_lat"`
	DestLng          float64   `json:"dest_lng"`
	PickupDateTime   time.Time `json:"pickup_datetime"`
	DeliveryDateTime time.Time `json:"delivery_datetime"`
	EquipmentType    Equipment `json:"equipment_type"`
	LoadboardRate    float64   `json:"loadboard_rate"`
	Notes            string    `json:"notes"`
	Weight           int       `json:"weight"`
	CommodityType    string    `json:"commodity_type"`
	NumOfPieces      int       `json:"num_of_pieces"`
	Miles            int       `json:"miles"`
	Dimensions       string    `json:"dimensions"`
	Status           Status    `json:"status"`
}

// SearchResultLoad is a load with per-request pricing and empty-mile metrics.
type SearchResultLoad struct {
	Load
	// RatePerMile is computed from the floor rate, not the posted rate.
	RatePerMile   float64 `json:"rate_per_mile"`
	DeadheadMiles float64 `json:"deadhead_miles"`
	DeadendMiles  float64 `json:"deadend_miles"`
	FloorRate     float64 `json:"floor_rate"`
	MaxRate       float64 `json:"max_rate"`
}

// AlternativeLoad is a near miss with one explanation per failed criterion.
type AlternativeLoad struct {
	SearchResultLoad
	Differences []string `json:"differences"`
}

// SearchQuery carries a carrier's stated capabilities. Zero values mean "not given".
type SearchQuery struct {
	Origin         string
	Equipment      string
	Destination    string
	PickupDateTime *time.Time
	// PickupDateTimeText is the pickup as the carrier sent it, echoed in differences.
	PickupDateTimeText string
	RadiusMiles        int
	PickupWindowHours  int
	MaxDistanceMiles   *int
	MaxWeight          *int
}

// SearchResult is the ranked answer to a search.
type SearchResult struct {
	Loads               []SearchResultLoad         `json:"loads"`
	AlternativeLoads    []AlternativeLoad          `json:"alternative_loads"`
	OriginResolved      locdomain.ResolvedLocation `json:"origin_resolved"`
	DestinationResolved locdomain.ResolvedLocation `json:"destination_resolved"`
	RadiusMiles         int                        `json:"radius_miles"`
	TotalFound          int                        `json:"total_found"`
	TotalAlternatives   int                        `json:"total_alternatives"`
}
