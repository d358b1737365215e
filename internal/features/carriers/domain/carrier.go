package domain

import (
	"strings"
	"unicode"
)

// Registry status values. Live records carry the FMCSA status code for anything not active.
const (
	StatusActive   = "ACTIVE"
	StatusInactive = "INACTIVE"
	StatusNotFound = "NOT_FOUND"
)

// AuthorityActive is the common authority code of a carrier allowed to haul for hire.
const AuthorityActive = "A"

// Carrier is a motor carrier record as held by the registry.
type Carrier struct {
	MCNumber        string `json:"mc_number"`
	DOTNumber       string `json:"dot_number"`
	LegalName       string `json:"legal_name"`
	DBAName         string `json:"dba_name"`
	Status          string `json:"status"`
	AuthorityStatus string `json:"authority_status"`
	EntityType      string `json:"entity_type"`
	SafetyRating    string `json:"safety_rating"`
	OutOfService    bool   `json:"out_of_service"`
	Phone           string `json:"phone"`
	PhysicalAddress string `json:"physical_address"`
	// Insurance amounts are in thousands of USD.
	BIPDInsuranceOnFile int     `json:"bipd_insurance_on_file"`
	BIPDRequiredAmount  int     `json:"bipd_required_amount"`
	TotalPowerUnits     int     `json:"total_power_units"`
	TotalDrivers        int     `json:"total_drivers"`
	CrashTotal          int     `json:"crash_total"`
	DriverOOSRate       float64 `json:"driver_oos_rate"`
	MCS150Outdated      bool    `json:"mcs150_outdated"`
	OOSDate             string  `json:"oos_date,omitempty"`
}

// Unknown returns the placeholder record for an MC number the registry does not know.
func Unknown(mc string) *Carrier {
	return &Carrier{
		MCNumber:        mc,
		LegalName:       "UNKNOWN",
		Status:          StatusNotFound,
		AuthorityStatus: "N",
	}
}

// Verification is the eligibility decision for a carrier.
type Verification struct {
	Eligible    bool     `json:"eligible"`
	MCNumber    string   `json:"mc_number"`
	CarrierName string   `json:"carrier_name"`
	Reasons     []string `json:"reasons"`
}

var spelledDigits = strings.NewReplacer(
	"zero", "0",
	"one", "1",
	"two", "2",
	"three", "3",
	"four", "4",
	"five", "5",
	"six", "6",
	"seven", "7",
	"eight", "8",
	"nine", "9",
)

// NormalizeMC reduces any spoken or written MC number to its digits.
// "MC-123456", "mc 123456" and "one two three four five six" all give "123456".
func NormalizeMC(raw string) string {
	text := spelledDigits.Replace(strings.ToLower(strings.TrimSpace(raw)))
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, text)
}
