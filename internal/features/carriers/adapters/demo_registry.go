package adapters

import (
	"context"
	"time"

	"carrier-sales/internal/core/metrics"
	"carrier-sales/internal/features/carriers/domain"
)

// demoCarriers covers the eligible and ineligible cases walked through in demo calls.
var demoCarriers = map[string]domain.Carrier{
	"123456": {
		MCNumber:        "123456",
		DOTNumber:       "1234567",
		LegalName:       "SWIFT HAUL LOGISTICS LLC",
		DBAName:         "Swift Haul",
		Status:          domain.StatusActive,
		AuthorityStatus: domain.AuthorityActive,
		EntityType:      "CARRIER",
		SafetyRating:    "S",
		Phone:           "(555) 123-4567",
		PhysicalAddress: "1234 Freight Blvd, Dallas, TX 75201",
	},
	"789012": {
		MCNumber:        "789012",
		DOTNumber:       "7890123",
		LegalName:       "HEARTLAND EXPRESS INC",
		DBAName:         "Heartland Express",
		Status:          domain.StatusActive,
		AuthorityStatus: domain.AuthorityActive,
		EntityType:      "CARRIER",
		SafetyRating:    "S",
		Phone:           "(555) 789-0123",
		PhysicalAddress: "567 Interstate Dr, Chicago, IL 60601",
	},
	"456789": {
		MCNumber:        "456789",
		DOTNumber:       "4567890",
		LegalName:       "COLD CHAIN CARRIERS INC",
		DBAName:         "Cold Chain",
		Status:          domain.StatusActive,
		AuthorityStatus: domain.AuthorityActive,
		EntityType:      "CARRIER",
		SafetyRating:    "S",
		Phone:           "(555) 456-7890",
		PhysicalAddress: "890 Reefer Rd, Atlanta, GA 30301",
	},
	"111111": {
		MCNumber:        "111111",
		DOTNumber:       "1111111",
		LegalName:       "DEFUNCT TRUCKING CO",
		Status:          domain.StatusInactive,
		AuthorityStatus: "I",
		EntityType:      "CARRIER",
		SafetyRating:    "N",
	},
	"222222": {
		MCNumber:        "222222",
		DOTNumber:       "2222222",
		LegalName:       "RISKY FREIGHT LLC",
		DBAName:         "Risky Freight",
		Status:          domain.StatusActive,
		AuthorityStatus: domain.AuthorityActive,
		EntityType:      "CARRIER",
		SafetyRating:    "U",
		OutOfService:    true,
		Phone:           "(555) 222-2222",
	},
	"333333": {
		MCNumber:        "333333",
		DOTNumber:       "3333333",
		LegalName:       "NEW CARRIER PENDING LLC",
		Status:          domain.StatusActive,
		AuthorityStatus: "N",
		EntityType:      "CARRIER",
		SafetyRating:    "N",
		Phone:           "(555) 333-3333",
	},
}

// DemoRegistry serves a fixed set of carriers without any network access.
type DemoRegistry struct{}

// NewDemoRegistry creates a DemoRegistry.
func NewDemoRegistry() *DemoRegistry {
	return &DemoRegistry{}
}

// Lookup returns a copy of the demo carrier, or domain.Unknown.
func (DemoRegistry) Lookup(_ context.Context, mc string) (*domain.Carrier, error) {
	start := time.Now()
	defer func() {
		metrics.FMCSALookupDuration.WithLabelValues("demo").Observe(time.Since(start).Seconds())
	}()

	c, ok := demoCarriers[mc]
	if !ok {
		return domain.Unknown(mc), nil
	}
	return &c, nil
}
