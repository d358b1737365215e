package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeEquipment(t *testing.T) {
	tests := map[string]Equipment{
		"dry_van":    EquipmentDryVan,
		"Dry Van":    EquipmentDryVan,
		" dry-van ":  EquipmentDryVan,
		"REEFER":     EquipmentReefer,
		"Step Deck":  EquipmentStepDeck,
		"power-only": EquipmentPowerOnly,
		"Flatbed":    EquipmentFlatbed,
		"box truck":  Equipment("box_truck"),
	}
	for in, want := range tests {
		assert.Equal(t, want, NormalizeEquipment(in), in)
	}
}

func TestEquipment_Label(t *testing.T) {
	assert.Equal(t, "Dry Van", EquipmentDryVan.Label())
	assert.Equal(t, "Reefer", EquipmentReefer.Label())
	assert.Equal(t, "Power Only", EquipmentPowerOnly.Label())
	assert.Equal(t, "", Equipment("").Label())
}

func TestMatchPolicy_Caps(t *testing.T) {
	p := DefaultMatchPolicy()

	assert.Equal(t, 225.0, p.AltOriginCap(75))
	assert.Equal(t, 250.0, p.AltOriginCap(100))
	assert.Equal(t, 250.0, p.AltOriginCap(1<<62))
	assert.Equal(t, 300.0, p.AltDestCap(1<<62))
	assert.Equal(t, 225.0, p.AltDestCap(75))
	assert.Equal(t, 300.0, p.AltDestCap(150))
}

func TestSearchResultLoad_JSONFlattensLoad(t *testing.T) {
	alt := AlternativeLoad{
		SearchResultLoad: SearchResultLoad{
			Load: Load{
				ID:             "LD-1001",
				EquipmentType:  EquipmentReefer,
				PickupDateTime: time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC),
			},
			DeadheadMiles: 12.5,
		},
		Differences: []string{"Equipment is Reefer, not Dry Van"},
	}

	data, err := json.Marshal(alt)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, "LD-1001", out["load_id"])
	assert.Equal(t, "reefer", out["equipment_type"])
	assert.Equal(t, 12.5, out["deadhead_miles"])
	assert.Equal(t, "2025-03-10T08:00:00Z", out["pickup_datetime"])
	assert.Len(t, out["differences"], 1)
}

func TestParseTimestamp(t *testing.T) {
	central := time.FixedZone("", -5*3600)

	tests := []struct {
		in   string
		want time.Time
	}{
		{"2025-03-10T08:00:00Z", time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)},
		{"2025-03-10T08:00:00-05:00", time.Date(2025, 3, 10, 8, 0, 0, 0, central)},
		{"2025-03-10T08:00:00", time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)},
		{"2025-03-10 08:00:00", time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)},
		{"2025-03-10T08:00", time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)},
		{"2025-03-10", time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		got, err := ParseTimestamp(tt.in)
		require.NoError(t, err, tt.in)
		assert.True(t, tt.want.Equal(got), tt.in)
	}

	_, err := ParseTimestamp("next tuesday")
	assert.Error(t, err)
}
