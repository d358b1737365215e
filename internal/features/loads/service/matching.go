package service

import (
	"fmt"
	"math"
	"time"

	"carrier-sales/internal/core/geo"
	"carrier-sales/internal/features/loads/domain"
	locdomain "carrier-sales/internal/features/locations/domain"
	setdomain "carrier-sales/internal/features/settings/domain"
)

const pickupLayout = "2006-01-02 15:04 UTC"

// criteria is a search query after resolution and defaulting.
type criteria struct {
	equipment         domain.Equipment
	origin            locdomain.ResolvedLocation
	destination       locdomain.ResolvedLocation
	radius            int
	pickupDate        *time.Time
	pickupText        string
	pickupWindowHours int
	maxDistanceMiles  *int
	maxWeight         *int
	now               time.Time
}

// evaluation is the outcome of every strict predicate for one load.
type evaluation struct {
	equipmentOK bool
	originOK    bool
	destOK      bool
	maxDistOK   bool
	weightOK    bool
	dateOK      bool
	windowOK    bool

	originDist float64
	// destDist is nil when no destination was given or the load's
	// destination could not be placed.
	destDist *float64
}

func (e evaluation) strict() bool {
	return e.equipmentOK && e.originOK && e.destOK && e.maxDistOK && e.weightOK && e.dateOK && e.windowOK
}

func (s *LoadServiceImpl) evaluate(load domain.Load, c criteria) evaluation {
	ev := evaluation{
		equipmentOK: domain.NormalizeEquipment(string(load.EquipmentType)) == c.equipment,
		maxDistOK:   c.maxDistanceMiles == nil || load.Miles <= *c.maxDistanceMiles,
		weightOK:    c.maxWeight == nil || load.Weight <= *c.maxWeight,
		dateOK:      true,
		windowOK:    true,
	}
	ev.originOK, ev.originDist = s.originCheck(load, c.origin, c.radius)
	ev.destOK, ev.destDist = s.destinationCheck(load, c.destination, c.radius)

	if c.pickupDate != nil {
		ask := *c.pickupDate
		ev.dateOK = sameDay(load.PickupDateTime.In(ask.Location()), ask)
	}

	if c.pickupWindowHours > 0 {
		end := c.now.Add(time.Duration(c.pickupWindowHours) * time.Hour)
		ev.windowOK = !load.PickupDateTime.Before(c.now) && !load.PickupDateTime.After(end)
	}

	return ev
}

// originCheck reports whether the load picks up inside the carrier's origin and
// the deadhead distance. State and region origins have no distance.
func (s *LoadServiceImpl) originCheck(load domain.Load, loc locdomain.ResolvedLocation, radius int) (bool, float64) {
	if city, ok := loc.(locdomain.City); ok {
		d := geo.HaversineMiles(city.Lat, city.Lng, load.OriginLat, load.OriginLng)
		return d <= float64(radius), d
	}
	return s.inArea(loc, load.Origin), 0
}

// destinationCheck is originCheck for the delivery end. A missing destination
// always passes.
func (s *LoadServiceImpl) destinationCheck(load domain.Load, loc locdomain.ResolvedLocation, radius int) (bool, *float64) {
	if loc == nil {
		return true, nil
	}
	if city, ok := loc.(locdomain.City); ok {
		d := geo.HaversineMiles(city.Lat, city.Lng, load.DestLat, load.DestLng)
		return d <= float64(radius), &d
	}

	if _, known := s.places.Lookup(load.Destination); !known {
		return false, nil
	}
	zero := 0.0
	return s.inArea(loc, load.Destination), &zero
}

// withinCap is the widened proximity test used for near misses.
func (s *LoadServiceImpl) withinCap(loc locdomain.ResolvedLocation, name string, lat, lng, limit float64) bool {
	if loc == nil {
		return true
	}
	if city, ok := loc.(locdomain.City); ok {
		return geo.HaversineMiles(city.Lat, city.Lng, lat, lng) <= limit
	}
	return s.inArea(loc, name)
}

// inArea reports whether a named place lies in a state or region.
func (s *LoadServiceImpl) inArea(loc locdomain.ResolvedLocation, name string) bool {
	place, ok := s.places.Lookup(name)
	if !ok {
		return false
	}

	switch l := loc.(type) {
	case locdomain.State:
		return place.State == l.Abbreviation
	case locdomain.Region:
		return place.Region == l.Name
	default:
		return false
	}
}

// differences explains each failed predicate, in a fixed order.
func (ev evaluation) differences(load domain.Load, c criteria) []string {
	var diffs []string

	if !ev.equipmentOK {
		diffs = append(diffs, fmt.Sprintf("Equipment is %s, not %s",
			domain.NormalizeEquipment(string(load.EquipmentType)).Label(), c.equipment.Label()))
	}

	if !ev.originOK {
		if _, isCity := c.origin.(locdomain.City); isCity {
			diffs = append(diffs, fmt.Sprintf("Pickup is in %s — %d mi from %s (%d mi outside your %d-mile radius)",
				load.Origin, roundMiles(ev.originDist), c.origin.Label(),
				roundMiles(ev.originDist-float64(c.radius)), c.radius))
		} else {
			diffs = append(diffs, fmt.Sprintf("Pickup is in %s (not in %s)", load.Origin, c.origin.Label()))
		}
	}

	if !ev.destOK && c.destination != nil {
		if _, isCity := c.destination.(locdomain.City); isCity && ev.destDist != nil {
			diffs = append(diffs, fmt.Sprintf("Delivers to %s — %d mi from %s (%d mi outside your %d-mile radius)",
				load.Destination, roundMiles(*ev.destDist), c.destination.Label(),
				roundMiles(*ev.destDist-float64(c.radius)), c.radius))
		} else {
			diffs = append(diffs, fmt.Sprintf("Delivers to %s (not in %s)", load.Destination, c.destination.Label()))
		}
	}

	if !ev.maxDistOK {
		diffs = append(diffs, fmt.Sprintf("Haul distance is %d mi (exceeds your %d-mile max)", load.Miles, *c.maxDistanceMiles))
	}

	if !ev.weightOK {
		diffs = append(diffs, fmt.Sprintf("Load weighs %d lbs (exceeds your %d-lb max)", load.Weight, *c.maxWeight))
	}

	if !ev.dateOK {
		asked := c.pickupText
		if asked == "" {
			asked = c.pickupDate.Format(time.RFC3339)
		}
		diffs = append(diffs, fmt.Sprintf("Pickup is %s, not %s",
			load.PickupDateTime.UTC().Format(pickupLayout), asked))
	}

	if !ev.windowOK {
		diffs = append(diffs, fmt.Sprintf("Pickup is at %s, outside your %d-hour window",
			load.PickupDateTime.UTC().Format(pickupLayout), c.pickupWindowHours))
	}

	return diffs
}

// price derives the request-scoped rate and empty-mile metrics for a load.
func price(load domain.Load, originDist float64, destDist *float64, settings setdomain.NegotiationSettings) domain.SearchResultLoad {
	floor := geo.Round(load.LoadboardRate*(1-settings.TargetMargin), 2)

	deadend := 0.0
	if destDist != nil {
		deadend = geo.Round(*destDist, 1)
	}

	return domain.SearchResultLoad{
		Load:          load,
		RatePerMile:   geo.Round(floor/float64(max(load.Miles, 1)), 2),
		DeadheadMiles: geo.Round(originDist, 1),
		DeadendMiles:  deadend,
		FloorRate:     floor,
		MaxRate:       geo.Round(load.LoadboardRate*(1+settings.MaxBumpAboveLoadboard), 2),
	}
}

func roundMiles(v float64) int {
	return int(math.Round(v))
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
