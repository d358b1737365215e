package domain

// MatchPolicy holds the tunable limits of search and reschedule.
type MatchPolicy struct {
	// AltRadiusMultiplier widens the carrier's radius for near misses.
	AltRadiusMultiplier int
	// AltMaxOriginMiles caps the widened origin radius.
	AltMaxOriginMiles float64
	// AltMaxDestMiles caps the widened destination radius.
	AltMaxDestMiles float64
	// ExactThreshold is the strict match count at which alternatives are suppressed.
	ExactThreshold int
	// TotalCap bounds strict matches plus alternatives when alternatives are shown.
	TotalCap int
	// RescheduleToleranceHours is the largest pickup move approved.
	RescheduleToleranceHours float64
}

// DefaultMatchPolicy returns the production limits.
func DefaultMatchPolicy() MatchPolicy {
	return MatchPolicy{
		AltRadiusMultiplier:      3,
		AltMaxOriginMiles:        250,
		AltMaxDestMiles:          300,
		ExactThreshold:           3,
		TotalCap:                 5,
		RescheduleToleranceHours: 6,
	}
}

// Upper bounds on carrier-supplied distances and windows. Larger values would
// overflow duration and radius arithmetic.
const (
	MaxRadiusMiles = 5000
	MaxWindowHours = 24 * 366
)

// AltOriginCap is the widened origin radius for a requested radius.
func (p MatchPolicy) AltOriginCap(radius int) float64 {
	return min(float64(radius)*float64(p.AltRadiusMultiplier), p.AltMaxOriginMiles)
}

// AltDestCap is the widened destination radius for a requested radius.
func (p MatchPolicy) AltDestCap(radius int) float64 {
	return min(float64(radius)*float64(p.AltRadiusMultiplier), p.AltMaxDestMiles)
}
