package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"carrier-sales/internal/core/logger"
	"carrier-sales/internal/core/metrics"
	"carrier-sales/internal/features/locations/domain"
	"carrier-sales/internal/features/locations/ports"

	"go.uber.org/zap"
)

// FuzzyThreshold is the minimum scorer result accepted as a city match.
const FuzzyThreshold = 70.0

var fillerPrefixes = []string{"near ", "around ", "outside ", "just outside ", "the ", "in "}

var fillerSuffixes = []string{" area", " metro", " region", " metropolitan"}

// Resolver resolves free text to a state, a region or a city, in that order.
// Cities are tried by alias, exact key, unique prefix, fuzzy score and finally
// the external geocoder.
type Resolver struct {
	gazetteer      *domain.Gazetteer
	scorer         ports.Scorer
	geocoder       ports.Geocoder
	geocodeTimeout time.Duration
}

// NewResolver creates a Resolver. geocoder may be nil to disable the network fallback.
func NewResolver(gazetteer *domain.Gazetteer, scorer ports.Scorer, geocoder ports.Geocoder, geocodeTimeout time.Duration) *Resolver {
	return &Resolver{
		gazetteer:      gazetteer,
		scorer:         scorer,
		geocoder:       geocoder,
		geocodeTimeout: geocodeTimeout,
	}
}

// Resolve returns the location for text or an error wrapping domain.ErrUnresolvedLocation.
func (r *Resolver) Resolve(ctx context.Context, text string) (domain.ResolvedLocation, error) {
	raw := strings.TrimSpace(text)
	if raw == "" {
		return nil, fmt.Errorf("%w: empty input", domain.ErrUnresolvedLocation)
	}

	cleaned := Normalize(raw)

	if abbr, ok := r.resolveState(cleaned); ok {
		metrics.LocationResolutions.WithLabelValues("state").Inc()
		return domain.State{Abbreviation: abbr}, nil
	}

	if region, ok := r.gazetteer.RegionAliases[cleaned]; ok {
		metrics.LocationResolutions.WithLabelValues("region").Inc()
		return domain.Region{Name: region}, nil
	}

	if place, stage, ok := r.resolveCityStatic(cleaned); ok {
		metrics.LocationResolutions.WithLabelValues(stage).Inc()
		return place.City(), nil
	}

	if city, ok := r.geocode(ctx, raw); ok {
		metrics.LocationResolutions.WithLabelValues("geocode").Inc()
		return *city, nil
	}

	metrics.LocationResolutions.WithLabelValues("unresolved").Inc()
	return nil, fmt.Errorf("%w: '%s'", domain.ErrUnresolvedLocation, raw)
}

// Normalize lowercases text and strips filler words such as "near" or "metro".
func Normalize(text string) string {
	cleaned := strings.ToLower(strings.TrimSpace(text))
	for _, p := range fillerPrefixes {
		cleaned = strings.TrimPrefix(cleaned, p)
	}
	for _, s := range fillerSuffixes {
		cleaned = strings.TrimSuffix(cleaned, s)
	}
	return strings.TrimSpace(cleaned)
}

func (r *Resolver) resolveState(cleaned string) (string, bool) {
	if len(cleaned) == 2 {
		abbr := strings.ToUpper(cleaned)
		if _, ok := r.gazetteer.StateToRegion[abbr]; ok {
			return abbr, true
		}
	}
	abbr, ok := r.gazetteer.StateNames[cleaned]
	return abbr, ok
}

// resolveCityStatic runs the in-memory city stages and reports which one matched.
func (r *Resolver) resolveCityStatic(cleaned string) (domain.Place, string, bool) {
	g := r.gazetteer

	if key, ok := g.CityAliases[cleaned]; ok {
		if place, ok := g.Cities[key]; ok {
			return place, "alias", true
		}
	}

	if place, ok := g.Cities[cleaned]; ok {
		return place, "exact", true
	}

	if !strings.Contains(cleaned, ",") {
		var match string
		count := 0
		for _, key := range g.CityKeys() {
			if strings.HasPrefix(key, cleaned+",") {
				match = key
				count++
			}
		}
		if count == 1 {
			return g.Cities[match], "prefix", true
		}
	}

	if r.scorer == nil {
		return domain.Place{}, "", false
	}

	bestKey, bestScore := "", 0.0
	for _, key := range g.CityKeys() {
		if score := r.scorer(cleaned, key); score > bestScore {
			bestKey, bestScore = key, score
		}
	}
	if bestKey != "" && bestScore >= FuzzyThreshold {
		logger.Get().Debug("Fuzzy city match",
			zap.String("input", cleaned),
			zap.String("match", bestKey),
			zap.Float64("score", bestScore),
		)
		return g.Cities[bestKey], "fuzzy", true
	}

	return domain.Place{}, "", false
}

// geocode consults the external geocoder under its own timeout.
// Any failure degrades to "not found".
func (r *Resolver) geocode(ctx context.Context, query string) (*domain.City, bool) {
	if r.geocoder == nil {
		return nil, false
	}

	if r.geocodeTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.geocodeTimeout)
		defer cancel()
	}

	city, err := r.geocoder.Geocode(ctx, query)
	if err != nil {
		if !errors.Is(err, domain.ErrNoGeocodeResult) {
			logger.Get().Warn("Geocode failed", zap.String("query", query), zap.Error(err))
		}
		return nil, false
	}
	if city == nil {
		return nil, false
	}

	return city, true
}
