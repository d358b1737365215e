package adapters

import (
	"context"
	"fmt"
	"net/http"

	"carrier-sales/internal/features/locations/domain"

	"googlemaps.github.io/maps"
)

// GoogleGeocoder resolves free text through the Google Maps Geocoding API.
type GoogleGeocoder struct {
	client *maps.Client
}

// NewGoogleGeocoder creates a Google geocoder. Extra options are appended after
// the API key and HTTP client.
func NewGoogleGeocoder(apiKey string, httpClient *http.Client, opts ...maps.ClientOption) (*GoogleGeocoder, error) {
	options := append([]maps.ClientOption{
		maps.WithAPIKey(apiKey),
		maps.WithHTTPClient(httpClient),
	}, opts...)

	client, err := maps.NewClient(options...)
	if err != nil {
		return nil, fmt.Errorf("failed to create google maps client: %w", err)
	}

	return &GoogleGeocoder{client: client}, nil
}

// Geocode returns the first US result for query.
func (g *GoogleGeocoder) Geocode(ctx context.Context, query string) (*domain.City, error) {
	results, err := g.client.Geocode(ctx, &maps.GeocodingRequest{
		Address: query,
		Components: map[maps.Component]string{
			maps.ComponentCountry: "US",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("google geocode failed: %w", err)
	}
	if len(results) == 0 {
		return nil, domain.ErrNoGeocodeResult
	}

	r := results[0]
	name := r.FormattedAddress
	if name == "" {
		name = query
	}

	return &domain.City{
		Name: name,
		Lat:  r.Geometry.Location.Lat,
		Lng:  r.Geometry.Location.Lng,
	}, nil
}
