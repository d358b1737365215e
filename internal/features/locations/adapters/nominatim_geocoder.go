package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"carrier-sales/internal/features/locations/domain"
)

// NominatimGeocoder resolves free text through an OpenStreetMap Nominatim search endpoint.
type NominatimGeocoder struct {
	baseURL string
	client  *http.Client
}

// NewNominatimGeocoder creates a geocoder for the given search URL.
func NewNominatimGeocoder(baseURL string, client *http.Client) *NominatimGeocoder {
	return &NominatimGeocoder{
		baseURL: baseURL,
		client:  client,
	}
}

type nominatimPlace struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}

// Geocode returns the best US match for query.
func (g *NominatimGeocoder) Geocode(ctx context.Context, query string) (*domain.City, error) {
	params := url.Values{}
	params.Set("q", query+", USA")
	params.Set("format", "json")
	params.Set("limit", "1")
	params.Set("countrycodes", "us")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create nominatim request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("nominatim request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("nominatim returned status %d", resp.StatusCode)
	}

	var places []nominatimPlace
	if err := json.NewDecoder(resp.Body).Decode(&places); err != nil {
		return nil, fmt.Errorf("failed to decode nominatim response: %w", err)
	}
	if len(places) == 0 {
		return nil, domain.ErrNoGeocodeResult
	}

	p := places[0]
	lat, err := strconv.ParseFloat(p.Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid nominatim latitude %q: %w", p.Lat, err)
	}
	lng, err := strconv.ParseFloat(p.Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid nominatim longitude %q: %w", p.Lon, err)
	}

	name := p.DisplayName
	if name == "" {
		name = query
	}

	return &domain.City{Name: name, Lat: lat, Lng: lng}, nil
}
