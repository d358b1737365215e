package adapters

import (
	"cmp"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"carrier-sales/internal/core/httpclient"
	"carrier-sales/internal/core/metrics"
	"carrier-sales/internal/features/carriers/domain"
)

// DefaultFMCSARetry is the retry policy used for live registry lookups.
var DefaultFMCSARetry = httpclient.RetryPolicy{
	Attempts:     2,
	InitialDelay: time.Second,
	Backoff:      2,
	MaxDelay:     100 * time.Second,
}

// FMCSARegistry looks carriers up in the FMCSA QCMobile docket-number service.
type FMCSARegistry struct {
	baseURL string
	webKey  string
	client  *http.Client
	retry   httpclient.RetryPolicy
}

// NewFMCSARegistry creates a registry against baseURL authenticated with webKey.
func NewFMCSARegistry(baseURL, webKey string, client *http.Client, retry httpclient.RetryPolicy) *FMCSARegistry {
	return &FMCSARegistry{
		baseURL: strings.TrimRight(baseURL, "/"),
		webKey:  webKey,
		client:  client,
		retry:   retry,
	}
}

type fmcsaResponse struct {
	Content []struct {
		Carrier fmcsaCarrier `json:"carrier"`
	} `json:"content"`
}

// fmcsaCarrier mirrors the QCMobile payload.
type fmcsaCarrier struct {
	DOTNumber             flexNumber `json:"dotNumber"`
	LegalName             string     `json:"legalName"`
	DBAName               string     `json:"dbaName"`
	StatusCode            string     `json:"statusCode"`
	CommonAuthorityStatus string     `json:"commonAuthorityStatus"`
	CensusTypeID          *struct {
		CensusTypeDesc string `json:"censusTypeDesc"`
	} `json:"censusTypeId"`
	SafetyRating        string     `json:"safetyRating"`
	AllowedToOperate    string     `json:"allowedToOperate"`
	PhoneNumber         string     `json:"phoneNumber"`
	PhyStreet           string     `json:"phyStreet"`
	PhyCity             string     `json:"phyCity"`
	PhyState            string     `json:"phyState"`
	PhyZipcode          string     `json:"phyZipcode"`
	BIPDInsuranceOnFile flexNumber `json:"bipdInsuranceOnFile"`
	BIPDRequiredAmount  flexNumber `json:"bipdRequiredAmount"`
	TotalPowerUnits     flexNumber `json:"totalPowerUnits"`
	TotalDrivers        flexNumber `json:"totalDrivers"`
	CrashTotal          flexNumber `json:"crashTotal"`
	DriverOOSRate       flexNumber `json:"driverOosRate"`
	MCS150Outdated      string     `json:"mcs150Outdated"`
	OOSDate             *string    `json:"oosDate"`
}

// Lookup fetches mc from the registry, retrying transport failures and non-200 responses.
// An empty result set is reported as domain.Unknown without retrying.
func (r *FMCSARegistry) Lookup(ctx context.Context, mc string) (*domain.Carrier, error) {
	start := time.Now()
	defer func() {
		metrics.FMCSALookupDuration.WithLabelValues("live").Observe(time.Since(start).Seconds())
	}()

	endpoint := fmt.Sprintf("%s/%s?webKey=%s", r.baseURL, url.PathEscape(mc), url.QueryEscape(r.webKey))

	var carrier *domain.Carrier
	err := r.retry.Do(ctx, "fmcsa", func(attempt int) error {
		c, err := r.fetch(ctx, endpoint, mc)
		if err != nil {
			return err
		}
		carrier = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return carrier, nil
}

func (r *FMCSARegistry) fetch(ctx context.Context, endpoint, mc string) (*domain.Carrier, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create fmcsa request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fmcsa request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fmcsa returned status %d", resp.StatusCode)
	}

	var body fmcsaResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode fmcsa response: %w", err)
	}
	if len(body.Content) == 0 {
		return domain.Unknown(mc), nil
	}

	return mapCarrier(mc, body.Content[0].Carrier), nil
}

func mapCarrier(mc string, c fmcsaCarrier) *domain.Carrier {
	status := c.StatusCode
	switch status {
	case "A":
		status = domain.StatusActive
	case "":
		status = "I"
	}

	authority := c.CommonAuthorityStatus
	if authority == "" {
		authority = "I"
	}

	safety := c.SafetyRating
	if safety == "" {
		safety = "N"
	}

	var entity string
	if c.CensusTypeID != nil {
		entity = c.CensusTypeID.CensusTypeDesc
	}

	var addr []string
	for _, part := range []string{c.PhyStreet, c.PhyCity, c.PhyState, c.PhyZipcode} {
		if part != "" {
			addr = append(addr, part)
		}
	}

	var oosDate string
	if c.OOSDate != nil {
		oosDate = *c.OOSDate
	}

	return &domain.Carrier{
		MCNumber:            mc,
		DOTNumber:           c.DOTNumber.String(),
		LegalName:           cmp.Or(c.LegalName, "UNKNOWN"),
		DBAName:             c.DBAName,
		Status:              status,
		AuthorityStatus:     authority,
		EntityType:          entity,
		SafetyRating:        safety,
		OutOfService:        c.AllowedToOperate != "" && c.AllowedToOperate != "Y",
		Phone:               c.PhoneNumber,
		PhysicalAddress:     strings.Join(addr, ", "),
		BIPDInsuranceOnFile: atoi(c.BIPDInsuranceOnFile),
		BIPDRequiredAmount:  atoi(c.BIPDRequiredAmount),
		TotalPowerUnits:     atoi(c.TotalPowerUnits),
		TotalDrivers:        atoi(c.TotalDrivers),
		CrashTotal:          atoi(c.CrashTotal),
		DriverOOSRate:       atof(c.DriverOOSRate),
		MCS150Outdated:      c.MCS150Outdated == "Y",
		OOSDate:             oosDate,
	}
}

// flexNumber accepts a JSON number, a quoted number, an empty string or null.
type flexNumber string

func (n *flexNumber) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "null" {
		s = ""
	}
	*n = flexNumber(s)
	return nil
}

func (n flexNumber) String() string { return string(n) }

func atoi(n flexNumber) int {
	return int(atof(n))
}

func atof(n flexNumber) float64 {
	v, err := strconv.ParseFloat(string(n), 64)
	if err != nil {
		return 0
	}
	return v
}
