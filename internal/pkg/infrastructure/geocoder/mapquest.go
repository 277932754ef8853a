package geocoder

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/diwise/devcamper-api/pkg/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const DefaultMapQuestURL string = "https://www.mapquestapi.com"

type mapQuest struct {
	baseURL    string
	apiKey     string
	httpClient http.Client
}

func NewMapQuest(baseURL, apiKey string) Geocoder {
	if baseURL == "" {
		baseURL = DefaultMapQuestURL
	}

	return &mapQuest{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

type mapQuestResponse struct {
	Info struct {
		StatusCode int      `json:"statuscode"`
		Messages   []string `json:"messages"`
	} `json:"info"`
	Results []struct {
		Locations []mapQuestLocation `json:"locations"`
	} `json:"results"`
}

type mapQuestLocation struct {
	Street     string `json:"street"`
	City       string `json:"adminArea5"`
	State      string `json:"adminArea3"`
	Country    string `json:"adminArea1"`
	PostalCode string `json:"postalCode"`
	LatLng     struct {
		Lat float64 `json:"lat"`
		Lng float64 `json:"lng"`
	} `json:"latLng"`
}

func (l mapQuestLocation) toLocation() types.Location {
	loc := types.NewPoint(l.LatLng.Lat, l.LatLng.Lng)
	loc.Street = l.Street
	loc.City = l.City
	loc.State = l.State
	loc.Zipcode = l.PostalCode
	loc.Country = l.Country

	parts := []string{}
	for _, p := range []string{l.Street, l.City, strings.TrimSpace(l.State + " " + l.PostalCode), l.Country} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	loc.FormattedAddress = strings.Join(parts, ", ")

	return loc
}

func (m *mapQuest) Geocode(ctx context.Context, address string) ([]types.Location, error) {
	var err error
	ctx, span := tracer.Start(ctx, "geocode")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	log := logging.GetFromContext(ctx)

	params := url.Values{}
	params.Set("key", m.apiKey)
	params.Set("location", address)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, m.baseURL+"/geocoding/v1/address?"+params.Encode(), nil)
	if err != nil {
		err = fmt.Errorf("failed to create http request: %w", err)
		return nil, err
	}

	req.Header.Add("Accept", "application/json")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		err = fmt.Errorf("failed to geocode address: %w", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err = fmt.Errorf("geocoding request failed with status code %d", resp.StatusCode)
		return nil, err
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		err = fmt.Errorf("failed to read response body: %w", err)
		return nil, err
	}

	result := mapQuestResponse{}

	err = json.Unmarshal(respBody, &result)
	if err != nil {
		err = fmt.Errorf("failed to unmarshal response body: %w", err)
		return nil, err
	}

	if result.Info.StatusCode != 0 {
		err = fmt.Errorf("geocoding failed with status code %d: %s", result.Info.StatusCode, strings.Join(result.Info.Messages, ", "))
		return nil, err
	}

	locations := []types.Location{}
	for _, r := range result.Results {
		for _, l := range r.Locations {
			locations = append(locations, l.toLocation())
		}
	}

	log.Debug().Str("address", address).Msgf("geocoded into %d locations", len(locations))

	return locations, nil
}
