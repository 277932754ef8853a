package geocoder

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/diwise/devcamper-api/pkg/types"
	"gopkg.in/yaml.v2"
)

type staticLocation struct {
	Address          string  `yaml:"address"`
	Latitude         float64 `yaml:"latitude"`
	Longitude        float64 `yaml:"longitude"`
	FormattedAddress string  `yaml:"formattedAddress"`
	Street           string  `yaml:"street"`
	City             string  `yaml:"city"`
	State            string  `yaml:"state"`
	Zipcode          string  `yaml:"zipcode"`
	Country          string  `yaml:"country"`
}

type staticConfig struct {
	Locations []staticLocation `yaml:"locations"`
}

type static struct {
	locations map[string]types.Location
}

// NewStatic reads a fixed set of address to location mappings from yaml
func NewStatic(r io.Reader) (Geocoder, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	cfg := &staticConfig{}
	err = yaml.Unmarshal(buf, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse static locations: %w", err)
	}

	s := &static{locations: map[string]types.Location{}}

	for _, l := range cfg.Locations {
		if l.Address == "" {
			return nil, fmt.Errorf("static location without address")
		}

		loc := types.NewPoint(l.Latitude, l.Longitude)
		loc.FormattedAddress = l.FormattedAddress
		loc.Street = l.Street
		loc.City = l.City
		loc.State = l.State
		loc.Zipcode = l.Zipcode
		loc.Country = l.Country

		s.locations[normalize(l.Address)] = loc
	}

	return s, nil
}

func (s *static) Geocode(ctx context.Context, address string) ([]types.Location, error) {
	loc, ok := s.locations[normalize(address)]
	if !ok {
		return []types.Location{}, nil
	}
	return []types.Location{loc}, nil
}

func normalize(address string) string {
	return strings.ToLower(strings.Join(strings.Fields(address), " "))
}
