package api

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/diwise/devcamper-api/pkg/types"
)

type ApiResponse struct {
	Success    bool              `json:"success"`
	Count      *int              `json:"count,omitempty"`
	Total      *uint64           `json:"total,omitempty"`
	Pagination *types.Pagination `json:"pagination,omitempty"`
	Data       any               `json:"data"`
}

type deleted struct {
	Msg string `json:"msg"`
}

const DeletedMessage string = "bootcamp deleted successfully"

type GeoJSONFeatureCollection struct {
	Type       string            `json:"type"`
	Features   []GeoJSONFeature  `json:"features"`
	Total      *uint64           `json:"total,omitempty"`
	Pagination *types.Pagination `json:"pagination,omitempty"`
}

func NewFeatureCollection() *GeoJSONFeatureCollection {
	fc := &GeoJSONFeatureCollection{
		Type:     "FeatureCollection",
		Features: []GeoJSONFeature{},
	}
	return fc
}

type GeoJSONFeature struct {
	ID         string         `json:"id"`
	Type       string         `json:"type"`
	Geometry   any            `json:"geometry"`
	Properties map[string]any `json:"properties"`
}

// GeoJSONPropertyPoint is used as the geometry of a bootcamp feature
type GeoJSONPropertyPoint struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"`
}

func NewFeatureCollectionWithBootcamps(bootcamps []types.Bootcamp) (*GeoJSONFeatureCollection, error) {
	fc := NewFeatureCollection()

	for _, b := range bootcamps {
		f, err := ConvertBootcamp(b)
		if err != nil {
			return nil, err
		}
		fc.Features = append(fc.Features, *f)
	}

	return fc, nil
}

// ConvertBootcamp creates a feature with the bootcamp attributes as properties. Bootcamps
// without a location get a null geometry.
func ConvertBootcamp(b types.Bootcamp) (*GeoJSONFeature, error) {
	feature := &GeoJSONFeature{
		ID:         b.ID,
		Type:       "Feature",
		Properties: map[string]any{},
	}

	if b.Location != nil && len(b.Location.Coordinates) == 2 {
		feature.Geometry = GeoJSONPropertyPoint{
			Type:        "Point",
			Coordinates: [2]float64{b.Location.Longitude(), b.Location.Latitude()},
		}
	}

	props := b
	props.ID = ""
	props.Location = nil

	buf, err := json.Marshal(props)
	if err != nil {
		return nil, err
	}

	err = json.Unmarshal(buf, &feature.Properties)
	if err != nil {
		return nil, err
	}

	if b.Location != nil && b.Location.FormattedAddress != "" {
		feature.Properties["formattedAddress"] = b.Location.FormattedAddress
	}

	return feature, nil
}

func writeCsvWithBootcamps(w io.Writer, bootcamps []types.Bootcamp) error {
	header := []string{"id", "name", "slug", "lat", "lon", "city", "zipcode", "careers", "averageCost", "averageRating", "website", "email", "phone"}
	rows := [][]string{header}

	optional := func(f *float64) string {
		if f == nil {
			return ""
		}
		return fmt.Sprintf("%g", *f)
	}

	for _, b := range bootcamps {
		lat, lon, city, zipcode := "", "", "", ""
		if b.Location != nil {
			lat = fmt.Sprintf("%f", b.Location.Latitude())
			lon = fmt.Sprintf("%f", b.Location.Longitude())
			city = b.Location.City
			zipcode = b.Location.Zipcode
		}

		row := []string{
			b.ID,
			b.Name,
			b.Slug,
			lat,
			lon,
			city,
			zipcode,
			strings.Join(b.Careers, ","),
			optional(b.AverageCost),
			optional(b.AverageRating),
			b.Website,
			b.Email,
			b.Phone,
		}
		rows = append(rows, row)
	}

	cw := csv.NewWriter(w)
	cw.Comma = ';'

	return cw.WriteAll(rows)
}
