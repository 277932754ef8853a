package geocoder

import (
	"context"

	"github.com/diwise/devcamper-api/pkg/types"
	"go.opentelemetry.io/otel"
)

//go:generate moq -rm -out geocoder_mock.go . Geocoder

// Geocoder resolves a free form address, such as a zipcode, into candidate locations
// ordered by relevance. An address without matches yields an empty slice and no error.
type Geocoder interface {
	Geocode(ctx context.Context, address string) ([]types.Location, error)
}

var tracer = otel.Tracer("devcamper-api/geocoder")
