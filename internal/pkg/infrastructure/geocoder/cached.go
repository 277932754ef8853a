package geocoder

import (
	"context"

	"github.com/diwise/devcamper-api/internal/pkg/infrastructure/repositories/geocache"
	"github.com/diwise/devcamper-api/pkg/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
)

type cached struct {
	inner Geocoder
	cache geocache.Cache
}

// NewCached returns a Geocoder that remembers the best match for every address it
// has resolved through inner. Cache failures are logged and fall through to inner.
func NewCached(inner Geocoder, cache geocache.Cache) Geocoder {
	return &cached{
		inner: inner,
		cache: cache,
	}
}

func (c *cached) Geocode(ctx context.Context, address string) ([]types.Location, error) {
	log := logging.GetFromContext(ctx)

	loc, ok, err := c.cache.Get(ctx, address)
	if err != nil {
		log.Error().Err(err).Msg("failed to read from geocode cache")
	} else if ok {
		return []types.Location{loc}, nil
	}

	locations, err := c.inner.Geocode(ctx, address)
	if err != nil {
		return nil, err
	}

	if len(locations) > 0 {
		err = c.cache.Put(ctx, address, locations[0])
		if err != nil {
			log.Error().Err(err).Msg("failed to write to geocode cache")
		}
	}

	return locations, nil
}
