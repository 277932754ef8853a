package geocache

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/diwise/devcamper-api/pkg/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate moq -rm -out cache_mock.go . Cache

// Cache remembers the location an address was geocoded to
type Cache interface {
	Get(ctx context.Context, address string) (types.Location, bool, error)
	Put(ctx context.Context, address string, location types.Location) error
}

type entry struct {
	Address          string `gorm:"primaryKey"`
	Latitude         float64
	Longitude        float64
	FormattedAddress string
	Street           string
	City             string
	State            string
	Zipcode          string
	Country          string
	CachedAt         time.Time `gorm:"index"`
}

func (entry) TableName() string {
	return "geocode_cache"
}

func (e entry) toLocation() types.Location {
	loc := types.NewPoint(e.Latitude, e.Longitude)
	loc.FormattedAddress = e.FormattedAddress
	loc.Street = e.Street
	loc.City = e.City
	loc.State = e.State
	loc.Zipcode = e.Zipcode
	loc.Country = e.Country
	return loc
}

type cache struct {
	db  *gorm.DB
	ttl time.Duration
	now func() time.Time
}

func New(connect ConnectorFunc, ttl time.Duration) (Cache, error) {
	impl, err := connect()
	if err != nil {
		return nil, err
	}

	err = impl.AutoMigrate(&entry{})
	if err != nil {
		return nil, err
	}

	return &cache{
		db:  impl,
		ttl: ttl,
		now: time.Now,
	}, nil
}

func (c *cache) Get(ctx context.Context, address string) (types.Location, bool, error) {
	k := key(address)
	if k == "" {
		return types.Location{}, false, nil
	}

	e := entry{}

	err := c.db.WithContext(ctx).
		Where("address = ?", k).
		First(&e).
		Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return types.Location{}, false, nil
		}
		return types.Location{}, false, err
	}

	if c.ttl > 0 && c.now().Sub(e.CachedAt) > c.ttl {
		logger := logging.GetFromContext(ctx)
		logger.Debug().Str("address", address).Msg("cached location has expired")
		return types.Location{}, false, nil
	}

	return e.toLocation(), true, nil
}

func (c *cache) Put(ctx context.Context, address string, location types.Location) error {
	k := key(address)
	if k == "" {
		return nil
	}

	e := entry{
		Address:          k,
		Latitude:         location.Latitude(),
		Longitude:        location.Longitude(),
		FormattedAddress: location.FormattedAddress,
		Street:           location.Street,
		City:             location.City,
		State:            location.State,
		Zipcode:          location.Zipcode,
		Country:          location.Country,
		CachedAt:         c.now().UTC(),
	}

	return c.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&e).
		Error
}

func key(address string) string {
	return strings.ToLower(strings.Join(strings.Fields(address), " "))
}
