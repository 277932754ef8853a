package types

import (
	"time"
)

type Bootcamp struct {
	ID            string     `json:"id,omitempty" bson:"-"`
	Name          string     `json:"name,omitempty" bson:"name,omitempty" validate:"required,max=50"`
	Slug          string     `json:"slug,omitempty" bson:"slug,omitempty"`
	Description   string     `json:"description,omitempty" bson:"description,omitempty" validate:"required,max=500"`
	Website       string     `json:"website,omitempty" bson:"website,omitempty" validate:"omitempty,weburl"`
	Phone         string     `json:"phone,omitempty" bson:"phone,omitempty" validate:"max=20"`
	Email         string     `json:"email,omitempty" bson:"email,omitempty" validate:"omitempty,email"`
	Address       string     `json:"address,omitempty" bson:"address,omitempty"`
	Location      *Location  `json:"location,omitempty" bson:"location,omitempty"`
	Careers       []string   `json:"careers,omitempty" bson:"careers,omitempty" validate:"min=1,dive,career"`
	AverageRating *float64   `json:"averageRating,omitempty" bson:"averageRating,omitempty" validate:"omitnil,min=1,max=10"`
	AverageCost   *float64   `json:"averageCost,omitempty" bson:"averageCost,omitempty" validate:"omitnil,min=0"`
	Photo         string     `json:"photo,omitempty" bson:"photo,omitempty"`
	Housing       *bool      `json:"housing,omitempty" bson:"housing,omitempty"`
	JobAssistance *bool      `json:"jobAssistance,omitempty" bson:"jobAssistance,omitempty"`
	JobGuarantee  *bool      `json:"jobGuarantee,omitempty" bson:"jobGuarantee,omitempty"`
	AcceptGi      *bool      `json:"acceptGi,omitempty" bson:"acceptGi,omitempty"`
	CreatedAt     *time.Time `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
}

const DefaultPhoto string = "no-photo.jpg"

var Careers = []string{
	"Web Development",
	"Mobile Development",
	"UI/UX",
	"Data Science",
	"Business",
	"Other",
}

// Location is a GeoJSON point. Coordinates are stored as [longitude, latitude].
type Location struct {
	Type             string    `json:"type" bson:"type" validate:"eq=Point"`
	Coordinates      []float64 `json:"coordinates" bson:"coordinates" validate:"len=2,lnglat"`
	FormattedAddress string    `json:"formattedAddress,omitempty" bson:"formattedAddress,omitempty"`
	Street           string    `json:"street,omitempty" bson:"street,omitempty"`
	City             string    `json:"city,omitempty" bson:"city,omitempty"`
	State            string    `json:"state,omitempty" bson:"state,omitempty"`
	Zipcode          string    `json:"zipcode,omitempty" bson:"zipcode,omitempty"`
	Country          string    `json:"country,omitempty" bson:"country,omitempty"`
}

func NewPoint(latitude, longitude float64) Location {
	return Location{
		Type:        "Point",
		Coordinates: []float64{longitude, latitude},
	}
}

func (l Location) Longitude() float64 {
	if len(l.Coordinates) < 2 {
		return 0
	}
	return l.Coordinates[0]
}

func (l Location) Latitude() float64 {
	if len(l.Coordinates) < 2 {
		return 0
	}
	return l.Coordinates[1]
}

type Collection[T any] struct {
	Data  []T
	Count uint64
	Page  uint64
	Limit uint64
	Total uint64
}
