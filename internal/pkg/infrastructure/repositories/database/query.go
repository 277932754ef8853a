package database

import (
	"strings"

	"github.com/diwise/devcamper-api/pkg/types"
	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EarthRadiusKm is the radius used to turn a distance into radians for $centerSphere
const EarthRadiusKm float64 = 6368

type FindQuery struct {
	Filter     bson.D
	Projection bson.D
	Sort       bson.D
	Skip       int64
	Limit      int64
}

var operators = map[types.Operator]string{
	types.OpEq:  "$eq",
	types.OpGt:  "$gt",
	types.OpGte: "$gte",
	types.OpLt:  "$lt",
	types.OpLte: "$lte",
	types.OpIn:  "$in",
}

func NewFindQuery(q types.QueryParams) FindQuery {
	fq := FindQuery{
		Filter: NewFilter(q.Filters),
		Skip:   int64(q.Skip()),
		Limit:  int64(q.Limit),
	}

	if len(q.Select) > 0 {
		fq.Projection = NewProjection(q.Select)
	}

	sortFields := q.Sort
	if len(sortFields) == 0 {
		sortFields = types.DefaultSort
	}

	fq.Sort = bson.D{}
	for _, s := range sortFields {
		direction := 1
		if s.Desc {
			direction = -1
		}
		fq.Sort = append(fq.Sort, bson.E{Key: s.Field, Value: direction})
	}

	return fq
}

// NewProjection includes the selected fields, or excludes those prefixed with -. When
// both kinds are given the inclusions win, as only _id may be excluded from an inclusion.
func NewProjection(fields []string) bson.D {
	included := lo.Reject(fields, func(f string, _ int) bool { return strings.HasPrefix(f, "-") })

	projection := bson.D{}
	for _, f := range fields {
		name, excluded := strings.CutPrefix(f, "-")
		if !excluded {
			projection = append(projection, bson.E{Key: name, Value: 1})
		} else if len(included) == 0 || name == "_id" {
			projection = append(projection, bson.E{Key: name, Value: 0})
		}
	}

	return projection
}

// NewFilter builds a filter document from the typed filters. Several operators on the
// same field are merged into a single operator document.
func NewFilter(filters []types.Filter) bson.D {
	order := []string{}
	byField := map[string][]types.Filter{}

	for _, f := range filters {
		if _, ok := byField[f.Field]; !ok {
			order = append(order, f.Field)
		}
		byField[f.Field] = append(byField[f.Field], f)
	}

	filter := bson.D{}

	for _, field := range order {
		ff := byField[field]

		if len(ff) == 1 && ff[0].Op == types.OpEq {
			filter = append(filter, bson.E{Key: field, Value: value(field, ff[0].Value)})
			continue
		}

		ops := bson.D{}
		for _, f := range ff {
			op, ok := operators[f.Op]
			if !ok {
				op = "$eq"
			}
			ops = append(ops, bson.E{Key: op, Value: value(field, f.Value)})
		}

		filter = append(filter, bson.E{Key: field, Value: ops})
	}

	return filter
}

// NewRadiusFilter selects documents located within the spherical cap of radius radians
// centered on loc.
func NewRadiusFilter(loc types.Location, radius float64) bson.D {
	return bson.D{
		{Key: "location", Value: bson.D{
			{Key: "$geoWithin", Value: bson.D{
				{Key: "$centerSphere", Value: bson.A{
					bson.A{loc.Longitude(), loc.Latitude()},
					radius,
				}},
			}},
		}},
	}
}

func RadiusFromDistance(distanceKm float64) float64 {
	return distanceKm / EarthRadiusKm
}

func value(field string, v any) any {
	if field != "_id" {
		return v
	}

	switch id := v.(type) {
	case string:
		if oid, err := primitive.ObjectIDFromHex(id); err == nil {
			return oid
		}
	case []any:
		ids := make([]any, 0, len(id))
		for _, i := range id {
			ids = append(ids, value(field, i))
		}
		return ids
	}

	return v
}
