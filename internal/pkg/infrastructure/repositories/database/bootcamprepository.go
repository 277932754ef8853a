package database

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/diwise/devcamper-api/pkg/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

//go:generate moq -rm -out bootcamprepository_mock.go . BootcampRepository

type BootcampRepository interface {
	Query(ctx context.Context, q types.QueryParams) (types.Collection[types.Bootcamp], error)
	GetByID(ctx context.Context, id string) (types.Bootcamp, error)
	Add(ctx context.Context, bootcamp types.Bootcamp) (types.Bootcamp, error)
	Update(ctx context.Context, id string, fields map[string]any) (types.Bootcamp, error)
	Delete(ctx context.Context, id string) (types.Bootcamp, error)
	WithinRadius(ctx context.Context, center types.Location, radius float64) ([]types.Bootcamp, error)
}

const BootcampCollection string = "bootcamps"

// documentValidationFailure is the server error code for a write rejected by a
// collection validator
const documentValidationFailure int = 121

// geoKeyExtractionFailure is reported when a document holds a location that does
// not fit the 2dsphere index
const geoKeyExtractionFailure int = 16755

const InvalidLocationMessage string = "Please provide a valid GeoJSON point as location"

type bootcampDocument struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	types.Bootcamp `bson:",inline"`
}

func (d bootcampDocument) toModel() types.Bootcamp {
	b := d.Bootcamp
	if !d.ID.IsZero() {
		b.ID = d.ID.Hex()
	}
	return b
}

type bootcampRepository struct {
	c *mongo.Collection
}

func NewBootcampRepository(ctx context.Context, connect ConnectorFunc) (BootcampRepository, error) {
	db, err := connect()
	if err != nil {
		return nil, err
	}

	c := db.Collection(BootcampCollection)

	_, err = c.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "location", Value: "2dsphere"}},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create indexes on %s: %w", BootcampCollection, err)
	}

	return newBootcampRepository(c), nil
}

func newBootcampRepository(c *mongo.Collection) *bootcampRepository {
	return &bootcampRepository{c: c}
}

func (r *bootcampRepository) Query(ctx context.Context, q types.QueryParams) (types.Collection[types.Bootcamp], error) {
	fq := NewFindQuery(q)

	total, err := r.c.CountDocuments(ctx, fq.Filter)
	if err != nil {
		return types.Collection[types.Bootcamp]{}, r.mapError(ctx, err)
	}

	opts := options.Find().SetSort(fq.Sort).SetSkip(fq.Skip).SetLimit(fq.Limit)
	if fq.Projection != nil {
		opts = opts.SetProjection(fq.Projection)
	}

	bootcamps, err := r.find(ctx, fq.Filter, opts)
	if err != nil {
		return types.Collection[types.Bootcamp]{}, err
	}

	return types.Collection[types.Bootcamp]{
		Data:  bootcamps,
		Count: uint64(len(bootcamps)),
		Page:  uint64(q.Page),
		Limit: uint64(q.Limit),
		Total: uint64(total),
	}, nil
}

func (r *bootcampRepository) GetByID(ctx context.Context, id string) (types.Bootcamp, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return types.Bootcamp{}, NotFound(id)
	}

	doc := bootcampDocument{}

	err = r.c.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return types.Bootcamp{}, NotFound(id)
		}
		return types.Bootcamp{}, r.mapError(ctx, err)
	}

	return doc.toModel(), nil
}

func (r *bootcampRepository) Add(ctx context.Context, bootcamp types.Bootcamp) (types.Bootcamp, error) {
	doc := bootcampDocument{
		ID:       primitive.NewObjectID(),
		Bootcamp: bootcamp,
	}

	_, err := r.c.InsertOne(ctx, doc)
	if err != nil {
		return types.Bootcamp{}, r.mapError(ctx, err)
	}

	return doc.toModel(), nil
}

func (r *bootcampRepository) Update(ctx context.Context, id string, fields map[string]any) (types.Bootcamp, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return types.Bootcamp{}, NotFound(id)
	}

	set := bson.D{}
	unset := bson.D{}

	keys := lo.Keys(fields)
	sort.Strings(keys)

	for _, k := range keys {
		v := fields[k]
		if v == nil {
			unset = append(unset, bson.E{Key: k, Value: ""})
		} else {
			set = append(set, bson.E{Key: k, Value: v})
		}
	}

	update := bson.D{}
	if len(set) > 0 {
		update = append(update, bson.E{Key: "$set", Value: set})
	}
	if len(unset) > 0 {
		update = append(update, bson.E{Key: "$unset", Value: unset})
	}

	filter := bson.D{{Key: "_id", Value: oid}}
	doc := bootcampDocument{}

	if len(update) == 0 {
		err = r.c.FindOne(ctx, filter).Decode(&doc)
	} else {
		opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
		err = r.c.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc)
	}

	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return types.Bootcamp{}, NotFound(id)
		}
		return types.Bootcamp{}, r.mapError(ctx, err)
	}

	return doc.toModel(), nil
}

func (r *bootcampRepository) Delete(ctx context.Context, id string) (types.Bootcamp, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return types.Bootcamp{}, NotFound(id)
	}

	doc := bootcampDocument{}

	err = r.c.FindOneAndDelete(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return types.Bootcamp{}, NotFound(id)
		}
		return types.Bootcamp{}, r.mapError(ctx, err)
	}

	return doc.toModel(), nil
}

func (r *bootcampRepository) WithinRadius(ctx context.Context, center types.Location, radius float64) ([]types.Bootcamp, error) {
	return r.find(ctx, NewRadiusFilter(center, radius), options.Find())
}

func (r *bootcampRepository) find(ctx context.Context, filter bson.D, opts *options.FindOptions) ([]types.Bootcamp, error) {
	cursor, err := r.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, r.mapError(ctx, err)
	}

	docs := []bootcampDocument{}

	err = cursor.All(ctx, &docs)
	if err != nil {
		return nil, r.mapError(ctx, err)
	}

	bootcamps := make([]types.Bootcamp, 0, len(docs))
	for _, d := range docs {
		bootcamps = append(bootcamps, d.toModel())
	}

	return bootcamps, nil
}

func (r *bootcampRepository) mapError(ctx context.Context, err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return DuplicateKey(err)
	}

	var se mongo.ServerError
	if errors.As(err, &se) && se.HasErrorCode(geoKeyExtractionFailure) {
		return &Error{Kind: KindValidationFailed, Messages: []string{InvalidLocationMessage}, Err: err}
	}

	var we mongo.WriteException
	if errors.As(err, &we) {
		for _, e := range we.WriteErrors {
			if e.Code == documentValidationFailure {
				return &Error{Kind: KindValidationFailed, Messages: []string{e.Message}, Err: err}
			}
		}
	}

	logger := logging.GetFromContext(ctx)
	logger.Error().Err(err).Msg("mongo error")

	return fmt.Errorf("could not access %s: %w", BootcampCollection, err)
}
