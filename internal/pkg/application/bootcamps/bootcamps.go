package bootcamps

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/diwise/devcamper-api/internal/pkg/application/events"
	"github.com/diwise/devcamper-api/internal/pkg/infrastructure/geocoder"
	"github.com/diwise/devcamper-api/internal/pkg/infrastructure/repositories/database"
	"github.com/diwise/devcamper-api/pkg/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("devcamper-api/bootcamps")

const InvalidDistance string = "Please provide a valid distance"

//go:generate moq -rm -out bootcamps_mock.go . BootcampService

type BootcampService interface {
	Query(ctx context.Context, q types.QueryParams) (types.Collection[types.Bootcamp], error)
	Get(ctx context.Context, id string) (types.Bootcamp, error)
	Create(ctx context.Context, bootcamp types.Bootcamp) (types.Bootcamp, error)
	Update(ctx context.Context, id string, fields map[string]any) (types.Bootcamp, error)
	Delete(ctx context.Context, id string) error
	WithinRadius(ctx context.Context, zipcode string, distanceKm float64) ([]types.Bootcamp, error)
}

type service struct {
	repo     database.BootcampRepository
	geocoder geocoder.Geocoder
	sender   events.EventSender
	validate *validator.Validate
	now      func() time.Time
}

func New(repo database.BootcampRepository, g geocoder.Geocoder, sender events.EventSender) BootcampService {
	return &service{
		repo:     repo,
		geocoder: g,
		sender:   sender,
		validate: newValidator(),
		now:      time.Now,
	}
}

func (s *service) Query(ctx context.Context, q types.QueryParams) (types.Collection[types.Bootcamp], error) {
	return s.repo.Query(ctx, q)
}

func (s *service) Get(ctx context.Context, id string) (types.Bootcamp, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Create(ctx context.Context, bootcamp types.Bootcamp) (types.Bootcamp, error) {
	var err error
	ctx, span := tracer.Start(ctx, "create-bootcamp")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	log := logging.GetFromContext(ctx)

	bootcamp.ID = ""
	bootcamp.Name = strings.TrimSpace(bootcamp.Name)
	bootcamp.Description = strings.TrimSpace(bootcamp.Description)
	bootcamp.Address = strings.TrimSpace(bootcamp.Address)

	err = validationError(s.validate.Struct(bootcamp))
	if err != nil {
		return types.Bootcamp{}, err
	}

	bootcamp.Slug = Slugify(bootcamp.Name)

	if bootcamp.Photo == "" {
		bootcamp.Photo = types.DefaultPhoto
	}

	for _, b := range []**bool{&bootcamp.Housing, &bootcamp.JobAssistance, &bootcamp.JobGuarantee, &bootcamp.AcceptGi} {
		if *b == nil {
			*b = new(bool)
		}
	}

	createdAt := s.now().UTC()
	bootcamp.CreatedAt = &createdAt

	if bootcamp.Location == nil && bootcamp.Address != "" {
		var locations []types.Location
		locations, err = s.geocoder.Geocode(ctx, bootcamp.Address)
		if err != nil {
			return types.Bootcamp{}, err
		}

		if len(locations) > 0 {
			bootcamp.Location = &locations[0]
		} else {
			log.Warn().Str("address", bootcamp.Address).Msg("no location found for address")
		}
	}

	bootcamp, err = s.repo.Add(ctx, bootcamp)
	if err != nil {
		return types.Bootcamp{}, err
	}

	log.Info().Str("bootcamp", bootcamp.ID).Msg("bootcamp created")

	s.publish(ctx, &types.BootcampCreated{
		BootcampID: bootcamp.ID,
		Name:       bootcamp.Name,
		Timestamp:  createdAt,
	})

	return bootcamp, nil
}

// Update applies the known fields in fields to the bootcamp with the given id. Fields
// set to nil are removed from the document. Unknown fields are ignored.
func (s *service) Update(ctx context.Context, id string, fields map[string]any) (types.Bootcamp, error) {
	var err error
	ctx, span := tracer.Start(ctx, "update-bootcamp")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	var changes map[string]any
	changes, err = s.changes(fields)
	if err != nil {
		return types.Bootcamp{}, err
	}

	bootcamp, err := s.repo.Update(ctx, id, changes)
	if err != nil {
		return types.Bootcamp{}, err
	}

	s.publish(ctx, &types.BootcampUpdated{
		BootcampID: bootcamp.ID,
		Name:       bootcamp.Name,
		Timestamp:  s.now().UTC(),
	})

	return bootcamp, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	bootcamp, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}

	s.publish(ctx, &types.BootcampDeleted{
		BootcampID: bootcamp.ID,
		Timestamp:  s.now().UTC(),
	})

	return nil
}

func (s *service) WithinRadius(ctx context.Context, zipcode string, distanceKm float64) ([]types.Bootcamp, error) {
	var err error
	ctx, span := tracer.Start(ctx, "bootcamps-within-radius")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	if distanceKm < 0 || math.IsNaN(distanceKm) || math.IsInf(distanceKm, 0) {
		err = database.ValidationFailed(InvalidDistance)
		return nil, err
	}

	locations, err := s.geocoder.Geocode(ctx, zipcode)
	if err != nil {
		return nil, err
	}

	if len(locations) == 0 {
		err = database.WithStatus(http.StatusNotFound, fmt.Sprintf("No location found for zipcode %s", zipcode), nil)
		return nil, err
	}

	var bootcamps []types.Bootcamp
	bootcamps, err = s.repo.WithinRadius(ctx, locations[0], database.RadiusFromDistance(distanceKm))

	return bootcamps, err
}

func (s *service) publish(ctx context.Context, event events.Event) {
	if s.sender == nil {
		return
	}

	err := s.sender.Send(ctx, event)
	if err != nil {
		log := logging.GetFromContext(ctx)
		log.Error().Err(err).Msgf("failed to send %s", event.TopicName())
	}
}

type updatableField struct {
	name     string
	required bool
	value    func(b types.Bootcamp) any
}

var updatableFields = map[string]updatableField{
	"name":          {name: "Name", required: true, value: func(b types.Bootcamp) any { return b.Name }},
	"description":   {name: "Description", required: true, value: func(b types.Bootcamp) any { return b.Description }},
	"website":       {name: "Website", value: func(b types.Bootcamp) any { return b.Website }},
	"phone":         {name: "Phone", value: func(b types.Bootcamp) any { return b.Phone }},
	"email":         {name: "Email", value: func(b types.Bootcamp) any { return b.Email }},
	"address":       {name: "Address", value: func(b types.Bootcamp) any { return b.Address }},
	"location":      {name: "Location", value: func(b types.Bootcamp) any { return b.Location }},
	"careers":       {name: "Careers", required: true, value: func(b types.Bootcamp) any { return b.Careers }},
	"averageRating": {name: "AverageRating", value: func(b types.Bootcamp) any { return b.AverageRating }},
	"averageCost":   {name: "AverageCost", value: func(b types.Bootcamp) any { return b.AverageCost }},
	"photo":         {name: "Photo", value: func(b types.Bootcamp) any { return b.Photo }},
	"housing":       {name: "Housing", value: func(b types.Bootcamp) any { return b.Housing }},
	"jobAssistance": {name: "JobAssistance", value: func(b types.Bootcamp) any { return b.JobAssistance }},
	"jobGuarantee":  {name: "JobGuarantee", value: func(b types.Bootcamp) any { return b.JobGuarantee }},
	"acceptGi":      {name: "AcceptGi", value: func(b types.Bootcamp) any { return b.AcceptGi }},
}

var requiredMessages = map[string]string{
	"name":        "Please add a name",
	"description": "Please add a description",
	"careers":     "Please add at least one career",
}

// changes converts decoded json fields into typed values and validates each of them
func (s *service) changes(fields map[string]any) (map[string]any, error) {
	known := map[string]any{}
	for k, v := range fields {
		if _, ok := updatableFields[k]; ok {
			known[k] = v
		}
	}

	b := types.Bootcamp{}

	buf, err := json.Marshal(known)
	if err != nil {
		return nil, database.ValidationFailed(err.Error())
	}

	err = json.Unmarshal(buf, &b)
	if err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, database.ValidationFailed(fmt.Sprintf("Invalid value for %s", typeErr.Field))
		}
		return nil, database.ValidationFailed(err.Error())
	}

	b.Name = strings.TrimSpace(b.Name)
	b.Description = strings.TrimSpace(b.Description)
	b.Address = strings.TrimSpace(b.Address)

	msgs := []string{}
	changes := map[string]any{}
	partial := []string{}

	keys := lo.Keys(known)
	sort.Strings(keys)

	for _, k := range keys {
		v := known[k]
		f := updatableFields[k]

		if v == nil {
			if f.required {
				msgs = append(msgs, requiredMessages[k])
				continue
			}
			changes[k] = nil
			continue
		}

		changes[k] = f.value(b)
		partial = append(partial, f.name)

		if k == "location" {
			partial = append(partial, "Location.Type", "Location.Coordinates")
		}
	}

	if len(partial) > 0 {
		err = validationError(s.validate.StructPartial(b, partial...))
		if err != nil {
			var e *database.Error
			if errors.As(err, &e) {
				msgs = append(msgs, e.Messages...)
			}
		}
	}

	if len(msgs) > 0 {
		return nil, database.ValidationFailed(msgs...)
	}

	if name, ok := changes["name"]; ok {
		changes["slug"] = Slugify(name.(string))
	}

	return changes, nil
}
