package bootcamps

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/diwise/devcamper-api/internal/pkg/application/events"
	"github.com/diwise/devcamper-api/internal/pkg/infrastructure/geocoder"
	"github.com/diwise/devcamper-api/internal/pkg/infrastructure/repositories/database"
	"github.com/diwise/devcamper-api/pkg/types"
	"github.com/matryer/is"
)

const bootcampID string = "5d713995b721c3bb38c1f5d0"

func TestCreateAppliesDefaults(t *testing.T) {
	is, repo, g, sender, svc := testSetup(t)

	b, err := svc.Create(context.Background(), types.Bootcamp{
		Name:        "  Devworks Bootcamp ",
		Description: "Devworks is a full stack JavaScript Bootcamp",
		Careers:     []string{"Web Development", "UI/UX", "Business"},
	})
	is.NoErr(err)

	is.Equal(b.ID, bootcampID)
	is.Equal(b.Name, "Devworks Bootcamp")
	is.Equal(b.Slug, "devworks-bootcamp")
	is.Equal(b.Photo, types.DefaultPhoto)
	is.True(b.Housing != nil && !*b.Housing)
	is.True(b.AcceptGi != nil && !*b.AcceptGi)
	is.True(b.CreatedAt != nil)
	is.True(b.Location == nil)

	is.Equal(len(repo.AddCalls()), 1)
	is.Equal(len(g.GeocodeCalls()), 0)

	is.Equal(len(sender.SendCalls()), 1)
	is.Equal(sender.SendCalls()[0].Event.TopicName(), "bootcamp.created")
	is.Equal(sender.SendCalls()[0].Event.EntityID(), bootcampID)
}

func TestCreateGeocodesAddress(t *testing.T) {
	is, _, g, _, svc := testSetup(t)

	b, err := svc.Create(context.Background(), types.Bootcamp{
		Name:        "ModernTech Bootcamp",
		Description: "ModernTech has one goal, and that is to make you a rockstar developer",
		Address:     "220 Pawtucket St, Lowell, MA 01854",
		Careers:     []string{"Web Development"},
	})
	is.NoErr(err)

	is.Equal(g.GeocodeCalls()[0].Address, "220 Pawtucket St, Lowell, MA 01854")
	is.True(b.Location != nil)
	is.Equal(b.Location.Coordinates, []float64{-71.07057, 42.34239})
}

func TestCreateKeepsSuppliedLocation(t *testing.T) {
	is, _, g, _, svc := testSetup(t)

	loc := types.NewPoint(1, 2)

	b, err := svc.Create(context.Background(), types.Bootcamp{
		Name:        "Codemasters",
		Description: "Is coding your passion?",
		Address:     "85 South Prospect Street Burlington VT 05405",
		Location:    &loc,
		Careers:     []string{"Data Science"},
	})
	is.NoErr(err)

	is.Equal(len(g.GeocodeCalls()), 0)
	is.Equal(b.Location.Coordinates, []float64{2, 1})
}

func TestCreateReportsAllValidationFailures(t *testing.T) {
	is, repo, _, sender, svc := testSetup(t)

	rating := 11.0
	cost := -1.0

	_, err := svc.Create(context.Background(), types.Bootcamp{
		Website:       "ftp://devworks.com",
		Email:         "not an email",
		Phone:         strings.Repeat("1", 21),
		Careers:       []string{"Web Development", "Cooking"},
		AverageRating: &rating,
		AverageCost:   &cost,
	})

	is.True(errors.Is(err, database.ErrValidationFailed))

	var e *database.Error
	is.True(errors.As(err, &e))
	is.Equal(e.Messages, []string{
		"Please add a name",
		"Please add a description",
		"Please use a valid URL with HTTP or HTTPS",
		"Phone number can not be longer than 20 characters",
		"Please add a valid email",
		"`Cooking` is not a valid career",
		"Rating can not be more than 10",
		"Average cost can not be negative",
	})

	is.Equal(len(repo.AddCalls()), 0)
	is.Equal(len(sender.SendCalls()), 0)
}

func TestCreateRequiresCareers(t *testing.T) {
	is, _, _, _, svc := testSetup(t)

	_, err := svc.Create(context.Background(), types.Bootcamp{
		Name:        strings.Repeat("n", 51),
		Description: "description",
	})

	var e *database.Error
	is.True(errors.As(err, &e))
	is.Equal(e.Messages, []string{"Name can not be more than 50 characters", "Please add at least one career"})
}

func TestCreateRejectsInvalidLocation(t *testing.T) {
	is, _, _, _, svc := testSetup(t)

	_, err := svc.Create(context.Background(), types.Bootcamp{
		Name:        "Devworks Bootcamp",
		Description: "description",
		Careers:     []string{"Other"},
		Location:    &types.Location{Type: "Polygon", Coordinates: []float64{1}},
	})

	is.True(errors.Is(err, database.ErrValidationFailed))
}

func TestCreateRejectsOutOfRangeCoordinates(t *testing.T) {
	is, repo, _, _, svc := testSetup(t)

	for _, coords := range [][]float64{{-200, 42}, {-71, 95}, {181, -91}} {
		_, err := svc.Create(context.Background(), types.Bootcamp{
			Name:        "Devworks Bootcamp",
			Description: "description",
			Careers:     []string{"Other"},
			Location:    &types.Location{Type: "Point", Coordinates: coords},
		})

		var e *database.Error
		is.True(errors.As(err, &e))
		is.Equal(e.Kind, database.KindValidationFailed)
		is.Equal(e.Messages, []string{"Please provide a valid GeoJSON point as location"})
	}

	is.Equal(len(repo.AddCalls()), 0)
}

func TestCreateAcceptsBoundaryCoordinates(t *testing.T) {
	is, _, _, _, svc := testSetup(t)

	_, err := svc.Create(context.Background(), types.Bootcamp{
		Name:        "Devworks Bootcamp",
		Description: "description",
		Careers:     []string{"Other"},
		Location:    &types.Location{Type: "Point", Coordinates: []float64{-180, 90}},
	})
	is.NoErr(err)
}

func TestCreateWithBlankAddressSkipsGeocoding(t *testing.T) {
	is, repo, g, _, svc := testSetup(t)

	b, err := svc.Create(context.Background(), types.Bootcamp{
		Name:        "Devworks Bootcamp",
		Description: "description",
		Address:     "   ",
		Careers:     []string{"Other"},
	})
	is.NoErr(err)

	is.Equal(len(g.GeocodeCalls()), 0)
	is.True(b.Location == nil)
	is.Equal(repo.AddCalls()[0].Bootcamp.Address, "")
}

func TestCreateIgnoresEventFailures(t *testing.T) {
	is, _, _, sender, svc := testSetup(t)

	sender.SendFunc = func(ctx context.Context, event events.Event) error {
		return errors.New("no subscribers reachable")
	}

	_, err := svc.Create(context.Background(), types.Bootcamp{
		Name:        "Devworks Bootcamp",
		Description: "description",
		Careers:     []string{"Other"},
	})
	is.NoErr(err)
}

func TestUpdateValidatesOnlyGivenFields(t *testing.T) {
	is, repo, _, sender, svc := testSetup(t)

	b, err := svc.Update(context.Background(), bootcampID, map[string]any{
		"name":          "Devcentral Bootcamp",
		"housing":       true,
		"averageCost":   12000.0,
		"somethingElse": "ignored",
	})
	is.NoErr(err)
	is.Equal(b.ID, bootcampID)

	fields := repo.UpdateCalls()[0].Fields
	is.Equal(len(fields), 4)
	is.Equal(fields["name"], "Devcentral Bootcamp")
	is.Equal(fields["slug"], "devcentral-bootcamp")
	is.Equal(*fields["housing"].(*bool), true)
	is.Equal(*fields["averageCost"].(*float64), 12000.0)

	is.Equal(sender.SendCalls()[0].Event.TopicName(), "bootcamp.updated")
}

func TestUpdateUnsetsOptionalFields(t *testing.T) {
	is, repo, _, _, svc := testSetup(t)

	_, err := svc.Update(context.Background(), bootcampID, map[string]any{"website": nil})
	is.NoErr(err)

	fields := repo.UpdateCalls()[0].Fields
	v, ok := fields["website"]
	is.True(ok)
	is.True(v == nil)
}

func TestUpdateRejectsInvalidValues(t *testing.T) {
	is, repo, _, _, svc := testSetup(t)

	_, err := svc.Update(context.Background(), bootcampID, map[string]any{
		"name":          nil,
		"averageRating": 0.5,
		"careers":       []any{"Knitting"},
	})

	var e *database.Error
	is.True(errors.As(err, &e))
	is.Equal(e.Kind, database.KindValidationFailed)
	is.Equal(e.Messages, []string{"Please add a name", "`Knitting` is not a valid career", "Rating must be at least 1"})
	is.Equal(len(repo.UpdateCalls()), 0)
}

func TestUpdateRejectsOutOfRangeCoordinates(t *testing.T) {
	is, repo, _, _, svc := testSetup(t)

	_, err := svc.Update(context.Background(), bootcampID, map[string]any{
		"location": map[string]any{"type": "Point", "coordinates": []any{-71.06, 420.0}},
	})

	var e *database.Error
	is.True(errors.As(err, &e))
	is.Equal(e.Messages, []string{"Please provide a valid GeoJSON point as location"})
	is.Equal(len(repo.UpdateCalls()), 0)
}

func TestUpdateRejectsWronglyTypedValues(t *testing.T) {
	is, _, _, _, svc := testSetup(t)

	_, err := svc.Update(context.Background(), bootcampID, map[string]any{"housing": "maybe"})

	is.True(errors.Is(err, database.ErrValidationFailed))
	is.Equal(err.Error(), "validation failed: Invalid value for housing")
}

func TestUpdateOfUnknownBootcamp(t *testing.T) {
	is, repo, _, sender, svc := testSetup(t)

	repo.UpdateFunc = func(ctx context.Context, id string, fields map[string]any) (types.Bootcamp, error) {
		return types.Bootcamp{}, database.NotFound(id)
	}

	_, err := svc.Update(context.Background(), "nosuchbootcamp", map[string]any{"phone": "555"})
	is.True(errors.Is(err, database.ErrNotFound))
	is.Equal(len(sender.SendCalls()), 0)
}

func TestDelete(t *testing.T) {
	is, repo, _, sender, svc := testSetup(t)

	err := svc.Delete(context.Background(), bootcampID)
	is.NoErr(err)

	is.Equal(repo.DeleteCalls()[0].Id, bootcampID)
	is.Equal(sender.SendCalls()[0].Event.TopicName(), "bootcamp.deleted")
}

func TestWithinRadius(t *testing.T) {
	is, repo, g, _, svc := testSetup(t)

	bootcamps, err := svc.WithinRadius(context.Background(), "02118", 6368)
	is.NoErr(err)
	is.Equal(len(bootcamps), 1)

	is.Equal(g.GeocodeCalls()[0].Address, "02118")
	is.Equal(repo.WithinRadiusCalls()[0].Center.Longitude(), -71.07057)
	is.Equal(repo.WithinRadiusCalls()[0].Radius, 1.0)
}

func TestWithinRadiusRejectsNegativeDistance(t *testing.T) {
	is, _, g, _, svc := testSetup(t)

	_, err := svc.WithinRadius(context.Background(), "02118", -1)
	is.True(errors.Is(err, database.ErrValidationFailed))
	is.Equal(len(g.GeocodeCalls()), 0)
}

func TestWithinRadiusWithUnknownZipcode(t *testing.T) {
	is, _, g, _, svc := testSetup(t)

	g.GeocodeFunc = func(ctx context.Context, address string) ([]types.Location, error) {
		return []types.Location{}, nil
	}

	_, err := svc.WithinRadius(context.Background(), "00000", 10)

	var e *database.Error
	is.True(errors.As(err, &e))
	is.Equal(e.Status, 404)
	is.Equal(e.Message, "No location found for zipcode 00000")
}

func TestWithinRadiusPropagatesGeocoderErrors(t *testing.T) {
	is, _, g, _, svc := testSetup(t)

	geocoderErr := errors.New("quota exceeded")
	g.GeocodeFunc = func(ctx context.Context, address string) ([]types.Location, error) {
		return nil, geocoderErr
	}

	_, err := svc.WithinRadius(context.Background(), "02118", 10)
	is.Equal(err, geocoderErr)
}

func TestSlugify(t *testing.T) {
	is := is.New(t)

	is.Equal(Slugify("Devworks Bootcamp"), "devworks-bootcamp")
	is.Equal(Slugify("  UI/UX   Academy "), "uiux-academy")
	is.Equal(Slugify("Code & Coffee"), "code-and-coffee")
	is.Equal(Slugify("Dev-Central_2020"), "dev-central-2020")
}

func testSetup(t *testing.T) (*is.I, *database.BootcampRepositoryMock, *geocoder.GeocoderMock, *events.EventSenderMock, *service) {
	is := is.New(t)

	repo := &database.BootcampRepositoryMock{
		AddFunc: func(ctx context.Context, bootcamp types.Bootcamp) (types.Bootcamp, error) {
			bootcamp.ID = bootcampID
			return bootcamp, nil
		},
		UpdateFunc: func(ctx context.Context, id string, fields map[string]any) (types.Bootcamp, error) {
			return types.Bootcamp{ID: id, Name: "Devcentral Bootcamp"}, nil
		},
		DeleteFunc: func(ctx context.Context, id string) (types.Bootcamp, error) {
			return types.Bootcamp{ID: id}, nil
		},
		WithinRadiusFunc: func(ctx context.Context, center types.Location, radius float64) ([]types.Bootcamp, error) {
			return []types.Bootcamp{{ID: bootcampID}}, nil
		},
	}

	g := &geocoder.GeocoderMock{
		GeocodeFunc: func(ctx context.Context, address string) ([]types.Location, error) {
			return []types.Location{types.NewPoint(42.34239, -71.07057)}, nil
		},
	}

	sender := &events.EventSenderMock{
		SendFunc: func(ctx context.Context, event events.Event) error {
			return nil
		},
	}

	svc := New(repo, g, sender).(*service)
	svc.now = func() time.Time { return time.Date(2019, 8, 30, 12, 0, 0, 0, time.UTC) }

	return is, repo, g, sender, svc
}
