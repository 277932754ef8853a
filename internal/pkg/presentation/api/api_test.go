package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/diwise/devcamper-api/internal/pkg/application/bootcamps"
	"github.com/diwise/devcamper-api/internal/pkg/infrastructure/repositories/database"
	"github.com/diwise/devcamper-api/pkg/types"
	"github.com/go-chi/chi/v5"
	"github.com/matryer/is"
)

const bootcampID string = "5d713995b721c3bb38c1f5d0"

func TestHealth(t *testing.T) {
	is, _, server := setupTest(t)
	defer server.Close()

	resp, _ := testRequest(is, server, http.MethodGet, "/health", nil)
	is.Equal(resp.StatusCode, http.StatusNoContent)
}

func TestQueryBootcamps(t *testing.T) {
	is, svc, server := setupTest(t)
	defer server.Close()

	svc.QueryFunc = func(ctx context.Context, q types.QueryParams) (types.Collection[types.Bootcamp], error) {
		return types.Collection[types.Bootcamp]{
			Data:  []types.Bootcamp{{ID: "1", Name: "a"}, {ID: "2", Name: "b"}},
			Count: 2,
			Total: 5,
		}, nil
	}

	resp, body := testRequest(is, server, http.MethodGet, "/api/v1/bootcamps?page=2&limit=2&housing=true&averageCost[lte]=10000&sort=-name", nil)
	is.Equal(resp.StatusCode, http.StatusOK)
	is.Equal(resp.Header.Get("Content-Type"), "application/json")

	q := svc.QueryCalls()[0].Q
	is.Equal(q.Page, 2)
	is.Equal(q.Limit, 2)
	is.Equal(len(q.Filters), 2)
	is.Equal(q.Sort, []types.SortField{{Field: "name", Desc: true}})

	is.Equal(body, `{"success":true,"count":2,"total":5,"pagination":{"next":{"page":3,"limit":2},"prev":{"page":1,"limit":2}},"data":[{"id":"1","name":"a"},{"id":"2","name":"b"}]}`)
}

func TestQueryIgnoresOperatorKeys(t *testing.T) {
	is, svc, server := setupTest(t)
	defer server.Close()

	svc.QueryFunc = func(ctx context.Context, q types.QueryParams) (types.Collection[types.Bootcamp], error) {
		return types.Collection[types.Bootcamp]{}, nil
	}

	resp, _ := testRequest(is, server, http.MethodGet, "/api/v1/bootcamps?%24where=sleep(5000)&%24comment=x&housing=true", nil)
	is.Equal(resp.StatusCode, http.StatusOK)

	q := svc.QueryCalls()[0].Q
	is.Equal(q.Filters, []types.Filter{{Field: "housing", Op: types.OpEq, Value: true}})
}

func TestQueryWithoutResultsReturnsEmptyList(t *testing.T) {
	is, svc, server := setupTest(t)
	defer server.Close()

	svc.QueryFunc = func(ctx context.Context, q types.QueryParams) (types.Collection[types.Bootcamp], error) {
		return types.Collection[types.Bootcamp]{}, nil
	}

	resp, body := testRequest(is, server, http.MethodGet, "/api/v1/bootcamps", nil)
	is.Equal(resp.StatusCode, http.StatusOK)
	is.Equal(body, `{"success":true,"count":0,"total":0,"pagination":{},"data":[]}`)
}

func TestQueryAsGeoJSON(t *testing.T) {
	is, svc, server := setupTest(t)
	defer server.Close()

	loc := types.NewPoint(42.34239, -71.07057)
	svc.QueryFunc = func(ctx context.Context, q types.QueryParams) (types.Collection[types.Bootcamp], error) {
		return types.Collection[types.Bootcamp]{
			Data:  []types.Bootcamp{{ID: bootcampID, Name: "Devworks Bootcamp", Location: &loc}},
			Count: 1,
			Total: 1,
		}, nil
	}

	req, _ := http.NewRequest(http.MethodGet, server.URL+"/api/v1/bootcamps", nil)
	req.Header.Add("Accept", "application/geo+json")
	resp, err := http.DefaultClient.Do(req)
	is.NoErr(err)
	defer resp.Body.Close()

	is.Equal(resp.StatusCode, http.StatusOK)
	is.Equal(resp.Header.Get("Content-Type"), "application/geo+json")

	fc := GeoJSONFeatureCollection{}
	is.NoErr(json.NewDecoder(resp.Body).Decode(&fc))
	is.Equal(fc.Type, "FeatureCollection")
	is.Equal(len(fc.Features), 1)
	is.Equal(fc.Features[0].ID, bootcampID)
	is.Equal(fc.Features[0].Properties["name"], "Devworks Bootcamp")
}

func TestConvertBootcampUsesLongitudeLatitudeOrder(t *testing.T) {
	is := is.New(t)

	loc := types.NewPoint(42.34239, -71.07057)
	f, err := ConvertBootcamp(types.Bootcamp{ID: bootcampID, Location: &loc})
	is.NoErr(err)

	is.Equal(f.Geometry, GeoJSONPropertyPoint{Type: "Point", Coordinates: [2]float64{-71.07057, 42.34239}})

	f, err = ConvertBootcamp(types.Bootcamp{ID: bootcampID})
	is.NoErr(err)
	is.True(f.Geometry == nil)
}

func TestQueryAsCSV(t *testing.T) {
	is, svc, server := setupTest(t)
	defer server.Close()

	cost := 10000.0
	svc.QueryFunc = func(ctx context.Context, q types.QueryParams) (types.Collection[types.Bootcamp], error) {
		return types.Collection[types.Bootcamp]{
			Data: []types.Bootcamp{{ID: bootcampID, Name: "Devworks Bootcamp", Careers: []string{"Business", "Other"}, AverageCost: &cost}},
		}, nil
	}

	req, _ := http.NewRequest(http.MethodGet, server.URL+"/api/v1/bootcamps", nil)
	req.Header.Add("Accept", "text/csv")
	resp, err := http.DefaultClient.Do(req)
	is.NoErr(err)
	defer resp.Body.Close()

	b, _ := io.ReadAll(resp.Body)
	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	is.Equal(len(lines), 2)
	is.Equal(lines[1], bootcampID+";Devworks Bootcamp;;;;;;Business,Other;10000;;;;")
}

func TestGetBootcamp(t *testing.T) {
	is, svc, server := setupTest(t)
	defer server.Close()

	resp, body := testRequest(is, server, http.MethodGet, "/api/v1/bootcamps/"+bootcampID, nil)
	is.Equal(resp.StatusCode, http.StatusOK)
	is.Equal(body, `{"success":true,"data":{"id":"`+bootcampID+`","name":"Devworks Bootcamp"}}`)
	is.Equal(svc.GetCalls()[0].Id, bootcampID)
}

func TestGetUnknownBootcampReturns404(t *testing.T) {
	is, _, server := setupTest(t)
	defer server.Close()

	resp, body := testRequest(is, server, http.MethodGet, "/api/v1/bootcamps/nosuchbootcamp", nil)
	is.Equal(resp.StatusCode, http.StatusNotFound)
	is.Equal(body, `{"success":false,"error":"Bootcamp not found with id of nosuchbootcamp"}`)
}

func TestCreateBootcamp(t *testing.T) {
	is, svc, server := setupTest(t)
	defer server.Close()

	resp, body := testRequest(is, server, http.MethodPost, "/api/v1/bootcamps", strings.NewReader(createBootcampJSON))
	is.Equal(resp.StatusCode, http.StatusCreated)

	created := svc.CreateCalls()[0].Bootcamp
	is.Equal(created.Name, "Devworks Bootcamp")
	is.Equal(created.Careers, []string{"Web Development", "UI/UX", "Business"})
	is.Equal(*created.Housing, true)

	r := struct {
		Success bool           `json:"success"`
		Data    types.Bootcamp `json:"data"`
	}{}
	is.NoErr(json.Unmarshal([]byte(body), &r))
	is.True(r.Success)
	is.Equal(r.Data.ID, bootcampID)
}

func TestCreateDuplicateBootcampReturns400(t *testing.T) {
	is, svc, server := setupTest(t)
	defer server.Close()

	svc.CreateFunc = func(ctx context.Context, bootcamp types.Bootcamp) (types.Bootcamp, error) {
		return types.Bootcamp{}, database.DuplicateKey(errors.New("E11000 duplicate key error"))
	}

	resp, body := testRequest(is, server, http.MethodPost, "/api/v1/bootcamps", strings.NewReader(createBootcampJSON))
	is.Equal(resp.StatusCode, http.StatusBadRequest)
	is.Equal(body, `{"success":false,"error":"Duplicate key value entered"}`)
}

func TestCreateInvalidBootcampReturns400(t *testing.T) {
	is, svc, server := setupTest(t)
	defer server.Close()

	svc.CreateFunc = func(ctx context.Context, bootcamp types.Bootcamp) (types.Bootcamp, error) {
		return types.Bootcamp{}, database.ValidationFailed("Please add a name", "Please add a description")
	}

	resp, body := testRequest(is, server, http.MethodPost, "/api/v1/bootcamps", strings.NewReader(`{}`))
	is.Equal(resp.StatusCode, http.StatusBadRequest)
	is.Equal(body, `{"success":false,"error":"Please add a name,Please add a description"}`)
}

func TestCreateWithMalformedBodyReturns400(t *testing.T) {
	is, svc, server := setupTest(t)
	defer server.Close()

	resp, body := testRequest(is, server, http.MethodPost, "/api/v1/bootcamps", strings.NewReader(`{"name": 17}`))
	is.Equal(resp.StatusCode, http.StatusBadRequest)
	is.Equal(body, `{"success":false,"error":"Invalid value for name"}`)

	resp, _ = testRequest(is, server, http.MethodPost, "/api/v1/bootcamps", strings.NewReader(`{"name": `))
	is.Equal(resp.StatusCode, http.StatusBadRequest)

	is.Equal(len(svc.CreateCalls()), 0)
}

func TestUpdateBootcamp(t *testing.T) {
	is, svc, server := setupTest(t)
	defer server.Close()

	resp, _ := testRequest(is, server, http.MethodPut, "/api/v1/bootcamps/"+bootcampID, strings.NewReader(`{"housing": false, "website": null}`))
	is.Equal(resp.StatusCode, http.StatusOK)

	call := svc.UpdateCalls()[0]
	is.Equal(call.Id, bootcampID)
	is.Equal(call.Fields["housing"], false)

	v, ok := call.Fields["website"]
	is.True(ok)
	is.True(v == nil)
}

func TestUpdateUnknownBootcampReturns404(t *testing.T) {
	is, _, server := setupTest(t)
	defer server.Close()

	resp, _ := testRequest(is, server, http.MethodPut, "/api/v1/bootcamps/nosuchbootcamp", strings.NewReader(`{"housing": false}`))
	is.Equal(resp.StatusCode, http.StatusNotFound)
}

func TestDeleteBootcamp(t *testing.T) {
	is, _, server := setupTest(t)
	defer server.Close()

	resp, body := testRequest(is, server, http.MethodDelete, "/api/v1/bootcamps/"+bootcampID, nil)
	is.Equal(resp.StatusCode, http.StatusOK)
	is.Equal(body, `{"success":true,"data":{"msg":"bootcamp deleted successfully"}}`)
}

func TestDeleteUnknownBootcampReturns404(t *testing.T) {
	is, _, server := setupTest(t)
	defer server.Close()

	resp, _ := testRequest(is, server, http.MethodDelete, "/api/v1/bootcamps/nosuchbootcamp", nil)
	is.Equal(resp.StatusCode, http.StatusNotFound)
}

func TestBootcampsWithinRadius(t *testing.T) {
	is, svc, server := setupTest(t)
	defer server.Close()

	resp, body := testRequest(is, server, http.MethodGet, "/api/v1/bootcamps/radius/02118/10", nil)
	is.Equal(resp.StatusCode, http.StatusOK)
	is.Equal(body, `{"success":true,"count":1,"data":[{"id":"`+bootcampID+`","name":"Devworks Bootcamp"}]}`)

	call := svc.WithinRadiusCalls()[0]
	is.Equal(call.Zipcode, "02118")
	is.Equal(call.DistanceKm, 10.0)
}

func TestBootcampsWithinInvalidRadiusReturns400(t *testing.T) {
	is, svc, server := setupTest(t)
	defer server.Close()

	resp, body := testRequest(is, server, http.MethodGet, "/api/v1/bootcamps/radius/02118/far", nil)
	is.Equal(resp.StatusCode, http.StatusBadRequest)
	is.Equal(body, `{"success":false,"error":"Please provide a valid distance"}`)
	is.Equal(len(svc.WithinRadiusCalls()), 0)
}

func TestBootcampsWithinRadiusOfUnknownZipcode(t *testing.T) {
	is, svc, server := setupTest(t)
	defer server.Close()

	svc.WithinRadiusFunc = func(ctx context.Context, zipcode string, distanceKm float64) ([]types.Bootcamp, error) {
		return nil, database.WithStatus(http.StatusNotFound, "No location found for zipcode "+zipcode, nil)
	}

	resp, body := testRequest(is, server, http.MethodGet, "/api/v1/bootcamps/radius/00000/10", nil)
	is.Equal(resp.StatusCode, http.StatusNotFound)
	is.Equal(body, `{"success":false,"error":"No location found for zipcode 00000"}`)
}

func TestMapError(t *testing.T) {
	is := is.New(t)

	tests := []struct {
		err     error
		status  int
		message string
	}{
		{database.NotFound("abc"), http.StatusNotFound, "Bootcamp not found with id of abc"},
		{database.DuplicateKey(errors.New("E11000")), http.StatusBadRequest, "Duplicate key value entered"},
		{database.ValidationFailed("a", "b", "c"), http.StatusBadRequest, "a,b,c"},
		{database.WithStatus(http.StatusServiceUnavailable, "Geocoder unavailable", nil), http.StatusServiceUnavailable, "Geocoder unavailable"},
		{database.WithStatus(0, "", errors.New("wrapped")), http.StatusInternalServerError, "wrapped"},
		{errors.New("boom"), http.StatusInternalServerError, "boom"},
		{errors.New(""), http.StatusInternalServerError, "Server Error"},
	}

	for _, tc := range tests {
		status, body := MapError(tc.err)
		is.Equal(status, tc.status)
		is.Equal(body.Success, false)
		is.Equal(body.Error, tc.message)
	}
}

func setupTest(t *testing.T) (*is.I, *bootcamps.BootcampServiceMock, *httptest.Server) {
	is := is.New(t)

	svc := &bootcamps.BootcampServiceMock{
		GetFunc: func(ctx context.Context, id string) (types.Bootcamp, error) {
			if id != bootcampID {
				return types.Bootcamp{}, database.NotFound(id)
			}
			return types.Bootcamp{ID: id, Name: "Devworks Bootcamp"}, nil
		},
		CreateFunc: func(ctx context.Context, bootcamp types.Bootcamp) (types.Bootcamp, error) {
			bootcamp.ID = bootcampID
			return bootcamp, nil
		},
		UpdateFunc: func(ctx context.Context, id string, fields map[string]any) (types.Bootcamp, error) {
			if id != bootcampID {
				return types.Bootcamp{}, database.NotFound(id)
			}
			return types.Bootcamp{ID: id}, nil
		},
		DeleteFunc: func(ctx context.Context, id string) error {
			if id != bootcampID {
				return database.NotFound(id)
			}
			return nil
		},
		WithinRadiusFunc: func(ctx context.Context, zipcode string, distanceKm float64) ([]types.Bootcamp, error) {
			return []types.Bootcamp{{ID: bootcampID, Name: "Devworks Bootcamp"}}, nil
		},
	}

	r := RegisterHandlers(context.Background(), chi.NewRouter(), svc)

	return is, svc, httptest.NewServer(r)
}

func testRequest(is *is.I, ts *httptest.Server, method, path string, body io.Reader) (*http.Response, string) {
	req, _ := http.NewRequest(method, ts.URL+path, body)
	resp, err := http.DefaultClient.Do(req)
	is.NoErr(err)
	respBody, _ := io.ReadAll(resp.Body)
	defer resp.Body.Close()

	return resp, string(respBody)
}

const createBootcampJSON string = `{
	"name": "Devworks Bootcamp",
	"description": "Devworks is a full stack JavaScript Bootcamp located in the heart of Boston",
	"website": "https://devworks.com",
	"phone": "(111) 111-1111",
	"email": "enroll@devworks.com",
	"address": "233 Bay State Rd Boston MA 02215",
	"careers": ["Web Development", "UI/UX", "Business"],
	"housing": true,
	"jobAssistance": true,
	"jobGuarantee": false,
	"acceptGi": true
}`
