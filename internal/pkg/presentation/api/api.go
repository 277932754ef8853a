package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/diwise/devcamper-api/internal/pkg/application/bootcamps"
	"github.com/diwise/devcamper-api/internal/pkg/infrastructure/repositories/database"
	"github.com/diwise/devcamper-api/pkg/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("devcamper-api/api")

const (
	contentTypeJSON    string = "application/json"
	contentTypeGeoJSON string = "application/geo+json"
	contentTypeCSV     string = "text/csv"
)

func RegisterHandlers(ctx context.Context, router *chi.Mux, svc bootcamps.BootcampService) *chi.Mux {

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	log := logging.GetFromContext(ctx)

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/bootcamps", func(r chi.Router) {
			r.Get("/", queryBootcampsHandler(log, svc))
			r.Post("/", createBootcampHandler(log, svc))
			r.Get("/radius/{zipcode}/{distance}", bootcampsWithinRadiusHandler(log, svc))
			r.Get("/{id}", getBootcampHandler(log, svc))
			r.Put("/{id}", updateBootcampHandler(log, svc))
			r.Delete("/{id}", deleteBootcampHandler(log, svc))
		})
	})

	return router
}

func queryBootcampsHandler(log zerolog.Logger, svc bootcamps.BootcampService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "query-bootcamps")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		q := types.ParseQuery(r.URL.Query())

		result, err := svc.Query(ctx, q)
		if err != nil {
			writeError(ctx, w, err)
			return
		}

		total := result.Total
		pagination := types.NewPagination(q.Page, q.Limit, total)

		requestLogger.Debug().Msgf("found %d of %d bootcamps", result.Count, total)

		switch accepts(r) {
		case contentTypeGeoJSON:
			var fc *GeoJSONFeatureCollection
			fc, err = NewFeatureCollectionWithBootcamps(result.Data)
			if err != nil {
				writeError(ctx, w, err)
				return
			}
			fc.Total = &total
			fc.Pagination = &pagination
			writeJSON(w, contentTypeGeoJSON, http.StatusOK, fc)
		case contentTypeCSV:
			var buf bytes.Buffer
			err = writeCsvWithBootcamps(&buf, result.Data)
			if err != nil {
				writeError(ctx, w, err)
				return
			}
			w.Header().Add("Content-Type", contentTypeCSV)
			w.WriteHeader(http.StatusOK)
			w.Write(buf.Bytes())
		default:
			count := len(result.Data)
			writeJSON(w, contentTypeJSON, http.StatusOK, ApiResponse{
				Success:    true,
				Count:      &count,
				Total:      &total,
				Pagination: &pagination,
				Data:       nonNil(result.Data),
			})
		}
	}
}

func getBootcampHandler(log zerolog.Logger, svc bootcamps.BootcampService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "get-bootcamp")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, _ = o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		id := chi.URLParam(r, "id")

		bootcamp, err := svc.Get(ctx, id)
		if err != nil {
			writeError(ctx, w, err)
			return
		}

		writeJSON(w, contentTypeJSON, http.StatusOK, ApiResponse{Success: true, Data: bootcamp})
	}
}

func createBootcampHandler(log zerolog.Logger, svc bootcamps.BootcampService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "create-bootcamp")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		bootcamp := types.Bootcamp{}

		err = decodeBody(r.Body, &bootcamp)
		if err != nil {
			writeError(ctx, w, err)
			return
		}

		bootcamp, err = svc.Create(ctx, bootcamp)
		if err != nil {
			writeError(ctx, w, err)
			return
		}

		requestLogger.Info().Str("bootcamp", bootcamp.ID).Msg("created bootcamp")

		writeJSON(w, contentTypeJSON, http.StatusCreated, ApiResponse{Success: true, Data: bootcamp})
	}
}

func updateBootcampHandler(log zerolog.Logger, svc bootcamps.BootcampService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "update-bootcamp")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, _ = o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		id := chi.URLParam(r, "id")
		fields := map[string]any{}

		err = decodeBody(r.Body, &fields)
		if err != nil {
			writeError(ctx, w, err)
			return
		}

		bootcamp, err := svc.Update(ctx, id, fields)
		if err != nil {
			writeError(ctx, w, err)
			return
		}

		writeJSON(w, contentTypeJSON, http.StatusOK, ApiResponse{Success: true, Data: bootcamp})
	}
}

func deleteBootcampHandler(log zerolog.Logger, svc bootcamps.BootcampService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "delete-bootcamp")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		id := chi.URLParam(r, "id")

		err = svc.Delete(ctx, id)
		if err != nil {
			writeError(ctx, w, err)
			return
		}

		requestLogger.Info().Str("bootcamp", id).Msg("deleted bootcamp")

		writeJSON(w, contentTypeJSON, http.StatusOK, ApiResponse{Success: true, Data: deleted{Msg: DeletedMessage}})
	}
}

func bootcampsWithinRadiusHandler(log zerolog.Logger, svc bootcamps.BootcampService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "bootcamps-within-radius")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, _ = o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		zipcode := chi.URLParam(r, "zipcode")

		distance, err := strconv.ParseFloat(chi.URLParam(r, "distance"), 64)
		if err != nil {
			err = database.ValidationFailed(bootcamps.InvalidDistance)
			writeError(ctx, w, err)
			return
		}

		result, err := svc.WithinRadius(ctx, zipcode, distance)
		if err != nil {
			writeError(ctx, w, err)
			return
		}

		if accepts(r) == contentTypeGeoJSON {
			var fc *GeoJSONFeatureCollection
			fc, err = NewFeatureCollectionWithBootcamps(result)
			if err != nil {
				writeError(ctx, w, err)
				return
			}
			writeJSON(w, contentTypeGeoJSON, http.StatusOK, fc)
			return
		}

		count := len(result)
		writeJSON(w, contentTypeJSON, http.StatusOK, ApiResponse{Success: true, Count: &count, Data: nonNil(result)})
	}
}

// decodeBody reports a malformed request body as a validation failure
func decodeBody(body io.Reader, v any) error {
	err := json.NewDecoder(body).Decode(v)
	if err == nil {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return database.ValidationFailed(fmt.Sprintf("Invalid value for %s", typeErr.Field))
	}

	if errors.Is(err, io.EOF) {
		return database.ValidationFailed("Request body can not be empty")
	}

	return database.ValidationFailed(fmt.Sprintf("Malformed request body: %s", err.Error()))
}

func accepts(r *http.Request) string {
	accept := r.Header.Get("Accept")

	for _, ct := range []string{contentTypeGeoJSON, contentTypeCSV} {
		if strings.Contains(accept, ct) {
			return ct
		}
	}

	return contentTypeJSON
}

func writeJSON(w http.ResponseWriter, contentType string, status int, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Add("Content-Type", contentType)
	w.WriteHeader(status)
	w.Write(b)
}

func nonNil(bootcamps []types.Bootcamp) []types.Bootcamp {
	if bootcamps == nil {
		return []types.Bootcamp{}
	}
	return bootcamps
}
