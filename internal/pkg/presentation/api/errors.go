package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/diwise/devcamper-api/internal/pkg/infrastructure/repositories/database"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
)

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

const serverError string = "Server Error"

// MapError decides the status code and body used to report err to a client
func MapError(err error) (int, errorResponse) {
	status, message := http.StatusInternalServerError, serverError

	var e *database.Error
	if errors.As(err, &e) {
		switch e.Kind {
		case database.KindNotFound:
			status, message = http.StatusNotFound, fmt.Sprintf("Bootcamp not found with id of %s", e.Value)
		case database.KindDuplicateKey:
			status, message = http.StatusBadRequest, "Duplicate key value entered"
		case database.KindValidationFailed:
			status, message = http.StatusBadRequest, strings.Join(e.Messages, ",")
		default:
			if e.Status != 0 {
				status = e.Status
			}
			if e.Message != "" {
				message = e.Message
			} else if e.Err != nil && e.Err.Error() != "" {
				message = e.Err.Error()
			}
		}
	} else if err != nil && err.Error() != "" {
		message = err.Error()
	}

	return status, errorResponse{Success: false, Error: message}
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	status, body := MapError(err)

	log := logging.GetFromContext(ctx)
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Info().Err(err).Int("status", status).Msg("request failed")
	}

	b, _ := json.Marshal(body)

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(b)
}
