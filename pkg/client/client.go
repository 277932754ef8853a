package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/diwise/devcamper-api/pkg/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
)

type BootcampClient interface {
	Query(ctx context.Context, params url.Values) (*QueryResult, error)
	Get(ctx context.Context, id string) (types.Bootcamp, error)
	Create(ctx context.Context, bootcamp types.Bootcamp) (types.Bootcamp, error)
	Update(ctx context.Context, id string, fields map[string]any) (types.Bootcamp, error)
	Delete(ctx context.Context, id string) error
	WithinRadius(ctx context.Context, zipcode string, distanceKm float64) ([]types.Bootcamp, error)
}

// QueryResult is one page of bootcamps together with the links to the adjacent pages
type QueryResult struct {
	Count      int              `json:"count"`
	Total      uint64           `json:"total"`
	Pagination types.Pagination `json:"pagination"`
	Data       []types.Bootcamp `json:"data"`
}

// APIError is returned when the api responds with an error body
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("request failed with status code %d: %s", e.StatusCode, e.Message)
}

type bootcampClient struct {
	url        string
	httpClient http.Client
}

var tracer = otel.Tracer("devcamper-api-client")

func New(apiURL string) BootcampClient {
	return &bootcampClient{
		url: strings.TrimSuffix(apiURL, "/") + "/api/v1/bootcamps",
		httpClient: http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

func (c *bootcampClient) Query(ctx context.Context, params url.Values) (*QueryResult, error) {
	var err error
	ctx, span := tracer.Start(ctx, "query-bootcamps")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	u := c.url
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	result := &QueryResult{}
	err = c.do(ctx, http.MethodGet, u, nil, http.StatusOK, result)
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (c *bootcampClient) Get(ctx context.Context, id string) (types.Bootcamp, error) {
	var err error
	ctx, span := tracer.Start(ctx, "get-bootcamp")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	result := struct {
		Data types.Bootcamp `json:"data"`
	}{}

	err = c.do(ctx, http.MethodGet, c.url+"/"+url.PathEscape(id), nil, http.StatusOK, &result)

	return result.Data, err
}

func (c *bootcampClient) Create(ctx context.Context, bootcamp types.Bootcamp) (types.Bootcamp, error) {
	var err error
	ctx, span := tracer.Start(ctx, "create-bootcamp")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	result := struct {
		Data types.Bootcamp `json:"data"`
	}{}

	err = c.do(ctx, http.MethodPost, c.url, bootcamp, http.StatusCreated, &result)

	return result.Data, err
}

func (c *bootcampClient) Update(ctx context.Context, id string, fields map[string]any) (types.Bootcamp, error) {
	var err error
	ctx, span := tracer.Start(ctx, "update-bootcamp")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	result := struct {
		Data types.Bootcamp `json:"data"`
	}{}

	err = c.do(ctx, http.MethodPut, c.url+"/"+url.PathEscape(id), fields, http.StatusOK, &result)

	return result.Data, err
}

func (c *bootcampClient) Delete(ctx context.Context, id string) error {
	var err error
	ctx, span := tracer.Start(ctx, "delete-bootcamp")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	err = c.do(ctx, http.MethodDelete, c.url+"/"+url.PathEscape(id), nil, http.StatusOK, nil)

	return err
}

func (c *bootcampClient) WithinRadius(ctx context.Context, zipcode string, distanceKm float64) ([]types.Bootcamp, error) {
	var err error
	ctx, span := tracer.Start(ctx, "bootcamps-within-radius")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	result := struct {
		Data []types.Bootcamp `json:"data"`
	}{}

	u := fmt.Sprintf("%s/radius/%s/%g", c.url, url.PathEscape(zipcode), distanceKm)
	err = c.do(ctx, http.MethodGet, u, nil, http.StatusOK, &result)

	return result.Data, err
}

func (c *bootcampClient) do(ctx context.Context, method, u string, body any, expectedStatus int, result any) error {
	log := logging.GetFromContext(ctx)

	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create http request: %w", err)
	}

	req.Header.Add("Accept", "application/json")
	if body != nil {
		req.Header.Add("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != expectedStatus {
		apiErr := &APIError{StatusCode: resp.StatusCode}

		errBody := struct {
			Error string `json:"error"`
		}{}
		if json.Unmarshal(respBody, &errBody) == nil {
			apiErr.Message = errBody.Error
		}

		log.Debug().Str("method", method).Str("url", u).Msg(apiErr.Error())
		return apiErr
	}

	if result == nil {
		return nil
	}

	err = json.Unmarshal(respBody, result)
	if err != nil {
		return fmt.Errorf("failed to unmarshal response body: %w", err)
	}

	return nil
}
