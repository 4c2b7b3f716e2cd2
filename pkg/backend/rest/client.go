// Package rest implements the backend service contracts over the services'
// JSON REST APIs.
package rest

import (
	"aggregator/pkg/backend"
	"aggregator/pkg/correlation"
	"aggregator/pkg/logger"
	"aggregator/pkg/metrics"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const tracerName = "aggregator/pkg/backend/rest"

// maxBodyBytes caps how much of a backend response is read.
const maxBodyBytes = 8 << 20

// Options configures the HTTP client used for one backend service.
type Options struct {
	// BaseURL is the scheme and host of the service, e.g. "http://catalog:8080".
	BaseURL string
	// Timeout bounds every single call to the service. Zero disables it.
	Timeout time.Duration
	// MaxIdleConns is the number of idle keep-alive connections kept per host.
	MaxIdleConns int
}

// NewHTTPClient returns an *http.Client tuned for calls to one backend service.
func NewHTTPClient(opts Options) *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone() //nolint: forcetypeassert
	if opts.MaxIdleConns > 0 {
		transport.MaxIdleConns = opts.MaxIdleConns
		transport.MaxIdleConnsPerHost = opts.MaxIdleConns
	}

	return &http.Client{
		Transport: transport,
		Timeout:   opts.Timeout,
	}
}

// requester performs GET requests against one backend service.
type requester struct {
	httpClient *http.Client
	baseURL    string
	service    string
}

func newRequester(httpClient *http.Client, baseURL, service string) requester {
	return requester{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		service:    service,
	}
}

// get fetches path and returns the response body. found is false when the
// service answered 404.
func (r requester) get(ctx context.Context, path string) (body []byte, found bool, err error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, r.service+" GET",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("backend.service", r.service),
			attribute.String("http.path", path),
		))
	start := time.Now()
	status := 0
	defer func() {
		r.observe(ctx, path, status, found, err, time.Since(start))
		span.SetAttributes(attribute.Int("http.status_code", status))
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "backend call failed")
		}
		span.End()
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+path, nil)
	if err != nil {
		return nil, false, r.transportErr(path, 0, fmt.Errorf("could not create request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	if id := correlation.ID(ctx); id != "" {
		req.Header.Set(correlation.Header, id)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, false, r.transportErr(path, 0, fmt.Errorf("could not send request: %w", err))
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	status = resp.StatusCode

	b, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, false, r.transportErr(path, status, fmt.Errorf("could not read response body: %w", err))
	}
	if resp.StatusCode == http.StatusNotFound {
		return nil, false, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, false, r.transportErr(path, status, fmt.Errorf("request failed: %s", strings.TrimSpace(string(b))))
	}

	return b, true, nil
}

func (r requester) transportErr(path string, status int, err error) error {
	return &backend.TransportError{Service: r.service, Path: path, StatusCode: status, Err: err}
}

func (r requester) observe(ctx context.Context, path string, status int, found bool, err error, elapsed time.Duration) {
	outcome := metrics.OutcomeOK
	switch {
	case err != nil && (errors.Is(err, context.Canceled) || ctx.Err() != nil):
		outcome = metrics.OutcomeCanceled
	case err != nil:
		outcome = metrics.OutcomeError
	case !found:
		outcome = metrics.OutcomeNotFound
	}
	metrics.UpstreamCalls.WithLabelValues(r.service, outcome).Inc()
	metrics.UpstreamLatency.WithLabelValues(r.service).Observe(elapsed.Seconds())

	logger.Debug(ctx, "backend call",
		zap.String("service", r.service),
		zap.String("path", path),
		zap.Int("status", status),
		zap.String("outcome", outcome),
		zap.Duration("elapsed", elapsed),
		zap.Error(err))
}

// getOne fetches a single record. A 404 yields (nil, nil).
func getOne[T any](ctx context.Context, r requester, path string) (*T, error) {
	b, found, err := r.get(ctx, path)
	if err != nil || !found {
		return nil, err
	}

	var out T
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, r.transportErr(path, http.StatusOK, fmt.Errorf("could not decode response: %w", err))
	}

	return &out, nil
}

// getList fetches a collection. A 404 or a null body yields an empty slice.
func getList[T any](ctx context.Context, r requester, path string) ([]T, error) {
	b, found, err := r.get(ctx, path)
	if err != nil {
		return nil, err
	}
	if !found {
		return []T{}, nil
	}

	var out []T
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, r.transportErr(path, http.StatusOK, fmt.Errorf("could not decode response: %w", err))
	}
	if out == nil {
		out = []T{}
	}

	return out, nil
}
