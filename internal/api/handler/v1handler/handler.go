// Package v1handler serves the composite views over HTTP.
package v1handler

import (
	"aggregator/internal/composer"
	"aggregator/pkg/controller"
	"aggregator/pkg/logger"
	"aggregator/pkg/serrors"
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Deps are the collaborators of Handler.
type Deps struct {
	Composer composer.Composer
}

type Handler struct {
	composer composer.Composer
	validate *validator.Validate
}

func New(deps Deps) *Handler {
	return &Handler{
		composer: deps.Composer,
		validate: validator.New(),
	}
}

// Routes registers the view endpoints on r.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/candidate/{id}", h.CandidateProfile)
	r.Get("/job/{id}", h.JobDetail)
	r.Get("/application/{id}", h.ApplicationDetail)
	r.Get("/dashboard", h.Dashboard)
	r.Get("/company/{id}", h.CompanyOverview)
	r.Get("/jobs/search", h.SearchJobs)
}

// Error is the JSON body of every error response.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse pairs an error body with its HTTP status.
type ErrorResponse struct {
	StatusCode int
	Response   Error
}

type kindStatus struct {
	status  int
	message string
}

//nolint: gochecknoglobals
var kindStatuses = map[serrors.Kind]kindStatus{
	serrors.ErrBadRequest:   {http.StatusBadRequest, "bad request"},
	serrors.ErrUnauthorized: {http.StatusUnauthorized, "unauthorized"},
	serrors.ErrForbidden:    {http.StatusForbidden, "forbidden"},
	serrors.ErrNotFound:     {http.StatusNotFound, "resource not found"},
	serrors.ErrConflict:     {http.StatusConflict, "conflict"},
	serrors.ErrRateLimited:  {http.StatusTooManyRequests, "too many requests"},
	serrors.ErrUpstream:     {http.StatusBadGateway, "upstream service failure"},
	serrors.ErrUnavailable:  {http.StatusServiceUnavailable, "service unavailable"},
	serrors.ErrTimeout:      {http.StatusGatewayTimeout, "request timed out"},
	serrors.ErrCanceled:     {http.StatusGatewayTimeout, "request canceled"},
}

// NewError maps err to the response the client receives. Errors without a
// semantic kind, and ErrInternal, become a 500 that does not leak details.
func (h Handler) NewError(ctx context.Context, err error) *ErrorResponse {
	return newError(ctx, err)
}

func newError(ctx context.Context, err error) *ErrorResponse {
	kind := serrors.KindOf(err)
	ks, ok := kindStatuses[kind]
	if !ok {
		logger.Error(ctx, "internal error", zap.Error(err))

		return &ErrorResponse{
			StatusCode: http.StatusInternalServerError,
			Response:   Error{Code: serrors.ErrInternal.Error(), Message: "internal error"},
		}
	}

	message := ks.message
	var se *serrors.Error
	if errors.As(err, &se) && se.Message() != "" {
		message = se.Message()
	}
	if ks.status >= http.StatusInternalServerError {
		logger.Warn(ctx, "request failed", zap.Int("status", ks.status), zap.Error(err))
	}

	return &ErrorResponse{
		StatusCode: ks.status,
		Response:   Error{Code: kind.Error(), Message: message},
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	res := newError(r.Context(), err)
	controller.WriteJSON(w, res.StatusCode, res.Response)
}

// writeResult writes v, or the response err maps to. A canceled composition
// writes nothing: either the client is gone or the timeout middleware
// answers 504 itself.
func writeResult[T any](w http.ResponseWriter, r *http.Request, v *T, err error) {
	switch {
	case err == nil:
		controller.WriteJSON(w, http.StatusOK, v)
	case errors.Is(err, serrors.ErrCanceled) && r.Context().Err() != nil:
		logger.Debug(r.Context(), "composition canceled, no response written", zap.Error(err))
	default:
		writeError(w, r, err)
	}
}
