package v1handler

import (
	"aggregator/pkg/domain"
	"aggregator/pkg/serrors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// pathID parses the positive integer id path parameter.
func pathID(r *http.Request) (int, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, serrors.With(serrors.ErrBadRequest, "invalid id %q", raw)
	}

	return id, nil
}

// CandidateProfile serves GET /candidate/{id}.
func (h *Handler) CandidateProfile(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	res, err := h.composer.CandidateProfile(r.Context(), id)
	writeResult(w, r, res, err)
}

// JobDetail serves GET /job/{id}.
func (h *Handler) JobDetail(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	res, err := h.composer.JobDetail(r.Context(), id)
	writeResult(w, r, res, err)
}

// ApplicationDetail serves GET /application/{id}.
func (h *Handler) ApplicationDetail(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	res, err := h.composer.ApplicationDetail(r.Context(), id)
	writeResult(w, r, res, err)
}

// Dashboard serves GET /dashboard.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	res, err := h.composer.Dashboard(r.Context())
	writeResult(w, r, res, err)
}

// CompanyOverview serves GET /company/{id}.
func (h *Handler) CompanyOverview(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	res, err := h.composer.CompanyOverview(r.Context(), id)
	writeResult(w, r, res, err)
}

// searchParams are the query parameters of the job search.
type searchParams struct {
	Title      string `validate:"max=200"`
	Location   string `validate:"max=200"`
	CategoryID int    `validate:"gte=0"`
	ActiveOnly bool
	Page       int `validate:"gte=0,lte=100000"`
	PageSize   int `validate:"gte=0,lte=100"`
}

func parseSearchParams(q url.Values) (searchParams, error) {
	p := searchParams{
		Title:    q.Get("title"),
		Location: q.Get("location"),
	}

	ints := []struct {
		name string
		dst  *int
	}{
		{"categoryId", &p.CategoryID},
		{"page", &p.Page},
		{"pageSize", &p.PageSize},
	}
	for _, f := range ints {
		raw := q.Get(f.name)
		if raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return p, serrors.With(serrors.ErrBadRequest, "invalid %s %q", f.name, raw)
		}
		*f.dst = v
	}

	if raw := q.Get("activeOnly"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return p, serrors.With(serrors.ErrBadRequest, "invalid activeOnly %q", raw)
		}
		p.ActiveOnly = v
	}

	return p, nil
}

// SearchJobs serves GET /jobs/search.
func (h *Handler) SearchJobs(w http.ResponseWriter, r *http.Request) {
	p, err := parseSearchParams(r.URL.Query())
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.validate.Struct(p); err != nil {
		writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid search parameters"))
		return
	}

	res, err := h.composer.SearchJobs(r.Context(), domain.JobSearch{
		Title:      p.Title,
		Location:   p.Location,
		CategoryID: p.CategoryID,
		ActiveOnly: p.ActiveOnly,
		Page:       p.Page,
		PageSize:   p.PageSize,
	})
	writeResult(w, r, res, err)
}
