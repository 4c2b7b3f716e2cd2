package rest_test

import (
	"aggregator/pkg/backend"
	"aggregator/pkg/backend/rest"
	"aggregator/pkg/correlation"
	"aggregator/pkg/logger"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	_ = logger.Setup(logger.DevelopmentEnvironment)
	os.Exit(m.Run())
}

// rtFunc allows using a function as an http.RoundTripper.
type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func respond(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestApplicationClient_Candidate_success(t *testing.T) {
	c := rest.NewApplicationClient(&http.Client{Transport: rtFunc(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "applications.local", r.URL.Host)
		require.Equal(t, "/api/candidates/5", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Accept"))
		require.Equal(t, "corr-1", r.Header.Get(correlation.Header))

		return respond(http.StatusOK, `{"id":5,"firstName":"Ada","lastName":"Byron","email":"ada@example.com",`+
			`"phone":null,"yearsOfExperience":12,"createdAt":"2024-03-01T10:00:00"}`), nil
	})}, "http://applications.local/")

	ctx := correlation.WithID(context.Background(), "corr-1")
	cand, err := c.Candidate(ctx, 5)
	require.NoError(t, err)
	require.NotNil(t, cand)
	require.Equal(t, 5, cand.ID)
	require.Equal(t, "Ada", cand.FirstName)
	require.Nil(t, cand.Phone)
	require.True(t, cand.CreatedAt.Equal(time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)))
}

func TestApplicationClient_Candidate_notFound(t *testing.T) {
	c := rest.NewApplicationClient(&http.Client{Transport: rtFunc(func(r *http.Request) (*http.Response, error) {
		require.Empty(t, r.Header.Get(correlation.Header))

		return respond(http.StatusNotFound, `{"message":"not found"}`), nil
	})}, "http://applications.local")

	cand, err := c.Candidate(context.Background(), 404)
	require.NoError(t, err)
	require.Nil(t, cand)
}

func TestApplicationClient_lists(t *testing.T) {
	paths := map[string]string{
		"/api/job-applications/candidate/5": `[{"id":1,"candidateId":5,"jobId":7,"status":"Submitted","appliedAt":"2024-05-01T00:00:00Z"}]`,
		"/api/interviews/application/1":     `null`,
	}
	c := rest.NewApplicationClient(&http.Client{Transport: rtFunc(func(r *http.Request) (*http.Response, error) {
		body, ok := paths[r.URL.Path]
		if !ok {
			return respond(http.StatusNotFound, ``), nil
		}

		return respond(http.StatusOK, body), nil
	})}, "http://applications.local")

	ctx := context.Background()
	apps, err := c.ApplicationsByCandidate(ctx, 5)
	require.NoError(t, err)
	require.Len(t, apps, 1)
	require.Equal(t, 7, apps[0].JobID)

	interviews, err := c.InterviewsByApplication(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, interviews)
	require.Empty(t, interviews)

	// unknown path answers 404, which is an empty list
	all, err := c.Interviews(ctx)
	require.NoError(t, err)
	require.NotNil(t, all)
	require.Empty(t, all)
}

func TestCatalogClient_serverError(t *testing.T) {
	c := rest.NewCatalogClient(&http.Client{Transport: rtFunc(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, "/api/companies/3", r.URL.Path)

		return respond(http.StatusServiceUnavailable, "maintenance\n"), nil
	})}, "http://catalog.local")

	company, err := c.Company(context.Background(), 3)
	require.Error(t, err)
	require.Nil(t, company)

	var te *backend.TransportError
	require.ErrorAs(t, err, &te)
	require.Equal(t, backend.CatalogServiceName, te.Service)
	require.Equal(t, "/api/companies/3", te.Path)
	require.Equal(t, http.StatusServiceUnavailable, te.StatusCode)
	require.Contains(t, err.Error(), "maintenance")
}

func TestCatalogClient_badJSON(t *testing.T) {
	c := rest.NewCatalogClient(&http.Client{Transport: rtFunc(func(r *http.Request) (*http.Response, error) {
		return respond(http.StatusOK, `{"id":`), nil
	})}, "http://catalog.local")

	job, err := c.Job(context.Background(), 7)
	require.Error(t, err)
	require.Nil(t, job)

	var te *backend.TransportError
	require.ErrorAs(t, err, &te)
	require.Contains(t, err.Error(), "could not decode response")
}

func TestCatalogClient_sendError(t *testing.T) {
	c := rest.NewCatalogClient(&http.Client{Transport: rtFunc(func(r *http.Request) (*http.Response, error) {
		return nil, errors.New("connection refused")
	})}, "http://catalog.local")

	jobs, err := c.JobsByCompany(context.Background(), 3)
	require.Error(t, err)
	require.Nil(t, jobs)

	var te *backend.TransportError
	require.ErrorAs(t, err, &te)
	require.Zero(t, te.StatusCode)
	require.Contains(t, err.Error(), "connection refused")
}

func TestReviewClient_escapesID(t *testing.T) {
	c := rest.NewReviewClient(&http.Client{Transport: rtFunc(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, "/api/company-reviews/a%2Fb", r.URL.EscapedPath())

		return respond(http.StatusOK, `{"id":"a/b","companyId":3,"overallRating":4.5}`), nil
	})}, "http://reviews.local")

	review, err := c.Review(context.Background(), "a/b")
	require.NoError(t, err)
	require.Equal(t, "a/b", review.ID)
	require.InDelta(t, 4.5, review.OverallRating, 0.0001)
}

func TestNewHTTPClient_timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	hc := rest.NewHTTPClient(rest.Options{BaseURL: srv.URL, Timeout: 50 * time.Millisecond, MaxIdleConns: 4})
	c := rest.NewReviewClient(hc, srv.URL)

	start := time.Now()
	_, err := c.ReviewsByCompany(context.Background(), 3)
	require.Error(t, err)
	require.Less(t, time.Since(start), time.Second)

	var te *backend.TransportError
	require.ErrorAs(t, err, &te)
	require.Equal(t, backend.ReviewServiceName, te.Service)
}

func TestClient_canceledContext(t *testing.T) {
	c := rest.NewCatalogClient(&http.Client{Transport: rtFunc(func(r *http.Request) (*http.Response, error) {
		return nil, r.Context().Err()
	})}, "http://catalog.local")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Jobs(ctx)
	require.Error(t, err)
	require.ErrorIs(t, err, context.Canceled)
}
