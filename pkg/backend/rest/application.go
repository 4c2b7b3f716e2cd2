package rest

import (
	"aggregator/pkg/backend"
	"aggregator/pkg/domain"
	"context"
	"net/http"
	"strconv"
)

// ApplicationClient talks to the application service. It is safe for
// concurrent use.
type ApplicationClient struct {
	r requester
}

// Ensure ApplicationClient conforms to the backend.ApplicationService interface at compile time.
var _ backend.ApplicationService = (*ApplicationClient)(nil)

// NewApplicationClient constructs an ApplicationClient for the service at baseURL.
func NewApplicationClient(httpClient *http.Client, baseURL string) *ApplicationClient {
	return &ApplicationClient{r: newRequester(httpClient, baseURL, backend.ApplicationServiceName)}
}

func (c *ApplicationClient) Candidate(ctx context.Context, id int) (*domain.Candidate, error) {
	return getOne[domain.Candidate](ctx, c.r, "/api/candidates/"+strconv.Itoa(id))
}

func (c *ApplicationClient) Candidates(ctx context.Context) ([]domain.Candidate, error) {
	return getList[domain.Candidate](ctx, c.r, "/api/candidates")
}

func (c *ApplicationClient) Application(ctx context.Context, id int) (*domain.Application, error) {
	return getOne[domain.Application](ctx, c.r, "/api/job-applications/"+strconv.Itoa(id))
}

func (c *ApplicationClient) Applications(ctx context.Context) ([]domain.Application, error) {
	return getList[domain.Application](ctx, c.r, "/api/job-applications")
}

func (c *ApplicationClient) ApplicationsByCandidate(ctx context.Context, candidateID int) ([]domain.Application, error) {
	return getList[domain.Application](ctx, c.r, "/api/job-applications/candidate/"+strconv.Itoa(candidateID))
}

func (c *ApplicationClient) Interviews(ctx context.Context) ([]domain.Interview, error) {
	return getList[domain.Interview](ctx, c.r, "/api/interviews")
}

func (c *ApplicationClient) InterviewsByApplication(ctx context.Context, applicationID int) ([]domain.Interview, error) {
	return getList[domain.Interview](ctx, c.r, "/api/interviews/application/"+strconv.Itoa(applicationID))
}
