package rest

import (
	"aggregator/pkg/backend"
	"aggregator/pkg/domain"
	"context"
	"net/http"
	"strconv"
)

// CatalogClient talks to the job catalog service.
type CatalogClient struct {
	r requester
}

var _ backend.CatalogService = (*CatalogClient)(nil)

// NewCatalogClient constructs a CatalogClient for the service at baseURL.
func NewCatalogClient(httpClient *http.Client, baseURL string) *CatalogClient {
	return &CatalogClient{r: newRequester(httpClient, baseURL, backend.CatalogServiceName)}
}

func (c *CatalogClient) Job(ctx context.Context, id int) (*domain.Job, error) {
	return getOne[domain.Job](ctx, c.r, "/api/jobs/"+strconv.Itoa(id))
}

func (c *CatalogClient) Jobs(ctx context.Context) ([]domain.Job, error) {
	return getList[domain.Job](ctx, c.r, "/api/jobs")
}

func (c *CatalogClient) JobsByCompany(ctx context.Context, companyID int) ([]domain.Job, error) {
	return getList[domain.Job](ctx, c.r, "/api/jobs/company/"+strconv.Itoa(companyID))
}

func (c *CatalogClient) Company(ctx context.Context, id int) (*domain.Company, error) {
	return getOne[domain.Company](ctx, c.r, "/api/companies/"+strconv.Itoa(id))
}

func (c *CatalogClient) Companies(ctx context.Context) ([]domain.Company, error) {
	return getList[domain.Company](ctx, c.r, "/api/companies")
}
