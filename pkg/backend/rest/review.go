package rest

import (
	"aggregator/pkg/backend"
	"aggregator/pkg/domain"
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// ReviewClient talks to the company review service. Review ids are opaque
// strings and are path-escaped before use.
type ReviewClient struct {
	r requester
}

var _ backend.ReviewService = (*ReviewClient)(nil)

// NewReviewClient constructs a ReviewClient for the service at baseURL.
func NewReviewClient(httpClient *http.Client, baseURL string) *ReviewClient {
	return &ReviewClient{r: newRequester(httpClient, baseURL, backend.ReviewServiceName)}
}

func (c *ReviewClient) Review(ctx context.Context, id string) (*domain.Review, error) {
	return getOne[domain.Review](ctx, c.r, "/api/company-reviews/"+url.PathEscape(id))
}

func (c *ReviewClient) ReviewsByCompany(ctx context.Context, companyID int) ([]domain.Review, error) {
	return getList[domain.Review](ctx, c.r, "/api/company-reviews/company/"+strconv.Itoa(companyID))
}
