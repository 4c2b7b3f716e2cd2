package composer

import (
	"aggregator/pkg/domain"
	"aggregator/pkg/serrors"
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// CompanyOverview composes a company with its job postings and reviews, plus
// the active job count and average ratings derived from them.
func (c *composer) CompanyOverview(ctx context.Context, companyID int) (_ *domain.CompanyOverview, err error) {
	ctx, done := c.begin(ctx, ViewCompanyOverview, zap.Int("companyId", companyID))
	defer func() { done(err) }()

	company, err := mandatory(ctx, c, "company", func(ctx context.Context) (*domain.Company, error) {
		return c.catalog.Company(ctx, companyID)
	})
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, serrors.With(serrors.ErrNotFound, "company %d not found", companyID)
	}

	var (
		jobs    Result[[]domain.Job]
		reviews Result[[]domain.Review]
	)
	var g errgroup.Group
	g.Go(func() error {
		jobs = optional(ctx, c, ViewCompanyOverview, "jobs", []domain.Job{},
			func(ctx context.Context) ([]domain.Job, error) {
				return c.catalog.JobsByCompany(ctx, companyID)
			})
		return nil
	})
	g.Go(func() error {
		reviews = optional(ctx, c, ViewCompanyOverview, "reviews", []domain.Review{},
			func(ctx context.Context) ([]domain.Review, error) {
				return c.reviews.ReviewsByCompany(ctx, companyID)
			})
		return nil
	})
	_ = g.Wait()

	if ctx.Err() != nil {
		return nil, canceled(ctx)
	}

	overview := assembleCompanyOverview(*company, jobs, reviews)

	return &overview, nil
}
