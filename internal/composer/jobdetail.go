package composer

import (
	"aggregator/pkg/domain"
	"aggregator/pkg/serrors"
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// JobDetail composes a job with its company, the company's reviews and the
// number of applications submitted for it. Only the job itself is mandatory.
func (c *composer) JobDetail(ctx context.Context, jobID int) (_ *domain.JobDetail, err error) {
	ctx, done := c.begin(ctx, ViewJobDetail, zap.Int("jobId", jobID))
	defer func() { done(err) }()

	job, err := mandatory(ctx, c, "job", func(ctx context.Context) (*domain.Job, error) {
		return c.catalog.Job(ctx, jobID)
	})
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, serrors.With(serrors.ErrNotFound, "job %d not found", jobID)
	}

	var (
		company Result[domain.Company]
		reviews Result[[]domain.Review]
		total   Result[int]
	)
	var g errgroup.Group
	g.Go(func() error {
		company = optional(ctx, c, ViewJobDetail, "company", domain.Company{},
			present(func(ctx context.Context) (*domain.Company, error) {
				return c.catalog.Company(ctx, job.CompanyID)
			}))
		return nil
	})
	g.Go(func() error {
		reviews = optional(ctx, c, ViewJobDetail, "reviews", []domain.Review{},
			func(ctx context.Context) ([]domain.Review, error) {
				return c.reviews.ReviewsByCompany(ctx, job.CompanyID)
			})
		return nil
	})
	g.Go(func() error {
		total = optional(ctx, c, ViewJobDetail, "applicationCount", 0, func(ctx context.Context) (int, error) {
			applications, err := c.apps.Applications(ctx)
			if err != nil {
				return 0, err
			}

			return countApplicationsForJob(applications, jobID), nil
		})
		return nil
	})
	_ = g.Wait()

	if ctx.Err() != nil {
		return nil, canceled(ctx)
	}

	detail := assembleJobDetail(*job, company, reviews, total)

	return &detail, nil
}
