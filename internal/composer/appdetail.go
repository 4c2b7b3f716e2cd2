package composer

import (
	"aggregator/pkg/domain"
	"aggregator/pkg/serrors"
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ApplicationDetail composes an application with its candidate, job, the
// job's company and its interviews. The company is only looked up once the
// job resolved; otherwise both carry placeholders.
func (c *composer) ApplicationDetail(ctx context.Context, applicationID int) (_ *domain.ApplicationDetail, err error) {
	ctx, done := c.begin(ctx, ViewApplicationDetail, zap.Int("applicationId", applicationID))
	defer func() { done(err) }()

	application, err := mandatory(ctx, c, "application", func(ctx context.Context) (*domain.Application, error) {
		return c.apps.Application(ctx, applicationID)
	})
	if err != nil {
		return nil, err
	}
	if application == nil {
		return nil, serrors.With(serrors.ErrNotFound, "application %d not found", applicationID)
	}

	var (
		candidate  Result[domain.Candidate]
		job        Result[domain.Job]
		company    Result[domain.Company]
		interviews Result[[]domain.Interview]
	)
	var g errgroup.Group
	g.Go(func() error {
		candidate = optional(ctx, c, ViewApplicationDetail, "candidate", domain.Candidate{},
			present(func(ctx context.Context) (*domain.Candidate, error) {
				return c.apps.Candidate(ctx, application.CandidateID)
			}))
		return nil
	})
	g.Go(func() error {
		job = optional(ctx, c, ViewApplicationDetail, "job", domain.Job{},
			present(func(ctx context.Context) (*domain.Job, error) {
				return c.catalog.Job(ctx, application.JobID)
			}))
		if job.Fallback {
			company = fallback(domain.Company{})
			return nil
		}
		company = optional(ctx, c, ViewApplicationDetail, "company", domain.Company{},
			present(func(ctx context.Context) (*domain.Company, error) {
				return c.catalog.Company(ctx, job.Value.CompanyID)
			}))
		return nil
	})
	g.Go(func() error {
		interviews = optional(ctx, c, ViewApplicationDetail, "interviews", []domain.Interview{},
			func(ctx context.Context) ([]domain.Interview, error) {
				return c.apps.InterviewsByApplication(ctx, applicationID)
			})
		return nil
	})
	_ = g.Wait()

	if ctx.Err() != nil {
		return nil, canceled(ctx)
	}

	detail := assembleApplicationDetail(*application, candidate, job, company, interviews)

	return &detail, nil
}
