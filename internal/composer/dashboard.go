package composer

import (
	"aggregator/pkg/domain"
	"context"

	"golang.org/x/sync/errgroup"
)

// Dashboard composes portal-wide totals with the most recent applications and
// the nearest upcoming interviews. It has no mandatory call: every list falls
// back to empty.
func (c *composer) Dashboard(ctx context.Context) (_ *domain.Dashboard, err error) {
	ctx, done := c.begin(ctx, ViewDashboard)
	defer func() { done(err) }()

	var in dashboardInput
	var g errgroup.Group
	g.Go(func() error {
		in.candidates = optional(ctx, c, ViewDashboard, "candidates", []domain.Candidate{}, c.apps.Candidates).Value
		return nil
	})
	g.Go(func() error {
		in.jobs = optional(ctx, c, ViewDashboard, "jobs", []domain.Job{}, c.catalog.Jobs).Value
		return nil
	})
	g.Go(func() error {
		in.applications = optional(ctx, c, ViewDashboard, "applications", []domain.Application{}, c.apps.Applications).Value
		return nil
	})
	g.Go(func() error {
		in.companies = optional(ctx, c, ViewDashboard, "companies", []domain.Company{}, c.catalog.Companies).Value
		return nil
	})
	g.Go(func() error {
		in.interviews = optional(ctx, c, ViewDashboard, "interviews", []domain.Interview{}, c.apps.Interviews).Value
		return nil
	})
	_ = g.Wait()

	if ctx.Err() != nil {
		return nil, canceled(ctx)
	}

	dashboard := assembleDashboard(in, c.options.Clock(), c.options.RecentLimit, c.options.UpcomingLimit)

	return &dashboard, nil
}
