package composer

import (
	"aggregator/pkg/domain"
	"context"

	"go.uber.org/zap"
)

// SearchJobs filters the job catalog and returns one page of matches, newest
// postings first. The catalog listing is mandatory.
func (c *composer) SearchJobs(ctx context.Context, search domain.JobSearch) (_ *domain.JobSearchResult, err error) {
	search = normalizeSearch(search)
	ctx, done := c.begin(ctx, ViewJobSearch,
		zap.String("title", search.Title),
		zap.String("location", search.Location),
		zap.Int("page", search.Page))
	defer func() { done(err) }()

	jobs, err := mandatory(ctx, c, "jobs", c.catalog.Jobs)
	if err != nil {
		return nil, err
	}
	if ctx.Err() != nil {
		return nil, canceled(ctx)
	}

	result := assembleJobSearch(jobs, search)

	return &result, nil
}
