package composer

import (
	"aggregator/pkg/domain"
	"aggregator/pkg/logger"
	"aggregator/pkg/metrics"
	"aggregator/pkg/serrors"
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// CandidateProfile composes a candidate with their applications and the
// interviews of every application. The candidate and the application list
// are mandatory; the interview fan-out follows the configured FanOutPolicy.
func (c *composer) CandidateProfile(ctx context.Context, candidateID int) (_ *domain.CandidateProfile, err error) {
	ctx, done := c.begin(ctx, ViewCandidateProfile, zap.Int("candidateId", candidateID))
	defer func() { done(err) }()

	candidate, err := mandatory(ctx, c, "candidate", func(ctx context.Context) (*domain.Candidate, error) {
		return c.apps.Candidate(ctx, candidateID)
	})
	if err != nil {
		return nil, err
	}
	if candidate == nil {
		return nil, serrors.With(serrors.ErrNotFound, "candidate %d not found", candidateID)
	}

	applications, err := mandatory(ctx, c, "applications", func(ctx context.Context) ([]domain.Application, error) {
		return c.apps.ApplicationsByCandidate(ctx, candidateID)
	})
	if err != nil {
		return nil, err
	}

	sublists, err := c.interviewsOf(ctx, ViewCandidateProfile, applications)
	if err != nil {
		return nil, err
	}
	if ctx.Err() != nil {
		return nil, canceled(ctx)
	}

	profile := assembleCandidateProfile(*candidate, applications, sublists)

	return &profile, nil
}

// interviewsOf fetches the interviews of every application concurrently. The
// result holds one sublist per application, in the order of applications.
func (c *composer) interviewsOf(ctx context.Context, view string,
	applications []domain.Application) ([][]domain.Interview, error) {
	const call = "interviews"
	sublists := make([][]domain.Interview, len(applications))

	g, gctx := &errgroup.Group{}, ctx
	if c.options.FanOutPolicy == FanOutStrict {
		g, gctx = errgroup.WithContext(ctx)
	}
	g.SetLimit(c.options.FanOutLimit)

	for i, app := range applications {
		g.Go(func() error {
			// a queued item must not start once the view is torn down
			if err := gctx.Err(); err != nil {
				return err
			}

			list, err := invoke(gctx, c, call, func(ctx context.Context) ([]domain.Interview, error) {
				return c.apps.InterviewsByApplication(ctx, app.ID)
			})
			if err == nil {
				sublists[i] = list
				return nil
			}
			if c.options.FanOutPolicy == FanOutStrict || gctx.Err() != nil {
				return err
			}

			metrics.FallbacksApplied.WithLabelValues(view, call).Inc()
			logger.Warn(gctx, "interview fetch failed, using empty list",
				zap.Int("applicationId", app.ID), zap.Error(err))
			sublists[i] = []domain.Interview{}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, failure(ctx, call, err)
	}

	return sublists, nil
}
