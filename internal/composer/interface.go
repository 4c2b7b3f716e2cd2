package composer

import (
	"aggregator/pkg/domain"
	"context"
)

// Composer builds the composite views served by the gateway. Every method
// returns an error of kind serrors.ErrNotFound when the root record does not
// exist, serrors.ErrUpstream when a mandatory backend call failed and
// serrors.ErrCanceled when ctx ended first. Optional calls never fail a view.
//
//go:generate mockgen -package mockcomposer -source=interface.go -destination=mock/mockcomposer.go *
type Composer interface {
	CandidateProfile(ctx context.Context, candidateID int) (*domain.CandidateProfile, error)
	JobDetail(ctx context.Context, jobID int) (*domain.JobDetail, error)
	ApplicationDetail(ctx context.Context, applicationID int) (*domain.ApplicationDetail, error)
	Dashboard(ctx context.Context) (*domain.Dashboard, error)
	CompanyOverview(ctx context.Context, companyID int) (*domain.CompanyOverview, error)
	SearchJobs(ctx context.Context, search domain.JobSearch) (*domain.JobSearchResult, error)
}
