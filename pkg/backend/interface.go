// Package backend defines the contracts of the three backend services the
// aggregator composes views from. Single-record lookups return (nil, nil)
// when the record does not exist; list lookups return an empty, non-nil slice
// in that case. Any other failure is reported as an error.
package backend

import (
	"aggregator/pkg/domain"
	"context"
)

// ApplicationService serves candidates, job applications and interviews.
//
//go:generate mockgen -package mockbackend -source=interface.go -destination=mock/mockbackend.go *
type ApplicationService interface {
	// Candidate returns the candidate with the given id or nil when absent.
	Candidate(ctx context.Context, id int) (*domain.Candidate, error)
	// Candidates lists every candidate.
	Candidates(ctx context.Context) ([]domain.Candidate, error)
	// Application returns the application with the given id or nil when absent.
	Application(ctx context.Context, id int) (*domain.Application, error)
	// Applications lists every application.
	Applications(ctx context.Context) ([]domain.Application, error)
	// ApplicationsByCandidate lists the applications submitted by a candidate.
	ApplicationsByCandidate(ctx context.Context, candidateID int) ([]domain.Application, error)
	// Interviews lists every interview.
	Interviews(ctx context.Context) ([]domain.Interview, error)
	// InterviewsByApplication lists the interviews of one application.
	InterviewsByApplication(ctx context.Context, applicationID int) ([]domain.Interview, error)
}

// CatalogService serves job postings and companies.
type CatalogService interface {
	// Job returns the job with the given id or nil when absent.
	Job(ctx context.Context, id int) (*domain.Job, error)
	// Jobs lists every job posting.
	Jobs(ctx context.Context) ([]domain.Job, error)
	// JobsByCompany lists the job postings of one company.
	JobsByCompany(ctx context.Context, companyID int) ([]domain.Job, error)
	// Company returns the company with the given id or nil when absent.
	Company(ctx context.Context, id int) (*domain.Company, error)
	// Companies lists every company.
	Companies(ctx context.Context) ([]domain.Company, error)
}

// ReviewService serves company reviews.
type ReviewService interface {
	// Review returns the review with the given id or nil when absent.
	Review(ctx context.Context, id string) (*domain.Review, error)
	// ReviewsByCompany lists the reviews of one company.
	ReviewsByCompany(ctx context.Context, companyID int) ([]domain.Review, error)
}
