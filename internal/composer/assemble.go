package composer

import (
	"aggregator/pkg/domain"
	"cmp"
	"math"
	"slices"
	"strings"
	"time"
)

const (
	defaultPage     = 1
	defaultPageSize = 10
	maxPageSize     = 100
)

// nonNil turns a nil slice into an empty one so it encodes as [].
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}

	return s
}

func assembleCandidateProfile(candidate domain.Candidate, applications []domain.Application,
	sublists [][]domain.Interview) domain.CandidateProfile {
	interviews := []domain.Interview{}
	for _, sub := range sublists {
		interviews = append(interviews, sub...)
	}

	return domain.CandidateProfile{
		Candidate:    candidate,
		Applications: nonNil(applications),
		Interviews:   interviews,
	}
}

func countApplicationsForJob(applications []domain.Application, jobID int) int {
	n := 0
	for _, a := range applications {
		if a.JobID == jobID {
			n++
		}
	}

	return n
}

func assembleJobDetail(job domain.Job, company Result[domain.Company], reviews Result[[]domain.Review],
	totalApplications Result[int]) domain.JobDetail {
	return domain.JobDetail{
		Job:               job,
		Company:           company.Value,
		CompanyReviews:    nonNil(reviews.Value),
		TotalApplications: totalApplications.Value,
	}
}

func assembleApplicationDetail(application domain.Application, candidate Result[domain.Candidate],
	job Result[domain.Job], company Result[domain.Company], interviews Result[[]domain.Interview],
) domain.ApplicationDetail {
	return domain.ApplicationDetail{
		Application: application,
		Candidate:   candidate.Value,
		Job:         job.Value,
		Company:     company.Value,
		Interviews:  nonNil(interviews.Value),
	}
}

type dashboardInput struct {
	candidates   []domain.Candidate
	jobs         []domain.Job
	applications []domain.Application
	companies    []domain.Company
	interviews   []domain.Interview
}

func assembleDashboard(in dashboardInput, now time.Time, recentLimit, upcomingLimit int) domain.Dashboard {
	return domain.Dashboard{
		TotalCandidates:    len(in.candidates),
		TotalJobs:          len(in.jobs),
		TotalApplications:  len(in.applications),
		TotalCompanies:     len(in.companies),
		RecentApplications: recentApplications(in.applications, recentLimit),
		UpcomingInterviews: upcomingInterviews(in.interviews, now, upcomingLimit),
	}
}

// recentApplications returns the limit most recently submitted applications,
// newest first. Ties are broken by descending id.
func recentApplications(applications []domain.Application, limit int) []domain.Application {
	out := slices.Clone(applications)
	slices.SortStableFunc(out, func(a, b domain.Application) int {
		if c := b.AppliedAt.Compare(a.AppliedAt.Time); c != 0 {
			return c
		}

		return cmp.Compare(b.ID, a.ID)
	})

	return nonNil(out[:min(limit, len(out))])
}

// upcomingInterviews returns the limit nearest scheduled interviews strictly
// after now, soonest first. Ties are broken by ascending id.
func upcomingInterviews(interviews []domain.Interview, now time.Time, limit int) []domain.Interview {
	out := make([]domain.Interview, 0, len(interviews))
	for _, i := range interviews {
		if i.Status == domain.InterviewStatusScheduled && i.ScheduledAt.After(now) {
			out = append(out, i)
		}
	}
	slices.SortStableFunc(out, func(a, b domain.Interview) int {
		if c := a.ScheduledAt.Compare(b.ScheduledAt.Time); c != 0 {
			return c
		}

		return cmp.Compare(a.ID, b.ID)
	})

	return out[:min(limit, len(out))]
}

func assembleCompanyOverview(company domain.Company, jobs Result[[]domain.Job],
	reviews Result[[]domain.Review]) domain.CompanyOverview {
	active := 0
	for _, j := range jobs.Value {
		if j.IsActive {
			active++
		}
	}

	return domain.CompanyOverview{
		Company:        company,
		Jobs:           nonNil(jobs.Value),
		ActiveJobCount: active,
		Reviews:        nonNil(reviews.Value),
		ReviewCount:    len(reviews.Value),
		AverageRatings: averageRatings(reviews.Value),
	}
}

// averageRatings returns the mean of every rating dimension rounded to two
// decimals, or zeros when there are no reviews.
func averageRatings(reviews []domain.Review) domain.RatingSummary {
	if len(reviews) == 0 {
		return domain.RatingSummary{}
	}

	var sum domain.RatingSummary
	for _, r := range reviews {
		sum.Overall += r.OverallRating
		sum.WorkLifeBalance += r.WorkLifeBalanceRating
		sum.Culture += r.CultureRating
		sum.Management += r.ManagementRating
		sum.Compensation += r.CompensationRating
	}
	n := float64(len(reviews))

	return domain.RatingSummary{
		Overall:         round2(sum.Overall / n),
		WorkLifeBalance: round2(sum.WorkLifeBalance / n),
		Culture:         round2(sum.Culture / n),
		Management:      round2(sum.Management / n),
		Compensation:    round2(sum.Compensation / n),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// normalizeSearch applies the paging defaults and bounds.
func normalizeSearch(s domain.JobSearch) domain.JobSearch {
	if s.Page < 1 {
		s.Page = defaultPage
	}
	if s.PageSize < 1 {
		s.PageSize = defaultPageSize
	}
	s.PageSize = min(s.PageSize, maxPageSize)
	s.Title = strings.TrimSpace(s.Title)
	s.Location = strings.TrimSpace(s.Location)

	return s
}

func matchesSearch(j domain.Job, s domain.JobSearch) bool {
	if s.ActiveOnly && !j.IsActive {
		return false
	}
	if s.CategoryID != 0 && j.CategoryID != s.CategoryID {
		return false
	}
	if s.Title != "" && !strings.Contains(strings.ToLower(j.Title), strings.ToLower(s.Title)) {
		return false
	}
	if s.Location != "" && !strings.Contains(strings.ToLower(j.Location), strings.ToLower(s.Location)) {
		return false
	}

	return true
}

// assembleJobSearch filters jobs, orders them newest first and cuts the
// requested page. search must be normalized.
func assembleJobSearch(jobs []domain.Job, search domain.JobSearch) domain.JobSearchResult {
	matched := make([]domain.Job, 0, len(jobs))
	for _, j := range jobs {
		if matchesSearch(j, search) {
			matched = append(matched, j)
		}
	}
	slices.SortStableFunc(matched, func(a, b domain.Job) int {
		if c := b.PostedAt.Compare(a.PostedAt.Time); c != 0 {
			return c
		}

		return cmp.Compare(a.ID, b.ID)
	})

	total := len(matched)
	pages := (total + search.PageSize - 1) / search.PageSize

	// page-1 < pages keeps the offset below total, so it cannot overflow.
	start := total
	if search.Page-1 < pages {
		start = (search.Page - 1) * search.PageSize
	}
	end := min(start+search.PageSize, total)

	return domain.JobSearchResult{
		Jobs:       matched[start:end],
		TotalCount: total,
		Page:       search.Page,
		PageSize:   search.PageSize,
		TotalPages: pages,
	}
}
