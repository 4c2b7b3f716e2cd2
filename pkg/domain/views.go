package domain

// CandidateProfile is a candidate together with every application they
// submitted and the interviews of those applications.
type CandidateProfile struct {
	Candidate    Candidate     `json:"candidate"`
	Applications []Application `json:"applications"`
	// Interviews is the concatenation of the per-application interview lists,
	// in the order of Applications.
	Interviews []Interview `json:"interviews"`
}

// JobDetail is a job with its company, the company's reviews and the number of
// applications submitted for the job. Company is the zero Company when it
// could not be fetched.
type JobDetail struct {
	Job               Job      `json:"job"`
	Company           Company  `json:"company"`
	CompanyReviews    []Review `json:"companyReviews"`
	TotalApplications int      `json:"totalApplications"`
}

// ApplicationDetail is an application with the records it references.
// Candidate, Job and Company are zero values when they could not be resolved.
type ApplicationDetail struct {
	Application Application `json:"application"`
	Candidate   Candidate   `json:"candidate"`
	Job         Job         `json:"job"`
	Company     Company     `json:"company"`
	Interviews  []Interview `json:"interviews"`
}

// Dashboard summarizes the whole portal.
type Dashboard struct {
	TotalCandidates    int           `json:"totalCandidates"`
	TotalJobs          int           `json:"totalJobs"`
	TotalApplications  int           `json:"totalApplications"`
	TotalCompanies     int           `json:"totalCompanies"`
	RecentApplications []Application `json:"recentApplications"`
	UpcomingInterviews []Interview   `json:"upcomingInterviews"`
}

// RatingSummary holds the mean of every review rating dimension.
type RatingSummary struct {
	Overall         float64 `json:"overall"`
	WorkLifeBalance float64 `json:"workLifeBalance"`
	Culture         float64 `json:"culture"`
	Management      float64 `json:"management"`
	Compensation    float64 `json:"compensation"`
}

// CompanyOverview is a company with its open positions and what employees say
// about it.
type CompanyOverview struct {
	Company        Company       `json:"company"`
	Jobs           []Job         `json:"jobs"`
	ActiveJobCount int           `json:"activeJobCount"`
	Reviews        []Review      `json:"reviews"`
	ReviewCount    int           `json:"reviewCount"`
	AverageRatings RatingSummary `json:"averageRatings"`
}

// JobSearch filters and paginates the job catalog. Zero values disable a
// filter.
type JobSearch struct {
	Title      string
	Location   string
	CategoryID int
	ActiveOnly bool
	Page       int
	PageSize   int
}

// JobSearchResult is one page of jobs matching a JobSearch.
type JobSearchResult struct {
	Jobs       []Job `json:"jobs"`
	TotalCount int   `json:"totalCount"`
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	TotalPages int   `json:"totalPages"`
}
