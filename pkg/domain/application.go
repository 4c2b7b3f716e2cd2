package domain

// InterviewStatusScheduled is the status of an interview that is planned but
// has not taken place yet.
const InterviewStatusScheduled = "Scheduled"

// Candidate is a job seeker as stored by the application-records service.
type Candidate struct {
	ID                int       `json:"id"`
	FirstName         string    `json:"firstName"`
	LastName          string    `json:"lastName"`
	Email             string    `json:"email"`
	Phone             *string   `json:"phone"`
	YearsOfExperience int       `json:"yearsOfExperience"`
	CreatedAt         Timestamp `json:"createdAt"`
}

// Application links a Candidate to a Job. Both references are plain ids; the
// job lives in the catalog service and may not exist anymore.
type Application struct {
	ID          int       `json:"id"`
	CandidateID int       `json:"candidateId"`
	JobID       int       `json:"jobId"`
	Status      string    `json:"status"`
	AppliedAt   Timestamp `json:"appliedAt"`
}

// Interview is a scheduled conversation for one Application.
type Interview struct {
	ID            int       `json:"id"`
	ApplicationID int       `json:"applicationId"`
	ScheduledAt   Timestamp `json:"scheduledAt"`
	Status        string    `json:"status"`
	Feedback      *string   `json:"feedback"`
}
