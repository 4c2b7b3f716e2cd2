package domain

// Company is an employer profile owned by the catalog service.
type Company struct {
	ID            int       `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Industry      string    `json:"industry"`
	EmployeeCount int       `json:"employeeCount"`
	Website       string    `json:"website"`
	CreatedAt     Timestamp `json:"createdAt"`
}

// Job is a vacancy published by a Company.
type Job struct {
	ID              int       `json:"id"`
	CompanyID       int       `json:"companyId"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	CategoryID      int       `json:"categoryId"`
	SalaryMin       float64   `json:"salaryMin"`
	SalaryMax       float64   `json:"salaryMax"`
	Location        string    `json:"location"`
	EmploymentType  string    `json:"employmentType"`
	ExperienceYears int       `json:"experienceYears"`
	IsActive        bool      `json:"isActive"`
	PostedAt        Timestamp `json:"postedAt"`
}
