package domain

// Review is an employee review of a company, owned by the review service.
// CompanyID duplicates the catalog identity; nothing enforces that the company
// exists.
type Review struct {
	ID                    string    `json:"id"`
	CompanyID             int       `json:"companyId"`
	UserID                int       `json:"userId"`
	OverallRating         float64   `json:"overallRating"`
	WorkLifeBalanceRating float64   `json:"workLifeBalanceRating"`
	CultureRating         float64   `json:"cultureRating"`
	ManagementRating      float64   `json:"managementRating"`
	CompensationRating    float64   `json:"compensationRating"`
	Title                 string    `json:"title"`
	ReviewText            string    `json:"reviewText"`
	Pros                  string    `json:"pros"`
	Cons                  string    `json:"cons"`
	IsCurrentEmployee     bool      `json:"isCurrentEmployee"`
	JobTitle              string    `json:"jobTitle"`
	CreatedAt             Timestamp `json:"createdAt"`
}
