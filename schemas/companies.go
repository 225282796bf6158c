package schemas

// Company is a row in the legacy main-site MySQL database. Read-only here;
// nullable columns are coerced to empty strings at scan time.
type Company struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Kana      string `json:"kana,omitempty"`
	Industry  string `json:"industry,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// CompanyListItem joins the MySQL company with its back-office record for the
// companies list page.
type CompanyListItem struct {
	Company     Company        `json:"company"`
	Record      *CompanyRecord `json:"record,omitempty"`
	ChurnRisk   int            `json:"churnRisk"`
	HealthScore int            `json:"healthScore"`
	RiskLevel   string         `json:"riskLevel"`
}

type CompanyListResponse struct {
	OK         bool              `json:"ok"`
	Items      []CompanyListItem `json:"items"`
	Pagination Pagination        `json:"pagination"`
}

type CompanyResponse struct {
	OK      bool     `json:"ok"`
	Company *Company `json:"company"`
}
