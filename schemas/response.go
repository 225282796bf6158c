package schemas

type ApiError struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	OK    bool     `json:"ok"`
	Error ApiError `json:"error"`
}

type Pagination struct {
	Page            int  `json:"page"`
	Limit           int  `json:"limit"`
	TotalCount      int  `json:"totalCount"`
	TotalPages      int  `json:"totalPages"`
	HasNextPage     bool `json:"hasNextPage"`
	HasPreviousPage bool `json:"hasPreviousPage"`
}
