package schemas

// User is an owner/staff account from the legacy main-site MySQL database.
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
}

type UserListResponse struct {
	OK    bool   `json:"ok"`
	Items []User `json:"items"`
}

type UserResponse struct {
	OK   bool  `json:"ok"`
	User *User `json:"user"`
}
