package schemas

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	DEAL_KIND_NEW      = "new"
	DEAL_KIND_EXISTING = "existing"

	DEAL_MODE_SALES    = "sales"
	DEAL_MODE_CONTRACT = "contract"
)

type Deal struct {
	ID           bson.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	CompanyID    int64         `json:"companyId,omitempty" bson:"company_id,omitempty"`
	Kind         string        `json:"kind,omitempty" bson:"kind,omitempty"`
	Title        string        `json:"title,omitempty" bson:"title,omitempty"`
	Stage        string        `json:"stage,omitempty" bson:"stage,omitempty"`
	StartDate    string        `json:"startDate,omitempty" bson:"start_date,omitempty"`
	DueDate      string        `json:"dueDate,omitempty" bson:"due_date,omitempty"`
	Amount       float64       `json:"amount,omitempty" bson:"amount,omitempty"`
	Probability  int           `json:"probability,omitempty" bson:"probability,omitempty"`
	Memo         string        `json:"memo,omitempty" bson:"memo,omitempty"`
	MeetingGoal  string        `json:"meetingGoal,omitempty" bson:"meeting_goal,omitempty"`
	MeetingRisks string        `json:"meetingRisks,omitempty" bson:"meeting_risks,omitempty"`
	MeetingNext  string        `json:"meetingNext,omitempty" bson:"meeting_next,omitempty"`
	CreatedAt    time.Time     `json:"createdAt" bson:"created_at,omitempty"`
	UpdatedAt    time.Time     `json:"updatedAt" bson:"updated_at,omitempty"`
}

// DealPatch is the PATCH /api/deals/{id} body. Keys are snake_case on the
// wire. Amount and probability are pointers so an explicit zero survives the
// partial-update check.
type DealPatch struct {
	Title        string   `json:"title"`
	Stage        string   `json:"stage"`
	StartDate    string   `json:"start_date"`
	DueDate      string   `json:"due_date"`
	Amount       *float64 `json:"amount"`
	Probability  *int     `json:"probability"`
	Memo         *string  `json:"memo"`
	MeetingGoal  *string  `json:"meeting_goal"`
	MeetingRisks *string  `json:"meeting_risks"`
	MeetingNext  *string  `json:"meeting_next"`
}

type DealDetailResponse struct {
	OK      bool           `json:"ok"`
	Deal    *Deal          `json:"deal"`
	Company *Company       `json:"company,omitempty"`
	Record  *CompanyRecord `json:"record,omitempty"`
	Mode    string         `json:"mode,omitempty"`
}

type DealListResponse struct {
	OK         bool       `json:"ok"`
	Items      []Deal     `json:"items"`
	Pagination Pagination `json:"pagination"`
}

type DealResponse struct {
	OK   bool  `json:"ok"`
	Deal *Deal `json:"deal"`
}
