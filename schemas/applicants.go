package schemas

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Applicant statuses. The legacy pipeline values still occur in stored data
// and must keep rendering; only the current three are assigned going forward.
const (
	APPLICANT_STATUS_NEW    = "NEW"
	APPLICANT_STATUS_PRE_NG = "PRE_NG"
	APPLICANT_STATUS_SHARED = "SHARED"

	// legacy
	APPLICANT_STATUS_DOC   = "DOC"
	APPLICANT_STATUS_INT   = "INT"
	APPLICANT_STATUS_OFFER = "OFFER"
	APPLICANT_STATUS_NG    = "NG"
)

var applicantStatusLabels = map[string]string{
	APPLICANT_STATUS_NEW:    "新着",
	APPLICANT_STATUS_PRE_NG: "事前NG",
	APPLICANT_STATUS_SHARED: "共有済",
	APPLICANT_STATUS_DOC:    "書類選考",
	APPLICANT_STATUS_INT:    "面接",
	APPLICANT_STATUS_OFFER:  "内定",
	APPLICANT_STATUS_NG:     "NG",
}

// ApplicantStatusLabel is total: unknown stored values render as-is.
func ApplicantStatusLabel(status string) string {
	if label, ok := applicantStatusLabels[status]; ok {
		return label
	}
	return status
}

// IsValidApplicantStatus accepts current and legacy variants alike.
func IsValidApplicantStatus(status string) bool {
	_, ok := applicantStatusLabels[status]
	return ok
}

type Applicant struct {
	ID               bson.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	CompanyID        int64         `json:"companyId,omitempty" bson:"company_id,omitempty"`
	JobID            int64         `json:"jobId,omitempty" bson:"job_id,omitempty"`
	Name             string        `json:"name,omitempty" bson:"name,omitempty"`
	Status           string        `json:"status,omitempty" bson:"status,omitempty"`
	SiteKey          string        `json:"siteKey,omitempty" bson:"site_key,omitempty"`
	AppliedAt        time.Time     `json:"appliedAt" bson:"applied_at,omitempty"`
	Note             string        `json:"note,omitempty" bson:"note,omitempty"`
	ClientComment    string        `json:"clientComment,omitempty" bson:"client_comment,omitempty"`
	SharedWithClient bool          `json:"sharedWithClient" bson:"shared_with_client"`
	SharedAt         time.Time     `json:"sharedAt,omitzero" bson:"shared_at,omitempty"`
}

// ApplicantPatch is the PATCH /api/applicants/{id} body (camelCase wire keys,
// matching the portal pages).
type ApplicantPatch struct {
	Status        string  `json:"status"`
	Note          *string `json:"note"`
	ClientComment *string `json:"clientComment"`
	JobID         *int64  `json:"jobId"`
}

type ApplicantListItem struct {
	Applicant   Applicant `json:"applicant"`
	StatusLabel string    `json:"statusLabel"`
}

type ApplicantListResponse struct {
	OK         bool                `json:"ok"`
	Items      []ApplicantListItem `json:"items"`
	Pagination Pagination          `json:"pagination"`
}

type ApplicantResponse struct {
	OK        bool       `json:"ok"`
	Applicant *Applicant `json:"applicant"`
}
