package schemas

import (
	"time"
)

const (
	RECORD_STATUS_ACTIVE   = "active"
	RECORD_STATUS_RISK     = "risk"
	RECORD_STATUS_PAUSED   = "paused"
	RECORD_STATUS_INACTIVE = "inactive"
)

// RecordProfile is the typed replacement for the schemaless profile bag the
// pages used to stash CRM attributes in. Every field is optional.
type RecordProfile struct {
	ContractStartDate string  `json:"contractStartDate,omitempty" bson:"contract_start_date,omitempty"`
	RenewalDate       string  `json:"renewalDate,omitempty" bson:"renewal_date,omitempty"`
	MRR               float64 `json:"mrr,omitempty" bson:"mrr,omitempty"`
	Plan              string  `json:"plan,omitempty" bson:"plan,omitempty"`
	HealthStatus      string  `json:"healthStatus,omitempty" bson:"health_status,omitempty"`
	RenewalConfidence string  `json:"renewalConfidence,omitempty" bson:"renewal_confidence,omitempty"`
	ContactName       string  `json:"contactName,omitempty" bson:"contact_name,omitempty"`
	ContactEmail      string  `json:"contactEmail,omitempty" bson:"contact_email,omitempty"`
	AcquisitionSource string  `json:"acquisitionSource,omitempty" bson:"acquisition_source,omitempty"`
}

type CompanyRecord struct {
	CompanyID   int64         `json:"companyId" bson:"company_id"`
	Status      string        `json:"status,omitempty" bson:"status,omitempty"`
	OwnerUserID int64         `json:"ownerUserId,omitempty" bson:"owner_user_id,omitempty"`
	Tags        []string      `json:"tags,omitempty" bson:"tags,omitempty"`
	Memo        string        `json:"memo,omitempty" bson:"memo,omitempty"`
	Profile     RecordProfile `json:"profile" bson:"profile"`
	CreatedAt   time.Time     `json:"createdAt" bson:"created_at,omitempty"`
	UpdatedAt   time.Time     `json:"updatedAt" bson:"updated_at,omitempty"`
}

// RecordPatch is the PATCH /api/companies/{id}/record body. Tags and profile
// replace the stored value wholesale, matching the snapshot-based dirty model
// on the editing side.
type RecordPatch struct {
	Status      string         `json:"status"`
	OwnerUserID *int64         `json:"owner_user_id"`
	Tags        *[]string      `json:"tags"`
	Memo        *string        `json:"memo"`
	Profile     *RecordProfile `json:"profile"`
}

type RecordDetailResponse struct {
	OK          bool           `json:"ok"`
	Record      *CompanyRecord `json:"record"`
	ChurnRisk   int            `json:"churnRisk"`
	HealthScore int            `json:"healthScore"`
	RiskLevel   string         `json:"riskLevel"`
}

type RecordResponse struct {
	OK     bool           `json:"ok"`
	Record *CompanyRecord `json:"record"`
}
