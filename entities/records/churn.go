package records

import (
	"time"

	"github.com/shotaro12223/wisteria-ats-sub001/schemas"
	"github.com/shotaro12223/wisteria-ats-sub001/utils"
)

// Churn scoring weights and thresholds. These mirror the operational signal
// sales staff already work with, so the values must not drift; see DESIGN.md
// before touching them.
const (
	WEIGHT_HEALTH_STATUS_BAD    = 40
	WEIGHT_NO_ACTIVE_JOBS       = 30
	WEIGHT_NO_MONTHLY_APPLICANT = 20
	WEIGHT_LOW_CONFIDENCE       = 30
	WEIGHT_RENEWAL_NEAR         = 20

	RISK_LEVEL_HIGH_THRESHOLD   = 70
	RISK_LEVEL_MEDIUM_THRESHOLD = 40

	RENEWAL_NEAR_DAYS = 30
)

type ChurnInputs struct {
	HealthStatus        string
	ActiveJobsCount     int
	ContractMonths      int
	ThisMonthApplicants int
	RenewalConfidence   string
	DaysUntilRenewal    *int
}

// ComputeChurnRisk sums a fixed weight per triggered condition and clamps to
// [0,100]. Additive and order-independent.
func ComputeChurnRisk(inputs ChurnInputs) int {
	risk := 0

	if inputs.HealthStatus == "risk" || inputs.HealthStatus == "danger" {
		risk += WEIGHT_HEALTH_STATUS_BAD
	}
	if inputs.ActiveJobsCount == 0 && inputs.ContractMonths > 1 {
		risk += WEIGHT_NO_ACTIVE_JOBS
	}
	if inputs.ThisMonthApplicants == 0 && inputs.ContractMonths > 0 {
		risk += WEIGHT_NO_MONTHLY_APPLICANT
	}
	if inputs.RenewalConfidence == "low" {
		risk += WEIGHT_LOW_CONFIDENCE
	}
	if inputs.DaysUntilRenewal != nil && *inputs.DaysUntilRenewal > 0 && *inputs.DaysUntilRenewal < RENEWAL_NEAR_DAYS {
		risk += WEIGHT_RENEWAL_NEAR
	}

	if risk > 100 {
		return 100
	}
	if risk < 0 {
		return 0
	}
	return risk
}

func HealthScore(churnRisk int) int {
	return 100 - churnRisk
}

func RiskLevel(churnRisk int) string {
	if churnRisk >= RISK_LEVEL_HIGH_THRESHOLD {
		return "高"
	}
	if churnRisk >= RISK_LEVEL_MEDIUM_THRESHOLD {
		return "中"
	}
	return "低"
}

// BuildChurnInputs derives the scoring inputs from a record's profile plus
// the usage counts. Unparseable dates coerce to zero / no-date rather than
// erroring.
func BuildChurnInputs(record schemas.CompanyRecord, activeJobsCount, thisMonthApplicants int, now time.Time) ChurnInputs {
	inputs := ChurnInputs{
		HealthStatus:        record.Profile.HealthStatus,
		ActiveJobsCount:     activeJobsCount,
		ThisMonthApplicants: thisMonthApplicants,
		RenewalConfidence:   record.Profile.RenewalConfidence,
	}

	if start, ok := utils.ParseDateFlexible(record.Profile.ContractStartDate); ok {
		inputs.ContractMonths = utils.WholeMonthsBetween(start, now)
	}

	if renewal, ok := utils.ParseDateFlexible(record.Profile.RenewalDate); ok {
		days := utils.CeilDaysUntil(renewal, now)
		inputs.DaysUntilRenewal = &days
	}

	return inputs
}
