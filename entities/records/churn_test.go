package records

import (
	"testing"
	"time"

	"github.com/shotaro12223/wisteria-ats-sub001/schemas"
)

func intPtr(v int) *int {
	return &v
}

func TestComputeChurnRisk(t *testing.T) {
	tests := []struct {
		name   string
		inputs ChurnInputs
		want   int
	}{
		{
			"healthy customer scores zero",
			ChurnInputs{HealthStatus: "good", ActiveJobsCount: 3, ContractMonths: 12, ThisMonthApplicants: 5, RenewalConfidence: "high", DaysUntilRenewal: intPtr(200)},
			0,
		},
		{
			"risk health status alone",
			ChurnInputs{HealthStatus: "risk", ActiveJobsCount: 1, ContractMonths: 6, ThisMonthApplicants: 2},
			40,
		},
		{
			"danger counts same as risk",
			ChurnInputs{HealthStatus: "danger", ActiveJobsCount: 1, ContractMonths: 6, ThisMonthApplicants: 2},
			40,
		},
		{
			"no active jobs needs tenure past one month",
			ChurnInputs{ActiveJobsCount: 0, ContractMonths: 1, ThisMonthApplicants: 3},
			0,
		},
		{
			"no active jobs with tenure",
			ChurnInputs{ActiveJobsCount: 0, ContractMonths: 2, ThisMonthApplicants: 3},
			30,
		},
		{
			"no applicants this month needs any tenure",
			ChurnInputs{ActiveJobsCount: 2, ContractMonths: 0, ThisMonthApplicants: 0},
			0,
		},
		{
			"no applicants with tenure",
			ChurnInputs{ActiveJobsCount: 2, ContractMonths: 1, ThisMonthApplicants: 0},
			20,
		},
		{
			"low renewal confidence",
			ChurnInputs{ActiveJobsCount: 2, ContractMonths: 6, ThisMonthApplicants: 3, RenewalConfidence: "low"},
			30,
		},
		{
			"renewal within thirty days",
			ChurnInputs{ActiveJobsCount: 2, ContractMonths: 6, ThisMonthApplicants: 3, DaysUntilRenewal: intPtr(29)},
			20,
		},
		{
			"renewal exactly thirty days away does not count",
			ChurnInputs{ActiveJobsCount: 2, ContractMonths: 6, ThisMonthApplicants: 3, DaysUntilRenewal: intPtr(30)},
			0,
		},
		{
			"renewal already passed does not count",
			ChurnInputs{ActiveJobsCount: 2, ContractMonths: 6, ThisMonthApplicants: 3, DaysUntilRenewal: intPtr(0)},
			0,
		},
		{
			"no renewal date does not count",
			ChurnInputs{ActiveJobsCount: 2, ContractMonths: 6, ThisMonthApplicants: 3},
			0,
		},
		{
			"everything wrong clamps to one hundred",
			ChurnInputs{HealthStatus: "danger", ActiveJobsCount: 0, ContractMonths: 6, ThisMonthApplicants: 0, RenewalConfidence: "low", DaysUntilRenewal: intPtr(10)},
			100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeChurnRisk(tt.inputs)
			if got != tt.want {
				t.Errorf("ComputeChurnRisk(%+v) = %d, want %d", tt.inputs, got, tt.want)
			}
		})
	}
}

func TestHealthScore(t *testing.T) {
	if got := HealthScore(0); got != 100 {
		t.Errorf("HealthScore(0) = %d, want 100", got)
	}
	if got := HealthScore(100); got != 0 {
		t.Errorf("HealthScore(100) = %d, want 0", got)
	}
	if got := HealthScore(40); got != 60 {
		t.Errorf("HealthScore(40) = %d, want 60", got)
	}
}

func TestRiskLevel(t *testing.T) {
	tests := []struct {
		risk int
		want string
	}{
		{0, "低"},
		{39, "低"},
		{40, "中"},
		{69, "中"},
		{70, "高"},
		{100, "高"},
	}

	for _, tt := range tests {
		if got := RiskLevel(tt.risk); got != tt.want {
			t.Errorf("RiskLevel(%d) = %q, want %q", tt.risk, got, tt.want)
		}
	}
}

func TestBuildChurnInputs(t *testing.T) {
	now := time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC)

	t.Run("full profile", func(t *testing.T) {
		record := schemas.CompanyRecord{
			CompanyID: 42,
			Status:    schemas.RECORD_STATUS_ACTIVE,
			Profile: schemas.RecordProfile{
				ContractStartDate: "2026-01-15",
				RenewalDate:       "2026-09-01",
				HealthStatus:      "risk",
				RenewalConfidence: "low",
			},
		}

		inputs := BuildChurnInputs(record, 2, 1, now)

		if inputs.HealthStatus != "risk" {
			t.Errorf("HealthStatus = %q", inputs.HealthStatus)
		}
		if inputs.ContractMonths != 7 {
			t.Errorf("ContractMonths = %d, want 7", inputs.ContractMonths)
		}
		if inputs.DaysUntilRenewal == nil {
			t.Fatal("DaysUntilRenewal = nil, want a value")
		}
		if *inputs.DaysUntilRenewal != 17 {
			t.Errorf("DaysUntilRenewal = %d, want 17", *inputs.DaysUntilRenewal)
		}
		if inputs.ActiveJobsCount != 2 || inputs.ThisMonthApplicants != 1 {
			t.Errorf("counts not carried through: %+v", inputs)
		}
	})

	t.Run("month not yet completed", func(t *testing.T) {
		record := schemas.CompanyRecord{
			Profile: schemas.RecordProfile{ContractStartDate: "2026-07-20"},
		}

		inputs := BuildChurnInputs(record, 0, 0, now)
		if inputs.ContractMonths != 0 {
			t.Errorf("ContractMonths = %d, want 0", inputs.ContractMonths)
		}
	})

	t.Run("unparseable dates coerce to empty", func(t *testing.T) {
		record := schemas.CompanyRecord{
			Profile: schemas.RecordProfile{
				ContractStartDate: "来年の春",
				RenewalDate:       "not-a-date",
			},
		}

		inputs := BuildChurnInputs(record, 1, 1, now)
		if inputs.ContractMonths != 0 {
			t.Errorf("ContractMonths = %d, want 0", inputs.ContractMonths)
		}
		if inputs.DaysUntilRenewal != nil {
			t.Errorf("DaysUntilRenewal = %v, want nil", *inputs.DaysUntilRenewal)
		}
	})

	t.Run("empty profile", func(t *testing.T) {
		inputs := BuildChurnInputs(schemas.CompanyRecord{}, 0, 0, now)
		if inputs.ContractMonths != 0 || inputs.DaysUntilRenewal != nil {
			t.Errorf("empty profile should yield zero inputs: %+v", inputs)
		}
	})
}
