package deals

import (
	"slices"
	"testing"

	"github.com/shotaro12223/wisteria-ats-sub001/schemas"
)

func TestNormalizeStageForMode(t *testing.T) {
	tests := []struct {
		name     string
		rawStage string
		mode     string
		want     string
	}{
		{"sales stage kept in sales mode", "提案", schemas.DEAL_MODE_SALES, "提案"},
		{"contract stage kept in contract mode", "稼働中", schemas.DEAL_MODE_CONTRACT, "稼働中"},
		{"contract stage falls back in sales mode", "稼働中", schemas.DEAL_MODE_SALES, "ヒアリング"},
		{"sales stage falls back in contract mode", "クロージング", schemas.DEAL_MODE_CONTRACT, "準備"},
		{"empty stage falls back in sales mode", "", schemas.DEAL_MODE_SALES, "ヒアリング"},
		{"empty stage falls back in contract mode", "", schemas.DEAL_MODE_CONTRACT, "準備"},
		{"unknown legacy value falls back", "アポ取得", schemas.DEAL_MODE_SALES, "ヒアリング"},
		{"unknown mode treated as sales", "提案", "nonsense", "提案"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeStageForMode(tt.rawStage, tt.mode)
			if got != tt.want {
				t.Errorf("NormalizeStageForMode(%q, %q) = %q, want %q", tt.rawStage, tt.mode, got, tt.want)
			}
		})
	}
}

func TestNormalizeStageForModeIdempotent(t *testing.T) {
	for _, mode := range []string{schemas.DEAL_MODE_SALES, schemas.DEAL_MODE_CONTRACT} {
		for _, raw := range append(slices.Clone(salesStages), contractStages...) {
			once := NormalizeStageForMode(raw, mode)
			twice := NormalizeStageForMode(once, mode)
			if once != twice {
				t.Errorf("mode %q stage %q: normalize changed an already-normalized stage: %q -> %q", mode, raw, once, twice)
			}
		}
	}
}

func TestStagesForModeVocabulary(t *testing.T) {
	sales := StagesForMode(schemas.DEAL_MODE_SALES)
	if !slices.Equal(sales, []string{"ヒアリング", "提案", "条件調整", "クロージング", "成約", "失注"}) {
		t.Errorf("sales stages = %v", sales)
	}

	contract := StagesForMode(schemas.DEAL_MODE_CONTRACT)
	if !slices.Equal(contract, []string{"準備", "稼働中", "更新交渉", "更新", "解約"}) {
		t.Errorf("contract stages = %v", contract)
	}
}

func TestDeriveMode(t *testing.T) {
	tests := []struct {
		name         string
		kind         string
		recordStatus string
		want         string
	}{
		{"existing kind forces contract", schemas.DEAL_KIND_EXISTING, "", schemas.DEAL_MODE_CONTRACT},
		{"active record forces contract", schemas.DEAL_KIND_NEW, schemas.RECORD_STATUS_ACTIVE, schemas.DEAL_MODE_CONTRACT},
		{"existing and active is contract", schemas.DEAL_KIND_EXISTING, schemas.RECORD_STATUS_ACTIVE, schemas.DEAL_MODE_CONTRACT},
		{"new kind without record is sales", schemas.DEAL_KIND_NEW, "", schemas.DEAL_MODE_SALES},
		{"new kind with inactive record is sales", schemas.DEAL_KIND_NEW, schemas.RECORD_STATUS_INACTIVE, schemas.DEAL_MODE_SALES},
		{"new kind with risk record is sales", schemas.DEAL_KIND_NEW, schemas.RECORD_STATUS_RISK, schemas.DEAL_MODE_SALES},
		{"new kind with paused record is sales", schemas.DEAL_KIND_NEW, schemas.RECORD_STATUS_PAUSED, schemas.DEAL_MODE_SALES},
		{"empty everything is sales", "", "", schemas.DEAL_MODE_SALES},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveMode(tt.kind, tt.recordStatus)
			if got != tt.want {
				t.Errorf("DeriveMode(%q, %q) = %q, want %q", tt.kind, tt.recordStatus, got, tt.want)
			}
		})
	}
}

func TestValidateStartDeal(t *testing.T) {
	if problems := ValidateStartDeal("既存顧客向け提案", schemas.DEAL_KIND_NEW); len(problems) != 0 {
		t.Errorf("valid input rejected: %v", problems)
	}

	if problems := ValidateStartDeal("  ", schemas.DEAL_KIND_EXISTING); len(problems) != 1 {
		t.Errorf("blank title should yield one problem, got %v", problems)
	}

	if problems := ValidateStartDeal("案件", "renewal"); len(problems) != 1 {
		t.Errorf("unknown kind should yield one problem, got %v", problems)
	}

	if problems := ValidateStartDeal("", ""); len(problems) != 2 {
		t.Errorf("empty form should yield two problems, got %v", problems)
	}
}
