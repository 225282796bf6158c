package deals

import (
	"slices"

	"github.com/shotaro12223/wisteria-ats-sub001/schemas"
)

// Pipeline vocabularies per deal mode. The first stage of each list doubles
// as the fallback when a deal carries a stage from the other mode (e.g. a
// prospect that just signed) or a legacy value.
var salesStages = []string{"ヒアリング", "提案", "条件調整", "クロージング", "成約", "失注"}

var contractStages = []string{"準備", "稼働中", "更新交渉", "更新", "解約"}

func StagesForMode(mode string) []string {
	if mode == schemas.DEAL_MODE_CONTRACT {
		return contractStages
	}
	return salesStages
}

// NormalizeStageForMode returns rawStage unchanged when it belongs to the
// mode's vocabulary, otherwise the mode's initial stage. Unmapped input
// falls back silently so the board always renders something sensible.
func NormalizeStageForMode(rawStage, mode string) string {
	stages := StagesForMode(mode)
	if slices.Contains(stages, rawStage) {
		return rawStage
	}
	return stages[0]
}

// DeriveMode decides between the new-business pipeline and the
// existing-customer pipeline. An "existing" deal or an active company record
// means contract mode; everything else is sales. Recomputed per request,
// never stored.
func DeriveMode(kind, recordStatus string) string {
	if kind == schemas.DEAL_KIND_EXISTING || recordStatus == schemas.RECORD_STATUS_ACTIVE {
		return schemas.DEAL_MODE_CONTRACT
	}
	return schemas.DEAL_MODE_SALES
}
