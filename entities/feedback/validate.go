package feedback

import (
	"github.com/shotaro12223/wisteria-ats-sub001/schemas"
)

// ValidateFeedback checks the conditional field rules before anything is
// persisted, so stored documents can be trusted by result type:
//   - failReason only (and always) with a fail result
//   - passRating and strengths only (and always) with a pass result
//   - hireIntention only (and always) with pass or pending
//
// Returns the list of violations in display order; empty means valid.
func ValidateFeedback(fb schemas.ClientFeedback) []string {
	problems := []string{}

	switch fb.Result {
	case schemas.FEEDBACK_RESULT_PASS,
		schemas.FEEDBACK_RESULT_FAIL,
		schemas.FEEDBACK_RESULT_PENDING,
		schemas.FEEDBACK_RESULT_NO_SHOW:
	default:
		problems = append(problems, "面接結果（pass/fail/pending/no_show）を選択してください")
		return problems
	}

	if fb.InterviewEvent == "" {
		problems = append(problems, "面接イベント名を入力してください")
	}

	if fb.Result == schemas.FEEDBACK_RESULT_FAIL {
		if fb.FailReason == "" {
			problems = append(problems, "不合格理由を入力してください")
		}
	} else if fb.FailReason != "" {
		problems = append(problems, "不合格理由は不合格の場合のみ入力できます")
	}

	if fb.Result == schemas.FEEDBACK_RESULT_PASS {
		if fb.PassRating < 1 || fb.PassRating > 5 {
			problems = append(problems, "評価（1〜5）を入力してください")
		}
		if fb.Strengths == "" {
			problems = append(problems, "評価ポイントを入力してください")
		}
	} else {
		if fb.PassRating != 0 {
			problems = append(problems, "評価は合格の場合のみ入力できます")
		}
		if fb.Strengths != "" {
			problems = append(problems, "評価ポイントは合格の場合のみ入力できます")
		}
	}

	if fb.Result == schemas.FEEDBACK_RESULT_PASS || fb.Result == schemas.FEEDBACK_RESULT_PENDING {
		if fb.HireIntention == "" {
			problems = append(problems, "採用意向を入力してください")
		}
	} else if fb.HireIntention != "" {
		problems = append(problems, "採用意向は合格または保留の場合のみ入力できます")
	}

	return problems
}
