package feedback

import (
	"testing"

	"github.com/shotaro12223/wisteria-ats-sub001/schemas"
)

func TestValidateFeedback(t *testing.T) {
	tests := []struct {
		name         string
		fb           schemas.ClientFeedback
		wantProblems int
	}{
		{
			"valid pass",
			schemas.ClientFeedback{
				InterviewEvent: "一次面接",
				Result:         schemas.FEEDBACK_RESULT_PASS,
				PassRating:     4,
				Strengths:      "コミュニケーション力が高い",
				HireIntention:  "ぜひ採用したい",
			},
			0,
		},
		{
			"valid fail",
			schemas.ClientFeedback{
				InterviewEvent: "一次面接",
				Result:         schemas.FEEDBACK_RESULT_FAIL,
				FailReason:     "経験が要件に満たない",
			},
			0,
		},
		{
			"valid pending",
			schemas.ClientFeedback{
				InterviewEvent: "二次面接",
				Result:         schemas.FEEDBACK_RESULT_PENDING,
				HireIntention:  "他候補と比較中",
			},
			0,
		},
		{
			"valid no-show",
			schemas.ClientFeedback{
				InterviewEvent: "一次面接",
				Result:         schemas.FEEDBACK_RESULT_NO_SHOW,
			},
			0,
		},
		{
			"unknown result short-circuits",
			schemas.ClientFeedback{
				InterviewEvent: "一次面接",
				Result:         "maybe",
			},
			1,
		},
		{
			"missing event name",
			schemas.ClientFeedback{
				Result:     schemas.FEEDBACK_RESULT_FAIL,
				FailReason: "要件未達",
			},
			1,
		},
		{
			"fail without reason",
			schemas.ClientFeedback{
				InterviewEvent: "一次面接",
				Result:         schemas.FEEDBACK_RESULT_FAIL,
			},
			1,
		},
		{
			"fail reason on a pass",
			schemas.ClientFeedback{
				InterviewEvent: "一次面接",
				Result:         schemas.FEEDBACK_RESULT_PASS,
				PassRating:     5,
				Strengths:      "即戦力",
				HireIntention:  "採用したい",
				FailReason:     "なし",
			},
			1,
		},
		{
			"pass without rating or strengths or intention",
			schemas.ClientFeedback{
				InterviewEvent: "一次面接",
				Result:         schemas.FEEDBACK_RESULT_PASS,
			},
			3,
		},
		{
			"pass rating out of range",
			schemas.ClientFeedback{
				InterviewEvent: "一次面接",
				Result:         schemas.FEEDBACK_RESULT_PASS,
				PassRating:     6,
				Strengths:      "即戦力",
				HireIntention:  "採用したい",
			},
			1,
		},
		{
			"pass fields on a fail",
			schemas.ClientFeedback{
				InterviewEvent: "一次面接",
				Result:         schemas.FEEDBACK_RESULT_FAIL,
				FailReason:     "要件未達",
				PassRating:     3,
				Strengths:      "人柄は良い",
			},
			2,
		},
		{
			"hire intention on a no-show",
			schemas.ClientFeedback{
				InterviewEvent: "一次面接",
				Result:         schemas.FEEDBACK_RESULT_NO_SHOW,
				HireIntention:  "不明",
			},
			1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			problems := ValidateFeedback(tt.fb)
			if len(problems) != tt.wantProblems {
				t.Errorf("ValidateFeedback() = %v (%d problems), want %d", problems, len(problems), tt.wantProblems)
			}
		})
	}
}
