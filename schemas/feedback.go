package schemas

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	FEEDBACK_RESULT_PASS    = "pass"
	FEEDBACK_RESULT_FAIL    = "fail"
	FEEDBACK_RESULT_PENDING = "pending"
	FEEDBACK_RESULT_NO_SHOW = "no_show"
)

// ClientFeedback is one interview-result record per applicant per interview
// event. Conditional fields are validated before insert so stored documents
// can be trusted by result type.
type ClientFeedback struct {
	ID             bson.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	ApplicantID    bson.ObjectID `json:"applicantId,omitempty" bson:"applicant_id,omitempty"`
	InterviewEvent string        `json:"interviewEvent,omitempty" bson:"interview_event,omitempty"`
	Result         string        `json:"result,omitempty" bson:"result,omitempty"`
	FailReason     string        `json:"failReason,omitempty" bson:"fail_reason,omitempty"`
	PassRating     int           `json:"passRating,omitempty" bson:"pass_rating,omitempty"`
	Strengths      string        `json:"strengths,omitempty" bson:"strengths,omitempty"`
	HireIntention  string        `json:"hireIntention,omitempty" bson:"hire_intention,omitempty"`
	CreatedAt      time.Time     `json:"createdAt" bson:"created_at,omitempty"`
}

type FeedbackListResponse struct {
	OK    bool             `json:"ok"`
	Items []ClientFeedback `json:"items"`
}

type FeedbackResponse struct {
	OK       bool            `json:"ok"`
	Feedback *ClientFeedback `json:"feedback"`
}
