package schemas

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	BOOKING_STATUS_ACTIVE    = "active"
	BOOKING_STATUS_CANCELLED = "cancelled"
)

// InterviewSlot is a client-submitted availability window. Date is
// "2006-01-02", times are "15:04". A booked slot leaves the available pool
// and returns to it when its booking is cancelled.
type InterviewSlot struct {
	ID        bson.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	CompanyID int64         `json:"companyId,omitempty" bson:"company_id,omitempty"`
	JobID     int64         `json:"jobId,omitempty" bson:"job_id,omitempty"`
	Date      string        `json:"date,omitempty" bson:"date,omitempty"`
	StartTime string        `json:"startTime,omitempty" bson:"start_time,omitempty"`
	EndTime   string        `json:"endTime,omitempty" bson:"end_time,omitempty"`
	Booked    bool          `json:"booked" bson:"booked"`
	CreatedAt time.Time     `json:"createdAt" bson:"created_at,omitempty"`
}

type InterviewBooking struct {
	ID          bson.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	ApplicantID bson.ObjectID `json:"applicantId,omitempty" bson:"applicant_id,omitempty"`
	SlotID      bson.ObjectID `json:"slotId,omitempty" bson:"slot_id,omitempty"`
	Status      string        `json:"status,omitempty" bson:"status,omitempty"`
	CreatedAt   time.Time     `json:"createdAt" bson:"created_at,omitempty"`
	CancelledAt time.Time     `json:"cancelledAt,omitzero" bson:"cancelled_at,omitempty"`
}

type SlotListResponse struct {
	OK    bool            `json:"ok"`
	Items []InterviewSlot `json:"items"`
}

type SlotResponse struct {
	OK   bool           `json:"ok"`
	Slot *InterviewSlot `json:"slot"`
}

type BookingResponse struct {
	OK      bool              `json:"ok"`
	Booking *InterviewBooking `json:"booking"`
}
