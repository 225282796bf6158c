package interviews

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/shotaro12223/wisteria-ats-sub001/schemas"
)

var (
	ErrApplicantAlreadyBooked = errors.New("この応募者には既に確定済みの面接枠があります")
	ErrSlotAlreadyBooked      = errors.New("この面接枠は既に予約されています")
)

// bookingStore is the persistence seam for the booking rules. The production
// implementation is Mongo-backed (see create_one_booking.go).
type bookingStore interface {
	CountActiveBookings(ctx context.Context, applicantID bson.ObjectID) (int64, error)
	// ClaimSlot marks an unbooked slot as booked. False means the slot was
	// already taken (or does not exist).
	ClaimSlot(ctx context.Context, slotID bson.ObjectID) (bool, error)
	ReleaseSlot(ctx context.Context, slotID bson.ObjectID) error
	InsertBooking(ctx context.Context, booking *schemas.InterviewBooking) error
}

// bookSlot confirms a slot for an applicant. An applicant holds at most one
// active booking, and a booked slot leaves the available pool. If persisting
// the booking fails after the slot was claimed, the slot is released so it is
// not stranded.
func bookSlot(ctx context.Context, store bookingStore, applicantID, slotID bson.ObjectID) (*schemas.InterviewBooking, error) {
	activeCount, err := store.CountActiveBookings(ctx, applicantID)
	if err != nil {
		return nil, fmt.Errorf("failed to count active bookings: %w", err)
	}
	if activeCount > 0 {
		return nil, ErrApplicantAlreadyBooked
	}

	claimed, err := store.ClaimSlot(ctx, slotID)
	if err != nil {
		return nil, fmt.Errorf("failed to claim slot: %w", err)
	}
	if !claimed {
		return nil, ErrSlotAlreadyBooked
	}

	booking := &schemas.InterviewBooking{
		ID:          bson.NewObjectID(),
		ApplicantID: applicantID,
		SlotID:      slotID,
		Status:      schemas.BOOKING_STATUS_ACTIVE,
		CreatedAt:   time.Now(),
	}

	if err := store.InsertBooking(ctx, booking); err != nil {
		store.ReleaseSlot(ctx, slotID)
		return nil, fmt.Errorf("failed to insert booking: %w", err)
	}

	return booking, nil
}
