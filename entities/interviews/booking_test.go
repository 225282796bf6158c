package interviews

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/shotaro12223/wisteria-ats-sub001/schemas"
)

type fakeBookingStore struct {
	activeBookings int64
	countErr       error

	slotBooked bool
	claimErr   error

	insertErr error

	releasedSlots []bson.ObjectID
	inserted      []*schemas.InterviewBooking
}

func (s *fakeBookingStore) CountActiveBookings(ctx context.Context, applicantID bson.ObjectID) (int64, error) {
	return s.activeBookings, s.countErr
}

func (s *fakeBookingStore) ClaimSlot(ctx context.Context, slotID bson.ObjectID) (bool, error) {
	if s.claimErr != nil {
		return false, s.claimErr
	}
	if s.slotBooked {
		return false, nil
	}
	s.slotBooked = true
	return true, nil
}

func (s *fakeBookingStore) ReleaseSlot(ctx context.Context, slotID bson.ObjectID) error {
	s.slotBooked = false
	s.releasedSlots = append(s.releasedSlots, slotID)
	return nil
}

func (s *fakeBookingStore) InsertBooking(ctx context.Context, booking *schemas.InterviewBooking) error {
	if s.insertErr != nil {
		return s.insertErr
	}
	s.inserted = append(s.inserted, booking)
	return nil
}

func TestBookSlot(t *testing.T) {
	ctx := context.Background()
	applicantID := bson.NewObjectID()
	slotID := bson.NewObjectID()

	t.Run("books a free slot", func(t *testing.T) {
		store := &fakeBookingStore{}

		booking, err := bookSlot(ctx, store, applicantID, slotID)
		if err != nil {
			t.Fatalf("bookSlot() error = %v", err)
		}

		if booking.ApplicantID != applicantID || booking.SlotID != slotID {
			t.Errorf("booking ids = %+v", booking)
		}
		if booking.Status != schemas.BOOKING_STATUS_ACTIVE {
			t.Errorf("status = %q, want active", booking.Status)
		}
		if !store.slotBooked {
			t.Error("slot was not claimed")
		}
		if len(store.inserted) != 1 {
			t.Errorf("inserted %d bookings, want 1", len(store.inserted))
		}
	})

	t.Run("second active booking for the applicant is refused", func(t *testing.T) {
		store := &fakeBookingStore{activeBookings: 1}

		_, err := bookSlot(ctx, store, applicantID, slotID)
		if !errors.Is(err, ErrApplicantAlreadyBooked) {
			t.Fatalf("error = %v, want ErrApplicantAlreadyBooked", err)
		}
		if store.slotBooked {
			t.Error("slot must not be claimed when the applicant is already booked")
		}
	})

	t.Run("taken slot is refused", func(t *testing.T) {
		store := &fakeBookingStore{slotBooked: true}

		_, err := bookSlot(ctx, store, applicantID, slotID)
		if !errors.Is(err, ErrSlotAlreadyBooked) {
			t.Fatalf("error = %v, want ErrSlotAlreadyBooked", err)
		}
		if len(store.inserted) != 0 {
			t.Error("no booking may be inserted for a taken slot")
		}
	})

	t.Run("slot released when the booking insert fails", func(t *testing.T) {
		store := &fakeBookingStore{insertErr: errors.New("write failed")}

		_, err := bookSlot(ctx, store, applicantID, slotID)
		if err == nil {
			t.Fatal("expected an error")
		}
		if errors.Is(err, ErrApplicantAlreadyBooked) || errors.Is(err, ErrSlotAlreadyBooked) {
			t.Fatalf("insert failure must not look like a conflict: %v", err)
		}

		if store.slotBooked {
			t.Error("slot must be released after a failed insert")
		}
		if len(store.releasedSlots) != 1 || store.releasedSlots[0] != slotID {
			t.Errorf("released slots = %v, want [%v]", store.releasedSlots, slotID)
		}
	})

	t.Run("count failure surfaces as an error", func(t *testing.T) {
		store := &fakeBookingStore{countErr: errors.New("read failed")}

		_, err := bookSlot(ctx, store, applicantID, slotID)
		if err == nil {
			t.Fatal("expected an error")
		}
		if store.slotBooked {
			t.Error("slot must not be claimed when the active check fails")
		}
	})
}
