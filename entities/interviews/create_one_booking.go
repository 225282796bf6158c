package interviews

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/shotaro12223/wisteria-ats-sub001/database"
	"github.com/shotaro12223/wisteria-ats-sub001/schemas"
	"github.com/shotaro12223/wisteria-ats-sub001/utils"
)

type createBookingRequest struct {
	ApplicantID string `json:"applicantId"`
	SlotID      string `json:"slotId"`
}

// mongoBookingStore backs the booking rules with the interview collections.
type mongoBookingStore struct {
	bookings *mongo.Collection
	slots    *mongo.Collection
}

func (s *mongoBookingStore) CountActiveBookings(ctx context.Context, applicantID bson.ObjectID) (int64, error) {
	return s.bookings.CountDocuments(ctx, bson.M{
		"applicant_id": applicantID,
		"status":       schemas.BOOKING_STATUS_ACTIVE,
	})
}

func (s *mongoBookingStore) ClaimSlot(ctx context.Context, slotID bson.ObjectID) (bool, error) {
	// Filtering on booked:false makes the claim atomic: two bookings cannot
	// both match the same slot.
	result, err := s.slots.UpdateOne(ctx,
		bson.M{"_id": slotID, "booked": false},
		bson.D{{Key: "$set", Value: bson.D{{Key: "booked", Value: true}}}},
	)
	if err != nil {
		return false, err
	}
	return result.MatchedCount > 0, nil
}

func (s *mongoBookingStore) ReleaseSlot(ctx context.Context, slotID bson.ObjectID) error {
	_, err := s.slots.UpdateOne(ctx,
		bson.M{"_id": slotID},
		bson.D{{Key: "$set", Value: bson.D{{Key: "booked", Value: false}}}},
	)
	return err
}

func (s *mongoBookingStore) InsertBooking(ctx context.Context, booking *schemas.InterviewBooking) error {
	_, err := s.bookings.InsertOne(ctx, booking)
	return err
}

func CreateOneBooking(w http.ResponseWriter, r *http.Request) {
	req := &createBookingRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.SendError(w, http.StatusBadRequest, "", utils.INTERVIEWS_INVALID_REQUEST_DATA)
		return
	}

	applicantID, err := bson.ObjectIDFromHex(req.ApplicantID)
	if err != nil {
		utils.SendError(w, http.StatusBadRequest, "", utils.INVALID_APPLICANT_ID_FORMAT)
		return
	}
	slotID, err := bson.ObjectIDFromHex(req.SlotID)
	if err != nil {
		utils.SendError(w, http.StatusBadRequest, "", utils.INVALID_SLOT_ID_FORMAT)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), database.MONGO_TIMEOUT)
	defer cancel()

	mongoURI := os.Getenv(utils.MONGODB_URI)
	opts := options.Client().ApplyURI(mongoURI)
	mongoClient, err := mongo.Connect(opts)
	if err != nil {
		utils.SendError(w, http.StatusBadGateway, "", utils.CANNOT_CONNECT_TO_MONGODB)
		return
	}
	defer mongoClient.Disconnect(ctx)

	store := &mongoBookingStore{
		bookings: mongoClient.Database(database.GetDB()).Collection(database.COLLECTION_INTERVIEW_BOOKINGS),
		slots:    mongoClient.Database(database.GetDB()).Collection(database.COLLECTION_INTERVIEW_SLOTS),
	}

	booking, err := bookSlot(ctx, store, applicantID, slotID)
	if err != nil {
		if errors.Is(err, ErrApplicantAlreadyBooked) || errors.Is(err, ErrSlotAlreadyBooked) {
			utils.SendError(w, http.StatusConflict, err.Error(), 0)
			return
		}
		utils.SendError(w, http.StatusInternalServerError, "", utils.CANNOT_INSERT_BOOKING_TO_MONGODB)
		return
	}

	utils.SendOK(w, http.StatusCreated, schemas.BookingResponse{
		OK:      true,
		Booking: booking,
	})
}
