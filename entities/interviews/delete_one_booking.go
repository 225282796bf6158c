package interviews

import (
	"context"
	"net/http"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/shotaro12223/wisteria-ats-sub001/database"
	"github.com/shotaro12223/wisteria-ats-sub001/schemas"
	"github.com/shotaro12223/wisteria-ats-sub001/utils"
)

// DeleteOneBooking cancels a booking and returns its slot to the available
// pool. The booking document is kept with a cancelled status.
func DeleteOneBooking(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")
	id, err := bson.ObjectIDFromHex(idStr)
	if err != nil {
		utils.SendError(w, http.StatusBadRequest, "", utils.INVALID_BOOKING_ID_FORMAT)
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

	bookingsCol := mongoClient.Database(database.GetDB()).Collection(database.COLLECTION_INTERVIEW_BOOKINGS)
	slotsCol := mongoClient.Database(database.GetDB()).Collection(database.COLLECTION_INTERVIEW_SLOTS)

	filter := bson.D{{Key: "_id", Value: id}}
	booking := &schemas.InterviewBooking{}
	err = bookingsCol.FindOne(ctx, filter).Decode(booking)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			utils.SendError(w, http.StatusNotFound, "予約が見つかりません", 0)
		} else {
			utils.SendError(w, http.StatusInternalServerError, "", utils.CANNOT_UPDATE_BOOKING_IN_MONGODB)
		}
		return
	}

	if booking.Status != schemas.BOOKING_STATUS_ACTIVE {
		utils.SendError(w, http.StatusConflict, "この予約は既にキャンセルされています", 0)
		return
	}

	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "status", Value: schemas.BOOKING_STATUS_CANCELLED},
		{Key: "cancelled_at", Value: time.Now()},
	}}}
	if _, err := bookingsCol.UpdateOne(ctx, filter, update); err != nil {
		utils.SendError(w, http.StatusInternalServerError, "", utils.CANNOT_UPDATE_BOOKING_IN_MONGODB)
		return
	}

	if _, err := slotsCol.UpdateOne(ctx,
		bson.M{"_id": booking.SlotID},
		bson.D{{Key: "$set", Value: bson.D{{Key: "booked", Value: false}}}},
	); err != nil {
		utils.SendError(w, http.StatusInternalServerError, "", utils.CANNOT_UPDATE_BOOKING_IN_MONGODB)
		return
	}

	booking.Status = schemas.BOOKING_STATUS_CANCELLED

	utils.SendOK(w, http.StatusOK, schemas.BookingResponse{
		OK:      true,
		Booking: booking,
	})
}
