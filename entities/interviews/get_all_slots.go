package interviews

import (
	"context"
	"net/http"
	"os"
	"strconv"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/shotaro12223/wisteria-ats-sub001/database"
	"github.com/shotaro12223/wisteria-ats-sub001/schemas"
	"github.com/shotaro12223/wisteria-ats-sub001/utils"
)

// GetAllSlots lists the available (unbooked) slots, soonest first.
func GetAllSlots(w http.ResponseWriter, r *http.Request) {
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

	collection := mongoClient.Database(database.GetDB()).Collection(database.COLLECTION_INTERVIEW_SLOTS)

	filter := bson.M{"booked": false}

	query := r.URL.Query()
	if jobIDStr := query.Get("jobId"); jobIDStr != "" {
		if jobID, err := strconv.ParseInt(jobIDStr, 10, 64); err == nil {
			filter["job_id"] = jobID
		}
	}
	if companyIDStr := query.Get("companyId"); companyIDStr != "" {
		if companyID, err := strconv.ParseInt(companyIDStr, 10, 64); err == nil {
			filter["company_id"] = companyID
		}
	}

	findOpts := options.Find().SetSort(bson.D{
		{Key: "date", Value: 1},
		{Key: "start_time", Value: 1},
	})

	cursor, err := collection.Find(ctx, filter, findOpts)
	if err != nil {
		utils.SendError(w, http.StatusInternalServerError, "", utils.CANNOT_FIND_SLOTS_IN_MONGODB)
		return
	}
	defer cursor.Close(ctx)

	slots := []schemas.InterviewSlot{}
	if err := cursor.All(ctx, &slots); err != nil {
		utils.SendError(w, http.StatusInternalServerError, "", utils.CANNOT_FIND_SLOTS_IN_MONGODB)
		return
	}

	utils.SendOK(w, http.StatusOK, schemas.SlotListResponse{
		OK:    true,
		Items: slots,
	})
}
