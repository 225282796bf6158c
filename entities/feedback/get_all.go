package feedback

import (
	"context"
	"net/http"
	"os"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/shotaro12223/wisteria-ats-sub001/database"
	"github.com/shotaro12223/wisteria-ats-sub001/schemas"
	"github.com/shotaro12223/wisteria-ats-sub001/utils"
)

// GetAll lists interview results, newest first, optionally for one applicant.
func GetAll(w http.ResponseWriter, r *http.Request) {
	filter := bson.M{}

	if applicantIDStr := r.URL.Query().Get("applicantId"); applicantIDStr != "" {
		applicantID, err := bson.ObjectIDFromHex(applicantIDStr)
		if err != nil {
			utils.SendError(w, http.StatusBadRequest, "", utils.INVALID_APPLICANT_ID_FORMAT)
			return
		}
		filter["applicant_id"] = applicantID
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

	collection := mongoClient.Database(database.GetDB()).Collection(database.COLLECTION_CLIENT_FEEDBACK)

	findOpts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := collection.Find(ctx, filter, findOpts)
	if err != nil {
		utils.SendError(w, http.StatusInternalServerError, "", utils.CANNOT_FIND_FEEDBACK_IN_MONGODB)
		return
	}
	defer cursor.Close(ctx)

	items := []schemas.ClientFeedback{}
	if err := cursor.All(ctx, &items); err != nil {
		utils.SendError(w, http.StatusInternalServerError, "", utils.CANNOT_FIND_FEEDBACK_IN_MONGODB)
		return
	}

	utils.SendOK(w, http.StatusOK, schemas.FeedbackListResponse{
		OK:    true,
		Items: items,
	})
}
