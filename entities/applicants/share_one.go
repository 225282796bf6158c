package applicants

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

// ShareOne publishes the applicant to the client portal: flags it shared,
// stamps sharedAt and moves the status to SHARED.
func ShareOne(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")
	id, err := bson.ObjectIDFromHex(idStr)
	if err != nil {
		utils.SendError(w, http.StatusBadRequest, "", utils.INVALID_APPLICANT_ID_FORMAT)
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

	collection := mongoClient.Database(database.GetDB()).Collection(database.COLLECTION_APPLICANTS)

	filter := bson.D{{Key: "_id", Value: id}}
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "shared_with_client", Value: true},
		{Key: "shared_at", Value: time.Now()},
		{Key: "status", Value: schemas.APPLICANT_STATUS_SHARED},
		{Key: "updated_at", Value: time.Now()},
	}}}

	result, err := collection.UpdateOne(ctx, filter, update)
	if err != nil {
		utils.SendError(w, http.StatusInternalServerError, "", utils.CANNOT_UPDATE_APPLICANT_IN_MONGODB)
		return
	}

	if result.MatchedCount == 0 {
		utils.SendError(w, http.StatusNotFound, "応募者が見つかりません", 0)
		return
	}

	applicant := &schemas.Applicant{}
	if err := collection.FindOne(ctx, filter).Decode(applicant); err != nil {
		utils.SendError(w, http.StatusInternalServerError, "", utils.CANNOT_FIND_APPLICANTS_IN_MONGODB)
		return
	}

	utils.SendOK(w, http.StatusOK, schemas.ApplicantResponse{
		OK:        true,
		Applicant: applicant,
	})
}
