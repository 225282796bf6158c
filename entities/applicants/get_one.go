package applicants

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

func GetOne(w http.ResponseWriter, r *http.Request) {
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
	applicant := &schemas.Applicant{}
	err = collection.FindOne(ctx, filter).Decode(applicant)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			utils.SendError(w, http.StatusNotFound, "応募者が見つかりません", 0)
		} else {
			utils.SendError(w, http.StatusInternalServerError, "", utils.CANNOT_FIND_APPLICANTS_IN_MONGODB)
		}
		return
	}

	utils.SendOK(w, http.StatusOK, schemas.ApplicantResponse{
		OK:        true,
		Applicant: applicant,
	})
}
