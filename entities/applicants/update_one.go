package applicants

import (
	"context"
	"encoding/json"
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

func UpdateOne(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")
	id, err := bson.ObjectIDFromHex(idStr)
	if err != nil {
		utils.SendError(w, http.StatusBadRequest, "", utils.INVALID_APPLICANT_ID_FORMAT)
		return
	}

	patch := &schemas.ApplicantPatch{}
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		utils.SendError(w, http.StatusBadRequest, "", utils.APPLICANTS_INVALID_REQUEST_DATA)
		return
	}

	if patch.Status != "" && !schemas.IsValidApplicantStatus(patch.Status) {
		utils.SendError(w, http.StatusBadRequest, "ステータスの値が不正です", 0)
		return
	}

	updateDoc := bson.D{}

	if patch.Status != "" {
		updateDoc = append(updateDoc, bson.E{Key: "status", Value: patch.Status})
	}
	if patch.Note != nil {
		updateDoc = append(updateDoc, bson.E{Key: "note", Value: *patch.Note})
	}
	if patch.ClientComment != nil {
		updateDoc = append(updateDoc, bson.E{Key: "client_comment", Value: *patch.ClientComment})
	}
	if patch.JobID != nil {
		updateDoc = append(updateDoc, bson.E{Key: "job_id", Value: *patch.JobID})
	}

	if len(updateDoc) == 0 {
		utils.SendError(w, http.StatusBadRequest, "更新する項目が指定されていません", 0)
		return
	}

	updateDoc = append(updateDoc, bson.E{Key: "updated_at", Value: time.Now()})

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
	update := bson.D{{Key: "$set", Value: updateDoc}}

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
