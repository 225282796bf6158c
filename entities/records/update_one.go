package records

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"slices"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/shotaro12223/wisteria-ats-sub001/database"
	"github.com/shotaro12223/wisteria-ats-sub001/schemas"
	"github.com/shotaro12223/wisteria-ats-sub001/utils"
)

var validRecordStatuses = []string{
	schemas.RECORD_STATUS_ACTIVE,
	schemas.RECORD_STATUS_RISK,
	schemas.RECORD_STATUS_PAUSED,
	schemas.RECORD_STATUS_INACTIVE,
}

func UpdateOne(w http.ResponseWriter, r *http.Request) {
	companyID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		utils.SendError(w, http.StatusBadRequest, "会社IDの形式が不正です", 0)
		return
	}

	patch := &schemas.RecordPatch{}
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		utils.SendError(w, http.StatusBadRequest, "", utils.RECORDS_INVALID_REQUEST_DATA)
		return
	}

	if patch.Status != "" && !slices.Contains(validRecordStatuses, patch.Status) {
		utils.SendError(w, http.StatusBadRequest, "ステータスの値が不正です", 0)
		return
	}

	updateDoc := bson.D{}

	if patch.Status != "" {
		updateDoc = append(updateDoc, bson.E{Key: "status", Value: patch.Status})
	}
	if patch.OwnerUserID != nil {
		updateDoc = append(updateDoc, bson.E{Key: "owner_user_id", Value: *patch.OwnerUserID})
	}
	if patch.Tags != nil {
		updateDoc = append(updateDoc, bson.E{Key: "tags", Value: *patch.Tags})
	}
	if patch.Memo != nil {
		updateDoc = append(updateDoc, bson.E{Key: "memo", Value: *patch.Memo})
	}
	if patch.Profile != nil {
		updateDoc = append(updateDoc, bson.E{Key: "profile", Value: *patch.Profile})
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

	collection := mongoClient.Database(database.GetDB()).Collection(database.COLLECTION_RECORDS)

	filter := bson.D{{Key: "company_id", Value: companyID}}
	update := bson.D{{Key: "$set", Value: updateDoc}}

	result, err := collection.UpdateOne(ctx, filter, update)
	if err != nil {
		utils.SendError(w, http.StatusInternalServerError, "", utils.CANNOT_UPDATE_RECORD_IN_MONGODB)
		return
	}

	if result.MatchedCount == 0 {
		utils.SendError(w, http.StatusNotFound, "カルテが見つかりません", 0)
		return
	}

	record, err := FindByCompanyID(ctx, mongoClient, companyID)
	if err != nil || record == nil {
		utils.SendError(w, http.StatusInternalServerError, "", utils.CANNOT_FIND_RECORD_IN_MONGODB)
		return
	}

	utils.SendOK(w, http.StatusOK, schemas.RecordResponse{
		OK:     true,
		Record: record,
	})
}
