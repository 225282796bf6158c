package deals

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
	"github.com/shotaro12223/wisteria-ats-sub001/entities/records"
	"github.com/shotaro12223/wisteria-ats-sub001/schemas"
	"github.com/shotaro12223/wisteria-ats-sub001/utils"
)

// UpdateOne applies a partial update. A requested stage is normalized for
// the deal's current mode before it is persisted; no optimistic locking, the
// last PATCH wins.
func UpdateOne(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")
	id, err := bson.ObjectIDFromHex(idStr)
	if err != nil {
		utils.SendError(w, http.StatusBadRequest, "", utils.INVALID_DEAL_ID_FORMAT)
		return
	}

	patch := &schemas.DealPatch{}
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		utils.SendError(w, http.StatusBadRequest, "", utils.DEALS_INVALID_REQUEST_DATA)
		return
	}

	if patch.StartDate != "" && !utils.IsValidDate(patch.StartDate) {
		utils.SendError(w, http.StatusBadRequest, "開始日の形式が不正です", 0)
		return
	}
	if patch.DueDate != "" && !utils.IsValidDate(patch.DueDate) {
		utils.SendError(w, http.StatusBadRequest, "期日の形式が不正です", 0)
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

	collection := mongoClient.Database(database.GetDB()).Collection(database.COLLECTION_DEALS)

	filter := bson.D{{Key: "_id", Value: id}}
	deal := &schemas.Deal{}
	err = collection.FindOne(ctx, filter).Decode(deal)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			utils.SendError(w, http.StatusNotFound, "商談が見つかりません", 0)
		} else {
			utils.SendError(w, http.StatusInternalServerError, "", utils.CANNOT_FIND_DEAL_BY_ID_IN_MONGODB)
		}
		return
	}

	updateDoc := bson.D{}

	if patch.Title != "" {
		updateDoc = append(updateDoc, bson.E{Key: "title", Value: patch.Title})
	}
	if patch.Stage != "" {
		recordStatus := ""
		if deal.CompanyID != 0 {
			record, err := records.FindByCompanyID(ctx, mongoClient, deal.CompanyID)
			if err != nil {
				utils.SendError(w, http.StatusInternalServerError, "", utils.CANNOT_FIND_RECORD_IN_MONGODB)
				return
			}
			if record != nil {
				recordStatus = record.Status
			}
		}
		mode := DeriveMode(deal.Kind, recordStatus)
		updateDoc = append(updateDoc, bson.E{Key: "stage", Value: NormalizeStageForMode(patch.Stage, mode)})
	}
	if patch.StartDate != "" {
		updateDoc = append(updateDoc, bson.E{Key: "start_date", Value: patch.StartDate})
	}
	if patch.DueDate != "" {
		updateDoc = append(updateDoc, bson.E{Key: "due_date", Value: patch.DueDate})
	}
	if patch.Amount != nil {
		updateDoc = append(updateDoc, bson.E{Key: "amount", Value: *patch.Amount})
	}
	if patch.Probability != nil {
		updateDoc = append(updateDoc, bson.E{Key: "probability", Value: *patch.Probability})
	}
	if patch.Memo != nil {
		updateDoc = append(updateDoc, bson.E{Key: "memo", Value: *patch.Memo})
	}
	if patch.MeetingGoal != nil {
		updateDoc = append(updateDoc, bson.E{Key: "meeting_goal", Value: *patch.MeetingGoal})
	}
	if patch.MeetingRisks != nil {
		updateDoc = append(updateDoc, bson.E{Key: "meeting_risks", Value: *patch.MeetingRisks})
	}
	if patch.MeetingNext != nil {
		updateDoc = append(updateDoc, bson.E{Key: "meeting_next", Value: *patch.MeetingNext})
	}

	if len(updateDoc) == 0 {
		utils.SendError(w, http.StatusBadRequest, "更新する項目が指定されていません", 0)
		return
	}

	updateDoc = append(updateDoc, bson.E{Key: "updated_at", Value: time.Now()})

	update := bson.D{{Key: "$set", Value: updateDoc}}
	result, err := collection.UpdateOne(ctx, filter, update)
	if err != nil {
		utils.SendError(w, http.StatusInternalServerError, "", utils.CANNOT_UPDATE_DEAL_IN_MONGODB)
		return
	}

	if result.MatchedCount == 0 {
		utils.SendError(w, http.StatusNotFound, "商談が見つかりません", 0)
		return
	}

	updated := &schemas.Deal{}
	if err := collection.FindOne(ctx, filter).Decode(updated); err != nil {
		utils.SendError(w, http.StatusInternalServerError, "", utils.CANNOT_FIND_DEAL_BY_ID_IN_MONGODB)
		return
	}

	BroadcastDealUpdate(DealWSMessage{Action: "updated", Deal: updated})

	utils.SendOK(w, http.StatusOK, schemas.DealResponse{
		OK:   true,
		Deal: updated,
	})
}
