package interviews

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

type createSlotRequest struct {
	CompanyID int64  `json:"companyId"`
	JobID     int64  `json:"jobId"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// CreateOneSlot records client-submitted availability.
func CreateOneSlot(w http.ResponseWriter, r *http.Request) {
	req := &createSlotRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.SendError(w, http.StatusBadRequest, "", utils.INTERVIEWS_INVALID_REQUEST_DATA)
		return
	}

	if !utils.IsValidDate(req.Date) {
		utils.SendError(w, http.StatusBadRequest, "日付の形式が不正です", 0)
		return
	}
	if req.StartTime == "" || req.EndTime == "" {
		utils.SendError(w, http.StatusBadRequest, "開始時刻と終了時刻を指定してください", 0)
		return
	}

	slot := &schemas.InterviewSlot{
		ID:        bson.NewObjectID(),
		CompanyID: req.CompanyID,
		JobID:     req.JobID,
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Booked:    false,
		CreatedAt: time.Now(),
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

	collection := mongoClient.Database(database.GetDB()).Collection(database.COLLECTION_INTERVIEW_SLOTS)

	if _, err := collection.InsertOne(ctx, slot); err != nil {
		utils.SendError(w, http.StatusInternalServerError, "", utils.CANNOT_INSERT_SLOT_TO_MONGODB)
		return
	}

	utils.SendOK(w, http.StatusCreated, schemas.SlotResponse{
		OK:   true,
		Slot: slot,
	})
}
