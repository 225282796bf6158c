package feedback

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/shotaro12223/wisteria-ats-sub001/database"
	"github.com/shotaro12223/wisteria-ats-sub001/schemas"
	"github.com/shotaro12223/wisteria-ats-sub001/utils"
)

func CreateOne(w http.ResponseWriter, r *http.Request) {
	fb := &schemas.ClientFeedback{}
	if err := json.NewDecoder(r.Body).Decode(&fb); err != nil {
		utils.SendError(w, http.StatusBadRequest, "", utils.FEEDBACK_INVALID_REQUEST_DATA)
		return
	}

	if fb.ApplicantID.IsZero() {
		utils.SendError(w, http.StatusBadRequest, "", utils.INVALID_APPLICANT_ID_FORMAT)
		return
	}

	if problems := ValidateFeedback(*fb); len(problems) > 0 {
		utils.SendError(w, http.StatusBadRequest, strings.Join(problems, "、"), 0)
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

	collection := mongoClient.Database(database.GetDB()).Collection(database.COLLECTION_CLIENT_FEEDBACK)

	// One result per applicant per interview event.
	duplicateFilter := bson.M{
		"applicant_id":    fb.ApplicantID,
		"interview_event": fb.InterviewEvent,
	}
	count, err := collection.CountDocuments(ctx, duplicateFilter)
	if err != nil {
		utils.SendError(w, http.StatusInternalServerError, "", utils.CANNOT_FIND_FEEDBACK_IN_MONGODB)
		return
	}
	if count > 0 {
		utils.SendError(w, http.StatusConflict, "この面接イベントの結果は既に登録されています", 0)
		return
	}

	fb.ID = bson.NewObjectID()
	fb.CreatedAt = time.Now()

	if _, err := collection.InsertOne(ctx, fb); err != nil {
		utils.SendError(w, http.StatusInternalServerError, "", utils.CANNOT_INSERT_FEEDBACK_TO_MONGODB)
		return
	}

	utils.SendOK(w, http.StatusCreated, schemas.FeedbackResponse{
		OK:       true,
		Feedback: fb,
	})
}
