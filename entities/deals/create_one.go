package deals

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
	"github.com/shotaro12223/wisteria-ats-sub001/entities/records"
	"github.com/shotaro12223/wisteria-ats-sub001/schemas"
	"github.com/shotaro12223/wisteria-ats-sub001/utils"
)

type createDealRequest struct {
	CompanyID   int64   `json:"company_id"`
	Kind        string  `json:"kind"`
	Title       string  `json:"title"`
	Stage       string  `json:"stage"`
	StartDate   string  `json:"start_date"`
	DueDate     string  `json:"due_date"`
	Amount      float64 `json:"amount"`
	Probability int     `json:"probability"`
	Memo        string  `json:"memo"`
}

// ValidateStartDeal returns the list of missing/invalid required fields for
// the start-deal form, in display order. Shared with the client SDK's
// pre-submit check.
func ValidateStartDeal(title, kind string) []string {
	missing := []string{}
	if strings.TrimSpace(title) == "" {
		missing = append(missing, "案件名を入力してください")
	}
	if kind != schemas.DEAL_KIND_NEW && kind != schemas.DEAL_KIND_EXISTING {
		missing = append(missing, "商談種別（新規/既存）を選択してください")
	}
	return missing
}

func CreateOne(w http.ResponseWriter, r *http.Request) {
	req := &createDealRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.SendError(w, http.StatusBadRequest, "", utils.DEALS_INVALID_REQUEST_DATA)
		return
	}

	if missing := ValidateStartDeal(req.Title, req.Kind); len(missing) > 0 {
		utils.SendError(w, http.StatusBadRequest, strings.Join(missing, "、"), 0)
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

	recordStatus := ""
	if req.CompanyID != 0 {
		record, err := records.FindByCompanyID(ctx, mongoClient, req.CompanyID)
		if err != nil {
			utils.SendError(w, http.StatusInternalServerError, "", utils.CANNOT_FIND_RECORD_IN_MONGODB)
			return
		}
		if record != nil {
			recordStatus = record.Status
		}
	}

	mode := DeriveMode(req.Kind, recordStatus)

	deal := &schemas.Deal{
		ID:          bson.NewObjectID(),
		CompanyID:   req.CompanyID,
		Kind:        req.Kind,
		Title:       req.Title,
		Stage:       NormalizeStageForMode(req.Stage, mode),
		StartDate:   req.StartDate,
		DueDate:     req.DueDate,
		Amount:      req.Amount,
		Probability: req.Probability,
		Memo:        req.Memo,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	collection := mongoClient.Database(database.GetDB()).Collection(database.COLLECTION_DEALS)

	if _, err := collection.InsertOne(ctx, deal); err != nil {
		utils.SendError(w, http.StatusInternalServerError, "", utils.CANNOT_INSERT_DEAL_TO_MONGODB)
		return
	}

	BroadcastDealUpdate(DealWSMessage{Action: "created", Deal: deal})

	utils.SendOK(w, http.StatusCreated, schemas.DealResponse{
		OK:   true,
		Deal: deal,
	})
}
