package deals

import (
	"context"
	"net/http"
	"os"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/shotaro12223/wisteria-ats-sub001/database"
	"github.com/shotaro12223/wisteria-ats-sub001/entities/companies"
	"github.com/shotaro12223/wisteria-ats-sub001/entities/records"
	"github.com/shotaro12223/wisteria-ats-sub001/schemas"
	"github.com/shotaro12223/wisteria-ats-sub001/utils"
)

// GetOne returns the deal together with its linked company and record. The
// stage in the response is already normalized for the derived mode, so the
// page never renders a stage from the wrong pipeline.
func GetOne(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")
	id, err := bson.ObjectIDFromHex(idStr)
	if err != nil {
		utils.SendError(w, http.StatusBadRequest, "", utils.INVALID_DEAL_ID_FORMAT)
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

	var company *schemas.Company
	var record *schemas.CompanyRecord

	if deal.CompanyID != 0 {
		company, err = companies.FindOne(deal.CompanyID)
		if err != nil {
			utils.SendError(w, http.StatusInternalServerError, "", utils.CANNOT_QUERY_COMPANIES_IN_MYSQL)
			return
		}

		record, err = records.FindByCompanyID(ctx, mongoClient, deal.CompanyID)
		if err != nil {
			utils.SendError(w, http.StatusInternalServerError, "", utils.CANNOT_FIND_RECORD_IN_MONGODB)
			return
		}
	}

	recordStatus := ""
	if record != nil {
		recordStatus = record.Status
	}

	mode := DeriveMode(deal.Kind, recordStatus)
	deal.Stage = NormalizeStageForMode(deal.Stage, mode)

	utils.SendOK(w, http.StatusOK, schemas.DealDetailResponse{
		OK:      true,
		Deal:    deal,
		Company: company,
		Record:  record,
		Mode:    mode,
	})
}
