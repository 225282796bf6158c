package records

import (
	"context"
	"net/http"
	"os"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/shotaro12223/wisteria-ats-sub001/database"
	"github.com/shotaro12223/wisteria-ats-sub001/entities/jobs"
	"github.com/shotaro12223/wisteria-ats-sub001/schemas"
	"github.com/shotaro12223/wisteria-ats-sub001/utils"
)

// GetOne returns the company's back-office record, creating it lazily on
// first access. New records start as inactive so a prospect's deal stays in
// the sales pipeline until someone flips the status.
func GetOne(w http.ResponseWriter, r *http.Request) {
	companyID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		utils.SendError(w, http.StatusBadRequest, "会社IDの形式が不正です", 0)
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

	record, err := FindByCompanyID(ctx, mongoClient, companyID)
	if err != nil {
		utils.SendError(w, http.StatusInternalServerError, "", utils.CANNOT_FIND_RECORD_IN_MONGODB)
		return
	}

	if record == nil {
		record = &schemas.CompanyRecord{
			CompanyID: companyID,
			Status:    schemas.RECORD_STATUS_INACTIVE,
			Tags:      []string{},
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}

		collection := mongoClient.Database(database.GetDB()).Collection(database.COLLECTION_RECORDS)
		if _, err := collection.InsertOne(ctx, record); err != nil {
			utils.SendError(w, http.StatusInternalServerError, "", utils.CANNOT_INSERT_RECORD_TO_MONGODB)
			return
		}
	}

	now := time.Now()

	activeJobsCount, err := jobs.CountOpen(companyID)
	if err != nil {
		utils.SendError(w, http.StatusInternalServerError, "", utils.CANNOT_QUERY_JOBS_IN_MYSQL)
		return
	}

	thisMonthApplicants, err := CountThisMonthApplicants(ctx, mongoClient, companyID, now)
	if err != nil {
		utils.SendError(w, http.StatusInternalServerError, "", utils.CANNOT_FIND_APPLICANTS_IN_MONGODB)
		return
	}

	churnRisk := ComputeChurnRisk(BuildChurnInputs(*record, activeJobsCount, thisMonthApplicants, now))

	utils.SendOK(w, http.StatusOK, schemas.RecordDetailResponse{
		OK:          true,
		Record:      record,
		ChurnRisk:   churnRisk,
		HealthScore: HealthScore(churnRisk),
		RiskLevel:   RiskLevel(churnRisk),
	})
}
