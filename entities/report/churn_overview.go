package report

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/shotaro12223/wisteria-ats-sub001/database"
	"github.com/shotaro12223/wisteria-ats-sub001/entities/companies"
	"github.com/shotaro12223/wisteria-ats-sub001/entities/jobs"
	"github.com/shotaro12223/wisteria-ats-sub001/entities/records"
	"github.com/shotaro12223/wisteria-ats-sub001/schemas"
	"github.com/shotaro12223/wisteria-ats-sub001/utils"
)

const (
	churnReportCacheKey = "reports:churn"
	churnReportCacheTTL = 5 * time.Minute
)

type ChurnReportRow struct {
	CompanyID           int64  `json:"companyId"`
	CompanyName         string `json:"companyName"`
	Status              string `json:"status"`
	ChurnRisk           int    `json:"churnRisk"`
	HealthScore         int    `json:"healthScore"`
	RiskLevel           string `json:"riskLevel"`
	ActiveJobsCount     int    `json:"activeJobsCount"`
	ContractMonths      int    `json:"contractMonths"`
	ThisMonthApplicants int    `json:"thisMonthApplicants"`
	DaysUntilRenewal    *int   `json:"daysUntilRenewal"`
}

type ChurnReportResponse struct {
	OK          bool             `json:"ok"`
	Items       []ChurnReportRow `json:"items"`
	GeneratedAt time.Time        `json:"generatedAt"`
}

// GetChurnOverview scores every company record for the dashboard, riskiest
// first. Results are cached in Redis for a few minutes; ?refresh=1 bypasses
// the cache. Redis being down degrades to recomputing, never to an error.
func GetChurnOverview(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), database.MONGO_TIMEOUT)
	defer cancel()

	var rdb *redis.Client
	if opts, err := redis.ParseURL(os.Getenv(utils.REDIS_URI)); err == nil {
		rdb = redis.NewClient(opts)
		defer rdb.Close()
	}

	refresh := r.URL.Query().Get("refresh") == "1"

	if rdb != nil && !refresh {
		if cached, err := rdb.Get(ctx, churnReportCacheKey).Result(); err == nil {
			response := ChurnReportResponse{}
			if err := json.Unmarshal([]byte(cached), &response); err == nil {
				utils.SendOK(w, http.StatusOK, response)
				return
			}
		}
	}

	response, errCode := buildChurnOverview(ctx)
	if errCode != 0 {
		utils.SendError(w, http.StatusInternalServerError, "", errCode)
		return
	}

	if rdb != nil {
		if payload, err := json.Marshal(response); err == nil {
			if err := rdb.Set(ctx, churnReportCacheKey, payload, churnReportCacheTTL).Err(); err != nil {
				log.Printf("[report] failed to cache churn overview: %v", err)
			}
		}
	}

	utils.SendOK(w, http.StatusOK, response)
}

func buildChurnOverview(ctx context.Context) (ChurnReportResponse, int) {
	mongoURI := os.Getenv(utils.MONGODB_URI)
	opts := options.Client().ApplyURI(mongoURI)
	mongoClient, err := mongo.Connect(opts)
	if err != nil {
		return ChurnReportResponse{}, utils.CANNOT_CONNECT_TO_MONGODB
	}
	defer mongoClient.Disconnect(ctx)

	recordsCol := mongoClient.Database(database.GetDB()).Collection(database.COLLECTION_RECORDS)

	cursor, err := recordsCol.Find(ctx, bson.M{})
	if err != nil {
		return ChurnReportResponse{}, utils.CANNOT_BUILD_CHURN_REPORT
	}
	defer cursor.Close(ctx)

	allRecords := []schemas.CompanyRecord{}
	if err := cursor.All(ctx, &allRecords); err != nil {
		return ChurnReportResponse{}, utils.CANNOT_BUILD_CHURN_REPORT
	}

	allCompanies, err := companies.FindAll()
	if err != nil {
		return ChurnReportResponse{}, utils.CANNOT_QUERY_COMPANIES_IN_MYSQL
	}

	companyNames := make(map[int64]string, len(allCompanies))
	for _, company := range allCompanies {
		companyNames[company.ID] = company.Name
	}

	now := time.Now()
	rows := []ChurnReportRow{}

	for _, record := range allRecords {
		activeJobsCount, err := jobs.CountOpen(record.CompanyID)
		if err != nil {
			return ChurnReportResponse{}, utils.CANNOT_QUERY_JOBS_IN_MYSQL
		}

		thisMonthApplicants, err := records.CountThisMonthApplicants(ctx, mongoClient, record.CompanyID, now)
		if err != nil {
			return ChurnReportResponse{}, utils.CANNOT_BUILD_CHURN_REPORT
		}

		inputs := records.BuildChurnInputs(record, activeJobsCount, thisMonthApplicants, now)
		churnRisk := records.ComputeChurnRisk(inputs)

		rows = append(rows, ChurnReportRow{
			CompanyID:           record.CompanyID,
			CompanyName:         companyNames[record.CompanyID],
			Status:              record.Status,
			ChurnRisk:           churnRisk,
			HealthScore:         records.HealthScore(churnRisk),
			RiskLevel:           records.RiskLevel(churnRisk),
			ActiveJobsCount:     inputs.ActiveJobsCount,
			ContractMonths:      inputs.ContractMonths,
			ThisMonthApplicants: inputs.ThisMonthApplicants,
			DaysUntilRenewal:    inputs.DaysUntilRenewal,
		})
	}

	rows = utils.SortStableBy(rows, func(a, b ChurnReportRow) bool {
		return a.ChurnRisk > b.ChurnRisk
	})

	return ChurnReportResponse{
		OK:          true,
		Items:       rows,
		GeneratedAt: now,
	}, 0
}
