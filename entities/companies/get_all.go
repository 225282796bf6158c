package companies

import (
	"context"
	"net/http"
	"os"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/shotaro12223/wisteria-ats-sub001/database"
	"github.com/shotaro12223/wisteria-ats-sub001/entities/jobs"
	"github.com/shotaro12223/wisteria-ats-sub001/entities/records"
	"github.com/shotaro12223/wisteria-ats-sub001/schemas"
	"github.com/shotaro12223/wisteria-ats-sub001/utils"
)

// GetAll lists main-site companies joined with their back-office records.
// Filtering and sorting happen in memory: the page sizes here are small and
// the tag/search semantics match the other list pages. Churn is scored only
// for the returned page.
func GetAll(w http.ResponseWriter, r *http.Request) {
	allCompanies, err := FindAll()
	if err != nil {
		utils.SendError(w, http.StatusInternalServerError, "", utils.CANNOT_QUERY_COMPANIES_IN_MYSQL)
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

	recordsCol := mongoClient.Database(database.GetDB()).Collection(database.COLLECTION_RECORDS)

	cursor, err := recordsCol.Find(ctx, bson.M{})
	if err != nil {
		utils.SendError(w, http.StatusInternalServerError, "", utils.CANNOT_FIND_RECORD_IN_MONGODB)
		return
	}
	defer cursor.Close(ctx)

	allRecords := []schemas.CompanyRecord{}
	if err := cursor.All(ctx, &allRecords); err != nil {
		utils.SendError(w, http.StatusInternalServerError, "", utils.CANNOT_FIND_RECORD_IN_MONGODB)
		return
	}

	recordsByCompany := make(map[int64]*schemas.CompanyRecord, len(allRecords))
	for i := range allRecords {
		recordsByCompany[allRecords[i].CompanyID] = &allRecords[i]
	}

	query := r.URL.Query()
	q := query.Get("q")
	status := query.Get("status")

	selectedTags := []string{}
	if tagsParam := query.Get("tags"); tagsParam != "" {
		for _, tag := range strings.Split(tagsParam, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				selectedTags = append(selectedTags, tag)
			}
		}
	}

	items := []schemas.CompanyListItem{}
	for _, company := range allCompanies {
		record := recordsByCompany[company.ID]

		if !utils.MatchesQuery(q, company.Name, company.Kana) {
			continue
		}

		recordTags := []string{}
		recordStatus := ""
		if record != nil {
			recordTags = record.Tags
			recordStatus = record.Status
		}

		if !utils.HasAllTags(selectedTags, recordTags) {
			continue
		}
		if status != "" && recordStatus != status {
			continue
		}

		items = append(items, schemas.CompanyListItem{Company: company, Record: record})
	}

	items = utils.SortStableBy(items, func(a, b schemas.CompanyListItem) bool {
		return utils.CompareNames(a.Company.Name, b.Company.Name) < 0
	})

	page, limit := utils.ParsePageLimit(query.Get("page"), query.Get("limit"))
	pageItems, pagination := utils.Paginate(items, page, limit)

	now := time.Now()
	for i := range pageItems {
		if pageItems[i].Record == nil {
			pageItems[i].HealthScore = records.HealthScore(0)
			pageItems[i].RiskLevel = records.RiskLevel(0)
			continue
		}

		activeJobsCount, err := jobs.CountOpen(pageItems[i].Company.ID)
		if err != nil {
			utils.SendError(w, http.StatusInternalServerError, "", utils.CANNOT_QUERY_JOBS_IN_MYSQL)
			return
		}

		thisMonthApplicants, err := records.CountThisMonthApplicants(ctx, mongoClient, pageItems[i].Company.ID, now)
		if err != nil {
			utils.SendError(w, http.StatusInternalServerError, "", utils.CANNOT_FIND_APPLICANTS_IN_MONGODB)
			return
		}

		churnRisk := records.ComputeChurnRisk(records.BuildChurnInputs(*pageItems[i].Record, activeJobsCount, thisMonthApplicants, now))
		pageItems[i].ChurnRisk = churnRisk
		pageItems[i].HealthScore = records.HealthScore(churnRisk)
		pageItems[i].RiskLevel = records.RiskLevel(churnRisk)
	}

	utils.SendOK(w, http.StatusOK, schemas.CompanyListResponse{
		OK:         true,
		Items:      pageItems,
		Pagination: pagination,
	})
}
