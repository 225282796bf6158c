package applicants

import (
	"context"
	"net/http"
	"os"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/shotaro12223/wisteria-ats-sub001/database"
	"github.com/shotaro12223/wisteria-ats-sub001/schemas"
	"github.com/shotaro12223/wisteria-ats-sub001/utils"
)

func buildApplicantFilterFromQueryParams(r *http.Request) bson.M {
	query := r.URL.Query()
	filter := bson.M{}

	if companyIDStr := query.Get("companyId"); companyIDStr != "" {
		if companyID, err := strconv.ParseInt(companyIDStr, 10, 64); err == nil {
			filter["company_id"] = companyID
		}
	}

	if jobIDStr := query.Get("jobId"); jobIDStr != "" {
		if jobID, err := strconv.ParseInt(jobIDStr, 10, 64); err == nil {
			filter["job_id"] = jobID
		}
	}

	if status := query.Get("status"); status != "" {
		filter["status"] = status
	}

	return filter
}

// GetAll runs the shared list pipeline over applicants: exact-match filters
// in the Mongo query, then free-text search, date range, locale-aware sort
// and pagination in memory.
func GetAll(w http.ResponseWriter, r *http.Request) {
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

	filter := buildApplicantFilterFromQueryParams(r)

	cursor, err := collection.Find(ctx, filter)
	if err != nil {
		utils.SendError(w, http.StatusInternalServerError, "", utils.CANNOT_FIND_APPLICANTS_IN_MONGODB)
		return
	}
	defer cursor.Close(ctx)

	applicants := []schemas.Applicant{}
	if err := cursor.All(ctx, &applicants); err != nil {
		utils.SendError(w, http.StatusInternalServerError, "", utils.CANNOT_FIND_APPLICANTS_IN_MONGODB)
		return
	}

	query := r.URL.Query()
	q := query.Get("q")
	siteKey := query.Get("siteKey")

	var from, to *time.Time
	if parsed, ok := utils.ParseDateFlexible(query.Get("from")); ok {
		from = &parsed
	}
	if parsed, ok := utils.ParseDateFlexible(query.Get("to")); ok {
		to = &parsed
	}

	applicants = utils.FilterAll(applicants,
		func(a schemas.Applicant) bool {
			return utils.MatchesQuery(q, a.Name, a.SiteKey, a.ClientComment)
		},
		func(a schemas.Applicant) bool {
			return siteKey == "" || a.SiteKey == siteKey
		},
		func(a schemas.Applicant) bool {
			return utils.InDateRange(a.AppliedAt, from, to)
		},
	)

	sortKey := query.Get("sort")
	descending := query.Get("order") == "desc"

	switch sortKey {
	case "name":
		applicants = utils.SortStableBy(applicants, func(a, b schemas.Applicant) bool {
			if descending {
				return utils.CompareNames(a.Name, b.Name) > 0
			}
			return utils.CompareNames(a.Name, b.Name) < 0
		})
	default:
		applicants = utils.SortStableBy(applicants, func(a, b schemas.Applicant) bool {
			if descending {
				return a.AppliedAt.After(b.AppliedAt)
			}
			return a.AppliedAt.Before(b.AppliedAt)
		})
	}

	page, limit := utils.ParsePageLimit(query.Get("page"), query.Get("limit"))
	pageApplicants, pagination := utils.Paginate(applicants, page, limit)

	items := make([]schemas.ApplicantListItem, 0, len(pageApplicants))
	for _, applicant := range pageApplicants {
		items = append(items, schemas.ApplicantListItem{
			Applicant:   applicant,
			StatusLabel: schemas.ApplicantStatusLabel(applicant.Status),
		})
	}

	utils.SendOK(w, http.StatusOK, schemas.ApplicantListResponse{
		OK:         true,
		Items:      items,
		Pagination: pagination,
	})
}
