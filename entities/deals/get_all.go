package deals

import (
	"context"
	"net/http"
	"os"
	"strconv"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/shotaro12223/wisteria-ats-sub001/database"
	"github.com/shotaro12223/wisteria-ats-sub001/schemas"
	"github.com/shotaro12223/wisteria-ats-sub001/utils"
)

func buildDealFilterFromQueryParams(r *http.Request) bson.M {
	query := r.URL.Query()
	filter := bson.M{}

	if companyIDStr := query.Get("companyId"); companyIDStr != "" {
		if companyID, err := strconv.ParseInt(companyIDStr, 10, 64); err == nil {
			filter["company_id"] = companyID
		}
	}

	if kind := query.Get("kind"); kind != "" {
		filter["kind"] = kind
	}

	if stage := query.Get("stage"); stage != "" {
		filter["stage"] = stage
	}

	return filter
}

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

	collection := mongoClient.Database(database.GetDB()).Collection(database.COLLECTION_DEALS)

	filter := buildDealFilterFromQueryParams(r)

	cursor, err := collection.Find(ctx, filter)
	if err != nil {
		utils.SendError(w, http.StatusInternalServerError, "", utils.CANNOT_FIND_DEALS_IN_MONGODB)
		return
	}
	defer cursor.Close(ctx)

	deals := []schemas.Deal{}
	if err := cursor.All(ctx, &deals); err != nil {
		utils.SendError(w, http.StatusInternalServerError, "", utils.CANNOT_FIND_DEALS_IN_MONGODB)
		return
	}

	q := r.URL.Query().Get("q")
	deals = utils.FilterAll(deals, func(deal schemas.Deal) bool {
		return utils.MatchesQuery(q, deal.Title, deal.Memo)
	})

	deals = utils.SortStableBy(deals, func(a, b schemas.Deal) bool {
		return a.UpdatedAt.After(b.UpdatedAt)
	})

	page, limit := utils.ParsePageLimit(r.URL.Query().Get("page"), r.URL.Query().Get("limit"))
	pageItems, pagination := utils.Paginate(deals, page, limit)

	utils.SendOK(w, http.StatusOK, schemas.DealListResponse{
		OK:         true,
		Items:      pageItems,
		Pagination: pagination,
	})
}
