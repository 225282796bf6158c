package records

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/shotaro12223/wisteria-ats-sub001/database"
	"github.com/shotaro12223/wisteria-ats-sub001/schemas"
)

// FindByCompanyID returns (nil, nil) when the company has no record yet.
func FindByCompanyID(ctx context.Context, mongoClient *mongo.Client, companyID int64) (*schemas.CompanyRecord, error) {
	collection := mongoClient.Database(database.GetDB()).Collection(database.COLLECTION_RECORDS)

	filter := bson.D{{Key: "company_id", Value: companyID}}
	record := &schemas.CompanyRecord{}
	err := collection.FindOne(ctx, filter).Decode(record)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return record, nil
}

// CountThisMonthApplicants counts applicants for the company since the first
// of the current month.
func CountThisMonthApplicants(ctx context.Context, mongoClient *mongo.Client, companyID int64, now time.Time) (int, error) {
	collection := mongoClient.Database(database.GetDB()).Collection(database.COLLECTION_APPLICANTS)

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	filter := bson.M{
		"company_id": companyID,
		"applied_at": bson.M{"$gte": monthStart},
	}

	count, err := collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, err
	}

	return int(count), nil
}
