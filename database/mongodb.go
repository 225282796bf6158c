package database

import (
	"os"
	"time"

	"github.com/shotaro12223/wisteria-ats-sub001/utils"
)

const (
	MONGO_TIMEOUT                 = 20 * time.Second
	COLLECTION_DEALS              = "deals"
	COLLECTION_RECORDS            = "records"
	COLLECTION_APPLICANTS         = "applicants"
	COLLECTION_INTERVIEW_SLOTS    = "interview_slots"
	COLLECTION_INTERVIEW_BOOKINGS = "interview_bookings"
	COLLECTION_CLIENT_FEEDBACK    = "client_feedback"
)

func GetDB() string {
	environment := os.Getenv(utils.ENV)

	if environment == utils.ENV_RELEASE {
		return "production"
	}

	if environment == utils.ENV_HOMOLOG {
		return "homolog"
	}

	if environment == utils.ENV_DEVELOPMENT {
		return "development"
	}

	panic("[MongoDB] Invalid DB name")
}
