package utils

import "fmt"

// Internal error codes start at 1: SendError treats 0 as "no internal
// error", so no real code may ever be 0.
const (
	CANNOT_CONNECT_TO_MONGODB = iota + 1
	CANNOT_CONNECT_TO_MYSQL
	CANNOT_CONNECT_TO_REDIS
	DEALS_INVALID_REQUEST_DATA
	INVALID_DEAL_ID_FORMAT
	CANNOT_FIND_DEALS_IN_MONGODB
	CANNOT_FIND_DEAL_BY_ID_IN_MONGODB
	CANNOT_INSERT_DEAL_TO_MONGODB
	CANNOT_UPDATE_DEAL_IN_MONGODB
	RECORDS_INVALID_REQUEST_DATA
	CANNOT_FIND_RECORD_IN_MONGODB
	CANNOT_INSERT_RECORD_TO_MONGODB
	CANNOT_UPDATE_RECORD_IN_MONGODB
	APPLICANTS_INVALID_REQUEST_DATA
	INVALID_APPLICANT_ID_FORMAT
	CANNOT_FIND_APPLICANTS_IN_MONGODB
	CANNOT_UPDATE_APPLICANT_IN_MONGODB
	INTERVIEWS_INVALID_REQUEST_DATA
	INVALID_SLOT_ID_FORMAT
	INVALID_BOOKING_ID_FORMAT
	CANNOT_FIND_SLOTS_IN_MONGODB
	CANNOT_INSERT_SLOT_TO_MONGODB
	CANNOT_INSERT_BOOKING_TO_MONGODB
	CANNOT_UPDATE_BOOKING_IN_MONGODB
	FEEDBACK_INVALID_REQUEST_DATA
	CANNOT_FIND_FEEDBACK_IN_MONGODB
	CANNOT_INSERT_FEEDBACK_TO_MONGODB
	CANNOT_QUERY_COMPANIES_IN_MYSQL
	CANNOT_QUERY_USERS_IN_MYSQL
	CANNOT_QUERY_JOBS_IN_MYSQL
	CANNOT_BUILD_CHURN_REPORT
)

func SendInternalError(internalErrorCode int) string {
	return fmt.Sprintf("サーバー内部でエラーが発生しました。時間をおいて再度お試しください (code: %d)", internalErrorCode)
}
