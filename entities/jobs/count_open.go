package jobs

import (
	"fmt"

	"github.com/shotaro12223/wisteria-ats-sub001/database"
)

// CountOpen returns how many jobs a company currently has open on the main
// site. Jobs live in the legacy MySQL database and are read-only here.
func CountOpen(companyID int64) (int, error) {
	mysqlDB, err := database.OpenMySQL()
	if err != nil {
		return 0, fmt.Errorf("failed to connect to MySQL: %w", err)
	}
	defer mysqlDB.Close()

	count := 0
	err = mysqlDB.QueryRow(
		"SELECT COUNT(*) FROM jobs WHERE company_id = ? AND status = 'open'",
		companyID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count open jobs from MySQL: %w", err)
	}

	return count, nil
}
