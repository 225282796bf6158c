package companies

import (
	"database/sql"
	"fmt"

	"github.com/shotaro12223/wisteria-ats-sub001/database"
	"github.com/shotaro12223/wisteria-ats-sub001/schemas"
)

// FindOne loads a company row from the legacy main-site MySQL database.
// Returns (nil, nil) when the company does not exist.
func FindOne(companyID int64) (*schemas.Company, error) {
	mysqlDB, err := database.OpenMySQL()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MySQL: %w", err)
	}
	defer mysqlDB.Close()

	row := mysqlDB.QueryRow(
		"SELECT id, name, kana, industry, created_at FROM companies WHERE id = ?",
		companyID,
	)

	company, err := scanCompany(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query company from MySQL: %w", err)
	}

	return company, nil
}

// FindAll loads every company row, ordered by id.
func FindAll() ([]schemas.Company, error) {
	mysqlDB, err := database.OpenMySQL()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MySQL: %w", err)
	}
	defer mysqlDB.Close()

	rows, err := mysqlDB.Query("SELECT id, name, kana, industry, created_at FROM companies ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to query companies from MySQL: %w", err)
	}
	defer rows.Close()

	companies := []schemas.Company{}
	for rows.Next() {
		company, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan company row: %w", err)
		}
		companies = append(companies, *company)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating company rows: %w", err)
	}

	return companies, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCompany(row rowScanner) (*schemas.Company, error) {
	company := &schemas.Company{}
	var kana, industry, createdAt sql.NullString

	if err := row.Scan(&company.ID, &company.Name, &kana, &industry, &createdAt); err != nil {
		return nil, err
	}

	company.Kana = kana.String
	company.Industry = industry.String
	company.CreatedAt = createdAt.String

	return company, nil
}
