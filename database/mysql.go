package database

import (
	"database/sql"
	"os"
	"time"

	// Registers the "mysql" driver for the legacy main-site reads.
	_ "github.com/go-sql-driver/mysql"

	"github.com/shotaro12223/wisteria-ats-sub001/utils"
)

const (
	MYSQL_CONN_MAX_LIFETIME = 5 * time.Minute
	MYSQL_MAX_OPEN_CONNS    = 10
	MYSQL_MAX_IDLE_CONNS    = 10

	TABLE_COMPANIES = "companies"
	TABLE_USERS     = "users"
	TABLE_JOBS      = "jobs"
)

// OpenMySQL opens a connection to the legacy main-site database. Callers own
// the handle and must Close it.
func OpenMySQL() (*sql.DB, error) {
	mysqlDB, err := sql.Open("mysql", os.Getenv(utils.MYSQL_URI))
	if err != nil {
		return nil, err
	}

	mysqlDB.SetConnMaxLifetime(MYSQL_CONN_MAX_LIFETIME)
	mysqlDB.SetMaxOpenConns(MYSQL_MAX_OPEN_CONNS)
	mysqlDB.SetMaxIdleConns(MYSQL_MAX_IDLE_CONNS)

	return mysqlDB, nil
}
