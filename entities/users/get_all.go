package users

import (
	"database/sql"
	"net/http"

	"github.com/shotaro12223/wisteria-ats-sub001/database"
	"github.com/shotaro12223/wisteria-ats-sub001/schemas"
	"github.com/shotaro12223/wisteria-ats-sub001/utils"
)

func GetAll(w http.ResponseWriter, r *http.Request) {
	mysqlDB, err := database.OpenMySQL()
	if err != nil {
		utils.SendError(w, http.StatusBadGateway, "", utils.CANNOT_CONNECT_TO_MYSQL)
		return
	}
	defer mysqlDB.Close()

	rows, err := mysqlDB.Query("SELECT id, name, email, role FROM users ORDER BY id")
	if err != nil {
		utils.SendError(w, http.StatusInternalServerError, "", utils.CANNOT_QUERY_USERS_IN_MYSQL)
		return
	}
	defer rows.Close()

	items := []schemas.User{}
	for rows.Next() {
		user := schemas.User{}
		var role sql.NullString
		if err := rows.Scan(&user.ID, &user.Name, &user.Email, &role); err != nil {
			utils.SendError(w, http.StatusInternalServerError, "", utils.CANNOT_QUERY_USERS_IN_MYSQL)
			return
		}
		user.Role = role.String
		items = append(items, user)
	}

	if err := rows.Err(); err != nil {
		utils.SendError(w, http.StatusInternalServerError, "", utils.CANNOT_QUERY_USERS_IN_MYSQL)
		return
	}

	utils.SendOK(w, http.StatusOK, schemas.UserListResponse{
		OK:    true,
		Items: items,
	})
}
