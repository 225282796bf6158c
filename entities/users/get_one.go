package users

import (
	"database/sql"
	"net/http"
	"strconv"

	"github.com/shotaro12223/wisteria-ats-sub001/database"
	"github.com/shotaro12223/wisteria-ats-sub001/schemas"
	"github.com/shotaro12223/wisteria-ats-sub001/utils"
)

func GetOne(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		utils.SendError(w, http.StatusBadRequest, "ユーザーIDの形式が不正です", 0)
		return
	}

	mysqlDB, err := database.OpenMySQL()
	if err != nil {
		utils.SendError(w, http.StatusBadGateway, "", utils.CANNOT_CONNECT_TO_MYSQL)
		return
	}
	defer mysqlDB.Close()

	user := schemas.User{}
	var role sql.NullString
	err = mysqlDB.QueryRow("SELECT id, name, email, role FROM users WHERE id = ?", userID).
		Scan(&user.ID, &user.Name, &user.Email, &role)
	if err == sql.ErrNoRows {
		utils.SendError(w, http.StatusNotFound, "ユーザーが見つかりません", 0)
		return
	}
	if err != nil {
		utils.SendError(w, http.StatusInternalServerError, "", utils.CANNOT_QUERY_USERS_IN_MYSQL)
		return
	}
	user.Role = role.String

	utils.SendOK(w, http.StatusOK, schemas.UserResponse{
		OK:   true,
		User: &user,
	})
}
