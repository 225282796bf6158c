package companies

import (
	"net/http"
	"strconv"

	"github.com/shotaro12223/wisteria-ats-sub001/schemas"
	"github.com/shotaro12223/wisteria-ats-sub001/utils"
)

func GetOne(w http.ResponseWriter, r *http.Request) {
	companyID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		utils.SendError(w, http.StatusBadRequest, "会社IDの形式が不正です", 0)
		return
	}

	company, err := FindOne(companyID)
	if err != nil {
		utils.SendError(w, http.StatusInternalServerError, "", utils.CANNOT_QUERY_COMPANIES_IN_MYSQL)
		return
	}

	if company == nil {
		utils.SendError(w, http.StatusNotFound, "会社が見つかりません", 0)
		return
	}

	utils.SendOK(w, http.StatusOK, schemas.CompanyResponse{
		OK:      true,
		Company: company,
	})
}
