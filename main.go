package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/shotaro12223/wisteria-ats-sub001/entities/applicants"
	"github.com/shotaro12223/wisteria-ats-sub001/entities/companies"
	"github.com/shotaro12223/wisteria-ats-sub001/entities/deals"
	"github.com/shotaro12223/wisteria-ats-sub001/entities/feedback"
	"github.com/shotaro12223/wisteria-ats-sub001/entities/interviews"
	"github.com/shotaro12223/wisteria-ats-sub001/entities/records"
	"github.com/shotaro12223/wisteria-ats-sub001/entities/report"
	"github.com/shotaro12223/wisteria-ats-sub001/entities/users"
	"github.com/shotaro12223/wisteria-ats-sub001/middlewares"
	"github.com/shotaro12223/wisteria-ats-sub001/utils"
)

func main() {
	utils.LoadEnvVariables()

	env := os.Getenv(utils.ENV)
	if env == utils.ENV_RELEASE {
		fmt.Printf("\033[1;31;47m[注意] 本番環境で起動しています!\033[0m\n")
	} else {
		fmt.Printf("[INFO] 現在の環境: %s\n", env)
	}

	mux := http.NewServeMux()

	mux.Handle("GET /api/deals", middlewares.PortalAuth(http.HandlerFunc(deals.GetAll)))
	mux.Handle("POST /api/deals", middlewares.PortalAuth(http.HandlerFunc(deals.CreateOne)))
	mux.Handle("GET /api/deals/{id}", middlewares.PortalAuth(http.HandlerFunc(deals.GetOne)))
	mux.Handle("PATCH /api/deals/{id}", middlewares.PortalAuth(http.HandlerFunc(deals.UpdateOne)))
	mux.HandleFunc("/api/ws/deals", deals.DealWebSocketHandler)

	mux.Handle("GET /api/companies", middlewares.PortalAuth(http.HandlerFunc(companies.GetAll)))
	mux.Handle("GET /api/companies/{id}", middlewares.PortalAuth(http.HandlerFunc(companies.GetOne)))
	mux.Handle("GET /api/companies/{id}/record", middlewares.PortalAuth(http.HandlerFunc(records.GetOne)))
	mux.Handle("PATCH /api/companies/{id}/record", middlewares.PortalAuth(http.HandlerFunc(records.UpdateOne)))

	mux.Handle("GET /api/applicants", middlewares.PortalAuth(http.HandlerFunc(applicants.GetAll)))
	mux.Handle("GET /api/applicants/{id}", middlewares.PortalAuth(http.HandlerFunc(applicants.GetOne)))
	mux.Handle("PATCH /api/applicants/{id}", middlewares.PortalAuth(http.HandlerFunc(applicants.UpdateOne)))
	mux.Handle("POST /api/applicants/{id}/share", middlewares.PortalAuth(http.HandlerFunc(applicants.ShareOne)))

	mux.Handle("GET /api/interviews/slots", middlewares.PortalAuth(http.HandlerFunc(interviews.GetAllSlots)))
	mux.Handle("POST /api/interviews/slots", middlewares.PortalAuth(http.HandlerFunc(interviews.CreateOneSlot)))
	mux.Handle("POST /api/interviews/bookings", middlewares.PortalAuth(http.HandlerFunc(interviews.CreateOneBooking)))
	mux.Handle("DELETE /api/interviews/bookings/{id}", middlewares.PortalAuth(http.HandlerFunc(interviews.DeleteOneBooking)))

	mux.Handle("GET /api/feedback", middlewares.PortalAuth(http.HandlerFunc(feedback.GetAll)))
	mux.Handle("POST /api/feedback", middlewares.PortalAuth(http.HandlerFunc(feedback.CreateOne)))

	mux.Handle("GET /api/reports/churn", middlewares.PortalAuth(http.HandlerFunc(report.GetChurnOverview)))

	mux.Handle("GET /api/users", middlewares.PortalAuth(http.HandlerFunc(users.GetAll)))
	mux.Handle("GET /api/users/{id}", middlewares.PortalAuth(http.HandlerFunc(users.GetOne)))

	fmt.Printf("サーバーをポート%sで起動しました (%s)\n", os.Getenv(utils.PORT), time.Now().Format("2006-01-02 15:04:05"))
	http.ListenAndServe(fmt.Sprintf(":%s", os.Getenv(utils.PORT)), middlewares.SecurityHeaders(middlewares.Cors(mux)))
}
