package middlewares

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/shotaro12223/wisteria-ats-sub001/utils"
)

type contextKey string

const UserContextKey = contextKey("portal_user")

type PortalUser struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// PortalAuth validates the bearer token against the main portal's session
// endpoint and stashes the resolved user in the request context.
func PortalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get("Authorization")
		if token == "" {
			utils.SendError(w, http.StatusUnauthorized, "認証トークンが指定されていません", 0)
			return
		}

		portalURL := os.Getenv(utils.PORTAL_API_URL)
		if portalURL == "" {
			portalURL = "http://localhost:3000"
		}
		sessionURL := fmt.Sprintf("%s/api/auth/me", portalURL)

		req, err := http.NewRequest("GET", sessionURL, nil)
		if err != nil {
			utils.SendError(w, http.StatusInternalServerError, "認証リクエストの作成に失敗しました", 0)
			return
		}
		req.Header.Set("Authorization", token)

		client := &http.Client{}
		resp, err := client.Do(req)
		if err != nil {
			utils.SendError(w, http.StatusBadGateway, "認証サービスに接続できませんでした", 0)
			return
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			utils.SendError(w, http.StatusUnauthorized, "認証トークンが無効です", 0)
			return
		}

		user := PortalUser{}
		err = json.NewDecoder(resp.Body).Decode(&user)
		if err != nil || user.ID == 0 || user.Email == "" {
			utils.SendError(w, http.StatusUnauthorized, "認証サービスから不正なユーザーが返されました", 0)
			return
		}

		ctx := context.WithValue(r.Context(), UserContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
