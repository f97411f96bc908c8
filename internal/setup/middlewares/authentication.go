package middlewares

import (
	"net/http"
	"strings"

	"github.com/moneymap/moneymap-backend/internal/domain/accounts"
	"github.com/moneymap/moneymap-backend/internal/utils"
)

// VerifyAccessToken authenticates the request: the token must decode and
// still have a live session (logout kills the session even though the
// token itself would remain valid).
func VerifyAccessToken(next http.Handler, directory *accounts.Directory) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var authorization string
		if header := r.Header.Get("Authorization"); header != "" {
			authorization = strings.TrimPrefix(header, "Bearer ")
		} else if cookie, err := r.Cookie("moneymap.session-token"); err == nil {
			authorization = cookie.Value
		}

		if authorization == "" {
			http.Error(w, "Missing or invalid access token", http.StatusUnauthorized)
			return
		}

		if _, err := utils.NewAccessTokenUtil().DecodeToken(authorization); err != nil {
			http.Error(w, "Invalid or expired access token", http.StatusUnauthorized)
			return
		}

		userId, err := directory.Authenticate(authorization)
		if err != nil {
			http.Error(w, "Invalid or expired session", http.StatusUnauthorized)
			return
		}

		r.Header.Set("UserId", userId.Hex())

		next.ServeHTTP(w, r)
	})
}
