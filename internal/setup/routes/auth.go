package routes

import (
	"net/http"

	"github.com/moneymap/moneymap-backend/internal/domain/accounts"
	"github.com/moneymap/moneymap-backend/internal/setup/adapters"
	"github.com/moneymap/moneymap-backend/internal/setup/factory"
	"github.com/moneymap/moneymap-backend/internal/setup/middlewares"
)

func AuthRoutes(server *http.ServeMux, directory *accounts.Directory) {
	server.Handle("POST /auth/signup", adapters.AdaptRoute(factory.MakeSignupController(directory)))

	server.Handle("POST /auth/login", adapters.AdaptRoute(factory.MakeLoginController(directory)))

	server.Handle("POST /auth/logout", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeLogoutController(directory)),
		directory,
	))

	server.Handle("PATCH /auth/password", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeChangePasswordController(directory)),
		directory,
	))
}
