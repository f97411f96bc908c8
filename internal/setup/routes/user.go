package routes

import (
	"net/http"

	"github.com/moneymap/moneymap-backend/internal/domain/accounts"
	"github.com/moneymap/moneymap-backend/internal/domain/ledger"
	"github.com/moneymap/moneymap-backend/internal/setup/adapters"
	"github.com/moneymap/moneymap-backend/internal/setup/factory"
	"github.com/moneymap/moneymap-backend/internal/setup/middlewares"
)

func UserRoutes(server *http.ServeMux, store *ledger.Store, directory *accounts.Directory) {
	server.Handle("GET /user", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeGetUserController(store)),
		directory,
	))

	server.Handle("PATCH /user/profile", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeUpdateProfileController(store)),
		directory,
	))

	server.Handle("PATCH /user/currency", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeChangeCurrencyController(directory)),
		directory,
	))
}
