package routes

import (
	"net/http"

	"github.com/moneymap/moneymap-backend/internal/domain/accounts"
	"github.com/moneymap/moneymap-backend/internal/domain/ledger"
	"github.com/moneymap/moneymap-backend/internal/setup/adapters"
	"github.com/moneymap/moneymap-backend/internal/setup/factory"
	"github.com/moneymap/moneymap-backend/internal/setup/middlewares"
)

func SpendingRoutes(server *http.ServeMux, store *ledger.Store, directory *accounts.Directory) {
	server.Handle("POST /spending", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeCreateSpendingController(store)),
		directory,
	))

	server.Handle("PATCH /spending/{id}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeUpdateSpendingController(store)),
		directory,
	))

	server.Handle("DELETE /spending/{id}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeDeleteSpendingController(store)),
		directory,
	))
}
