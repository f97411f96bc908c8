package routes

import (
	"net/http"

	"github.com/moneymap/moneymap-backend/internal/domain/accounts"
	"github.com/moneymap/moneymap-backend/internal/domain/ledger"
	"github.com/moneymap/moneymap-backend/internal/setup/adapters"
	"github.com/moneymap/moneymap-backend/internal/setup/factory"
	"github.com/moneymap/moneymap-backend/internal/setup/middlewares"
)

func InvestmentRoutes(server *http.ServeMux, store *ledger.Store, directory *accounts.Directory) {
	server.Handle("POST /investment", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeCreateInvestmentController(store)),
		directory,
	))

	server.Handle("PATCH /investment/{id}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeUpdateInvestmentController(store)),
		directory,
	))

	server.Handle("DELETE /investment/{id}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeDeleteInvestmentController(store)),
		directory,
	))

	server.Handle("GET /investment-category", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeGetCategoriesController(store)),
		directory,
	))

	server.Handle("PUT /investment-category", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeSetCategoriesController(store)),
		directory,
	))
}
