package routes

import (
	"net/http"

	"github.com/moneymap/moneymap-backend/internal/domain/accounts"
	"github.com/moneymap/moneymap-backend/internal/domain/ledger"
	"github.com/moneymap/moneymap-backend/internal/setup/adapters"
	"github.com/moneymap/moneymap-backend/internal/setup/factory"
	"github.com/moneymap/moneymap-backend/internal/setup/middlewares"
)

func SummaryRoutes(server *http.ServeMux, store *ledger.Store, directory *accounts.Directory) {
	server.Handle("GET /summary", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeGetSummaryController(store)),
		directory,
	))

	server.Handle("GET /summary/alerts", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeGetAlertsController(store)),
		directory,
	))

	server.Handle("GET /summary/recommendation", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeGetRecommendationController(store)),
		directory,
	))

	server.Handle("GET /summary/export", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeExportLedgerController(store)),
		directory,
	))
}
