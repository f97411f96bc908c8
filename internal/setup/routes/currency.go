package routes

import (
	"net/http"

	"github.com/moneymap/moneymap-backend/internal/setup/adapters"
	"github.com/moneymap/moneymap-backend/internal/setup/factory"
	"github.com/moneymap/moneymap-backend/internal/setup/middlewares"
)

func CurrencyRoutes(server *http.ServeMux) {
	server.Handle("GET /currency", middlewares.AllowCacheHeader(
		adapters.AdaptRoute(factory.MakeGetCurrenciesController()),
	))
}
