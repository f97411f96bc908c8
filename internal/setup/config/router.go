package config

import (
	"net/http"

	"github.com/moneymap/moneymap-backend/internal/domain/accounts"
	"github.com/moneymap/moneymap-backend/internal/domain/ledger"
	"github.com/moneymap/moneymap-backend/internal/setup/routes"
)

func SetupRoutes(server *http.ServeMux, store *ledger.Store, directory *accounts.Directory) {
	apiServer := http.NewServeMux()
	routes.AuthRoutes(apiServer, directory)
	routes.UserRoutes(apiServer, store, directory)
	routes.BillRoutes(apiServer, store, directory)
	routes.InvestmentRoutes(apiServer, store, directory)
	routes.SpendingRoutes(apiServer, store, directory)
	routes.SummaryRoutes(apiServer, store, directory)
	routes.CurrencyRoutes(apiServer)

	server.Handle("/api/", http.StripPrefix("/api", apiServer))
}
