package routes

import (
	"net/http"

	"github.com/moneymap/moneymap-backend/internal/domain/accounts"
	"github.com/moneymap/moneymap-backend/internal/domain/ledger"
	"github.com/moneymap/moneymap-backend/internal/setup/adapters"
	"github.com/moneymap/moneymap-backend/internal/setup/factory"
	"github.com/moneymap/moneymap-backend/internal/setup/middlewares"
)

func BillRoutes(server *http.ServeMux, store *ledger.Store, directory *accounts.Directory) {
	server.Handle("POST /bill", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeCreateBillController(store)),
		directory,
	))

	server.Handle("PATCH /bill/{id}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeUpdateBillController(store)),
		directory,
	))

	server.Handle("DELETE /bill/{id}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeDeleteBillController(store)),
		directory,
	))
}
