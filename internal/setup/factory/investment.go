package factory

import (
	"github.com/moneymap/moneymap-backend/internal/domain/ledger"
	controllers "github.com/moneymap/moneymap-backend/internal/presentation/controllers/investment"
)

func MakeCreateInvestmentController(store *ledger.Store) *controllers.CreateInvestmentController {
	return controllers.NewCreateInvestmentController(store)
}

func MakeUpdateInvestmentController(store *ledger.Store) *controllers.UpdateInvestmentController {
	return controllers.NewUpdateInvestmentController(store)
}

func MakeDeleteInvestmentController(store *ledger.Store) *controllers.DeleteInvestmentController {
	return controllers.NewDeleteInvestmentController(store)
}
