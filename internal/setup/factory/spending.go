package factory

import (
	"github.com/moneymap/moneymap-backend/internal/domain/ledger"
	controllers "github.com/moneymap/moneymap-backend/internal/presentation/controllers/spending"
)

func MakeCreateSpendingController(store *ledger.Store) *controllers.CreateSpendingController {
	return controllers.NewCreateSpendingController(store)
}

func MakeUpdateSpendingController(store *ledger.Store) *controllers.UpdateSpendingController {
	return controllers.NewUpdateSpendingController(store)
}

func MakeDeleteSpendingController(store *ledger.Store) *controllers.DeleteSpendingController {
	return controllers.NewDeleteSpendingController(store)
}
