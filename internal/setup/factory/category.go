package factory

import (
	"github.com/moneymap/moneymap-backend/internal/domain/ledger"
	controllers "github.com/moneymap/moneymap-backend/internal/presentation/controllers/category"
)

func MakeGetCategoriesController(store *ledger.Store) *controllers.GetCategoriesController {
	return controllers.NewGetCategoriesController(store)
}

func MakeSetCategoriesController(store *ledger.Store) *controllers.SetCategoriesController {
	return controllers.NewSetCategoriesController(store)
}
