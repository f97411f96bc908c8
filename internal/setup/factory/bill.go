package factory

import (
	"github.com/moneymap/moneymap-backend/internal/domain/ledger"
	controllers "github.com/moneymap/moneymap-backend/internal/presentation/controllers/bill"
)

func MakeCreateBillController(store *ledger.Store) *controllers.CreateBillController {
	return controllers.NewCreateBillController(store)
}

func MakeUpdateBillController(store *ledger.Store) *controllers.UpdateBillController {
	return controllers.NewUpdateBillController(store)
}

func MakeDeleteBillController(store *ledger.Store) *controllers.DeleteBillController {
	return controllers.NewDeleteBillController(store)
}
