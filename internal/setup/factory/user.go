package factory

import (
	"github.com/moneymap/moneymap-backend/internal/domain/accounts"
	"github.com/moneymap/moneymap-backend/internal/domain/ledger"
	controllers "github.com/moneymap/moneymap-backend/internal/presentation/controllers/user"
)

func MakeGetUserController(store *ledger.Store) *controllers.GetUserController {
	return controllers.NewGetUserController(store)
}

func MakeUpdateProfileController(store *ledger.Store) *controllers.UpdateProfileController {
	return controllers.NewUpdateProfileController(store)
}

func MakeChangeCurrencyController(directory *accounts.Directory) *controllers.ChangeCurrencyController {
	return controllers.NewChangeCurrencyController(directory)
}
