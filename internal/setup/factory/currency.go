package factory

import (
	controllers "github.com/moneymap/moneymap-backend/internal/presentation/controllers/currency"
)

func MakeGetCurrenciesController() *controllers.GetCurrenciesController {
	return controllers.NewGetCurrenciesController()
}
