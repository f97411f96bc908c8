package factory

import (
	"github.com/moneymap/moneymap-backend/internal/domain/ledger"
	controllers "github.com/moneymap/moneymap-backend/internal/presentation/controllers/summary"
)

func MakeGetSummaryController(store *ledger.Store) *controllers.GetSummaryController {
	return controllers.NewGetSummaryController(store)
}

func MakeGetAlertsController(store *ledger.Store) *controllers.GetAlertsController {
	return controllers.NewGetAlertsController(store)
}

func MakeGetRecommendationController(store *ledger.Store) *controllers.GetRecommendationController {
	return controllers.NewGetRecommendationController(store)
}

func MakeExportLedgerController(store *ledger.Store) *controllers.ExportLedgerController {
	return controllers.NewExportLedgerController(store)
}
