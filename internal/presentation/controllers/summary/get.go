package summary

import (
	"net/http"

	"github.com/moneymap/moneymap-backend/internal/domain/budget"
	"github.com/moneymap/moneymap-backend/internal/domain/ledger"
	"github.com/moneymap/moneymap-backend/internal/presentation/helpers"
	presentationProtocols "github.com/moneymap/moneymap-backend/internal/presentation/protocols"
)

type GetSummaryController struct {
	Store *ledger.Store
}

func NewGetSummaryController(store *ledger.Store) *GetSummaryController {
	return &GetSummaryController{
		Store: store,
	}
}

type GetSummaryControllerResponse struct {
	Totals             budget.Totals `json:"totals"`
	Leftover           float64       `json:"leftover"`
	UtilizationPercent float64       `json:"utilizationPercent"`
	Currency           string        `json:"currency"`
}

// Handle recomputes the monthly picture from the latest snapshot; nothing
// is cached between requests.
func (c *GetSummaryController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	userId, errResponse := helpers.GetUserId(r)
	if errResponse != nil {
		return errResponse
	}

	user, err := c.Store.Snapshot(userId)
	if err != nil {
		return helpers.CreateErrorResponse(err)
	}

	totals := budget.Aggregate(user)

	return helpers.CreateResponse(&GetSummaryControllerResponse{
		Totals:             totals,
		Leftover:           budget.Leftover(user.Profile.MonthlySalary, totals),
		UtilizationPercent: budget.UtilizationPercent(user.Profile.MonthlySalary, totals),
		Currency:           user.Profile.Currency,
	}, http.StatusOK)
}
