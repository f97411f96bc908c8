package summary

import (
	"net/http"

	"github.com/moneymap/moneymap-backend/internal/domain/budget"
	"github.com/moneymap/moneymap-backend/internal/domain/ledger"
	"github.com/moneymap/moneymap-backend/internal/presentation/helpers"
	presentationProtocols "github.com/moneymap/moneymap-backend/internal/presentation/protocols"
)

type GetAlertsController struct {
	Store *ledger.Store
}

func NewGetAlertsController(store *ledger.Store) *GetAlertsController {
	return &GetAlertsController{
		Store: store,
	}
}

type GetAlertsControllerResponse struct {
	Alerts []budget.Alert `json:"alerts"`
}

func (c *GetAlertsController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	userId, errResponse := helpers.GetUserId(r)
	if errResponse != nil {
		return errResponse
	}

	user, err := c.Store.Snapshot(userId)
	if err != nil {
		return helpers.CreateErrorResponse(err)
	}

	alerts := budget.Alerts(budget.Aggregate(user), user.Profile.Currency)
	if alerts == nil {
		alerts = []budget.Alert{}
	}

	return helpers.CreateResponse(&GetAlertsControllerResponse{
		Alerts: alerts,
	}, http.StatusOK)
}
