package spending

import (
	"net/http"

	"github.com/moneymap/moneymap-backend/internal/domain/ledger"
	"github.com/moneymap/moneymap-backend/internal/presentation/helpers"
	presentationProtocols "github.com/moneymap/moneymap-backend/internal/presentation/protocols"
)

type DeleteSpendingController struct {
	Store *ledger.Store
}

func NewDeleteSpendingController(store *ledger.Store) *DeleteSpendingController {
	return &DeleteSpendingController{
		Store: store,
	}
}

func (c *DeleteSpendingController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	userId, errResponse := helpers.GetUserId(r)
	if errResponse != nil {
		return errResponse
	}

	spendingId := r.Req.PathValue("id")
	if spendingId == "" {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "Invalid spending ID format",
		}, http.StatusBadRequest)
	}

	if err := c.Store.DeleteSpending(userId, spendingId); err != nil {
		return helpers.CreateErrorResponse(err)
	}

	return helpers.CreateResponse(nil, http.StatusNoContent)
}
