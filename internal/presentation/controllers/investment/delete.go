package investment

import (
	"net/http"

	"github.com/moneymap/moneymap-backend/internal/domain/ledger"
	"github.com/moneymap/moneymap-backend/internal/presentation/helpers"
	presentationProtocols "github.com/moneymap/moneymap-backend/internal/presentation/protocols"
)

type DeleteInvestmentController struct {
	Store *ledger.Store
}

func NewDeleteInvestmentController(store *ledger.Store) *DeleteInvestmentController {
	return &DeleteInvestmentController{
		Store: store,
	}
}

func (c *DeleteInvestmentController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	userId, errResponse := helpers.GetUserId(r)
	if errResponse != nil {
		return errResponse
	}

	investmentId := r.Req.PathValue("id")
	if investmentId == "" {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "Invalid investment ID format",
		}, http.StatusBadRequest)
	}

	if err := c.Store.DeleteInvestment(userId, investmentId); err != nil {
		return helpers.CreateErrorResponse(err)
	}

	return helpers.CreateResponse(nil, http.StatusNoContent)
}
