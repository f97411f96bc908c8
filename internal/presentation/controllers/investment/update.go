package investment

import (
	"encoding/json"
	"net/http"

	"github.com/moneymap/moneymap-backend/internal/domain/ledger"
	"github.com/moneymap/moneymap-backend/internal/domain/models"
	"github.com/moneymap/moneymap-backend/internal/presentation/helpers"
	presentationProtocols "github.com/moneymap/moneymap-backend/internal/presentation/protocols"
)

type UpdateInvestmentController struct {
	Store *ledger.Store
}

func NewUpdateInvestmentController(store *ledger.Store) *UpdateInvestmentController {
	return &UpdateInvestmentController{
		Store: store,
	}
}

func (c *UpdateInvestmentController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
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

	var patch models.InvestmentPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid body request",
		}, http.StatusBadRequest)
	}

	investment, err := c.Store.UpdateInvestment(userId, investmentId, &patch)
	if err != nil {
		return helpers.CreateErrorResponse(err)
	}

	return helpers.CreateResponse(investment, http.StatusOK)
}
