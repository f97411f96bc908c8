package spending

import (
	"encoding/json"
	"net/http"

	"github.com/moneymap/moneymap-backend/internal/domain/ledger"
	"github.com/moneymap/moneymap-backend/internal/domain/models"
	"github.com/moneymap/moneymap-backend/internal/presentation/helpers"
	presentationProtocols "github.com/moneymap/moneymap-backend/internal/presentation/protocols"
)

type UpdateSpendingController struct {
	Store *ledger.Store
}

func NewUpdateSpendingController(store *ledger.Store) *UpdateSpendingController {
	return &UpdateSpendingController{
		Store: store,
	}
}

func (c *UpdateSpendingController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
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

	var patch models.SpendingPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid body request",
		}, http.StatusBadRequest)
	}

	spending, err := c.Store.UpdateSpending(userId, spendingId, &patch)
	if err != nil {
		return helpers.CreateErrorResponse(err)
	}

	return helpers.CreateResponse(spending, http.StatusOK)
}
