package bill

import (
	"encoding/json"
	"net/http"

	"github.com/moneymap/moneymap-backend/internal/domain/ledger"
	"github.com/moneymap/moneymap-backend/internal/domain/models"
	"github.com/moneymap/moneymap-backend/internal/presentation/helpers"
	presentationProtocols "github.com/moneymap/moneymap-backend/internal/presentation/protocols"
)

type UpdateBillController struct {
	Store *ledger.Store
}

func NewUpdateBillController(store *ledger.Store) *UpdateBillController {
	return &UpdateBillController{
		Store: store,
	}
}

// Handle applies a partial update: absent fields keep their stored value,
// the id never changes.
func (c *UpdateBillController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	userId, errResponse := helpers.GetUserId(r)
	if errResponse != nil {
		return errResponse
	}

	billId := r.Req.PathValue("id")
	if billId == "" {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "Invalid bill ID format",
		}, http.StatusBadRequest)
	}

	var patch models.BillPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid body request",
		}, http.StatusBadRequest)
	}

	bill, err := c.Store.UpdateBill(userId, billId, &patch)
	if err != nil {
		return helpers.CreateErrorResponse(err)
	}

	return helpers.CreateResponse(bill, http.StatusOK)
}
