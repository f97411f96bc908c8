package bill

import (
	"net/http"

	"github.com/moneymap/moneymap-backend/internal/domain/ledger"
	"github.com/moneymap/moneymap-backend/internal/presentation/helpers"
	presentationProtocols "github.com/moneymap/moneymap-backend/internal/presentation/protocols"
)

type DeleteBillController struct {
	Store *ledger.Store
}

func NewDeleteBillController(store *ledger.Store) *DeleteBillController {
	return &DeleteBillController{
		Store: store,
	}
}

// Handle deletes by id. Deleting an id that no longer exists is a no-op,
// so repeated deletes are safe.
func (c *DeleteBillController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
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

	if err := c.Store.DeleteBill(userId, billId); err != nil {
		return helpers.CreateErrorResponse(err)
	}

	return helpers.CreateResponse(nil, http.StatusNoContent)
}
