package user

import (
	"net/http"

	"github.com/moneymap/moneymap-backend/internal/domain/ledger"
	"github.com/moneymap/moneymap-backend/internal/presentation/helpers"
	presentationProtocols "github.com/moneymap/moneymap-backend/internal/presentation/protocols"
)

type GetUserController struct {
	Store *ledger.Store
}

func NewGetUserController(store *ledger.Store) *GetUserController {
	return &GetUserController{
		Store: store,
	}
}

// Handle returns the whole aggregate: profile, entries and categories. The
// password hash is excluded at the model level.
func (c *GetUserController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	userId, errResponse := helpers.GetUserId(r)
	if errResponse != nil {
		return errResponse
	}

	user, err := c.Store.Snapshot(userId)
	if err != nil {
		return helpers.CreateErrorResponse(err)
	}

	return helpers.CreateResponse(user, http.StatusOK)
}
