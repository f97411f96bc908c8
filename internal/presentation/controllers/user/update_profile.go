package user

import (
	"encoding/json"
	"net/http"

	"github.com/moneymap/moneymap-backend/internal/domain/ledger"
	"github.com/moneymap/moneymap-backend/internal/domain/models"
	"github.com/moneymap/moneymap-backend/internal/presentation/helpers"
	presentationProtocols "github.com/moneymap/moneymap-backend/internal/presentation/protocols"
)

type UpdateProfileController struct {
	Store *ledger.Store
}

func NewUpdateProfileController(store *ledger.Store) *UpdateProfileController {
	return &UpdateProfileController{
		Store: store,
	}
}

func (c *UpdateProfileController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	userId, errResponse := helpers.GetUserId(r)
	if errResponse != nil {
		return errResponse
	}

	var patch models.UserProfilePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid body request",
		}, http.StatusBadRequest)
	}

	profile, err := c.Store.UpdateProfile(userId, &patch)
	if err != nil {
		return helpers.CreateErrorResponse(err)
	}

	return helpers.CreateResponse(profile, http.StatusOK)
}
