package category

import (
	"net/http"

	"github.com/moneymap/moneymap-backend/internal/domain/ledger"
	"github.com/moneymap/moneymap-backend/internal/presentation/helpers"
	presentationProtocols "github.com/moneymap/moneymap-backend/internal/presentation/protocols"
)

type GetCategoriesController struct {
	Store *ledger.Store
}

func NewGetCategoriesController(store *ledger.Store) *GetCategoriesController {
	return &GetCategoriesController{
		Store: store,
	}
}

func (c *GetCategoriesController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	userId, errResponse := helpers.GetUserId(r)
	if errResponse != nil {
		return errResponse
	}

	user, err := c.Store.Snapshot(userId)
	if err != nil {
		return helpers.CreateErrorResponse(err)
	}

	return helpers.CreateResponse(user.InvestmentCategories, http.StatusOK)
}
