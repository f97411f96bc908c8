package currency

import (
	"net/http"

	domainCurrency "github.com/moneymap/moneymap-backend/internal/domain/currency"
	"github.com/moneymap/moneymap-backend/internal/presentation/helpers"
	presentationProtocols "github.com/moneymap/moneymap-backend/internal/presentation/protocols"
)

type GetCurrenciesController struct{}

func NewGetCurrenciesController() *GetCurrenciesController {
	return &GetCurrenciesController{}
}

func (c *GetCurrenciesController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	return helpers.CreateResponse(domainCurrency.All(), http.StatusOK)
}
