package summary

import (
	"net/http"

	"github.com/moneymap/moneymap-backend/internal/domain/budget"
	"github.com/moneymap/moneymap-backend/internal/domain/ledger"
	"github.com/moneymap/moneymap-backend/internal/presentation/helpers"
	presentationProtocols "github.com/moneymap/moneymap-backend/internal/presentation/protocols"
)

type GetRecommendationController struct {
	Store *ledger.Store
}

func NewGetRecommendationController(store *ledger.Store) *GetRecommendationController {
	return &GetRecommendationController{
		Store: store,
	}
}

type GetRecommendationControllerResponse struct {
	Leftover    float64             `json:"leftover"`
	Currency    string              `json:"currency"`
	Allocations []budget.Allocation `json:"allocations"`
	Message     string              `json:"message,omitempty"`
}

// Handle allocates the leftover across the configured categories. With
// ?validate=true the category percentages must sum to 100, otherwise the
// list is used as configured. A zero leftover returns an empty allocation
// list and a message instead of all-zero amounts.
func (c *GetRecommendationController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	userId, errResponse := helpers.GetUserId(r)
	if errResponse != nil {
		return errResponse
	}

	user, err := c.Store.Snapshot(userId)
	if err != nil {
		return helpers.CreateErrorResponse(err)
	}

	if r.UrlParams.Get("validate") == "true" {
		if err := budget.ValidateCategories(user.InvestmentCategories); err != nil {
			return helpers.CreateErrorResponse(err)
		}
	}

	leftover := budget.Leftover(user.Profile.MonthlySalary, budget.Aggregate(user))
	if leftover == 0 {
		return helpers.CreateResponse(&GetRecommendationControllerResponse{
			Leftover:    0,
			Currency:    user.Profile.Currency,
			Allocations: []budget.Allocation{},
			Message:     "No leftover funds available for investment",
		}, http.StatusOK)
	}

	return helpers.CreateResponse(&GetRecommendationControllerResponse{
		Leftover:    leftover,
		Currency:    user.Profile.Currency,
		Allocations: budget.Allocate(leftover, user.InvestmentCategories),
	}, http.StatusOK)
}
