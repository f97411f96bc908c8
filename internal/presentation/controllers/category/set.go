package category

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/moneymap/moneymap-backend/internal/domain/ledger"
	"github.com/moneymap/moneymap-backend/internal/domain/models"
	"github.com/moneymap/moneymap-backend/internal/presentation/helpers"
	presentationProtocols "github.com/moneymap/moneymap-backend/internal/presentation/protocols"
)

type SetCategoriesController struct {
	Store    *ledger.Store
	Validate *validator.Validate
}

func NewSetCategoriesController(store *ledger.Store) *SetCategoriesController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &SetCategoriesController{
		Store:    store,
		Validate: validate,
	}
}

type SetCategoriesControllerBody struct {
	Categories []SetCategoriesControllerItem `json:"categories" validate:"required,dive"`
}

type SetCategoriesControllerItem struct {
	Id          string  `json:"id"`
	Name        string  `json:"name" validate:"required,min=1,max=255"`
	Percentage  float64 `json:"percentage" validate:"min=0,max=100"`
	Description string  `json:"description" validate:"max=1024"`
}

// Handle replaces the configured category list. Percentages do not have to
// sum to 100; callers can opt into that check via the recommendation
// endpoint's validate flag.
func (c *SetCategoriesController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	userId, errResponse := helpers.GetUserId(r)
	if errResponse != nil {
		return errResponse
	}

	var body SetCategoriesControllerBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid body request",
		}, http.StatusBadRequest)
	}

	if err := c.Validate.Struct(body); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: helpers.GetErrorMessages(c.Validate, err),
		}, http.StatusUnprocessableEntity)
	}

	categories := make([]models.InvestmentCategory, len(body.Categories))
	for i, item := range body.Categories {
		categories[i] = models.InvestmentCategory{
			Id:          item.Id,
			Name:        item.Name,
			Percentage:  item.Percentage,
			Description: item.Description,
		}
	}

	if err := c.Store.SetInvestmentCategories(userId, categories); err != nil {
		return helpers.CreateErrorResponse(err)
	}

	return helpers.CreateResponse(nil, http.StatusNoContent)
}
