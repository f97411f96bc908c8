package spending

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/moneymap/moneymap-backend/internal/domain/ledger"
	"github.com/moneymap/moneymap-backend/internal/domain/models"
	"github.com/moneymap/moneymap-backend/internal/presentation/helpers"
	presentationProtocols "github.com/moneymap/moneymap-backend/internal/presentation/protocols"
)

type CreateSpendingController struct {
	Store    *ledger.Store
	Validate *validator.Validate
}

func NewCreateSpendingController(store *ledger.Store) *CreateSpendingController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &CreateSpendingController{
		Store:    store,
		Validate: validate,
	}
}

type CreateSpendingControllerBody struct {
	Title           string  `json:"title" validate:"required,min=1,max=255"`
	AmountDeposited float64 `json:"amountDeposited" validate:"min=0"`
}

func (c *CreateSpendingController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	userId, errResponse := helpers.GetUserId(r)
	if errResponse != nil {
		return errResponse
	}

	var body CreateSpendingControllerBody
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

	spending, err := c.Store.AddSpending(userId, &models.SpendingInput{
		Title:           body.Title,
		AmountDeposited: body.AmountDeposited,
	})
	if err != nil {
		return helpers.CreateErrorResponse(err)
	}

	return helpers.CreateResponse(spending, http.StatusCreated)
}
