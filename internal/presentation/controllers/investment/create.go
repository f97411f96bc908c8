package investment

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/moneymap/moneymap-backend/internal/domain/ledger"
	"github.com/moneymap/moneymap-backend/internal/domain/models"
	"github.com/moneymap/moneymap-backend/internal/presentation/helpers"
	presentationProtocols "github.com/moneymap/moneymap-backend/internal/presentation/protocols"
)

type CreateInvestmentController struct {
	Store    *ledger.Store
	Validate *validator.Validate
}

func NewCreateInvestmentController(store *ledger.Store) *CreateInvestmentController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &CreateInvestmentController{
		Store:    store,
		Validate: validate,
	}
}

type CreateInvestmentControllerBody struct {
	Title           string  `json:"title" validate:"required,min=1,max=255"`
	AmountNeeded    float64 `json:"amountNeeded" validate:"min=0"`
	AmountDeposited float64 `json:"amountDeposited" validate:"min=0"`
}

func (c *CreateInvestmentController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	userId, errResponse := helpers.GetUserId(r)
	if errResponse != nil {
		return errResponse
	}

	var body CreateInvestmentControllerBody
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

	investment, err := c.Store.AddInvestment(userId, &models.InvestmentInput{
		Title:           body.Title,
		AmountNeeded:    body.AmountNeeded,
		AmountDeposited: body.AmountDeposited,
	})
	if err != nil {
		return helpers.CreateErrorResponse(err)
	}

	return helpers.CreateResponse(investment, http.StatusCreated)
}
