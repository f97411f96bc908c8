package bill

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/moneymap/moneymap-backend/internal/domain/ledger"
	"github.com/moneymap/moneymap-backend/internal/domain/models"
	"github.com/moneymap/moneymap-backend/internal/presentation/helpers"
	presentationProtocols "github.com/moneymap/moneymap-backend/internal/presentation/protocols"
)

type CreateBillController struct {
	Store    *ledger.Store
	Validate *validator.Validate
}

func NewCreateBillController(store *ledger.Store) *CreateBillController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &CreateBillController{
		Store:    store,
		Validate: validate,
	}
}

type CreateBillControllerBody struct {
	Title           string  `json:"title" validate:"required,min=1,max=255"`
	AmountNeeded    float64 `json:"amountNeeded" validate:"min=0"`
	AmountDeposited float64 `json:"amountDeposited" validate:"min=0"`
	DueDate         string  `json:"dueDate" validate:"required,datetime=2006-01-02"`
}

func (c *CreateBillController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	userId, errResponse := helpers.GetUserId(r)
	if errResponse != nil {
		return errResponse
	}

	var body CreateBillControllerBody
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

	bill, err := c.Store.AddBill(userId, &models.BillInput{
		Title:           body.Title,
		AmountNeeded:    body.AmountNeeded,
		AmountDeposited: body.AmountDeposited,
		DueDate:         body.DueDate,
	})
	if err != nil {
		return helpers.CreateErrorResponse(err)
	}

	return helpers.CreateResponse(bill, http.StatusCreated)
}
