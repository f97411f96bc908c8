package user

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/moneymap/moneymap-backend/internal/domain/accounts"
	"github.com/moneymap/moneymap-backend/internal/presentation/helpers"
	presentationProtocols "github.com/moneymap/moneymap-backend/internal/presentation/protocols"
)

type ChangeCurrencyController struct {
	Directory *accounts.Directory
	Validate  *validator.Validate
}

func NewChangeCurrencyController(directory *accounts.Directory) *ChangeCurrencyController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &ChangeCurrencyController{
		Directory: directory,
		Validate:  validate,
	}
}

type ChangeCurrencyControllerBody struct {
	Currency string `json:"currency" validate:"required,len=3"`
}

// Handle relabels the account currency. Stored amounts are never
// converted; only the label shown with them changes.
func (c *ChangeCurrencyController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	userId, errResponse := helpers.GetUserId(r)
	if errResponse != nil {
		return errResponse
	}

	var body ChangeCurrencyControllerBody
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

	profile, err := c.Directory.ChangeCurrency(userId, body.Currency)
	if err != nil {
		return helpers.CreateErrorResponse(err)
	}

	return helpers.CreateResponse(profile, http.StatusOK)
}
