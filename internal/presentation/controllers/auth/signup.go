package auth

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/moneymap/moneymap-backend/internal/domain/accounts"
	"github.com/moneymap/moneymap-backend/internal/domain/models"
	"github.com/moneymap/moneymap-backend/internal/presentation/helpers"
	presentationProtocols "github.com/moneymap/moneymap-backend/internal/presentation/protocols"
)

type SignupController struct {
	Directory *accounts.Directory
	Validate  *validator.Validate
}

func NewSignupController(directory *accounts.Directory) *SignupController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &SignupController{
		Directory: directory,
		Validate:  validate,
	}
}

type SignupControllerBody struct {
	FirstName string `json:"firstName" validate:"required,min=1,max=255"`
	LastName  string `json:"lastName" validate:"required,min=1,max=255"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	Currency  string `json:"currency" validate:"omitempty,len=3"`
}

type SignupControllerResponse struct {
	Token   string             `json:"token"`
	Profile models.UserProfile `json:"profile"`
}

func (c *SignupController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body SignupControllerBody
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

	user, token, err := c.Directory.Signup(&accounts.SignupInput{
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Email:     body.Email,
		Password:  body.Password,
		Currency:  body.Currency,
	})
	if err != nil {
		return helpers.CreateErrorResponse(err)
	}

	return helpers.CreateResponse(&SignupControllerResponse{
		Token:   token,
		Profile: user.Profile,
	}, http.StatusCreated)
}
