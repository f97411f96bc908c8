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

type LoginController struct {
	Directory *accounts.Directory
	Validate  *validator.Validate
}

func NewLoginController(directory *accounts.Directory) *LoginController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &LoginController{
		Directory: directory,
		Validate:  validate,
	}
}

type LoginControllerBody struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginControllerResponse struct {
	Token   string             `json:"token"`
	Profile models.UserProfile `json:"profile"`
}

func (c *LoginController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body LoginControllerBody
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

	user, token, err := c.Directory.Login(body.Email, body.Password)
	if err != nil {
		return helpers.CreateErrorResponse(err)
	}

	return helpers.CreateResponse(&LoginControllerResponse{
		Token:   token,
		Profile: user.Profile,
	}, http.StatusOK)
}
