package auth

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/moneymap/moneymap-backend/internal/domain/accounts"
	"github.com/moneymap/moneymap-backend/internal/presentation/helpers"
	presentationProtocols "github.com/moneymap/moneymap-backend/internal/presentation/protocols"
)

type ChangePasswordController struct {
	Directory *accounts.Directory
	Validate  *validator.Validate
}

func NewChangePasswordController(directory *accounts.Directory) *ChangePasswordController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &ChangePasswordController{
		Directory: directory,
		Validate:  validate,
	}
}

type ChangePasswordControllerBody struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required"`
}

func (c *ChangePasswordController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	userId, errResponse := helpers.GetUserId(r)
	if errResponse != nil {
		return errResponse
	}

	var body ChangePasswordControllerBody
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

	if err := c.Directory.ChangePassword(userId, body.CurrentPassword, body.NewPassword); err != nil {
		return helpers.CreateErrorResponse(err)
	}

	return helpers.CreateResponse(map[string]string{
		"message": "Password updated successfully",
	}, http.StatusOK)
}
