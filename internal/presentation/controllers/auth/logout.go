package auth

import (
	"net/http"
	"strings"

	"github.com/moneymap/moneymap-backend/internal/domain/accounts"
	"github.com/moneymap/moneymap-backend/internal/presentation/helpers"
	presentationProtocols "github.com/moneymap/moneymap-backend/internal/presentation/protocols"
)

type LogoutController struct {
	Directory *accounts.Directory
}

func NewLogoutController(directory *accounts.Directory) *LogoutController {
	return &LogoutController{
		Directory: directory,
	}
}

// Handle discards the presented session. It succeeds even for unknown
// tokens; the durable account record is never touched.
func (c *LogoutController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	if token == "" {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "Missing or invalid access token",
		}, http.StatusUnauthorized)
	}

	if err := c.Directory.Logout(token); err != nil {
		return helpers.CreateErrorResponse(err)
	}

	return helpers.CreateResponse(nil, http.StatusNoContent)
}
