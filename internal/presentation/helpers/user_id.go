package helpers

import (
	"net/http"

	presentationProtocols "github.com/moneymap/moneymap-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GetUserId reads the account id the authentication middleware stored on
// the request.
func GetUserId(r presentationProtocols.HttpRequest) (primitive.ObjectID, *presentationProtocols.HttpResponse) {
	userId, err := primitive.ObjectIDFromHex(r.Header.Get("UserId"))
	if err != nil {
		return primitive.NilObjectID, CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "Invalid user ID format",
		}, http.StatusBadRequest)
	}
	return userId, nil
}
