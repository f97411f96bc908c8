package helpers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/moneymap/moneymap-backend/internal/domain/errs"
	presentationProtocols "github.com/moneymap/moneymap-backend/internal/presentation/protocols"
)

// CreateResponse serializes body as JSON into an HttpResponse. A nil body
// yields an empty response with just the status code.
func CreateResponse(body any, statusCode int) *presentationProtocols.HttpResponse {
	if body == nil {
		return &presentationProtocols.HttpResponse{
			Body:       io.NopCloser(bytes.NewReader(nil)),
			StatusCode: statusCode,
		}
	}

	encoded, err := json.Marshal(body)
	if err != nil {
		return &presentationProtocols.HttpResponse{
			Body:       io.NopCloser(bytes.NewBufferString(`{"error":"failed to encode response"}`)),
			StatusCode: http.StatusInternalServerError,
		}
	}

	return &presentationProtocols.HttpResponse{
		Body:       io.NopCloser(bytes.NewReader(encoded)),
		StatusCode: statusCode,
	}
}

// CreateErrorResponse maps a domain error to its HTTP status: validation
// 422, conflict 409, auth 401, not-found 404, anything else 500.
func CreateErrorResponse(err error) *presentationProtocols.HttpResponse {
	statusCode := http.StatusInternalServerError
	message := "an unexpected error occurred"

	switch {
	case errs.IsValidation(err):
		statusCode = http.StatusUnprocessableEntity
		message = err.Error()
	case errs.IsConflict(err):
		statusCode = http.StatusConflict
		message = err.Error()
	case errs.IsAuth(err):
		statusCode = http.StatusUnauthorized
		message = err.Error()
	case errs.IsNotFound(err):
		statusCode = http.StatusNotFound
		message = err.Error()
	}

	return CreateResponse(&presentationProtocols.ErrorResponse{
		Error: message,
	}, statusCode)
}
