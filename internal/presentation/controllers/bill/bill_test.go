package bill_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/moneymap/moneymap-backend/internal/domain/ledger"
	"github.com/moneymap/moneymap-backend/internal/domain/models"
	"github.com/moneymap/moneymap-backend/internal/infra/db/inmemory"
	"github.com/moneymap/moneymap-backend/internal/presentation/controllers/bill"
	presentationProtocols "github.com/moneymap/moneymap-backend/internal/presentation/protocols"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newTestStore(t *testing.T) (*ledger.Store, primitive.ObjectID) {
	t.Helper()

	repository := inmemory.NewInMemoryUserRepository()
	user, err := repository.Create(&models.User{
		Email: "owner@example.com",
		Profile: models.UserProfile{
			Email:    "owner@example.com",
			Currency: "USD",
		},
	})
	require.NoError(t, err)

	store := ledger.NewStore(repository)
	store.Now = func() time.Time {
		return time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	}
	return store, user.Id
}

func authedJSONRequest(t *testing.T, userId primitive.ObjectID, payload any) presentationProtocols.HttpRequest {
	t.Helper()

	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	header := http.Header{}
	header.Set("UserId", userId.Hex())
	return presentationProtocols.HttpRequest{
		Body:   io.NopCloser(bytes.NewReader(raw)),
		Header: header,
	}
}

func TestCreateBillController(t *testing.T) {
	store, userId := newTestStore(t)
	controller := bill.NewCreateBillController(store)

	response := controller.Handle(authedJSONRequest(t, userId, map[string]any{
		"title":           "Rent",
		"amountNeeded":    1200,
		"amountDeposited": 400,
		"dueDate":         "2026-04-01",
	}))

	require.Equal(t, http.StatusCreated, response.StatusCode)

	var created models.Bill
	require.NoError(t, json.NewDecoder(response.Body).Decode(&created))
	assert.NotEmpty(t, created.Id)
	assert.Equal(t, "Rent", created.Title)
	assert.Equal(t, 1200.0, created.AmountNeeded)
}

func TestCreateBillControllerRejectsMissingTitle(t *testing.T) {
	store, userId := newTestStore(t)
	controller := bill.NewCreateBillController(store)

	response := controller.Handle(authedJSONRequest(t, userId, map[string]any{
		"amountNeeded": 1200,
		"dueDate":      "2026-04-01",
	}))

	assert.Equal(t, http.StatusUnprocessableEntity, response.StatusCode)
}

func TestCreateBillControllerRejectsBadDateFormat(t *testing.T) {
	store, userId := newTestStore(t)
	controller := bill.NewCreateBillController(store)

	response := controller.Handle(authedJSONRequest(t, userId, map[string]any{
		"title":        "Rent",
		"amountNeeded": 1200,
		"dueDate":      "04/01/2026",
	}))

	assert.Equal(t, http.StatusUnprocessableEntity, response.StatusCode)
}

func TestCreateBillControllerRejectsPastDueDate(t *testing.T) {
	store, userId := newTestStore(t)
	controller := bill.NewCreateBillController(store)

	response := controller.Handle(authedJSONRequest(t, userId, map[string]any{
		"title":        "Rent",
		"amountNeeded": 1200,
		"dueDate":      "2026-03-01",
	}))

	assert.Equal(t, http.StatusUnprocessableEntity, response.StatusCode)
}

func TestUpdateBillController(t *testing.T) {
	store, userId := newTestStore(t)

	created, err := store.AddBill(userId, &models.BillInput{
		Title:        "Rent",
		AmountNeeded: 1200,
		DueDate:      "2026-04-01",
	})
	require.NoError(t, err)

	controller := bill.NewUpdateBillController(store)

	request := authedJSONRequest(t, userId, map[string]any{
		"amountDeposited": 900,
	})
	request.Req = requestWithPathValue(t, "id", created.Id)

	response := controller.Handle(request)

	require.Equal(t, http.StatusOK, response.StatusCode)

	var updated models.Bill
	require.NoError(t, json.NewDecoder(response.Body).Decode(&updated))
	assert.Equal(t, created.Id, updated.Id)
	assert.Equal(t, 900.0, updated.AmountDeposited)
	assert.Equal(t, "Rent", updated.Title)
}

func TestUpdateBillControllerUnknownId(t *testing.T) {
	store, userId := newTestStore(t)
	controller := bill.NewUpdateBillController(store)

	request := authedJSONRequest(t, userId, map[string]any{"title": "Anything"})
	request.Req = requestWithPathValue(t, "id", primitive.NewObjectID().Hex())

	response := controller.Handle(request)

	assert.Equal(t, http.StatusNotFound, response.StatusCode)
}

func TestDeleteBillController(t *testing.T) {
	store, userId := newTestStore(t)

	created, err := store.AddBill(userId, &models.BillInput{
		Title:        "Rent",
		AmountNeeded: 1200,
		DueDate:      "2026-04-01",
	})
	require.NoError(t, err)

	controller := bill.NewDeleteBillController(store)

	request := authedJSONRequest(t, userId, nil)
	request.Req = requestWithPathValue(t, "id", created.Id)

	response := controller.Handle(request)
	assert.Equal(t, http.StatusNoContent, response.StatusCode)

	again := authedJSONRequest(t, userId, nil)
	again.Req = requestWithPathValue(t, "id", created.Id)
	assert.Equal(t, http.StatusNoContent, controller.Handle(again).StatusCode)
}

// requestWithPathValue builds an *http.Request whose PathValue returns the
// given segment, the same way the mux fills it in production.
func requestWithPathValue(t *testing.T, key string, value string) *http.Request {
	t.Helper()

	req, err := http.NewRequest(http.MethodPatch, "/bill/"+value, nil)
	require.NoError(t, err)
	req.SetPathValue(key, value)
	return req
}
