package summary_test

import (
	"encoding/json"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/moneymap/moneymap-backend/internal/domain/ledger"
	"github.com/moneymap/moneymap-backend/internal/domain/models"
	"github.com/moneymap/moneymap-backend/internal/infra/db/inmemory"
	"github.com/moneymap/moneymap-backend/internal/presentation/controllers/summary"
	presentationProtocols "github.com/moneymap/moneymap-backend/internal/presentation/protocols"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func seedStore(t *testing.T, salary float64) (*ledger.Store, primitive.ObjectID) {
	t.Helper()

	repository := inmemory.NewInMemoryUserRepository()
	user, err := repository.Create(&models.User{
		Email: "owner@example.com",
		Profile: models.UserProfile{
			Email:         "owner@example.com",
			Currency:      "USD",
			MonthlySalary: salary,
		},
		Bills: []models.Bill{
			{Id: "b1", Title: "Rent", AmountNeeded: 200, AmountDeposited: 200, DueDate: "2026-04-01"},
		},
		Investments: []models.Investment{
			{Id: "i1", Title: "Fund", AmountNeeded: 100, AmountDeposited: 100},
		},
		Spendings: []models.Spending{
			{Id: "s1", Title: "Groceries", AmountDeposited: 100},
		},
		InvestmentCategories: []models.InvestmentCategory{
			{Id: "1", Name: "Stocks", Percentage: 40},
			{Id: "2", Name: "Bonds", Percentage: 30},
			{Id: "3", Name: "Real Estate", Percentage: 20},
			{Id: "4", Name: "Crypto", Percentage: 10},
		},
	})
	require.NoError(t, err)

	store := ledger.NewStore(repository)
	store.Now = func() time.Time {
		return time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	}
	return store, user.Id
}

func authedRequest(userId primitive.ObjectID, params url.Values) presentationProtocols.HttpRequest {
	header := http.Header{}
	header.Set("UserId", userId.Hex())
	return presentationProtocols.HttpRequest{
		Header:    header,
		UrlParams: params,
	}
}

func TestGetSummaryController(t *testing.T) {
	store, userId := seedStore(t, 1000)
	controller := summary.NewGetSummaryController(store)

	response := controller.Handle(authedRequest(userId, url.Values{}))

	require.Equal(t, http.StatusOK, response.StatusCode)

	var body summary.GetSummaryControllerResponse
	require.NoError(t, json.NewDecoder(response.Body).Decode(&body))
	assert.Equal(t, 200.0, body.Totals.BillsNeeded)
	assert.Equal(t, 100.0, body.Totals.InvestmentNeeded)
	assert.Equal(t, 100.0, body.Totals.SpendingTotal)
	assert.Equal(t, 600.0, body.Leftover)
	assert.Equal(t, 40.0, body.UtilizationPercent)
	assert.Equal(t, "USD", body.Currency)
}

func TestGetSummaryControllerMissingUserHeader(t *testing.T) {
	store, _ := seedStore(t, 1000)
	controller := summary.NewGetSummaryController(store)

	response := controller.Handle(presentationProtocols.HttpRequest{
		Header:    http.Header{},
		UrlParams: url.Values{},
	})

	assert.Equal(t, http.StatusBadRequest, response.StatusCode)
}

func TestGetRecommendationController(t *testing.T) {
	store, userId := seedStore(t, 1000)
	controller := summary.NewGetRecommendationController(store)

	response := controller.Handle(authedRequest(userId, url.Values{}))

	require.Equal(t, http.StatusOK, response.StatusCode)

	var body summary.GetRecommendationControllerResponse
	require.NoError(t, json.NewDecoder(response.Body).Decode(&body))
	assert.Equal(t, 600.0, body.Leftover)
	require.Len(t, body.Allocations, 4)
	assert.Equal(t, 240.0, body.Allocations[0].Amount)
	assert.Equal(t, 180.0, body.Allocations[1].Amount)
	assert.Equal(t, 120.0, body.Allocations[2].Amount)
	assert.Equal(t, 60.0, body.Allocations[3].Amount)
	assert.Empty(t, body.Message)
}

func TestGetRecommendationControllerNoLeftover(t *testing.T) {
	store, userId := seedStore(t, 400)
	controller := summary.NewGetRecommendationController(store)

	response := controller.Handle(authedRequest(userId, url.Values{}))

	require.Equal(t, http.StatusOK, response.StatusCode)

	var body summary.GetRecommendationControllerResponse
	require.NoError(t, json.NewDecoder(response.Body).Decode(&body))
	assert.Zero(t, body.Leftover)
	assert.Empty(t, body.Allocations)
	assert.Equal(t, "No leftover funds available for investment", body.Message)
}

func TestGetRecommendationControllerValidateRejectsBadSum(t *testing.T) {
	store, userId := seedStore(t, 1000)

	err := store.SetInvestmentCategories(userId, []models.InvestmentCategory{
		{Id: "1", Name: "Stocks", Percentage: 60},
	})
	require.NoError(t, err)

	controller := summary.NewGetRecommendationController(store)

	params := url.Values{}
	params.Set("validate", "true")
	response := controller.Handle(authedRequest(userId, params))

	assert.Equal(t, http.StatusUnprocessableEntity, response.StatusCode)
}

func TestGetAlertsController(t *testing.T) {
	store, userId := seedStore(t, 1000)

	deposited := 50.0
	_, err := store.UpdateBill(userId, "b1", &models.BillPatch{AmountDeposited: &deposited})
	require.NoError(t, err)

	controller := summary.NewGetAlertsController(store)

	response := controller.Handle(authedRequest(userId, url.Values{}))

	require.Equal(t, http.StatusOK, response.StatusCode)

	var body summary.GetAlertsControllerResponse
	require.NoError(t, json.NewDecoder(response.Body).Decode(&body))
	require.Len(t, body.Alerts, 1)
	assert.Equal(t, "Bills Shortage", body.Alerts[0].Title)
}

func TestGetAlertsControllerEmptyListNotNull(t *testing.T) {
	store, userId := seedStore(t, 1000)
	controller := summary.NewGetAlertsController(store)

	response := controller.Handle(authedRequest(userId, url.Values{}))

	require.Equal(t, http.StatusOK, response.StatusCode)

	var body summary.GetAlertsControllerResponse
	require.NoError(t, json.NewDecoder(response.Body).Decode(&body))
	assert.NotNil(t, body.Alerts)
	assert.Empty(t, body.Alerts)
}

func TestExportLedgerController(t *testing.T) {
	store, userId := seedStore(t, 1000)
	controller := summary.NewExportLedgerController(store)

	response := controller.Handle(authedRequest(userId, url.Values{}))

	require.Equal(t, http.StatusOK, response.StatusCode)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", response.ContentType)
	assert.NotNil(t, response.Body)
}
