package accounts_test

import (
	"fmt"
	"testing"

	"github.com/moneymap/moneymap-backend/internal/domain/accounts"
	"github.com/moneymap/moneymap-backend/internal/domain/errs"
	"github.com/moneymap/moneymap-backend/internal/infra/db/inmemory"
	"github.com/moneymap/moneymap-backend/internal/infra/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeTokenIssuer struct {
	counter int
}

func (f *fakeTokenIssuer) Issue(subject string) (string, error) {
	f.counter++
	return fmt.Sprintf("token-%s-%d", subject, f.counter), nil
}

func newTestDirectory() *accounts.Directory {
	return accounts.NewDirectory(
		inmemory.NewInMemoryUserRepository(),
		session.NewMemorySessionRepository(),
		&fakeTokenIssuer{},
	)
}

func signupInput() *accounts.SignupInput {
	return &accounts.SignupInput{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Password:  "Secret123",
		Currency:  "EUR",
	}
}

func TestSignup(t *testing.T) {
	directory := newTestDirectory()

	user, token, err := directory.Signup(signupInput())

	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.False(t, user.Id.IsZero())
	assert.Equal(t, "ada@example.com", user.Email)
	assert.Equal(t, "EUR", user.Profile.Currency)
	assert.True(t, user.Profile.IsSetup)
	assert.Zero(t, user.Profile.MonthlySalary)
	assert.Empty(t, user.Bills)
	assert.Len(t, user.InvestmentCategories, 5)
	assert.NotEqual(t, "Secret123", user.PasswordHash)
}

func TestSignupDefaultsCurrencyToUSD(t *testing.T) {
	directory := newTestDirectory()

	input := signupInput()
	input.Currency = ""
	user, _, err := directory.Signup(input)

	require.NoError(t, err)
	assert.Equal(t, "USD", user.Profile.Currency)
}

func TestSignupRejectsInvalidEmail(t *testing.T) {
	directory := newTestDirectory()

	input := signupInput()
	input.Email = "not-an-email"
	_, _, err := directory.Signup(input)

	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))
}

func TestSignupRejectsShortPassword(t *testing.T) {
	directory := newTestDirectory()

	input := signupInput()
	input.Password = "short"
	_, _, err := directory.Signup(input)

	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))
}

func TestSignupDuplicateEmail(t *testing.T) {
	directory := newTestDirectory()

	_, _, err := directory.Signup(signupInput())
	require.NoError(t, err)

	_, _, err = directory.Signup(signupInput())
	require.Error(t, err)
	assert.True(t, errs.IsConflict(err))
}

func TestLogin(t *testing.T) {
	directory := newTestDirectory()

	created, _, err := directory.Signup(signupInput())
	require.NoError(t, err)

	user, token, err := directory.Login("ada@example.com", "Secret123")

	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, created.Id, user.Id)
}

func TestLoginUnknownEmail(t *testing.T) {
	directory := newTestDirectory()

	_, _, err := directory.Login("nobody@example.com", "whatever")

	require.Error(t, err)
	assert.True(t, errs.IsNotFound(err))
}

func TestLoginWrongPassword(t *testing.T) {
	directory := newTestDirectory()

	_, _, err := directory.Signup(signupInput())
	require.NoError(t, err)

	_, _, err = directory.Login("ada@example.com", "WrongPass1")

	require.Error(t, err)
	assert.True(t, errs.IsAuth(err))
	assert.False(t, errs.IsNotFound(err))
}

func TestAuthenticate(t *testing.T) {
	directory := newTestDirectory()

	user, token, err := directory.Signup(signupInput())
	require.NoError(t, err)

	id, err := directory.Authenticate(token)

	require.NoError(t, err)
	assert.Equal(t, user.Id, id)
}

func TestAuthenticateUnknownToken(t *testing.T) {
	directory := newTestDirectory()

	_, err := directory.Authenticate("no-such-token")

	require.Error(t, err)
	assert.True(t, errs.IsAuth(err))
}

func TestLogoutInvalidatesSession(t *testing.T) {
	directory := newTestDirectory()

	_, token, err := directory.Signup(signupInput())
	require.NoError(t, err)

	require.NoError(t, directory.Logout(token))

	_, err = directory.Authenticate(token)
	require.Error(t, err)
	assert.True(t, errs.IsAuth(err))
}

func TestLogoutUnknownTokenIsNoOp(t *testing.T) {
	directory := newTestDirectory()

	assert.NoError(t, directory.Logout("never-issued"))
}

func TestChangePassword(t *testing.T) {
	directory := newTestDirectory()

	user, _, err := directory.Signup(signupInput())
	require.NoError(t, err)

	require.NoError(t, directory.ChangePassword(user.Id, "Secret123", "NewSecret9"))

	_, _, err = directory.Login("ada@example.com", "NewSecret9")
	assert.NoError(t, err)

	_, _, err = directory.Login("ada@example.com", "Secret123")
	require.Error(t, err)
	assert.True(t, errs.IsAuth(err))
}

func TestChangePasswordWrongCurrent(t *testing.T) {
	directory := newTestDirectory()

	user, _, err := directory.Signup(signupInput())
	require.NoError(t, err)

	err = directory.ChangePassword(user.Id, "WrongPass1", "NewSecret9")

	require.Error(t, err)
	assert.True(t, errs.IsAuth(err))
}

func TestChangePasswordPolicy(t *testing.T) {
	directory := newTestDirectory()

	user, _, err := directory.Signup(signupInput())
	require.NoError(t, err)

	tests := []struct {
		name     string
		password string
	}{
		{name: "too short", password: "Ab1"},
		{name: "no uppercase", password: "lowercase1"},
		{name: "no lowercase", password: "UPPERCASE1"},
		{name: "no digit or symbol", password: "OnlyLetters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := directory.ChangePassword(user.Id, "Secret123", tt.password)
			require.Error(t, err)
			assert.True(t, errs.IsValidation(err))
		})
	}
}

func TestChangeCurrencyIsLabelOnly(t *testing.T) {
	directory := newTestDirectory()

	user, _, err := directory.Signup(signupInput())
	require.NoError(t, err)

	profile, err := directory.ChangeCurrency(user.Id, "GBP")

	require.NoError(t, err)
	assert.Equal(t, "GBP", profile.Currency)
	assert.Equal(t, user.Profile.MonthlySalary, profile.MonthlySalary)
}

func TestChangeCurrencyRejectsUnknownCode(t *testing.T) {
	directory := newTestDirectory()

	user, _, err := directory.Signup(signupInput())
	require.NoError(t, err)

	_, err = directory.ChangeCurrency(user.Id, "ZZZ")

	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))
}

func TestChangeCurrencyUnknownUser(t *testing.T) {
	directory := newTestDirectory()

	_, err := directory.ChangeCurrency(primitive.NewObjectID(), "USD")

	require.Error(t, err)
	assert.True(t, errs.IsNotFound(err))
}
