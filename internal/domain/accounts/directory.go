// Package accounts implements the identity lifecycle: signup, login,
// logout, password change and currency change, written once against the
// credential and session store contracts.
package accounts

import (
	"regexp"
	"time"
	"unicode"

	"github.com/moneymap/moneymap-backend/internal/domain/budget"
	"github.com/moneymap/moneymap-backend/internal/domain/currency"
	"github.com/moneymap/moneymap-backend/internal/domain/errs"
	"github.com/moneymap/moneymap-backend/internal/domain/models"
	"github.com/moneymap/moneymap-backend/internal/domain/usecase"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// SessionTTL bounds how long an issued session token stays valid.
const SessionTTL = 30 * 24 * time.Hour

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// TokenIssuer mints the opaque session token handed out at login.
type TokenIssuer interface {
	Issue(subject string) (string, error)
}

type CredentialRepository interface {
	usecase.CreateUserRepository
	usecase.FindUserByEmailRepository
	usecase.FindUserByIdRepository
	usecase.UpdateUserPasswordRepository
	usecase.UpdateUserProfileRepository
}

type SessionRepository interface {
	usecase.CreateSessionRepository
	usecase.FindSessionRepository
	usecase.DeleteSessionRepository
}

type Directory struct {
	Credentials CredentialRepository
	Sessions    SessionRepository
	Tokens      TokenIssuer
}

func NewDirectory(credentials CredentialRepository, sessions SessionRepository, tokens TokenIssuer) *Directory {
	return &Directory{
		Credentials: credentials,
		Sessions:    sessions,
		Tokens:      tokens,
	}
}

type SignupInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Currency  string
}

// Signup creates the account with empty collections and the default
// investment category set, then authenticates it. The password hash never
// leaves this package.
func (d *Directory) Signup(input *SignupInput) (*models.User, string, error) {
	if !emailPattern.MatchString(input.Email) {
		return nil, "", errs.NewValidation("please enter a valid email")
	}
	if len(input.Password) < 8 {
		return nil, "", errs.NewValidation("password must be at least 8 characters")
	}
	code := input.Currency
	if code == "" {
		code = "USD"
	}
	if !currency.IsValid(code) {
		return nil, "", errs.NewValidation("unsupported currency code")
	}

	existing, err := d.Credentials.FindByEmail(input.Email)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", errs.NewConflict("user with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user, err := d.Credentials.Create(&models.User{
		Email:        input.Email,
		PasswordHash: string(hash),
		Profile: models.UserProfile{
			FirstName:     input.FirstName,
			LastName:      input.LastName,
			Email:         input.Email,
			Currency:      code,
			MonthlySalary: 0,
			IsSetup:       true,
		},
		Bills:                []models.Bill{},
		Investments:          []models.Investment{},
		Spendings:            []models.Spending{},
		InvestmentCategories: budget.DefaultInvestmentCategories(),
	})
	if err != nil {
		return nil, "", err
	}

	token, err := d.openSession(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login authenticates against the stored hash. An unknown email is
// NotFound; a wrong password is an AuthError whose message does not reveal
// that the email exists.
func (d *Directory) Login(email string, password string) (*models.User, string, error) {
	user, err := d.Credentials.FindByEmail(email)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", errs.NewNotFound("user not found")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", errs.NewAuth("invalid credentials")
	}

	token, err := d.openSession(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Logout discards the session; the durable account record is untouched.
// Unknown tokens are a no-op.
func (d *Directory) Logout(token string) error {
	return d.Sessions.DeleteSession(token)
}

// Authenticate resolves a session token back to the account id.
func (d *Directory) Authenticate(token string) (primitive.ObjectID, error) {
	userId, err := d.Sessions.FindSession(token)
	if err != nil {
		return primitive.NilObjectID, err
	}
	if userId == "" {
		return primitive.NilObjectID, errs.NewAuth("invalid or expired session")
	}
	id, err := primitive.ObjectIDFromHex(userId)
	if err != nil {
		return primitive.NilObjectID, errs.NewAuth("invalid or expired session")
	}
	return id, nil
}

func (d *Directory) ChangePassword(userId primitive.ObjectID, currentPassword string, newPassword string) error {
	user, err := d.Credentials.FindById(userId)
	if err != nil {
		return err
	}
	if user == nil {
		return errs.NewNotFound("user not found")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return errs.NewAuth("current password is incorrect")
	}

	if err := checkPasswordPolicy(newPassword); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return d.Credentials.UpdatePasswordHash(userId, string(hash))
}

// ChangeCurrency relabels the account; stored amounts are never converted.
func (d *Directory) ChangeCurrency(userId primitive.ObjectID, code string) (*models.UserProfile, error) {
	if !currency.IsValid(code) {
		return nil, errs.NewValidation("unsupported currency code")
	}

	user, err := d.Credentials.FindById(userId)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errs.NewNotFound("user not found")
	}

	profile := user.Profile
	profile.Currency = code
	updated, err := d.Credentials.UpdateProfile(userId, &profile)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, errs.NewNotFound("user not found")
	}
	return &updated.Profile, nil
}

func (d *Directory) openSession(user *models.User) (string, error) {
	token, err := d.Tokens.Issue(user.Id.Hex())
	if err != nil {
		return "", err
	}
	if err := d.Sessions.CreateSession(token, user.Id.Hex(), SessionTTL); err != nil {
		return "", err
	}
	return token, nil
}

func checkPasswordPolicy(password string) error {
	if len(password) < 8 {
		return errs.NewValidation("new password must be at least 8 characters")
	}
	var hasUpper, hasLower, hasDigitOrSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r) || unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasDigitOrSymbol = true
		}
	}
	if !hasUpper || !hasLower || !hasDigitOrSymbol {
		return errs.NewValidation("new password must contain at least one uppercase letter, one lowercase letter, and one number or symbol")
	}
	return nil
}
