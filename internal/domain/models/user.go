package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is the full persisted state of one account: credentials, profile,
// the three entry collections and the configured investment categories.
type User struct {
	Id                   primitive.ObjectID   `bson:"_id" json:"id"`
	CreatedAt            time.Time            `bson:"created_at" json:"createdAt"`
	UpdatedAt            time.Time            `bson:"updated_at" json:"updatedAt"`
	Email                string               `bson:"email" json:"email"`
	PasswordHash         string               `bson:"password_hash" json:"-"`
	Profile              UserProfile          `bson:"profile" json:"profile"`
	Bills                []Bill               `bson:"bills" json:"bills"`
	Investments          []Investment         `bson:"investments" json:"investments"`
	Spendings            []Spending           `bson:"spendings" json:"spendings"`
	InvestmentCategories []InvestmentCategory `bson:"investment_categories" json:"investmentCategories"`
}

type UserProfile struct {
	FirstName     string  `bson:"first_name" json:"firstName"`
	LastName      string  `bson:"last_name" json:"lastName"`
	Email         string  `bson:"email" json:"email"`
	Currency      string  `bson:"currency" json:"currency"`
	MonthlySalary float64 `bson:"monthly_salary" json:"monthlySalary"`
	IsSetup       bool    `bson:"is_setup" json:"isSetup"`
}

// UserProfilePatch carries a partial profile update; nil fields are left
// untouched. Email is intentionally absent, it only changes through the
// account lifecycle.
type UserProfilePatch struct {
	FirstName     *string  `json:"firstName"`
	LastName      *string  `json:"lastName"`
	Currency      *string  `json:"currency"`
	MonthlySalary *float64 `json:"monthlySalary"`
	IsSetup       *bool    `json:"isSetup"`
}
