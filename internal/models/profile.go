package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UserProfile is the singleton profile of the household. It owns the
// household members, payment methods and bank accounts. It is never
// deleted, only reset to its defaults.
type UserProfile struct {
	FirstName        string            `json:"firstName" example:"Alex"`
	LastName         string            `json:"lastName" example:"Doe"`
	Email            string            `json:"email" example:"alex@example.com"`
	IsRegistered     bool              `json:"isRegistered"`
	Currency         string            `json:"currency" example:"USD"`
	Country          string            `json:"country" example:"US"`
	Language         string            `json:"language" example:"en"`
	HousingType      string            `json:"housingType,omitempty" example:"apartment"`
	MonthlyBudget    decimal.Decimal   `json:"monthlyBudget" example:"2000"`
	HouseholdMembers []HouseholdMember `json:"householdMembers"`
	PaymentMethods   []PaymentMethod   `json:"paymentMethods"`
	BankAccounts     []BankAccount     `json:"bankAccounts"`
}

// ProfileUpdate is a partial profile change. Nil fields are left untouched,
// the collections are not updatable through it.
type ProfileUpdate struct {
	FirstName     *string          `json:"firstName,omitempty"`
	LastName      *string          `json:"lastName,omitempty"`
	Email         *string          `json:"email,omitempty"`
	IsRegistered  *bool            `json:"isRegistered,omitempty"`
	Currency      *string          `json:"currency,omitempty"`
	Country       *string          `json:"country,omitempty"`
	Language      *string          `json:"language,omitempty"`
	HousingType   *string          `json:"housingType,omitempty"`
	MonthlyBudget *decimal.Decimal `json:"monthlyBudget,omitempty"`
}

// Apply merges the update into the profile.
func (u ProfileUpdate) Apply(p *UserProfile) {
	if u.FirstName != nil {
		p.FirstName = *u.FirstName
	}
	if u.LastName != nil {
		p.LastName = *u.LastName
	}
	if u.Email != nil {
		p.Email = *u.Email
	}
	if u.IsRegistered != nil {
		p.IsRegistered = *u.IsRegistered
	}
	if u.Currency != nil {
		p.Currency = *u.Currency
	}
	if u.Country != nil {
		p.Country = *u.Country
	}
	if u.Language != nil {
		p.Language = *u.Language
	}
	if u.HousingType != nil {
		p.HousingType = *u.HousingType
	}
	if u.MonthlyBudget != nil {
		p.MonthlyBudget = *u.MonthlyBudget
	}
}

// DefaultProfile returns the profile created at first launch: US dollars,
// a 2000 monthly budget and a single cash payment method.
func DefaultProfile() UserProfile {
	return UserProfile{
		Currency:      "USD",
		Country:       "US",
		Language:      "en",
		MonthlyBudget: decimal.NewFromInt(2000),
		PaymentMethods: []PaymentMethod{
			{
				ID:   uuid.New(),
				Type: Cash,
				Name: "Cash",
			},
		},
		HouseholdMembers: []HouseholdMember{},
		BankAccounts:     []BankAccount{},
	}
}

// ResetProfile returns the profile state after a full data reset. Unlike
// the first-launch default it has no payment methods and a zero budget.
func ResetProfile() UserProfile {
	return UserProfile{
		Currency:         "USD",
		Country:          "US",
		Language:         "en",
		MonthlyBudget:    decimal.Zero,
		HouseholdMembers: []HouseholdMember{},
		PaymentMethods:   []PaymentMethod{},
		BankAccounts:     []BankAccount{},
	}
}
