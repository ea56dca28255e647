package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BankAccount is an account at a bank. The balance is ground truth entered
// by the user and is not moved by transactions; it contributes as a static
// amount to the available balance.
type BankAccount struct {
	ID             uuid.UUID       `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"`
	Name           string          `json:"name" example:"Checking"`
	Balance        decimal.Decimal `json:"balance" example:"2500"`
	OverdraftLimit decimal.Decimal `json:"overdraftLimit" example:"1000"`
}

// Validate checks the bank account invariants.
func (a BankAccount) Validate() error {
	if a.Name == "" {
		return ErrNameEmpty
	}

	return nil
}
