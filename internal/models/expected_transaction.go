package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpectedTransaction is a planned money movement that has not been
// realized yet. IsPaid is a one-way latch: once an expected transaction is
// paid it never becomes unpaid again.
type ExpectedTransaction struct {
	ID            uuid.UUID         `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"`
	Amount        decimal.Decimal   `json:"amount" example:"100"`
	Description   string            `json:"description" example:"Rent"`
	Category      string            `json:"category" example:"household"`
	Subcategory   string            `json:"subcategory,omitempty" example:"rent"`
	DueDate       time.Time         `json:"dueDate" example:"2024-02-15T00:00:00Z"`
	Type          TransactionType   `json:"type" example:"expense"`
	IsPaid        bool              `json:"isPaid"`
	PaymentMethod *PaymentMethodRef `json:"paymentMethod,omitempty"`
}

// Validate checks the expected transaction invariants.
func (t ExpectedTransaction) Validate() error {
	if !t.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	if !t.Type.Valid() {
		return ErrTransactionTypeInvalid
	}

	return nil
}
