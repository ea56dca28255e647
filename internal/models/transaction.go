package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType is the direction of a money movement.
type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// Valid reports whether the type is one of the known transaction types.
func (t TransactionType) Valid() bool {
	return t == Income || t == Expense
}

// RecurringFrequency is how often a recurring transaction repeats.
type RecurringFrequency string

const (
	FrequencyDaily   RecurringFrequency = "daily"
	FrequencyWeekly  RecurringFrequency = "weekly"
	FrequencyMonthly RecurringFrequency = "monthly"
	FrequencyYearly  RecurringFrequency = "yearly"
)

// RecurringDetails describes the schedule of a recurring transaction.
type RecurringDetails struct {
	Frequency  RecurringFrequency `json:"frequency" example:"monthly"`
	StartDate  time.Time          `json:"startDate" example:"2024-01-01T00:00:00Z"`
	EndDate    *time.Time         `json:"endDate,omitempty"`
	DayOfMonth int                `json:"dayOfMonth,omitempty"` // For monthly frequency
	DayOfWeek  int                `json:"dayOfWeek,omitempty"`  // For weekly frequency, 0 is Sunday
}

// PaymentMethodRef is a denormalized snapshot of a payment method.
//
// Transactions keep a copy instead of a live reference so that deleting or
// renaming a payment method does not retroactively alter transaction history.
type PaymentMethodRef struct {
	ID   uuid.UUID         `json:"id"`
	Type PaymentMethodType `json:"type"`
	Name string            `json:"name"`
}

// CreditPurchaseDetails is the installment state embedded in a credit
// purchase transaction. RemainingMonths and RemainingAmount are recomputed
// from elapsed calendar months by the store's credit status refresh.
type CreditPurchaseDetails struct {
	TotalAmount     decimal.Decimal `json:"totalAmount" example:"1200"`
	RemainingAmount decimal.Decimal `json:"remainingAmount" example:"1100"`
	TotalMonths     int             `json:"totalMonths" example:"12"`
	RemainingMonths int             `json:"remainingMonths" example:"11"`
	StartDate       time.Time       `json:"startDate" example:"2024-01-01T00:00:00Z"`
	MonthlyPayment  decimal.Decimal `json:"monthlyPayment" example:"100"`
	CardID          *uuid.UUID      `json:"cardId,omitempty"`
}

// CreditTerms are the terms a credit purchase is created with.
type CreditTerms struct {
	TotalAmount decimal.Decimal `json:"totalAmount" example:"1200"`
	TotalMonths int             `json:"totalMonths" example:"12"`
	StartDate   time.Time       `json:"startDate" example:"2024-01-01T00:00:00Z"`
}

// Validate checks the credit terms for plausibility.
func (t CreditTerms) Validate() error {
	if !t.TotalAmount.IsPositive() {
		return ErrAmountNotPositive
	}

	if t.TotalMonths < 1 {
		return ErrCreditTermTooShort
	}

	return nil
}

// Transaction is an executed money movement.
type Transaction struct {
	ID               uuid.UUID              `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"`
	Amount           decimal.Decimal        `json:"amount" example:"14.03"`
	Description      string                 `json:"description" example:"Lunch"`
	Category         string                 `json:"category" example:"household"`
	Subcategory      string                 `json:"subcategory,omitempty" example:"food"`
	Date             time.Time              `json:"date" example:"2024-01-15T18:43:00Z"`
	Type             TransactionType        `json:"type" example:"expense"`
	IsRecurring      bool                   `json:"isRecurring"`
	RecurringDetails *RecurringDetails      `json:"recurringDetails,omitempty"`
	PaymentMethod    *PaymentMethodRef      `json:"paymentMethod,omitempty"`
	IsCreditPurchase bool                   `json:"isCreditPurchase,omitempty"`
	CreditDetails    *CreditPurchaseDetails `json:"creditDetails,omitempty"`
	ProjectID        *uuid.UUID             `json:"projectId,omitempty"`
}

// Validate checks the transaction invariants.
func (t Transaction) Validate() error {
	if !t.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	if !t.Type.Valid() {
		return ErrTransactionTypeInvalid
	}

	if t.IsCreditPurchase {
		if t.CreditDetails == nil {
			return ErrCreditDetailsMissing
		}

		if t.CreditDetails.TotalMonths < 1 {
			return ErrCreditTermTooShort
		}
	}

	return nil
}
