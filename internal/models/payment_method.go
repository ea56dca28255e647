package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentMethodType is the kind of a payment method.
type PaymentMethodType string

const (
	CreditCard          PaymentMethodType = "creditCard"
	DebitCard           PaymentMethodType = "debitCard"
	BankAccountTransfer PaymentMethodType = "bankAccount"
	Cash                PaymentMethodType = "cash"
)

// Valid reports whether the type is one of the known payment method types.
func (t PaymentMethodType) Valid() bool {
	switch t {
	case CreditCard, DebitCard, BankAccountTransfer, Cash:
		return true
	}

	return false
}

// CardType is the network of a card payment method.
type CardType string

const (
	Visa       CardType = "visa"
	Mastercard CardType = "mastercard"
	OtherCard  CardType = "other"
)

// PaymentMethod is a way to pay for expenses. Card methods track their
// usage against a limit; usage is incremented by every expense routed
// through the card and is never automatically decremented.
type PaymentMethod struct {
	ID           uuid.UUID         `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"`
	Type         PaymentMethodType `json:"type" example:"creditCard"`
	Name         string            `json:"name" example:"Gold card"`
	CardType     CardType          `json:"cardType,omitempty" example:"visa"`
	Limit        *decimal.Decimal  `json:"limit,omitempty" example:"500"`
	CurrentUsage decimal.Decimal   `json:"currentUsage" example:"80"`
}

// Validate checks the payment method invariants.
func (m PaymentMethod) Validate() error {
	if m.Name == "" {
		return ErrNameEmpty
	}

	if !m.Type.Valid() {
		return ErrPaymentMethodTypeInvalid
	}

	return nil
}

// IsCard reports whether expenses through this method count against a card.
func (m PaymentMethod) IsCard() bool {
	return m.Type == CreditCard || m.Type == DebitCard
}

// Ref returns the denormalized snapshot stored on transactions.
func (m PaymentMethod) Ref() *PaymentMethodRef {
	return &PaymentMethodRef{
		ID:   m.ID,
		Type: m.Type,
		Name: m.Name,
	}
}
