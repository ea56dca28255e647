package models

import "errors"

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no resource for the ID you specified")
)

// Validation errors.
var (
	ErrAmountNotPositive       = errors.New("amounts must be larger than zero")
	ErrTransactionTypeInvalid  = errors.New("the transaction type must be income or expense")
	ErrCreditDetailsMissing    = errors.New("credit purchases must have credit details")
	ErrCreditTermTooShort      = errors.New("credit purchases must run for at least one month")
	ErrProjectNotFeasible      = errors.New("the monthly investment is too high relative to the household income")
	ErrMemberTypeInvalid       = errors.New("the household member type must be adult or child")
	ErrPaymentMethodTypeInvalid = errors.New("the payment method type is invalid")
	ErrNameEmpty               = errors.New("the name must not be empty")
)
