package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hearthledger/backend/internal/httputil"
	"github.com/hearthledger/backend/internal/models"
	"github.com/shopspring/decimal"
)

type ExpectedTransactionEditable struct {
	Amount        decimal.Decimal          `json:"amount" example:"100"`                   // The amount of the expected transaction
	Description   string                   `json:"description" example:"Rent" default:""`  // A description
	Category      string                   `json:"category" example:"household"`           // ID of the category
	Subcategory   string                   `json:"subcategory,omitempty" example:"rent"`   // ID of the subcategory
	DueDate       time.Time                `json:"dueDate" example:"2024-02-15T00:00:00Z"` // When the transaction is expected to happen
	Type          models.TransactionType   `json:"type" example:"expense"`                 // Direction of the money movement
	PaymentMethod *models.PaymentMethodRef `json:"paymentMethod,omitempty"`                // The payment method to use
}

// model returns the store resource for the API representation of the editable fields
func (editable ExpectedTransactionEditable) model() models.ExpectedTransaction {
	return models.ExpectedTransaction{
		Amount:        editable.Amount,
		Description:   editable.Description,
		Category:      editable.Category,
		Subcategory:   editable.Subcategory,
		DueDate:       editable.DueDate,
		Type:          editable.Type,
		PaymentMethod: editable.PaymentMethod,
	}
}

type ExpectedTransactionLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/expected-transactions/d430d7c3-d14c-4712-9336-ee56965a6673"`              // The expected transaction itself
	Payments string `json:"payments" example:"https://example.com/api/v1/expected-transactions/d430d7c3-d14c-4712-9336-ee56965a6673/payments"` // Endpoint to mark it as paid
}

// ExpectedTransaction is the representation of an ExpectedTransaction in API v1.
type ExpectedTransaction struct {
	models.ExpectedTransaction
	Links ExpectedTransactionLinks `json:"links"`
}

// newExpectedTransaction returns the API v1 representation of the resource
func newExpectedTransaction(c *gin.Context, model models.ExpectedTransaction) ExpectedTransaction {
	self := fmt.Sprintf("%s/expected-transactions/%s", httputil.RequestPathV1(c), model.ID)

	return ExpectedTransaction{
		ExpectedTransaction: model,
		Links: ExpectedTransactionLinks{
			Self:     self,
			Payments: self + "/payments",
		},
	}
}

type ExpectedTransactionListResponse struct {
	Data  []ExpectedTransaction `json:"data"`                                                          // List of expected transactions
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type ExpectedTransactionResponse struct {
	Data  *ExpectedTransaction `json:"data"`                                                          // The expected transaction data, if the request was successful
	Error *string              `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type ExpectedTransactionQueryFilter struct {
	Type   string `form:"type"`   // Filter by type, income or expense
	IsPaid string `form:"isPaid"` // Filter by paid state, true or false
}
