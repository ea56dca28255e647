package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hearthledger/backend/internal/httputil"
	"github.com/hearthledger/backend/internal/models"
	"github.com/shopspring/decimal"
)

type TransactionEditable struct {
	Amount           decimal.Decimal          `json:"amount" example:"14.03"`                                             // The amount of the transaction
	Description      string                   `json:"description" example:"Lunch" default:""`                             // A description
	Category         string                   `json:"category" example:"household"`                                       // ID of the category
	Subcategory      string                   `json:"subcategory,omitempty" example:"food"`                               // ID of the subcategory
	Date             time.Time                `json:"date" example:"2024-01-15T18:43:00Z"`                                // Date of the transaction. Defaults to the current time
	Type             models.TransactionType   `json:"type" example:"expense"`                                             // Direction of the money movement
	IsRecurring      bool                     `json:"isRecurring" default:"false"`                                        // Does the transaction repeat?
	RecurringDetails *models.RecurringDetails `json:"recurringDetails,omitempty"`                                         // Schedule, set when isRecurring is true
	PaymentMethod    *models.PaymentMethodRef `json:"paymentMethod,omitempty"`                                            // The payment method used
	ProjectID        *uuid.UUID               `json:"projectId,omitempty" example:"d430d7c3-d14c-4712-9336-ee56965a6673"` // ID of the linked project
}

// model returns the store resource for the API representation of the editable fields
func (editable TransactionEditable) model() models.Transaction {
	return models.Transaction{
		Amount:           editable.Amount,
		Description:      editable.Description,
		Category:         editable.Category,
		Subcategory:      editable.Subcategory,
		Date:             editable.Date,
		Type:             editable.Type,
		IsRecurring:      editable.IsRecurring,
		RecurringDetails: editable.RecurringDetails,
		PaymentMethod:    editable.PaymentMethod,
		ProjectID:        editable.ProjectID,
	}
}

type TransactionLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673"` // The transaction itself
}

// Transaction is the representation of a Transaction in API v1.
type Transaction struct {
	models.Transaction
	Links TransactionLinks `json:"links"`
}

// newTransaction returns the API v1 representation of the resource
func newTransaction(c *gin.Context, model models.Transaction) Transaction {
	return Transaction{
		Transaction: model,
		Links: TransactionLinks{
			Self: fmt.Sprintf("%s/transactions/%s", httputil.RequestPathV1(c), model.ID),
		},
	}
}

type TransactionListResponse struct {
	Data  []Transaction `json:"data"`                                                          // List of transactions
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type TransactionResponse struct {
	Data  *Transaction `json:"data"`                                                          // The transaction data, if the request was successful
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type TransactionQueryFilter struct {
	Type        string    `form:"type"`                               // Filter by type, income or expense
	Category    string    `form:"category"`                           // Filter by category ID
	Description string    `form:"description"`                        // Filter by description, supports glob patterns
	FromDate    time.Time `form:"fromDate" time_format:"2006-01-02"`  // Transactions at and after this date
	UntilDate   time.Time `form:"untilDate" time_format:"2006-01-02"` // Transactions before and at this date
	Project     string    `form:"project"`                            // Filter by linked project ID
}
