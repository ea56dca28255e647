package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hearthledger/backend/internal/models"
	"github.com/hearthledger/backend/internal/types"
	"github.com/shopspring/decimal"
)

// AddCreditPurchase records a purchase paid off in monthly installments.
//
// It inserts one realized transaction carrying the credit details and
// generates one expected installment per month, one calendar month apart
// starting at the terms' start date. The first installment is created
// already paid: the purchase itself covers it.
func (s *Store) AddCreditPurchase(draft models.Transaction, terms models.CreditTerms) (models.Transaction, error) {
	if err := terms.Validate(); err != nil {
		return models.Transaction{}, err
	}

	monthlyPayment := terms.TotalAmount.Div(decimal.NewFromInt(int64(terms.TotalMonths)))

	details := &models.CreditPurchaseDetails{
		TotalAmount:     terms.TotalAmount,
		RemainingAmount: terms.TotalAmount,
		TotalMonths:     terms.TotalMonths,
		RemainingMonths: terms.TotalMonths,
		StartDate:       terms.StartDate,
		MonthlyPayment:  monthlyPayment,
	}
	if draft.PaymentMethod != nil {
		details.CardID = &draft.PaymentMethod.ID
	}

	draft.IsCreditPurchase = true
	draft.CreditDetails = details

	if err := draft.Validate(); err != nil {
		return models.Transaction{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	draft.ID = uuid.New()
	if draft.Date.IsZero() {
		draft.Date = time.Now().UTC()
	}
	s.state.Transactions = append([]models.Transaction{draft}, s.state.Transactions...)

	for i := 0; i < terms.TotalMonths; i++ {
		s.state.ExpectedTransactions = append(s.state.ExpectedTransactions, models.ExpectedTransaction{
			ID:            uuid.New(),
			Amount:        monthlyPayment,
			Description:   fmt.Sprintf("%s - Payment %d/%d", draft.Description, i+1, terms.TotalMonths),
			Category:      draft.Category,
			Subcategory:   draft.Subcategory,
			DueDate:       terms.StartDate.AddDate(0, i, 0),
			Type:          models.Expense,
			IsPaid:        i == 0,
			PaymentMethod: draft.PaymentMethod,
		})
	}

	s.persist()

	return draft, nil
}

// UpdateCreditPurchaseStatus recomputes the remaining months and amount of
// every credit purchase from the calendar months elapsed since its start
// date and drops purchases that are fully paid off.
//
// This is a pure recomputation, safe to call repeatedly. It is not
// triggered by any other mutation; callers are expected to invoke it on a
// schedule, for example when the app comes to the foreground.
func (s *Store) UpdateCreditPurchaseStatus() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := types.MonthOf(time.Now().UTC())

	kept := make([]models.Transaction, 0, len(s.state.Transactions))
	for _, t := range s.state.Transactions {
		if t.IsCreditPurchase && t.CreditDetails != nil {
			details := *t.CreditDetails

			elapsed := now.Sub(types.MonthOf(details.StartDate.UTC()))
			if elapsed >= details.TotalMonths {
				continue
			}

			details.RemainingMonths = details.TotalMonths - elapsed
			details.RemainingAmount = details.MonthlyPayment.Mul(decimal.NewFromInt(int64(details.RemainingMonths)))
			t.CreditDetails = &details
		}

		kept = append(kept, t)
	}

	s.state.Transactions = kept
	s.persist()
}
