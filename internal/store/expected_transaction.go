package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/hearthledger/backend/internal/models"
)

// AddExpectedTransaction assigns a fresh ID and appends the expected
// transaction. The list has no ordering guarantee.
func (s *Store) AddExpectedTransaction(draft models.ExpectedTransaction) (models.ExpectedTransaction, error) {
	if err := draft.Validate(); err != nil {
		return models.ExpectedTransaction{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	draft.ID = uuid.New()
	s.state.ExpectedTransactions = append(s.state.ExpectedTransactions, draft)
	s.persist()

	return draft, nil
}

// UpdateExpectedTransaction replaces the expected transaction with the
// same ID.
func (s *Store) UpdateExpectedTransaction(transaction models.ExpectedTransaction) error {
	if err := transaction.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, t := range s.state.ExpectedTransactions {
		if t.ID == transaction.ID {
			s.state.ExpectedTransactions[i] = transaction
			s.persist()
			return nil
		}
	}

	return models.ErrResourceNotFound
}

// DeleteExpectedTransaction removes the expected transaction with the
// given ID.
func (s *Store) DeleteExpectedTransaction(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, t := range s.state.ExpectedTransactions {
		if t.ID == id {
			s.state.ExpectedTransactions = append(s.state.ExpectedTransactions[:i], s.state.ExpectedTransactions[i+1:]...)
			s.persist()
			return nil
		}
	}

	return models.ErrResourceNotFound
}

// MarkExpectedTransactionAsPaid sets the paid latch and records a matching
// realized transaction dated now, in one state transition.
//
// Paying is irreversible and idempotent: calling this again for an
// already-paid ID does nothing, in particular it does not create a second
// realized transaction.
func (s *Store) MarkExpectedTransactionAsPaid(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, expected := range s.state.ExpectedTransactions {
		if expected.ID != id {
			continue
		}

		if expected.IsPaid {
			return nil
		}

		s.state.ExpectedTransactions[i].IsPaid = true
		s.addTransactionLocked(models.Transaction{
			Amount:        expected.Amount,
			Description:   expected.Description,
			Category:      expected.Category,
			Subcategory:   expected.Subcategory,
			Date:          time.Now().UTC(),
			Type:          expected.Type,
			PaymentMethod: expected.PaymentMethod,
		})
		s.persist()

		return nil
	}

	return models.ErrResourceNotFound
}
