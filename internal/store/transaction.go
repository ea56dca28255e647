package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/hearthledger/backend/internal/models"
)

// AddTransaction assigns a fresh ID and prepends the transaction to the
// list, keeping most-recent-first ordering. An expense routed through a
// card-type payment method bumps that method's usage in the same state
// transition.
func (s *Store) AddTransaction(draft models.Transaction) (models.Transaction, error) {
	if err := draft.Validate(); err != nil {
		return models.Transaction{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.addTransactionLocked(draft)
	s.persist()

	return t, nil
}

// addTransactionLocked inserts a realized transaction and applies the
// card-usage side effect. Must be called with the write lock held.
func (s *Store) addTransactionLocked(draft models.Transaction) models.Transaction {
	draft.ID = uuid.New()
	if draft.Date.IsZero() {
		draft.Date = time.Now().UTC()
	}

	if draft.Type == models.Expense && draft.PaymentMethod != nil &&
		(draft.PaymentMethod.Type == models.CreditCard || draft.PaymentMethod.Type == models.DebitCard) {
		for i, method := range s.state.Profile.PaymentMethods {
			if method.ID == draft.PaymentMethod.ID {
				s.state.Profile.PaymentMethods[i].CurrentUsage = method.CurrentUsage.Add(draft.Amount)
			}
		}
	}

	s.state.Transactions = append([]models.Transaction{draft}, s.state.Transactions...)

	return draft
}

// UpdateTransaction replaces the transaction with the same ID.
//
// Card usage is not adjusted when an expense is edited, matching the
// behavior on delete.
func (s *Store) UpdateTransaction(transaction models.Transaction) error {
	if err := transaction.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, t := range s.state.Transactions {
		if t.ID == transaction.ID {
			s.state.Transactions[i] = transaction
			s.persist()
			return nil
		}
	}

	return models.ErrResourceNotFound
}

// DeleteTransaction removes the transaction with the given ID.
//
// Card usage is not reversed: what was spent over a card stays counted
// against its limit until the card itself is edited.
func (s *Store) DeleteTransaction(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, t := range s.state.Transactions {
		if t.ID == id {
			s.state.Transactions = append(s.state.Transactions[:i], s.state.Transactions[i+1:]...)
			s.persist()
			return nil
		}
	}

	return models.ErrResourceNotFound
}
