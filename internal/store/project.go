package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hearthledger/backend/internal/models"
	"github.com/shopspring/decimal"
)

// AddProject creates a savings project after checking it against the
// household income. An infeasible project is refused without any state
// change. Creation inserts an expected transaction for the recurring
// monthly contribution, due the 15th of the current month.
func (s *Store) AddProject(draft models.FinancialProject) (models.FinancialProject, error) {
	if err := draft.Validate(); err != nil {
		return models.FinancialProject{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isProjectFeasibleLocked(draft.MonthlyInvestment) {
		return models.FinancialProject{}, models.ErrProjectNotFeasible
	}

	draft.ID = uuid.New()
	draft.CurrentAmount = decimal.Zero
	draft.CreatedAt = time.Now().UTC()
	s.state.Projects = append(s.state.Projects, draft)

	now := time.Now().UTC()
	s.state.ExpectedTransactions = append(s.state.ExpectedTransactions, models.ExpectedTransaction{
		ID:          uuid.New(),
		Amount:      draft.MonthlyInvestment,
		Description: fmt.Sprintf("Monthly investment for %s", draft.Name),
		Category:    "other",
		DueDate:     time.Date(now.Year(), now.Month(), 15, 0, 0, 0, 0, time.UTC),
		Type:        models.Expense,
	})

	s.persist()

	return draft, nil
}

// UpdateProject replaces the project with the same ID.
func (s *Store) UpdateProject(project models.FinancialProject) error {
	if err := project.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.state.Projects {
		if p.ID == project.ID {
			s.state.Projects[i] = project
			s.persist()
			return nil
		}
	}

	return models.ErrResourceNotFound
}

// DeleteProject removes the project with the given ID.
func (s *Store) DeleteProject(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.state.Projects {
		if p.ID == id {
			s.state.Projects = append(s.state.Projects[:i], s.state.Projects[i+1:]...)
			s.persist()
			return nil
		}
	}

	return models.ErrResourceNotFound
}

// ContributeToProject moves money into a project: it increases the
// project's current amount and records a linked expense transaction in
// the same state transition. Over-funding past the target is allowed.
func (s *Store) ContributeToProject(id uuid.UUID, amount decimal.Decimal) (models.FinancialProject, error) {
	if !amount.IsPositive() {
		return models.FinancialProject{}, models.ErrAmountNotPositive
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.state.Projects {
		if p.ID != id {
			continue
		}

		s.state.Projects[i].CurrentAmount = p.CurrentAmount.Add(amount)

		projectID := p.ID
		s.addTransactionLocked(models.Transaction{
			Amount:      amount,
			Description: fmt.Sprintf("Contribution to %s", p.Name),
			Category:    "other",
			Date:        time.Now().UTC(),
			Type:        models.Expense,
			ProjectID:   &projectID,
		})
		s.persist()

		return s.state.Projects[i], nil
	}

	return models.FinancialProject{}, models.ErrResourceNotFound
}
