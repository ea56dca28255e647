package store

import (
	"github.com/google/uuid"
	"github.com/hearthledger/backend/internal/models"
	ezuuid "github.com/hearthledger/backend/internal/uuid"
	"github.com/shopspring/decimal"
)

// UpdateProfile applies a partial update to the user profile. Fields
// left nil in the patch are kept unchanged.
func (s *Store) UpdateProfile(patch models.ProfileUpdate) (models.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	patch.Apply(&s.state.Profile)
	s.persist()

	return s.profileLocked(), nil
}

// AddHouseholdMember adds a member to the household.
func (s *Store) AddHouseholdMember(draft models.HouseholdMember) (models.HouseholdMember, error) {
	if err := draft.Validate(); err != nil {
		return models.HouseholdMember{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	draft.ID = uuid.New()
	s.state.Profile.HouseholdMembers = append(s.state.Profile.HouseholdMembers, draft)
	s.persist()

	return draft, nil
}

// UpdateHouseholdMember replaces the member with the same ID.
func (s *Store) UpdateHouseholdMember(member models.HouseholdMember) error {
	if err := member.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, m := range s.state.Profile.HouseholdMembers {
		if m.ID == member.ID {
			s.state.Profile.HouseholdMembers[i] = member
			s.persist()
			return nil
		}
	}

	return models.ErrResourceNotFound
}

// DeleteHouseholdMember removes the member with the given ID.
func (s *Store) DeleteHouseholdMember(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, m := range s.state.Profile.HouseholdMembers {
		if m.ID == id {
			s.state.Profile.HouseholdMembers = append(s.state.Profile.HouseholdMembers[:i], s.state.Profile.HouseholdMembers[i+1:]...)
			s.persist()
			return nil
		}
	}

	return models.ErrResourceNotFound
}

// AddPaymentMethod adds a payment method with zero usage.
func (s *Store) AddPaymentMethod(draft models.PaymentMethod) (models.PaymentMethod, error) {
	if err := draft.Validate(); err != nil {
		return models.PaymentMethod{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	draft.ID = uuid.New()
	draft.CurrentUsage = decimal.Zero
	s.state.Profile.PaymentMethods = append(s.state.Profile.PaymentMethods, draft)
	s.persist()

	return draft, nil
}

// UpdatePaymentMethod replaces the payment method with the same ID.
// This is also the way to correct a card's accumulated usage.
func (s *Store) UpdatePaymentMethod(method models.PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, m := range s.state.Profile.PaymentMethods {
		if m.ID == method.ID {
			s.state.Profile.PaymentMethods[i] = method
			s.persist()
			return nil
		}
	}

	return models.ErrResourceNotFound
}

// DeletePaymentMethod removes the payment method with the given ID.
// Transactions that reference it keep their embedded copy.
func (s *Store) DeletePaymentMethod(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, m := range s.state.Profile.PaymentMethods {
		if m.ID == id {
			s.state.Profile.PaymentMethods = append(s.state.Profile.PaymentMethods[:i], s.state.Profile.PaymentMethods[i+1:]...)
			s.persist()
			return nil
		}
	}

	return models.ErrResourceNotFound
}

// AddBankAccount adds a bank account.
func (s *Store) AddBankAccount(draft models.BankAccount) (models.BankAccount, error) {
	if err := draft.Validate(); err != nil {
		return models.BankAccount{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	draft.ID = uuid.New()
	s.state.Profile.BankAccounts = append(s.state.Profile.BankAccounts, draft)
	s.persist()

	return draft, nil
}

// UpdateBankAccount replaces the bank account with the same ID.
func (s *Store) UpdateBankAccount(account models.BankAccount) error {
	if err := account.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, a := range s.state.Profile.BankAccounts {
		if a.ID == account.ID {
			s.state.Profile.BankAccounts[i] = account
			s.persist()
			return nil
		}
	}

	return models.ErrResourceNotFound
}

// DeleteBankAccount removes the bank account with the given ID.
func (s *Store) DeleteBankAccount(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, a := range s.state.Profile.BankAccounts {
		if a.ID == id {
			s.state.Profile.BankAccounts = append(s.state.Profile.BankAccounts[:i], s.state.Profile.BankAccounts[i+1:]...)
			s.persist()
			return nil
		}
	}

	return models.ErrResourceNotFound
}

// AddCategory adds a spending category. An empty ID gets a generated
// one so that seeded readable IDs and user categories can coexist.
func (s *Store) AddCategory(draft models.Category) (models.Category, error) {
	if err := draft.Validate(); err != nil {
		return models.Category{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if draft.ID == "" {
		draft.ID = ezuuid.NewString()
	}
	s.state.Categories = append(s.state.Categories, draft)
	s.persist()

	return draft, nil
}

// UpdateCategory replaces the category with the same ID.
func (s *Store) UpdateCategory(category models.Category) error {
	if err := category.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, c := range s.state.Categories {
		if c.ID == category.ID {
			s.state.Categories[i] = category
			s.persist()
			return nil
		}
	}

	return models.ErrResourceNotFound
}

// DeleteCategory removes the category with the given ID. Transactions
// keep the now dangling category name and are simply left out of
// category breakdowns.
func (s *Store) DeleteCategory(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, c := range s.state.Categories {
		if c.ID == id {
			s.state.Categories = append(s.state.Categories[:i], s.state.Categories[i+1:]...)
			s.persist()
			return nil
		}
	}

	return models.ErrResourceNotFound
}
