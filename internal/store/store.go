// Package store implements the financial state engine.
//
// A Store owns all entity collections and the user profile. Mutations are
// synchronous and run to completion; after every mutation the whole state
// is serialized and handed to the snapshot storage asynchronously. The
// in-memory state is always the source of truth, the persisted copy may
// lag by one write.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/hearthledger/backend/internal/models"
	"github.com/hearthledger/backend/internal/storage"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

// State is the complete serializable state tree.
type State struct {
	Transactions         []models.Transaction         `json:"transactions"`
	Categories           []models.Category            `json:"categories"`
	Profile              models.UserProfile           `json:"profile"`
	Projects             []models.FinancialProject    `json:"projects"`
	ExpectedTransactions []models.ExpectedTransaction `json:"expectedTransactions"`
}

func defaultState() State {
	return State{
		Transactions:         []models.Transaction{},
		Categories:           models.DefaultCategories(),
		Profile:              models.DefaultProfile(),
		Projects:             []models.FinancialProject{},
		ExpectedTransactions: []models.ExpectedTransaction{},
	}
}

// Store is the authoritative container for all financial state.
//
// The domain is single-user and logically single-writer; the mutex only
// serializes concurrent HTTP handlers, it is not a concurrency model.
type Store struct {
	mu        sync.RWMutex
	state     State
	snapshots storage.Snapshots

	// Saves are coalesced: pending always holds the newest serialized
	// state, a single drainer goroutine writes it out. This keeps saves
	// ordered so a fast older save can never overwrite a newer one.
	saveMu   sync.Mutex
	saveIdle *sync.Cond
	pending  []byte
	saving   bool
}

// New returns a store with first-launch defaults.
func New(snapshots storage.Snapshots) *Store {
	s := &Store{
		state:     defaultState(),
		snapshots: snapshots,
	}
	s.saveIdle = sync.NewCond(&s.saveMu)

	return s
}

// Load replaces the state with the stored snapshot. A missing snapshot is
// not an error: the store keeps its defaults, as on first launch.
func (s *Store) Load(ctx context.Context) error {
	data, err := s.snapshots.Load(ctx)
	if err != nil {
		if err == storage.ErrNoSnapshot {
			log.Debug().Msg("no snapshot stored, starting with defaults")
			return nil
		}

		return fmt.Errorf("loading snapshot failed: %w", err)
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return fmt.Errorf("parsing snapshot failed: %w", err)
	}

	// Collections are never nil, even in snapshots written before an
	// entity family existed.
	if state.Transactions == nil {
		state.Transactions = []models.Transaction{}
	}
	if state.Categories == nil {
		state.Categories = models.DefaultCategories()
	}
	if state.Projects == nil {
		state.Projects = []models.FinancialProject{}
	}
	if state.ExpectedTransactions == nil {
		state.ExpectedTransactions = []models.ExpectedTransaction{}
	}
	if state.Profile.HouseholdMembers == nil {
		state.Profile.HouseholdMembers = []models.HouseholdMember{}
	}
	if state.Profile.PaymentMethods == nil {
		state.Profile.PaymentMethods = []models.PaymentMethod{}
	}
	if state.Profile.BankAccounts == nil {
		state.Profile.BankAccounts = []models.BankAccount{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state

	return nil
}

// persist serializes the state and hands it to the snapshot storage
// without blocking the mutation that triggered it. Failures are logged
// and otherwise ignored: the next successful save carries the latest
// state. Must be called with the write lock held.
func (s *Store) persist() {
	data, err := json.Marshal(s.state)
	if err != nil {
		log.Error().Err(err).Msg("serializing state failed")
		return
	}

	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	s.pending = data
	if s.saving {
		return
	}

	s.saving = true
	go s.drainSaves()
}

// drainSaves writes pending snapshots until none is left. Rapid
// mutations collapse into the newest pending snapshot.
func (s *Store) drainSaves() {
	for {
		s.saveMu.Lock()
		data := s.pending
		s.pending = nil
		if data == nil {
			s.saving = false
			s.saveIdle.Broadcast()
			s.saveMu.Unlock()
			return
		}
		s.saveMu.Unlock()

		if err := s.snapshots.Save(context.Background(), data); err != nil {
			log.Error().Err(err).Msg("saving snapshot failed")
		}
	}
}

// Flush blocks until no snapshot save is pending or in flight.
func (s *Store) Flush() {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	for s.saving {
		s.saveIdle.Wait()
	}
}

// ResetAllData clears every collection, restores the profile to its reset
// defaults and re-seeds the default categories. Dropping the stored
// snapshot is the caller's responsibility, the store does not touch the
// storage here.
func (s *Store) ResetAllData() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = State{
		Transactions:         []models.Transaction{},
		Categories:           models.DefaultCategories(),
		Profile:              models.ResetProfile(),
		Projects:             []models.FinancialProject{},
		ExpectedTransactions: []models.ExpectedTransaction{},
	}
}

// Transactions returns all realized transactions, most recent first.
func (s *Store) Transactions() []models.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.state.Transactions)
}

// Transaction returns the realized transaction with the given ID.
func (s *Store) Transaction(id uuid.UUID) (models.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.state.Transactions {
		if t.ID == id {
			return t, nil
		}
	}

	return models.Transaction{}, models.ErrResourceNotFound
}

// ExpectedTransactions returns all expected transactions in insertion
// order. Sorting by due date is a read-time concern of the caller.
func (s *Store) ExpectedTransactions() []models.ExpectedTransaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.state.ExpectedTransactions)
}

// ExpectedTransaction returns the expected transaction with the given ID.
func (s *Store) ExpectedTransaction(id uuid.UUID) (models.ExpectedTransaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.state.ExpectedTransactions {
		if t.ID == id {
			return t, nil
		}
	}

	return models.ExpectedTransaction{}, models.ErrResourceNotFound
}

// Categories returns all categories.
func (s *Store) Categories() []models.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.state.Categories)
}

// Category returns the category with the given ID.
func (s *Store) Category(id string) (models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.state.Categories {
		if c.ID == id {
			return c, nil
		}
	}

	return models.Category{}, models.ErrResourceNotFound
}

// Projects returns all financial projects.
func (s *Store) Projects() []models.FinancialProject {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.state.Projects)
}

// Project returns the project with the given ID.
func (s *Store) Project(id uuid.UUID) (models.FinancialProject, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.state.Projects {
		if p.ID == id {
			return p, nil
		}
	}

	return models.FinancialProject{}, models.ErrResourceNotFound
}

// Profile returns the user profile.
func (s *Store) Profile() models.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.profileLocked()
}

func (s *Store) profileLocked() models.UserProfile {
	profile := s.state.Profile
	profile.HouseholdMembers = slices.Clone(profile.HouseholdMembers)
	profile.PaymentMethods = slices.Clone(profile.PaymentMethods)
	profile.BankAccounts = slices.Clone(profile.BankAccounts)

	return profile
}
