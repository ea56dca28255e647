package store

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/hearthledger/backend/internal/models"
	"github.com/hearthledger/backend/internal/types"
	"github.com/shopspring/decimal"
)

// feasibleShare is the fraction of the household income a single
// project's monthly investment may claim.
var feasibleShare = decimal.NewFromFloat(0.3)

// defaultTotalMonths is the window used by MonthlyTotals when the
// caller does not ask for a specific number of months.
const defaultTotalMonths = 6

// MonthlyTotal is the realized income and expense sum for one month.
type MonthlyTotal struct {
	Month    types.Month     `json:"month" example:"2026-07"`
	Income   decimal.Decimal `json:"income" example:"4200.00"`
	Expenses decimal.Decimal `json:"expenses" example:"3170.52"`
}

// CategoryTotal is the realized expense sum for one category over a
// date range.
type CategoryTotal struct {
	CategoryID   string          `json:"categoryId" example:"household"`
	CategoryName string          `json:"categoryName" example:"Household"`
	Amount       decimal.Decimal `json:"amount" example:"812.40"`
	Color        string          `json:"color" example:"#FF6B6B"`
}

// MonthlyTotals sums realized transactions into per-month buckets for
// the given number of months ending at the current one. Months without
// any transactions are included with zero totals. The slice is ordered
// most recent first. A non-positive months argument selects the
// default window.
func (s *Store) MonthlyTotals(months int) []MonthlyTotal {
	if months <= 0 {
		months = defaultTotalMonths
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	current := types.MonthOf(time.Now().UTC())

	totals := make([]MonthlyTotal, 0, months)
	index := make(map[types.Month]int, months)
	for i := 0; i < months; i++ {
		month := current.AddDate(0, -i)
		index[month] = len(totals)
		totals = append(totals, MonthlyTotal{
			Month:    month,
			Income:   decimal.Zero,
			Expenses: decimal.Zero,
		})
	}

	for _, t := range s.state.Transactions {
		// Dates may carry any RFC3339 offset, buckets are on the UTC calendar.
		i, ok := index[types.MonthOf(t.Date.UTC())]
		if !ok {
			continue
		}

		switch t.Type {
		case models.Income:
			totals[i].Income = totals[i].Income.Add(t.Amount)
		case models.Expense:
			totals[i].Expenses = totals[i].Expenses.Add(t.Amount)
		}
	}

	return totals
}

// CategoryTotals sums realized expenses per category, optionally
// restricted to an inclusive date range. Categories without expenses
// are left out, as are transactions whose category no longer exists.
// The result is ordered by amount, largest first.
func (s *Store) CategoryTotals(from, until *time.Time) []CategoryTotal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	byCategory := make(map[string]decimal.Decimal)
	for _, t := range s.state.Transactions {
		if t.Type != models.Expense {
			continue
		}
		if from != nil && t.Date.Before(*from) {
			continue
		}
		if until != nil && t.Date.After(*until) {
			continue
		}

		byCategory[t.Category] = byCategory[t.Category].Add(t.Amount)
	}

	totals := make([]CategoryTotal, 0, len(byCategory))
	for _, c := range s.state.Categories {
		amount, ok := byCategory[c.ID]
		if !ok {
			continue
		}

		totals = append(totals, CategoryTotal{
			CategoryID:   c.ID,
			CategoryName: c.Name,
			Amount:       amount,
			Color:        c.Color,
		})
	}

	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].Amount.GreaterThan(totals[j].Amount)
	})

	return totals
}

// CurrentMonthExpenses sums realized expenses dated in the current
// calendar month.
func (s *Store) CurrentMonthExpenses() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.currentMonthTotalLocked(models.Expense)
}

// CurrentMonthIncome sums realized income dated in the current
// calendar month.
func (s *Store) CurrentMonthIncome() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.currentMonthTotalLocked(models.Income)
}

func (s *Store) currentMonthTotalLocked(transactionType models.TransactionType) decimal.Decimal {
	month := types.MonthOf(time.Now().UTC())

	total := decimal.Zero
	for _, t := range s.state.Transactions {
		if t.Type == transactionType && month.Contains(t.Date.UTC()) {
			total = total.Add(t.Amount)
		}
	}

	return total
}

// BudgetRemaining is the monthly budget minus the current month's
// realized expenses. It goes negative once the budget is overspent.
func (s *Store) BudgetRemaining() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state.Profile.MonthlyBudget.Sub(s.currentMonthTotalLocked(models.Expense))
}

// AvailableBalance is the money left to spend: all realized
// transactions signed by type, plus bank account balances, minus what
// is parked in projects, adjusted for unpaid expected transactions.
func (s *Store) AvailableBalance() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	balance := decimal.Zero
	for _, t := range s.state.Transactions {
		switch t.Type {
		case models.Income:
			balance = balance.Add(t.Amount)
		case models.Expense:
			balance = balance.Sub(t.Amount)
		}
	}

	for _, a := range s.state.Profile.BankAccounts {
		balance = balance.Add(a.Balance)
	}

	for _, p := range s.state.Projects {
		balance = balance.Sub(p.CurrentAmount)
	}

	for _, e := range s.state.ExpectedTransactions {
		if e.IsPaid {
			continue
		}

		switch e.Type {
		case models.Income:
			balance = balance.Add(e.Amount)
		case models.Expense:
			balance = balance.Sub(e.Amount)
		}
	}

	return balance
}

// ExpectedIncome sums unpaid expected income.
func (s *Store) ExpectedIncome() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.expectedTotalLocked(models.Income)
}

// ExpectedExpenses sums unpaid expected expenses.
func (s *Store) ExpectedExpenses() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.expectedTotalLocked(models.Expense)
}

func (s *Store) expectedTotalLocked(transactionType models.TransactionType) decimal.Decimal {
	total := decimal.Zero
	for _, e := range s.state.ExpectedTransactions {
		if !e.IsPaid && e.Type == transactionType {
			total = total.Add(e.Amount)
		}
	}

	return total
}

// TotalHouseholdIncome sums the monthly income of all adult household
// members.
func (s *Store) TotalHouseholdIncome() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.householdIncomeLocked()
}

func (s *Store) householdIncomeLocked() decimal.Decimal {
	total := decimal.Zero
	for _, m := range s.state.Profile.HouseholdMembers {
		total = total.Add(m.Income())
	}

	return total
}

// CardRemainingLimit is the card's limit minus its accumulated usage.
// Unknown methods and methods without a limit report zero.
func (s *Store) CardRemainingLimit(id uuid.UUID) decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, m := range s.state.Profile.PaymentMethods {
		if m.ID == id {
			if m.Limit == nil {
				return decimal.Zero
			}

			return m.Limit.Sub(m.CurrentUsage)
		}
	}

	return decimal.Zero
}

// IsProjectFeasible reports whether a monthly investment fits within
// the feasible share of the household income.
func (s *Store) IsProjectFeasible(monthlyInvestment decimal.Decimal) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.isProjectFeasibleLocked(monthlyInvestment)
}

func (s *Store) isProjectFeasibleLocked(monthlyInvestment decimal.Decimal) bool {
	return monthlyInvestment.LessThanOrEqual(s.maximumMonthlyInvestmentLocked())
}

// MaximumMonthlyInvestment is the largest monthly investment a new
// project may carry given the current household income.
func (s *Store) MaximumMonthlyInvestment() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.maximumMonthlyInvestmentLocked()
}

func (s *Store) maximumMonthlyInvestmentLocked() decimal.Decimal {
	return s.householdIncomeLocked().Mul(feasibleShare)
}
