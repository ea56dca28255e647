package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FinancialProject is a savings goal the household puts money aside for.
// CurrentAmount starts at zero and only ever grows through contributions.
type FinancialProject struct {
	ID                uuid.UUID       `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"`
	Name              string          `json:"name" example:"New kitchen"`
	Description       string          `json:"description,omitempty"`
	TargetAmount      decimal.Decimal `json:"targetAmount" example:"5000"`
	CurrentAmount     decimal.Decimal `json:"currentAmount" example:"1250"`
	MonthlyInvestment decimal.Decimal `json:"monthlyInvestment" example:"250"`
	NumberOfMonths    int             `json:"numberOfMonths" example:"20"`
	Color             string          `json:"color,omitempty" example:"#5856D6"`
	Icon              string          `json:"icon,omitempty" example:"home"`
	Deadline          *time.Time      `json:"deadline,omitempty"`
	CreatedAt         time.Time       `json:"createdAt" example:"2024-01-01T10:00:00Z"`
}

// Validate checks the project invariants. Feasibility against the household
// income is a store concern, not a model one.
func (p FinancialProject) Validate() error {
	if p.Name == "" {
		return ErrNameEmpty
	}

	if !p.TargetAmount.IsPositive() || !p.MonthlyInvestment.IsPositive() {
		return ErrAmountNotPositive
	}

	return nil
}
