package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MemberType distinguishes income-earning adults from children.
type MemberType string

const (
	Adult MemberType = "adult"
	Child MemberType = "child"
)

// Valid reports whether the type is one of the known member types.
func (t MemberType) Valid() bool {
	return t == Adult || t == Child
}

// HouseholdMember is a person in the household. Only adults carry income
// fields; children contribute nothing to the household income.
type HouseholdMember struct {
	ID           uuid.UUID        `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"`
	Name         string           `json:"name" example:"Alex"`
	Type         MemberType       `json:"type" example:"adult"`
	Salary       *decimal.Decimal `json:"salary,omitempty" example:"3000"`
	SalaryDate   *time.Time       `json:"salaryDate,omitempty"`
	Commissions  *decimal.Decimal `json:"commissions,omitempty" example:"200"`
	FinancialAid *decimal.Decimal `json:"financialAid,omitempty" example:"150"`
}

// Validate checks the household member invariants.
func (m HouseholdMember) Validate() error {
	if m.Name == "" {
		return ErrNameEmpty
	}

	if !m.Type.Valid() {
		return ErrMemberTypeInvalid
	}

	return nil
}

// Income is the member's total monthly income, with missing fields
// treated as zero. Children always have zero income.
func (m HouseholdMember) Income() decimal.Decimal {
	if m.Type != Adult {
		return decimal.Zero
	}

	income := decimal.Zero
	for _, part := range []*decimal.Decimal{m.Salary, m.Commissions, m.FinancialAid} {
		if part != nil {
			income = income.Add(*part)
		}
	}

	return income
}
