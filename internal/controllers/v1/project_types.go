package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hearthledger/backend/internal/httputil"
	"github.com/hearthledger/backend/internal/models"
	"github.com/shopspring/decimal"
)

type ProjectEditable struct {
	Name              string          `json:"name" example:"World trip"`                    // Name of the project
	Description       string          `json:"description" example:"Summer 2027" default:""` // A description
	TargetAmount      decimal.Decimal `json:"targetAmount" example:"12000"`                 // The amount to save up
	MonthlyInvestment decimal.Decimal `json:"monthlyInvestment" example:"500"`              // The planned monthly contribution
	NumberOfMonths    int             `json:"numberOfMonths" example:"24"`                  // The planned saving duration
	Color             string          `json:"color,omitempty" example:"#4ECDC4"`            // Display color
	Icon              string          `json:"icon,omitempty" example:"plane"`               // Display icon
	Deadline          *time.Time      `json:"deadline,omitempty"`                           // Optional hard deadline
}

// model returns the store resource for the API representation of the editable fields
func (editable ProjectEditable) model() models.FinancialProject {
	return models.FinancialProject{
		Name:              editable.Name,
		Description:       editable.Description,
		TargetAmount:      editable.TargetAmount,
		MonthlyInvestment: editable.MonthlyInvestment,
		NumberOfMonths:    editable.NumberOfMonths,
		Color:             editable.Color,
		Icon:              editable.Icon,
		Deadline:          editable.Deadline,
	}
}

type ProjectLinks struct {
	Self          string `json:"self" example:"https://example.com/api/v1/projects/d430d7c3-d14c-4712-9336-ee56965a6673"`                        // The project itself
	Contributions string `json:"contributions" example:"https://example.com/api/v1/projects/d430d7c3-d14c-4712-9336-ee56965a6673/contributions"` // Endpoint to move money into the project
}

// Project is the representation of a FinancialProject in API v1.
type Project struct {
	models.FinancialProject
	Links ProjectLinks `json:"links"`
}

// newProject returns the API v1 representation of the resource
func newProject(c *gin.Context, model models.FinancialProject) Project {
	self := fmt.Sprintf("%s/projects/%s", httputil.RequestPathV1(c), model.ID)

	return Project{
		FinancialProject: model,
		Links: ProjectLinks{
			Self:          self,
			Contributions: self + "/contributions",
		},
	}
}

type ProjectListResponse struct {
	Data  []Project `json:"data"`                                                          // List of projects
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type ProjectResponse struct {
	Data  *Project `json:"data"`                                                          // The project data, if the request was successful
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type ContributionEditable struct {
	Amount decimal.Decimal `json:"amount" example:"150"` // The amount to move into the project
}

type FeasibilityResponse struct {
	Data  *Feasibility `json:"data"`                                                                                    // The feasibility data, if the request was successful
	Error *string      `json:"error" example:"the monthlyInvestment query parameter must be set to a positive decimal"` // The error, if any occurred
}

type Feasibility struct {
	Feasible                 bool            `json:"feasible" example:"true"`                // Does the investment fit the household income?
	MonthlyInvestment        decimal.Decimal `json:"monthlyInvestment" example:"500"`        // The investment that was checked
	MaximumMonthlyInvestment decimal.Decimal `json:"maximumMonthlyInvestment" example:"900"` // The largest investment that would be feasible
	TotalHouseholdIncome     decimal.Decimal `json:"totalHouseholdIncome" example:"3000"`    // The household income the check is based on
}
