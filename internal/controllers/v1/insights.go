package v1

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hearthledger/backend/internal/httputil"
	"github.com/hearthledger/backend/internal/money"
	"github.com/hearthledger/backend/internal/store"
	"github.com/shopspring/decimal"
)

type MonthlyTotalsResponse struct {
	Data  []store.MonthlyTotal `json:"data"`                                                                    // Per-month totals, oldest first
	Error *string              `json:"error" example:"your query string contains invalid or un-parseable data"` // The error, if any occurred
}

type CategoryTotalsResponse struct {
	Data  []store.CategoryTotal `json:"data"`                                                                    // Per-category expense totals, largest first
	Error *string               `json:"error" example:"your query string contains invalid or un-parseable data"` // The error, if any occurred
}

type BalanceResponse struct {
	Data  *Balance `json:"data"`  // The balance summary
	Error *string  `json:"error"` // The error, if any occurred
}

// Balance is the money overview of the household.
type Balance struct {
	AvailableBalance        decimal.Decimal `json:"availableBalance" example:"1523.50"`         // Money left to spend
	AvailableBalanceDisplay string          `json:"availableBalanceDisplay" example:"$1523.50"` // Available balance with the profile's currency symbol
	CurrentMonthIncome      decimal.Decimal `json:"currentMonthIncome" example:"4200.00"`       // Realized income this month
	CurrentMonthExpenses    decimal.Decimal `json:"currentMonthExpenses" example:"3170.52"`     // Realized expenses this month
	MonthlyBudget           decimal.Decimal `json:"monthlyBudget" example:"2000"`               // The configured budget
	BudgetRemaining         decimal.Decimal `json:"budgetRemaining" example:"476.48"`           // Budget minus this month's expenses
	BudgetUsedPercentage    decimal.Decimal `json:"budgetUsedPercentage" example:"76.18"`       // Share of the budget already spent
	ExpectedIncome          decimal.Decimal `json:"expectedIncome" example:"300"`               // Unpaid expected income
	ExpectedExpenses        decimal.Decimal `json:"expectedExpenses" example:"450"`             // Unpaid expected expenses
	TotalHouseholdIncome    decimal.Decimal `json:"totalHouseholdIncome" example:"6400"`        // Monthly income of all adults
}

// maxTotalMonths bounds the monthly-totals window, ten years is more
// history than any chart renders.
const maxTotalMonths = 120

type monthlyTotalsQuery struct {
	Months string `form:"months"` // Number of months, defaults to 6
}

type categoryTotalsQuery struct {
	FromDate  time.Time `form:"fromDate" time_format:"2006-01-02"`  // Expenses at and after this date
	UntilDate time.Time `form:"untilDate" time_format:"2006-01-02"` // Expenses before and at this date
}

// RegisterInsightRoutes registers the routes for derived figures with
// the RouterGroup that is passed.
func (co Controller) RegisterInsightRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/monthly-totals", OptionsInsight)
	r.GET("/monthly-totals", co.GetMonthlyTotals)

	r.OPTIONS("/category-totals", OptionsInsight)
	r.GET("/category-totals", co.GetCategoryTotals)

	r.OPTIONS("/balance", OptionsInsight)
	r.GET("/balance", co.GetBalance)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Insights
// @Success		204
// @Router			/v1/insights/balance [options]
func OptionsInsight(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get monthly totals
// @Description	Returns realized income and expenses per month for the requested window, oldest month first. Months without transactions are included with zero totals.
// @Tags			Insights
// @Produce		json
// @Success		200		{object}	MonthlyTotalsResponse
// @Failure		400		{object}	MonthlyTotalsResponse
// @Param			months	query		int	false	"Number of months ending at the current one, at most 120. Defaults to 6."
// @Router			/v1/insights/monthly-totals [get]
func (co Controller) GetMonthlyTotals(c *gin.Context) {
	var query monthlyTotalsQuery
	if err := c.Bind(&query); err != nil {
		e := httputil.ErrInvalidQuery.Error()
		c.JSON(http.StatusBadRequest, MonthlyTotalsResponse{
			Error: &e,
		})
		return
	}

	var months int
	if query.Months != "" {
		parsed, err := strconv.Atoi(query.Months)
		if err != nil || parsed < 1 || parsed > maxTotalMonths {
			e := httputil.ErrInvalidQuery.Error()
			c.JSON(http.StatusBadRequest, MonthlyTotalsResponse{
				Error: &e,
			})
			return
		}
		months = parsed
	}

	totals := co.Store.MonthlyTotals(months)

	// The store sorts most recent first, charts want oldest first.
	for i, j := 0, len(totals)-1; i < j; i, j = i+1, j-1 {
		totals[i], totals[j] = totals[j], totals[i]
	}

	c.JSON(http.StatusOK, MonthlyTotalsResponse{Data: totals})
}

// @Summary		Get category totals
// @Description	Returns realized expenses per category, largest first, optionally restricted to a date range
// @Tags			Insights
// @Produce		json
// @Success		200			{object}	CategoryTotalsResponse
// @Failure		400			{object}	CategoryTotalsResponse
// @Param			fromDate	query		string	false	"Expenses at and after this date (YYYY-MM-DD)"
// @Param			untilDate	query		string	false	"Expenses before and at this date (YYYY-MM-DD)"
// @Router			/v1/insights/category-totals [get]
func (co Controller) GetCategoryTotals(c *gin.Context) {
	var query categoryTotalsQuery
	if err := c.Bind(&query); err != nil {
		e := httputil.ErrInvalidQuery.Error()
		c.JSON(http.StatusBadRequest, CategoryTotalsResponse{
			Error: &e,
		})
		return
	}

	var from, until *time.Time
	if !query.FromDate.IsZero() {
		f := dayStart(query.FromDate)
		from = &f
	}
	if !query.UntilDate.IsZero() {
		u := dayStart(query.UntilDate).AddDate(0, 0, 1).Add(-time.Nanosecond)
		until = &u
	}

	c.JSON(http.StatusOK, CategoryTotalsResponse{
		Data: co.Store.CategoryTotals(from, until),
	})
}

// @Summary		Get balance
// @Description	Returns the derived money overview: available balance, current month totals, budget state and expected movements
// @Tags			Insights
// @Produce		json
// @Success		200	{object}	BalanceResponse
// @Router			/v1/insights/balance [get]
func (co Controller) GetBalance(c *gin.Context) {
	profile := co.Store.Profile()
	available := co.Store.AvailableBalance()
	expenses := co.Store.CurrentMonthExpenses()

	data := Balance{
		AvailableBalance:        available,
		AvailableBalanceDisplay: money.Format(available, profile.Currency),
		CurrentMonthIncome:      co.Store.CurrentMonthIncome(),
		CurrentMonthExpenses:    expenses,
		MonthlyBudget:           profile.MonthlyBudget,
		BudgetRemaining:         co.Store.BudgetRemaining(),
		BudgetUsedPercentage:    money.Percentage(expenses, profile.MonthlyBudget),
		ExpectedIncome:          co.Store.ExpectedIncome(),
		ExpectedExpenses:        co.Store.ExpectedExpenses(),
		TotalHouseholdIncome:    co.Store.TotalHouseholdIncome(),
	}
	c.JSON(http.StatusOK, BalanceResponse{Data: &data})
}
