// Package plan computes saving plans and their reconciliation against
// recorded deposits. All functions are pure, they never touch the database.
package plan

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/sou-financas/backend/internal/models"
	"github.com/sou-financas/backend/internal/types"
)

const (
	// MinimumWindow is the smallest number of months projected for
	// target-value goals.
	MinimumWindow = 6

	// DefaultWindow is the number of months projected for target-value goals
	// when the caller does not request a specific window.
	DefaultWindow = 12
)

// Month is one projected month of a saving plan. It is derived on every
// computation and never persisted.
type Month struct {
	Month      types.Month     `json:"month" example:"2024-01-01T00:00:00.000000Z"` // The month the contribution is planned for
	Label      string          `json:"label" example:"Jan 2024"`                    // Human readable label for the month
	Planned    decimal.Decimal `json:"planned" example:"200"`                       // Contribution planned for this month
	Cumulative decimal.Decimal `json:"cumulative" example:"450"`                    // Sum of all planned contributions through this month
}

// Progress is the reconciliation of a goal's plan against its recorded
// deposits.
type Progress struct {
	Plan           []Month         `json:"plan"`                      // The full plan window
	TotalPlanned   decimal.Decimal `json:"totalPlanned" example:"750"`   // Sum of all planned contributions in the window
	TotalDeposited decimal.Decimal `json:"totalDeposited" example:"550"` // Sum of all recorded deposits
	Difference     decimal.Decimal `json:"difference" example:"200"`     // TotalPlanned minus TotalDeposited
	Percent        decimal.Decimal `json:"percent" example:"73.33"`      // Deposited share of the plan in percent, clamped to 100
}

var oneHundred = decimal.NewFromInt(100)

// Compute projects the saving plan for a goal.
//
// Fixed-duration goals are projected for exactly their number of months.
// Target-value goals are projected for max(MinimumWindow, window) months,
// with window falling back to DefaultWindow when it is not positive; whether
// the cumulative total converges on the target inside the window is left to
// the caller to interpret.
func Compute(goal models.SavingGoal, window int) ([]Month, error) {
	months, err := monthCount(goal, window)
	if err != nil {
		return nil, err
	}

	plan := make([]Month, 0, months)
	cumulative := decimal.Zero
	for i := 0; i < months; i++ {
		date := addMonths(goal.StartDate, i)

		// Interest mode and value are metadata for the UI. They are
		// intentionally not folded into the planned contribution.
		planned := goal.InitialAmount.Add(goal.MonthlyIncrease.Mul(decimal.NewFromInt(int64(i))))
		cumulative = cumulative.Add(planned)

		plan = append(plan, Month{
			Month:      types.MonthOf(date),
			Label:      date.Format("Jan 2006"),
			Planned:    planned,
			Cumulative: cumulative,
		})
	}

	return plan, nil
}

// ComputeProgress reconciles the goal's plan with its recorded entries.
//
// The plan window is the goal's duration for fixed-duration goals and
// DefaultWindow otherwise. Over-deposits are reported faithfully in
// TotalDeposited and Difference, only Percent is clamped to 100.
func ComputeProgress(goal models.SavingGoal, entries []models.SavingEntry) (Progress, error) {
	plan, err := Compute(goal, DefaultWindow)
	if err != nil {
		return Progress{}, err
	}

	totalPlanned := decimal.Zero
	for _, month := range plan {
		totalPlanned = totalPlanned.Add(month.Planned)
	}

	totalDeposited := decimal.Zero
	for _, entry := range entries {
		totalDeposited = totalDeposited.Add(entry.DepositedAmount)
	}

	percent := decimal.Zero
	if totalPlanned.IsPositive() {
		percent = totalDeposited.Div(totalPlanned).Mul(oneHundred)
		if percent.GreaterThan(oneHundred) {
			percent = oneHundred
		}
	}

	return Progress{
		Plan:           plan,
		TotalPlanned:   totalPlanned,
		TotalDeposited: totalDeposited,
		Difference:     totalPlanned.Sub(totalDeposited),
		Percent:        percent,
	}, nil
}

// monthCount determines how many months the plan covers. A goal whose mode
// invariant is violated is rejected instead of silently defaulting.
func monthCount(goal models.SavingGoal, window int) (int, error) {
	switch goal.Mode {
	case models.GoalModeFixedDuration:
		if goal.DurationMonths == nil {
			return 0, models.ErrGoalDurationRequired
		}
		return int(*goal.DurationMonths), nil
	case models.GoalModeTargetValue:
		if !goal.TargetValue.Valid {
			return 0, models.ErrGoalTargetRequired
		}
		if window <= 0 {
			window = DefaultWindow
		}
		if window < MinimumWindow {
			window = MinimumWindow
		}
		return window, nil
	default:
		return 0, models.ErrGoalModeInvalid
	}
}

// addMonths advances a date by the given number of calendar months. The day
// of the month is preserved where it exists in the resulting month and
// clamped to its last day otherwise.
func addMonths(t time.Time, months int) time.Time {
	year, month, day := t.Date()

	first := time.Date(year, month+time.Month(months), 1, 0, 0, 0, 0, t.Location())
	if last := first.AddDate(0, 1, -1).Day(); day > last {
		day = last
	}

	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, t.Location())
}
