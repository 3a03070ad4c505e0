package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"gorm.io/gorm"
)

// GoalMode determines when a saving plan ends.
type GoalMode string

const (
	// GoalModeTargetValue plans until the cumulative total reaches the target value.
	GoalModeTargetValue GoalMode = "target-value"
	// GoalModeFixedDuration plans for an explicit number of months.
	GoalModeFixedDuration GoalMode = "fixed-duration"
)

// InterestMode describes how interest is expected to accrue on a goal.
type InterestMode string

const (
	InterestModeNone           InterestMode = "none"
	InterestModePercentMonthly InterestMode = "percent-monthly"
	InterestModeFixedExtra     InterestMode = "fixed-extra"
)

// SavingGoal is a saving objective of a user.
//
// A goal is immutable once created. Saving entries reference it, they are
// not deleted automatically when a goal is removed by an administrator.
type SavingGoal struct {
	DefaultModel
	UserID          uuid.UUID `gorm:"index"`
	Name            string
	Note            string
	StartDate       time.Time
	InitialAmount   decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // Contribution planned for the first month
	MonthlyIncrease decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // Added to the contribution for every elapsed month
	Mode            GoalMode
	TargetValue     decimal.NullDecimal `gorm:"type:DECIMAL(20,8)"` // Only set for target-value goals
	DurationMonths  *uint               // Only set for fixed-duration goals
	InterestMode    InterestMode
	InterestValue   decimal.NullDecimal `gorm:"type:DECIMAL(20,8)"` // Only set when InterestMode is not "none"
	Currency        string
	Archived        bool
}

func (g *SavingGoal) BeforeSave(_ *gorm.DB) error {
	g.Name = strings.TrimSpace(g.Name)
	g.Note = strings.TrimSpace(g.Note)

	if g.InterestMode == "" {
		g.InterestMode = InterestModeNone
	}

	if g.Currency == "" {
		g.Currency = "BRL"
	}

	if g.StartDate.IsZero() {
		return ErrGoalStartDateRequired
	}

	if _, err := currency.ParseISO(g.Currency); err != nil {
		return ErrGoalCurrencyInvalid
	}

	if err := g.checkMode(); err != nil {
		return err
	}

	return g.checkInterest()
}

// checkMode verifies that exactly one of the target value and the duration
// is set and that it matches the goal mode.
func (g *SavingGoal) checkMode() error {
	switch g.Mode {
	case GoalModeTargetValue:
		if !g.TargetValue.Valid {
			return ErrGoalTargetRequired
		}
		if g.DurationMonths != nil {
			return ErrGoalDurationNotAllowed
		}
	case GoalModeFixedDuration:
		if g.DurationMonths == nil {
			return ErrGoalDurationRequired
		}
		if g.TargetValue.Valid {
			return ErrGoalTargetNotAllowed
		}
	default:
		return ErrGoalModeInvalid
	}

	return nil
}

// checkInterest verifies that the interest value is set if and only if an
// interest mode is configured.
func (g *SavingGoal) checkInterest() error {
	switch g.InterestMode {
	case InterestModeNone:
		if g.InterestValue.Valid {
			return ErrGoalInterestValueSet
		}
	case InterestModePercentMonthly, InterestModeFixedExtra:
		if !g.InterestValue.Valid {
			return ErrGoalInterestValueMissing
		}
	default:
		return ErrGoalInterestModeInvalid
	}

	return nil
}

func (g *SavingGoal) AfterSave(_ *gorm.DB) error {
	if g.InitialAmount.IsNegative() || g.MonthlyIncrease.IsNegative() {
		return ErrGoalAmountNegative
	}

	if g.TargetValue.Valid && g.TargetValue.Decimal.IsNegative() {
		return ErrGoalAmountNegative
	}

	return nil
}
