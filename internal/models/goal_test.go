package models_test

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sou-financas/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func (suite *TestSuiteStandard) TestGoalTrimWhitespace() {
	name := "  Beach house  \t"
	note := " Whitespace    "

	goal := suite.createTestGoal(models.SavingGoal{
		UserID: uuid.New(),
		Name:   name,
		Note:   note,
	})

	assert.Equal(suite.T(), strings.TrimSpace(name), goal.Name)
	assert.Equal(suite.T(), strings.TrimSpace(note), goal.Note)
}

func (suite *TestSuiteStandard) TestGoalDefaults() {
	goal := suite.createTestGoal(models.SavingGoal{
		UserID: uuid.New(),
		Name:   "TestGoalDefaults",
	})

	assert.Equal(suite.T(), models.InterestModeNone, goal.InterestMode)
	assert.Equal(suite.T(), "BRL", goal.Currency)
}

func (suite *TestSuiteStandard) TestGoalMode() {
	duration := uint(12)

	tests := []struct {
		name     string
		mode     models.GoalMode
		target   decimal.NullDecimal
		duration *uint
		err      error
	}{
		{"fixed duration", models.GoalModeFixedDuration, decimal.NullDecimal{}, &duration, nil},
		{"fixed duration without duration", models.GoalModeFixedDuration, decimal.NullDecimal{}, nil, models.ErrGoalDurationRequired},
		{"fixed duration with target", models.GoalModeFixedDuration, decimal.NewNullDecimal(decimal.NewFromFloat(5000)), &duration, models.ErrGoalTargetNotAllowed},
		{"target value", models.GoalModeTargetValue, decimal.NewNullDecimal(decimal.NewFromFloat(5000)), nil, nil},
		{"target value without target", models.GoalModeTargetValue, decimal.NullDecimal{}, nil, models.ErrGoalTargetRequired},
		{"target value with duration", models.GoalModeTargetValue, decimal.NewNullDecimal(decimal.NewFromFloat(5000)), &duration, models.ErrGoalDurationNotAllowed},
		{"no mode", "", decimal.NullDecimal{}, nil, models.ErrGoalModeInvalid},
		{"unknown mode", "savings-account", decimal.NullDecimal{}, nil, models.ErrGoalModeInvalid},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			goal := models.SavingGoal{
				UserID:         uuid.New(),
				Name:           tt.name,
				StartDate:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
				Mode:           tt.mode,
				TargetValue:    tt.target,
				DurationMonths: tt.duration,
			}

			err := models.DB.Create(&goal).Error
			assert.ErrorIs(t, err, tt.err, "Error is: %s", err)
		})
	}
}

func (suite *TestSuiteStandard) TestGoalInterest() {
	duration := uint(6)

	tests := []struct {
		name  string
		mode  models.InterestMode
		value decimal.NullDecimal
		err   error
	}{
		{"no interest", models.InterestModeNone, decimal.NullDecimal{}, nil},
		{"no interest with value", models.InterestModeNone, decimal.NewNullDecimal(decimal.NewFromFloat(0.5)), models.ErrGoalInterestValueSet},
		{"percent monthly", models.InterestModePercentMonthly, decimal.NewNullDecimal(decimal.NewFromFloat(0.5)), nil},
		{"percent monthly without value", models.InterestModePercentMonthly, decimal.NullDecimal{}, models.ErrGoalInterestValueMissing},
		{"fixed extra", models.InterestModeFixedExtra, decimal.NewNullDecimal(decimal.NewFromFloat(25)), nil},
		{"fixed extra without value", models.InterestModeFixedExtra, decimal.NullDecimal{}, models.ErrGoalInterestValueMissing},
		{"unknown mode", "compound-daily", decimal.NullDecimal{}, models.ErrGoalInterestModeInvalid},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			goal := models.SavingGoal{
				UserID:         uuid.New(),
				Name:           tt.name,
				StartDate:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
				Mode:           models.GoalModeFixedDuration,
				DurationMonths: &duration,
				InterestMode:   tt.mode,
				InterestValue:  tt.value,
			}

			err := models.DB.Create(&goal).Error
			assert.ErrorIs(t, err, tt.err, "Error is: %s", err)
		})
	}
}

func (suite *TestSuiteStandard) TestGoalStartDateRequired() {
	duration := uint(12)

	goal := models.SavingGoal{
		UserID:         uuid.New(),
		Name:           "TestGoalStartDateRequired",
		Mode:           models.GoalModeFixedDuration,
		DurationMonths: &duration,
	}

	err := models.DB.Create(&goal).Error
	assert.ErrorIs(suite.T(), err, models.ErrGoalStartDateRequired)
}

func (suite *TestSuiteStandard) TestGoalCurrency() {
	tests := []struct {
		currency string
		err      error
	}{
		{"BRL", nil},
		{"EUR", nil},
		{"REAIS", models.ErrGoalCurrencyInvalid},
		{"x", models.ErrGoalCurrencyInvalid},
	}

	for _, tt := range tests {
		suite.T().Run(tt.currency, func(t *testing.T) {
			goal := suite.goalWithDefaults()
			goal.Currency = tt.currency

			err := models.DB.Create(&goal).Error
			assert.ErrorIs(t, err, tt.err, "Error is: %s", err)
		})
	}
}

func (suite *TestSuiteStandard) TestGoalAfterSave() {
	tests := []struct {
		name    string
		initial decimal.Decimal
		inc     decimal.Decimal
		target  decimal.NullDecimal
		err     error
	}{
		{"all positive", testDecimal(100), testDecimal(10), decimal.NullDecimal{}, nil},
		{"negative initial amount", testDecimal(-100), testDecimal(10), decimal.NullDecimal{}, models.ErrGoalAmountNegative},
		{"negative increase", testDecimal(100), testDecimal(-10), decimal.NullDecimal{}, models.ErrGoalAmountNegative},
		{"negative target", testDecimal(100), testDecimal(10), decimal.NewNullDecimal(testDecimal(-5000)), models.ErrGoalAmountNegative},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			g := models.SavingGoal{
				InitialAmount:   tt.initial,
				MonthlyIncrease: tt.inc,
				TargetValue:     tt.target,
			}

			err := g.AfterSave(&gorm.DB{})
			assert.Equal(t, tt.err, err)
		})
	}
}

// goalWithDefaults returns an unsaved goal that passes all validations.
func (suite *TestSuiteStandard) goalWithDefaults() models.SavingGoal {
	duration := uint(12)

	return models.SavingGoal{
		UserID:         uuid.New(),
		Name:           uuid.NewString(),
		StartDate:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Mode:           models.GoalModeFixedDuration,
		DurationMonths: &duration,
	}
}
