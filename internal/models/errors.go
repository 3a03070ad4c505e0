package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

// Category errors
var ErrCategoryNameNotUnique = errors.New("you already have a category with this name")

// SavingGoal configuration errors. A goal that fails one of these checks is
// malformed and must be fixed by the caller before it can be saved or planned.
var (
	ErrGoalDurationRequired     = errors.New("goals with the fixed-duration mode must set the number of months")
	ErrGoalTargetRequired       = errors.New("goals with the target-value mode must set the target value")
	ErrGoalTargetNotAllowed     = errors.New("the target value can only be set for goals with the target-value mode")
	ErrGoalDurationNotAllowed   = errors.New("the number of months can only be set for goals with the fixed-duration mode")
	ErrGoalModeInvalid          = errors.New("the goal mode must be either target-value or fixed-duration")
	ErrGoalInterestModeInvalid  = errors.New("the interest mode must be one of none, percent-monthly or fixed-extra")
	ErrGoalInterestValueMissing = errors.New("the interest value must be set when an interest mode is configured")
	ErrGoalInterestValueSet     = errors.New("the interest value can only be set together with an interest mode")
	ErrGoalAmountNegative       = errors.New("goal amounts must not be negative")
	ErrGoalStartDateRequired    = errors.New("the goal start date must be set")
	ErrGoalCurrencyInvalid      = errors.New("the goal currency must be a valid ISO 4217 code")
)

// SavingEntry errors
var ErrEntryDepositNegative = errors.New("deposited amounts must not be negative")
