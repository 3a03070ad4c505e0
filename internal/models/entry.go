package models

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sou-financas/backend/internal/types"
	"gorm.io/gorm"
)

// SavingEntry records the actual deposit for one goal and month.
//
// There is at most one entry per goal and month. This is enforced by the
// upsert in RecordDeposit, not by a uniqueness constraint in the schema.
type SavingEntry struct {
	DefaultModel
	Goal            SavingGoal `json:"-"`
	GoalID          uuid.UUID
	UserID          uuid.UUID   `gorm:"index"`
	Month           types.Month // The month the deposit belongs to
	PlannedAmount   decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // Snapshot of the planned contribution when the deposit was recorded
	DepositedAmount decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // The amount that was actually deposited
}

func (e *SavingEntry) BeforeCreate(tx *gorm.DB) error {
	_ = e.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*SavingEntry)
	return e.checkIntegrity(tx, *toSave)
}

// checkIntegrity verifies that the goal the entry is recorded against exists.
func (e *SavingEntry) checkIntegrity(tx *gorm.DB, toSave SavingEntry) error {
	return tx.First(&SavingGoal{}, toSave.GoalID).Error
}

func (e *SavingEntry) AfterSave(_ *gorm.DB) error {
	if e.DepositedAmount.IsNegative() {
		return ErrEntryDepositNegative
	}

	return nil
}

// RecordDeposit upserts the deposit for one goal and month.
//
// If an entry for the goal and month exists, its deposited amount and planned
// snapshot are overwritten in place, no history is kept. Otherwise a new
// entry is created. Concurrent callers for the same goal and month are not
// coordinated, the last write wins.
func RecordDeposit(userID, goalID uuid.UUID, month types.Month, deposited, planned decimal.Decimal) (SavingEntry, error) {
	var entry SavingEntry
	err := DB.
		Where(&SavingEntry{GoalID: goalID, UserID: userID}).
		Where("date(saving_entries.month) = date(?)", month).
		First(&entry).Error

	if err == nil {
		err = DB.Model(&entry).
			Select("PlannedAmount", "DepositedAmount").
			Updates(SavingEntry{PlannedAmount: planned, DepositedAmount: deposited}).Error
		if err != nil {
			return SavingEntry{}, err
		}

		return entry, nil
	}

	if !errors.Is(err, ErrResourceNotFound) {
		return SavingEntry{}, err
	}

	entry = SavingEntry{
		GoalID:          goalID,
		UserID:          userID,
		Month:           month,
		PlannedAmount:   planned,
		DepositedAmount: deposited,
	}

	err = DB.Create(&entry).Error
	if err != nil {
		return SavingEntry{}, err
	}

	return entry, nil
}

// Entries returns all entries for the goal, filtered to the user and ordered
// by month ascending.
func Entries(userID, goalID uuid.UUID) ([]SavingEntry, error) {
	var entries []SavingEntry

	err := DB.
		Where(&SavingEntry{GoalID: goalID, UserID: userID}).
		Order("date(saving_entries.month) ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}

	return entries, nil
}
