package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sou-financas/backend/internal/models"
	"github.com/sou-financas/backend/internal/types"
)

type EntryEditable struct {
	PlannedAmount   decimal.Decimal `json:"plannedAmount" example:"250" minimum:"0" maximum:"999999999999.99999999" multipleOf:"0.00000001" default:"0"`   // Contribution the plan asks for in this month
	DepositedAmount decimal.Decimal `json:"depositedAmount" example:"180" minimum:"0" maximum:"999999999999.99999999" multipleOf:"0.00000001" default:"0"` // Amount actually deposited in this month
}

type EntryLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/goals/438cc6c0-9baf-49fd-a75a-d76bd5cab19c/months/2024-03"` // The entry itself
	Goal string `json:"goal" example:"https://example.com/api/v1/goals/438cc6c0-9baf-49fd-a75a-d76bd5cab19c"`                // The goal the entry belongs to
}

type Entry struct {
	models.DefaultModel
	EntryEditable
	GoalID uuid.UUID   `json:"goalId" example:"438cc6c0-9baf-49fd-a75a-d76bd5cab19c"` // ID of the goal
	UserID uuid.UUID   `json:"userId" example:"d3f8b2a4-52cf-4be2-88fa-ff9d26a63fc2"` // ID of the user owning the entry
	Month  types.Month `json:"month" example:"2024-03-01T00:00:00.000000Z"`           // The month the entry belongs to
	Links  EntryLinks  `json:"links"`
}

// newEntry returns the API v1 representation of the resource
func newEntry(c *gin.Context, model models.SavingEntry) Entry {
	url := c.GetString(string(models.DBContextURL))

	return Entry{
		DefaultModel: model.DefaultModel,
		EntryEditable: EntryEditable{
			PlannedAmount:   model.PlannedAmount,
			DepositedAmount: model.DepositedAmount,
		},
		GoalID: model.GoalID,
		UserID: model.UserID,
		Month:  model.Month,
		Links: EntryLinks{
			Self: fmt.Sprintf("%s/v1/goals/%s/months/%s", url, model.GoalID, model.Month),
			Goal: fmt.Sprintf("%s/v1/goals/%s", url, model.GoalID),
		},
	}
}

type EntryListResponse struct {
	Data  []Entry `json:"data"`                                                          // List of entries
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type EntryResponse struct {
	Data  *Entry  `json:"data"`                                                          // The entry
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}
