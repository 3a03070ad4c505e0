package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sou-financas/backend/internal/models"
	"github.com/sou-financas/backend/internal/plan"
	sf_uuid "github.com/sou-financas/backend/internal/uuid"
)

type GoalEditable struct {
	UserID          uuid.UUID           `json:"userId" example:"d3f8b2a4-52cf-4be2-88fa-ff9d26a63fc2"`                                                          // ID of the user owning the goal
	Name            string              `json:"name" example:"Trip to Fernando de Noronha" default:""`                                                          // Name of the goal
	Note            string              `json:"note" example:"Saving up for two weeks of vacation" default:""`                                                  // Note about the goal
	StartDate       time.Time           `json:"startDate" example:"2024-01-01T00:00:00.000000Z"`                                                                // First month of the plan. The day of the month anchors all later months.
	InitialAmount   decimal.Decimal     `json:"initialAmount" example:"200" minimum:"0" maximum:"999999999999.99999999" multipleOf:"0.00000001" default:"0"`    // Contribution planned for the first month
	MonthlyIncrease decimal.Decimal     `json:"monthlyIncrease" example:"50" minimum:"0" maximum:"999999999999.99999999" multipleOf:"0.00000001" default:"0"`   // Added to the planned contribution for every elapsed month
	Mode            models.GoalMode     `json:"mode" example:"fixed-duration"`                                                                                  // Either target-value or fixed-duration
	TargetValue     decimal.NullDecimal `json:"targetValue" example:"5000" swaggertype:"primitive,number"`                                                      // Target amount. Only allowed for target-value goals.
	DurationMonths  *uint               `json:"durationMonths" example:"12"`                                                                                    // Number of months. Only allowed for fixed-duration goals.
	InterestMode    models.InterestMode `json:"interestMode" example:"none" default:"none"`                                                                     // One of none, percent-monthly or fixed-extra
	InterestValue   decimal.NullDecimal `json:"interestValue" example:"0.5" swaggertype:"primitive,number"`                                                     // Interest value. Required when an interest mode is set.
	Currency        string              `json:"currency" example:"BRL" default:"BRL"`                                                                           // ISO 4217 currency code the goal is kept in
	Archived        bool                `json:"archived" example:"true" default:"false"`                                                                        // Is the goal archived?
}

// model returns the database resource for the API representation of the editable fields
func (editable GoalEditable) model() models.SavingGoal {
	return models.SavingGoal{
		UserID:          editable.UserID,
		Name:            editable.Name,
		Note:            editable.Note,
		StartDate:       editable.StartDate,
		InitialAmount:   editable.InitialAmount,
		MonthlyIncrease: editable.MonthlyIncrease,
		Mode:            editable.Mode,
		TargetValue:     editable.TargetValue,
		DurationMonths:  editable.DurationMonths,
		InterestMode:    editable.InterestMode,
		InterestValue:   editable.InterestValue,
		Currency:        editable.Currency,
		Archived:        editable.Archived,
	}
}

type GoalLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/goals/438cc6c0-9baf-49fd-a75a-d76bd5cab19c"`          // The goal itself
	Plan     string `json:"plan" example:"https://example.com/api/v1/goals/438cc6c0-9baf-49fd-a75a-d76bd5cab19c/plan"`     // The computed saving plan for the goal
	Progress string `json:"progress" example:"https://example.com/api/v1/goals/438cc6c0-9baf-49fd-a75a-d76bd5cab19c/progress"` // The progress of the goal
	Entries  string `json:"entries" example:"https://example.com/api/v1/goals/438cc6c0-9baf-49fd-a75a-d76bd5cab19c/entries"`   // The recorded deposits for the goal
}

type Goal struct {
	models.DefaultModel
	GoalEditable
	Links GoalLinks `json:"links"`
}

// newGoal returns the API v1 representation of the resource
func newGoal(c *gin.Context, model models.SavingGoal) Goal {
	url := c.GetString(string(models.DBContextURL))

	return Goal{
		DefaultModel: model.DefaultModel,
		GoalEditable: GoalEditable{
			UserID:          model.UserID,
			Name:            model.Name,
			Note:            model.Note,
			StartDate:       model.StartDate,
			InitialAmount:   model.InitialAmount,
			MonthlyIncrease: model.MonthlyIncrease,
			Mode:            model.Mode,
			TargetValue:     model.TargetValue,
			DurationMonths:  model.DurationMonths,
			InterestMode:    model.InterestMode,
			InterestValue:   model.InterestValue,
			Currency:        model.Currency,
			Archived:        model.Archived,
		},
		Links: GoalLinks{
			Self:     fmt.Sprintf("%s/v1/goals/%s", url, model.ID),
			Plan:     fmt.Sprintf("%s/v1/goals/%s/plan", url, model.ID),
			Progress: fmt.Sprintf("%s/v1/goals/%s/progress", url, model.ID),
			Entries:  fmt.Sprintf("%s/v1/goals/%s/entries", url, model.ID),
		},
	}
}

type GoalListResponse struct {
	Data       []Goal      `json:"data"`                                                          // List of goals
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type GoalCreateResponse struct {
	Data  []GoalResponse `json:"data"`                                                          // List of created goals
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (t *GoalCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, GoalResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type GoalResponse struct {
	Data  *Goal   `json:"data"`                                                          // The goal
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type GoalQueryFilter struct {
	UserID   sf_uuid.UUID `form:"user"`                       // By user ID
	Name     string       `form:"name" filterField:"false"`   // By name
	Note     string       `form:"note" filterField:"false"`   // By the note
	Search   string       `form:"search" filterField:"false"` // By string in name or note
	Mode     string       `form:"mode"`                       // By goal mode
	Currency string       `form:"currency"`                   // By currency code
	Archived bool         `form:"archived"`                   // Is the goal archived?
	Offset   uint         `form:"offset" filterField:"false"` // The offset of the first goal returned. Defaults to 0.
	Limit    int          `form:"limit" filterField:"false"`  // Maximum number of goals to return. Defaults to 50.
}

func (f GoalQueryFilter) model() models.SavingGoal {
	// This does not set the string fields since they are
	// handled in the controller function
	return models.SavingGoal{
		UserID:   f.UserID.UUID,
		Mode:     models.GoalMode(f.Mode),
		Currency: f.Currency,
		Archived: f.Archived,
	}
}

// PlanQuery are the query parameters for the plan endpoint.
type PlanQuery struct {
	Window int `form:"window"` // Months to project for target-value goals. Defaults to 12, minimum 6.
}

type PlanResponse struct {
	Data  []plan.Month `json:"data"`                                                             // The projected months
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type ProgressResponse struct {
	Data  *plan.Progress `json:"data"`                                                          // The progress of the goal
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}
