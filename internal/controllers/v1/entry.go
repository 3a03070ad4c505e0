package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sou-financas/backend/internal/httputil"
	"github.com/sou-financas/backend/internal/models"
	"github.com/sou-financas/backend/internal/types"
)

// @Summary		Get entries
// @Description	Returns the recorded deposits of the goal, ordered by month
// @Tags			Goals
// @Produce		json
// @Success		200	{object}	EntryListResponse
// @Failure		400	{object}	EntryListResponse
// @Failure		404	{object}	EntryListResponse
// @Failure		500	{object}	EntryListResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/goals/{id}/entries [get]
func GetGoalEntries(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EntryListResponse{
			Error: &e,
		})
		return
	}

	var goal models.SavingGoal
	err = models.DB.First(&goal, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EntryListResponse{
			Error: &e,
		})
		return
	}

	entries, err := models.Entries(goal.UserID, goal.ID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EntryListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Entry, 0, len(entries))
	for _, entry := range entries {
		data = append(data, newEntry(c, entry))
	}

	c.JSON(http.StatusOK, EntryListResponse{Data: data})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Goals
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			month	path		string	true	"The month in YYYY-MM format"
// @Router			/v1/goals/{id}/months/{month} [options]
func OptionsGoalMonth(c *gin.Context) {
	var uri URIMonth
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.SavingGoal{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatch(c)
}

// @Summary		Get entry for a month
// @Description	Returns the entry for the month of the goal. If nothing has been recorded
// @Description	for the month yet, a resource with both amounts set to zero is returned.
// @Tags			Goals
// @Produce		json
// @Success		200		{object}	EntryResponse
// @Failure		400		{object}	EntryResponse
// @Failure		404		{object}	EntryResponse
// @Failure		500		{object}	EntryResponse
// @Param			id		path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			month	path		string	true	"The month in YYYY-MM format"
// @Router			/v1/goals/{id}/months/{month} [get]
func GetGoalMonth(c *gin.Context) {
	var uri URIMonth
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EntryResponse{
			Error: &e,
		})
		return
	}

	var goal models.SavingGoal
	err = models.DB.First(&goal, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EntryResponse{
			Error: &e,
		})
		return
	}

	month := types.MonthOf(uri.Month)

	entry, err := entryForMonth(goal, month)

	// If there is no entry yet, return one with zero values
	if errors.Is(err, models.ErrResourceNotFound) {
		entry = models.SavingEntry{
			GoalID: goal.ID,
			UserID: goal.UserID,
			Month:  month,
		}
	} else if err != nil {
		e := err.Error()
		c.JSON(status(err), EntryResponse{
			Error: &e,
		})
		return
	}

	apiResource := newEntry(c, entry)
	c.JSON(http.StatusOK, EntryResponse{Data: &apiResource})
}

// @Summary		Record a deposit
// @Description	Records the deposit for the month of the goal. The entry is created
// @Description	transparently when none exists yet, later calls overwrite it.
// @Tags			Goals
// @Accept			json
// @Produce		json
// @Success		200		{object}	EntryResponse
// @Failure		400		{object}	EntryResponse
// @Failure		404		{object}	EntryResponse
// @Failure		500		{object}	EntryResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			month	path		string			true	"The month in YYYY-MM format"
// @Param			entry	body		EntryEditable	true	"Entry"
// @Router			/v1/goals/{id}/months/{month} [patch]
func UpdateGoalMonth(c *gin.Context) {
	var uri URIMonth
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EntryResponse{
			Error: &e,
		})
		return
	}

	var goal models.SavingGoal
	err = models.DB.First(&goal, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EntryResponse{
			Error: &e,
		})
		return
	}

	month := types.MonthOf(uri.Month)

	// Seed the editable fields from the existing entry so that
	// fields missing from the request body keep their values
	var data EntryEditable
	existing, err := entryForMonth(goal, month)
	if err == nil {
		data = EntryEditable{
			PlannedAmount:   existing.PlannedAmount,
			DepositedAmount: existing.DepositedAmount,
		}
	} else if !errors.Is(err, models.ErrResourceNotFound) {
		e := err.Error()
		c.JSON(status(err), EntryResponse{
			Error: &e,
		})
		return
	}

	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EntryResponse{
			Error: &e,
		})
		return
	}

	entry, err := models.RecordDeposit(goal.UserID, goal.ID, month, data.DepositedAmount, data.PlannedAmount)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EntryResponse{
			Error: &e,
		})
		return
	}

	apiResource := newEntry(c, entry)
	c.JSON(http.StatusOK, EntryResponse{Data: &apiResource})
}

// entryForMonth returns the entry of the goal for the month.
func entryForMonth(goal models.SavingGoal, month types.Month) (models.SavingEntry, error) {
	var entry models.SavingEntry
	err := models.DB.
		Where(&models.SavingEntry{GoalID: goal.ID, UserID: goal.UserID}).
		Where("date(saving_entries.month) = date(?)", month).
		First(&entry).Error

	return entry, err
}
