package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sou-financas/backend/internal/models"
	sf_uuid "github.com/sou-financas/backend/internal/uuid"
)

type CategoryEditable struct {
	UserID    uuid.UUID           `json:"userId" example:"d3f8b2a4-52cf-4be2-88fa-ff9d26a63fc2"`       // ID of the user owning the category
	Name      string              `json:"name" example:"Poupança" default:""`                          // Name of the category
	Kind      models.CategoryKind `json:"kind" example:"expense" default:"expense"`                    // Whether the category applies to expenses, income or both
	Note      string              `json:"note" example:"Everything saved for later" default:""`        // Note about the category
	Color     string              `json:"color" example:"#2e7d32" default:""`                          // Display color for the category
	IsSavings bool                `json:"isSavings" example:"true" default:"false"`                    // Is this the category savings transactions are booked against?
	Archived  bool                `json:"archived" example:"true" default:"false"`                     // Is the category archived?
}

// model returns the database resource for the API representation of the editable fields
func (editable CategoryEditable) model() models.Category {
	return models.Category{
		UserID:    editable.UserID,
		Name:      editable.Name,
		Kind:      editable.Kind,
		Note:      editable.Note,
		Color:     editable.Color,
		IsSavings: editable.IsSavings,
		Archived:  editable.Archived,
	}
}

type CategoryLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/categories/3b1ea324-d438-4419-882a-2fc91f71defe"` // The category itself
}

type Category struct {
	models.DefaultModel
	CategoryEditable
	Links CategoryLinks `json:"links"`
}

// newCategory returns the API v1 representation of the resource
func newCategory(c *gin.Context, model models.Category) Category {
	url := c.GetString(string(models.DBContextURL))

	return Category{
		DefaultModel: model.DefaultModel,
		CategoryEditable: CategoryEditable{
			UserID:    model.UserID,
			Name:      model.Name,
			Kind:      model.Kind,
			Note:      model.Note,
			Color:     model.Color,
			IsSavings: model.IsSavings,
			Archived:  model.Archived,
		},
		Links: CategoryLinks{
			Self: fmt.Sprintf("%s/v1/categories/%s", url, model.ID),
		},
	}
}

type CategoryListResponse struct {
	Data       []Category  `json:"data"`                                                          // List of categories
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type CategoryCreateResponse struct {
	Data  []CategoryResponse `json:"data"`                                                          // List of created categories
	Error *string            `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (t *CategoryCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, CategoryResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type CategoryResponse struct {
	Data  *Category `json:"data"`                                                          // The category
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type CategoryQueryFilter struct {
	UserID    sf_uuid.UUID `form:"user"`                       // By user ID
	Name      string       `form:"name" filterField:"false"`   // By name
	Kind      string       `form:"kind"`                       // By kind
	Note      string       `form:"note" filterField:"false"`   // By the note
	Search    string       `form:"search" filterField:"false"` // By string in name or note
	IsSavings bool         `form:"isSavings"`                  // Is this the savings category?
	Archived  bool         `form:"archived"`                   // Is the category archived?
	Offset    uint         `form:"offset" filterField:"false"` // The offset of the first category returned. Defaults to 0.
	Limit     int          `form:"limit" filterField:"false"`  // Maximum number of categories to return. Defaults to 50.
}

func (f CategoryQueryFilter) model() models.Category {
	return models.Category{
		UserID:    f.UserID.UUID,
		Kind:      models.CategoryKind(f.Kind),
		IsSavings: f.IsSavings,
		Archived:  f.Archived,
	}
}
