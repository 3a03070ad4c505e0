package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	v1 "github.com/sou-financas/backend/internal/controllers/v1"
	"github.com/sou-financas/backend/internal/models"
	"github.com/sou-financas/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGoalsDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestGoalsDBClosed() {
	tests := []struct {
		name string             // Name of the test
		test func(t *testing.T) // Code to run
	}{
		{
			"Creation fails",
			func(t *testing.T) {
				createTestGoal(t, v1.GoalEditable{}, http.StatusInternalServerError)
			},
		},
		{
			"GET fails",
			func(t *testing.T) {
				recorder := test.Request(t, http.MethodGet, "http://example.com/v1/goals", "")
				test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)

				var response v1.GoalListResponse
				test.DecodeResponse(t, &recorder, &response)
				assert.Contains(t, *response.Error, models.ErrGeneral.Error())
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.CloseDB()

			tt.test(t)
		})
	}
}

// TestGoalsOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestGoalsOptions() {
	tests := []struct {
		name   string
		id     string // path at the Goals endpoint to test
		status int    // Expected HTTP status code
	}{
		{"No Goal with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Goal exists", createTestGoal(suite.T(), v1.GoalEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/goals", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				// Goals are immutable, no PATCH and no DELETE
				assert.Equal(t, "OPTIONS, GET", r.Header().Get("allow"))
			}
		})
	}
}

// TestGoalsImmutable verifies that update and delete requests for goals
// are rejected.
func (suite *TestSuiteStandard) TestGoalsImmutable() {
	goal := createTestGoal(suite.T(), v1.GoalEditable{})

	for _, method := range []string{http.MethodPatch, http.MethodDelete} {
		suite.T().Run(method, func(t *testing.T) {
			r := test.Request(t, method, goal.Data.Links.Self, "")
			test.AssertHTTPStatus(t, &r, http.StatusMethodNotAllowed)
		})
	}
}

func (suite *TestSuiteStandard) TestGoalsGetSingle() {
	g := createTestGoal(suite.T(), v1.GoalEditable{})

	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"Existing Goal", g.Data.ID.String(), http.StatusOK},
		{"ID nil", uuid.Nil.String(), http.StatusNotFound},
		{"No Goal with this ID", uuid.New().String(), http.StatusNotFound},
		{"Invalid ID (string)", "notaUUID", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/goals/%s", tt.id), "")

			var goal v1.GoalResponse
			test.DecodeResponse(t, &r, &goal)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestGoalsCreate() {
	duration := uint(3)

	goal := createTestGoal(suite.T(), v1.GoalEditable{
		Name:            "Trip to Fernando de Noronha",
		StartDate:       time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		InitialAmount:   decimal.NewFromFloat(200),
		MonthlyIncrease: decimal.NewFromFloat(50),
		Mode:            models.GoalModeFixedDuration,
		DurationMonths:  &duration,
	})

	assert.Equal(suite.T(), "Trip to Fernando de Noronha", goal.Data.Name)
	assert.Equal(suite.T(), "BRL", goal.Data.Currency)
	assert.Equal(suite.T(), models.InterestModeNone, goal.Data.InterestMode)
	assert.NotEmpty(suite.T(), goal.Data.Links.Plan)
	assert.NotEmpty(suite.T(), goal.Data.Links.Progress)
	assert.NotEmpty(suite.T(), goal.Data.Links.Entries)
}

func (suite *TestSuiteStandard) TestGoalsCreateFails() {
	tests := []struct {
		name     string
		body     any
		status   int                                         // expected HTTP status
		testFunc func(t *testing.T, g v1.GoalCreateResponse) // tests to perform against the response
	}{
		{
			"Broken Body", `[{ "name": 2 }]`, http.StatusBadRequest, nil,
		},
		{
			"No body", "", http.StatusBadRequest,
			func(t *testing.T, g v1.GoalCreateResponse) {
				assert.Equal(t, "the request body must not be empty", *g.Error)
			},
		},
		{
			"No mode",
			`[{ "name": "No mode", "startDate": "2024-01-01T00:00:00Z" }]`,
			http.StatusBadRequest,
			func(t *testing.T, g v1.GoalCreateResponse) {
				assert.Equal(t, models.ErrGoalModeInvalid.Error(), *g.Data[0].Error)
			},
		},
		{
			"Fixed duration without duration",
			`[{ "name": "x", "startDate": "2024-01-01T00:00:00Z", "mode": "fixed-duration" }]`,
			http.StatusBadRequest,
			func(t *testing.T, g v1.GoalCreateResponse) {
				assert.Equal(t, models.ErrGoalDurationRequired.Error(), *g.Data[0].Error)
			},
		},
		{
			"Target value with duration",
			`[{ "name": "x", "startDate": "2024-01-01T00:00:00Z", "mode": "target-value", "targetValue": 5000, "durationMonths": 12 }]`,
			http.StatusBadRequest,
			func(t *testing.T, g v1.GoalCreateResponse) {
				assert.Equal(t, models.ErrGoalDurationNotAllowed.Error(), *g.Data[0].Error)
			},
		},
		{
			"Interest mode without value",
			`[{ "name": "x", "startDate": "2024-01-01T00:00:00Z", "mode": "fixed-duration", "durationMonths": 12, "interestMode": "percent-monthly" }]`,
			http.StatusBadRequest,
			func(t *testing.T, g v1.GoalCreateResponse) {
				assert.Equal(t, models.ErrGoalInterestValueMissing.Error(), *g.Data[0].Error)
			},
		},
		{
			"Invalid currency",
			`[{ "name": "x", "startDate": "2024-01-01T00:00:00Z", "mode": "fixed-duration", "durationMonths": 12, "currency": "REAIS" }]`,
			http.StatusBadRequest,
			func(t *testing.T, g v1.GoalCreateResponse) {
				assert.Equal(t, models.ErrGoalCurrencyInvalid.Error(), *g.Data[0].Error)
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/goals", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			var g v1.GoalCreateResponse
			test.DecodeResponse(t, &r, &g)

			if tt.testFunc != nil {
				tt.testFunc(t, g)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestGoalsGetFilter() {
	u1 := uuid.New()

	duration := uint(12)
	_ = createTestGoal(suite.T(), v1.GoalEditable{
		Name:           "Emergency fund",
		Note:           "Six months of expenses",
		UserID:         u1,
		Mode:           models.GoalModeFixedDuration,
		DurationMonths: &duration,
		Archived:       true,
	})

	_ = createTestGoal(suite.T(), v1.GoalEditable{
		Name:        "New bicycle",
		Note:        "A gravel bike",
		Mode:        models.GoalModeTargetValue,
		TargetValue: decimal.NewNullDecimal(decimal.NewFromFloat(8000)),
		Currency:    "EUR",
	})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"User 1", fmt.Sprintf("user=%s", u1), 1},
		{"Mode fixed-duration", "mode=fixed-duration", 1},
		{"Mode target-value", "mode=target-value", 1},
		{"Currency", "currency=EUR", 1},
		{"Archived", "archived=true", 1},
		{"Not archived", "archived=false", 1},
		{"Fuzzy name", "name=bicycle", 1},
		{"Search", "search=months", 1},
		{"Limit 1", "limit=1", 1},
		{"No match", "name=Yacht", 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var re v1.GoalListResponse
			r := test.Request(t, http.MethodGet, fmt.Sprintf("/v1/goals?%s", tt.query), "")
			test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
			test.DecodeResponse(t, &r, &re)

			assert.Equal(t, tt.len, len(re.Data), "Request ID: %s", r.Result().Header.Get("x-request-id"))
		})
	}
}

func (suite *TestSuiteStandard) TestGoalsGetPlan() {
	duration := uint(3)

	goal := createTestGoal(suite.T(), v1.GoalEditable{
		StartDate:       time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		InitialAmount:   decimal.NewFromFloat(200),
		MonthlyIncrease: decimal.NewFromFloat(50),
		Mode:            models.GoalModeFixedDuration,
		DurationMonths:  &duration,
	})

	r := test.Request(suite.T(), http.MethodGet, goal.Data.Links.Plan, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var plan v1.PlanResponse
	test.DecodeResponse(suite.T(), &r, &plan)

	require.Len(suite.T(), plan.Data, 3)

	assert.Equal(suite.T(), "Jan 2024", plan.Data[0].Label)
	assert.True(suite.T(), plan.Data[0].Planned.Equal(decimal.NewFromFloat(200)), "Planned is %s", plan.Data[0].Planned)
	assert.True(suite.T(), plan.Data[2].Planned.Equal(decimal.NewFromFloat(300)), "Planned is %s", plan.Data[2].Planned)
	assert.True(suite.T(), plan.Data[2].Cumulative.Equal(decimal.NewFromFloat(750)), "Cumulative is %s", plan.Data[2].Cumulative)
}

func (suite *TestSuiteStandard) TestGoalsGetPlanWindow() {
	goal := createTestGoal(suite.T(), v1.GoalEditable{
		InitialAmount: decimal.NewFromFloat(100),
		Mode:          models.GoalModeTargetValue,
		TargetValue:   decimal.NewNullDecimal(decimal.NewFromFloat(10000)),
	})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"Default window", "", 12},
		{"Window below minimum", "?window=2", 6},
		{"Window above minimum", "?window=24", 24},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, goal.Data.Links.Plan+tt.query, "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var plan v1.PlanResponse
			test.DecodeResponse(t, &r, &plan)
			assert.Len(t, plan.Data, tt.len)
		})
	}
}

func (suite *TestSuiteStandard) TestGoalsGetPlanFails() {
	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"No Goal with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/goals/%s/plan", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestGoalsGetProgress() {
	duration := uint(3)

	goal := createTestGoal(suite.T(), v1.GoalEditable{
		StartDate:       time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		InitialAmount:   decimal.NewFromFloat(200),
		MonthlyIncrease: decimal.NewFromFloat(50),
		Mode:            models.GoalModeFixedDuration,
		DurationMonths:  &duration,
	})

	// Record deposits for two of the three months
	for _, month := range []string{"2024-01", "2024-02"} {
		r := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("%s/months/%s", goal.Data.Links.Self, month), map[string]any{
			"depositedAmount": 275,
		})
		test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	}

	r := test.Request(suite.T(), http.MethodGet, goal.Data.Links.Progress, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var progress v1.ProgressResponse
	test.DecodeResponse(suite.T(), &r, &progress)

	require.NotNil(suite.T(), progress.Data)
	require.Len(suite.T(), progress.Data.Plan, 3)

	assert.True(suite.T(), progress.Data.TotalPlanned.Equal(decimal.NewFromFloat(750)), "TotalPlanned is %s", progress.Data.TotalPlanned)
	assert.True(suite.T(), progress.Data.TotalDeposited.Equal(decimal.NewFromFloat(550)), "TotalDeposited is %s", progress.Data.TotalDeposited)
	assert.True(suite.T(), progress.Data.Difference.Equal(decimal.NewFromFloat(200)), "Difference is %s", progress.Data.Difference)

	percent, _ := progress.Data.Percent.Float64()
	assert.InDelta(suite.T(), 73.33, percent, 0.01)
}

func (suite *TestSuiteStandard) TestGoalsGetEntries() {
	goal := createTestGoal(suite.T(), v1.GoalEditable{})

	// No deposits recorded yet
	r := test.Request(suite.T(), http.MethodGet, goal.Data.Links.Entries, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var entries v1.EntryListResponse
	test.DecodeResponse(suite.T(), &r, &entries)
	assert.Empty(suite.T(), entries.Data)

	// Record deposits out of order, the response is ordered by month
	for _, month := range []string{"2024-03", "2024-01"} {
		r := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("%s/months/%s", goal.Data.Links.Self, month), map[string]any{
			"depositedAmount": 100,
		})
		test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	}

	r = test.Request(suite.T(), http.MethodGet, goal.Data.Links.Entries, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	test.DecodeResponse(suite.T(), &r, &entries)
	require.Len(suite.T(), entries.Data, 2)
	assert.True(suite.T(), entries.Data[0].Month.Before(entries.Data[1].Month))
}

func (suite *TestSuiteStandard) TestGoalMonthGetZeroValues() {
	goal := createTestGoal(suite.T(), v1.GoalEditable{})

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("%s/months/2024-05", goal.Data.Links.Self), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var entry v1.EntryResponse
	test.DecodeResponse(suite.T(), &r, &entry)

	require.NotNil(suite.T(), entry.Data)
	assert.Equal(suite.T(), uuid.Nil, entry.Data.ID, "an unrecorded month must not have an ID")
	assert.True(suite.T(), entry.Data.DepositedAmount.IsZero())
	assert.True(suite.T(), entry.Data.PlannedAmount.IsZero())
}

func (suite *TestSuiteStandard) TestGoalMonthUpsert() {
	goal := createTestGoal(suite.T(), v1.GoalEditable{})
	url := fmt.Sprintf("%s/months/2024-03", goal.Data.Links.Self)

	// The first PATCH creates the entry
	r := test.Request(suite.T(), http.MethodPatch, url, map[string]any{
		"plannedAmount":   250,
		"depositedAmount": 100,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var first v1.EntryResponse
	test.DecodeResponse(suite.T(), &r, &first)
	require.NotNil(suite.T(), first.Data)

	// The second PATCH overwrites the deposit and keeps the planned
	// amount that is not part of the request body
	r = test.Request(suite.T(), http.MethodPatch, url, map[string]any{
		"depositedAmount": 180,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var second v1.EntryResponse
	test.DecodeResponse(suite.T(), &r, &second)

	require.NotNil(suite.T(), second.Data)
	assert.Equal(suite.T(), first.Data.ID, second.Data.ID, "the entry must be updated in place")
	assert.True(suite.T(), second.Data.DepositedAmount.Equal(decimal.NewFromFloat(180)), "DepositedAmount is %s", second.Data.DepositedAmount)
	assert.True(suite.T(), second.Data.PlannedAmount.Equal(decimal.NewFromFloat(250)), "PlannedAmount is %s", second.Data.PlannedAmount)

	// The GET now returns the recorded entry
	r = test.Request(suite.T(), http.MethodGet, url, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var get v1.EntryResponse
	test.DecodeResponse(suite.T(), &r, &get)
	require.NotNil(suite.T(), get.Data)
	assert.Equal(suite.T(), first.Data.ID, get.Data.ID)
}

func (suite *TestSuiteStandard) TestGoalMonthFails() {
	goal := createTestGoal(suite.T(), v1.GoalEditable{})

	tests := []struct {
		name   string
		method string
		url    string
		body   any
		status int
	}{
		{"Invalid month", http.MethodGet, fmt.Sprintf("%s/months/notAMonth", goal.Data.Links.Self), "", http.StatusBadRequest},
		{"No Goal with this ID", http.MethodGet, fmt.Sprintf("http://example.com/v1/goals/%s/months/2024-03", uuid.New()), "", http.StatusNotFound},
		{"Negative deposit", http.MethodPatch, fmt.Sprintf("%s/months/2024-03", goal.Data.Links.Self), map[string]any{"depositedAmount": -50}, http.StatusBadRequest},
		{"Broken body", http.MethodPatch, fmt.Sprintf("%s/months/2024-03", goal.Data.Links.Self), `{"depositedAmount": "nope"}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, tt.method, tt.url, tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestGoalMonthOptions() {
	goal := createTestGoal(suite.T(), v1.GoalEditable{})

	r := test.Request(suite.T(), http.MethodOptions, fmt.Sprintf("%s/months/2024-03", goal.Data.Links.Self), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET, PATCH", r.Header().Get("allow"))
}
