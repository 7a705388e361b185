package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validEstimateRequest() EstimateRequest {
	return EstimateRequest{
		Nights:             2,
		Travelers:          2,
		UseFerry:           true,
		ExtraMiles:         40,
		RentalDailyRate:    55,
		RentalFeesPercent:  22,
		LodgingNightlyRate: 150,
		LodgingOneTimeFees: 60,
		GasPricePerGallon:  4.50,
		VehicleMPG:         30,
		ParkEntranceFee:    30,
		FerryRoundTripCost: 50,
	}
}

func TestEstimateRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*EstimateRequest)
		wantError bool
		errorMsg  string
	}{
		{
			name:      "valid request",
			mutate:    func(*EstimateRequest) {},
			wantError: false,
		},
		{
			name:      "zero MPG is allowed",
			mutate:    func(r *EstimateRequest) { r.VehicleMPG = 0 },
			wantError: false,
		},
		{
			name:      "single night rejected",
			mutate:    func(r *EstimateRequest) { r.Nights = 1 },
			wantError: true,
			errorMsg:  "must be at least 2",
		},
		{
			name:      "zero travelers rejected",
			mutate:    func(r *EstimateRequest) { r.Travelers = 0 },
			wantError: true,
			errorMsg:  "must be at least 1",
		},
		{
			name:      "negative extra miles rejected",
			mutate:    func(r *EstimateRequest) { r.ExtraMiles = -1 },
			wantError: true,
			errorMsg:  "must not be negative",
		},
		{
			name:      "negative gas price rejected",
			mutate:    func(r *EstimateRequest) { r.GasPricePerGallon = -0.01 },
			wantError: true,
			errorMsg:  "must not be negative",
		},
		{
			name:      "negative ferry cost rejected",
			mutate:    func(r *EstimateRequest) { r.FerryRoundTripCost = -50 },
			wantError: true,
			errorMsg:  "must not be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validEstimateRequest()
			tt.mutate(&req)

			err := req.Validate()
			if tt.wantError {
				assert.Error(t, err)
				if validationErr, ok := err.(*ValidationError); ok {
					assert.Equal(t, tt.errorMsg, validationErr.Message)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestEstimateRequest_ToModel(t *testing.T) {
	req := validEstimateRequest()
	params := req.ToModel()

	assert.Equal(t, 2, params.Nights)
	assert.Equal(t, 2, params.Travelers)
	assert.True(t, params.UseFerry)
	assert.InDelta(t, 4.50, params.GasPricePerGallon, 1e-9)
	assert.InDelta(t, 50, params.FerryRoundTripCost, 1e-9)
}

func TestScenarioRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		request   ScenarioRequest
		wantError bool
		errorMsg  string
	}{
		{
			name: "valid scenario",
			request: ScenarioRequest{
				Label:      "ferry weekend",
				StartDate:  "2025-06-13",
				Parameters: validEstimateRequest(),
			},
			wantError: false,
		},
		{
			name: "missing label",
			request: ScenarioRequest{
				StartDate:  "2025-06-13",
				Parameters: validEstimateRequest(),
			},
			wantError: true,
			errorMsg:  "is required",
		},
		{
			name: "bad date format",
			request: ScenarioRequest{
				Label:      "x",
				StartDate:  "06/13/2025",
				Parameters: validEstimateRequest(),
			},
			wantError: true,
			errorMsg:  "must be a valid YYYY-MM-DD date",
		},
		{
			name: "invalid nested parameters",
			request: ScenarioRequest{
				Label:      "x",
				StartDate:  "2025-06-13",
				Parameters: EstimateRequest{Nights: 1, Travelers: 1},
			},
			wantError: true,
			errorMsg:  "must be at least 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantError {
				assert.Error(t, err)
				if validationErr, ok := err.(*ValidationError); ok {
					assert.Equal(t, tt.errorMsg, validationErr.Message)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestScenarioRequest_ToModel(t *testing.T) {
	req := ScenarioRequest{
		Label:      "ferry weekend",
		StartDate:  "2025-06-13",
		Parameters: validEstimateRequest(),
	}

	s, err := req.ToModel()
	require.NoError(t, err)
	assert.Equal(t, "ferry weekend", s.Label)
	assert.Equal(t, time.Date(2025, 6, 13, 0, 0, 0, 0, time.UTC), s.StartDate)
	assert.Equal(t, 2, s.Parameters.Nights)
}

func TestCompareRequest_Validate(t *testing.T) {
	t.Run("empty list is valid", func(t *testing.T) {
		req := CompareRequest{}
		assert.NoError(t, req.Validate())
	})

	t.Run("first invalid scenario reported", func(t *testing.T) {
		req := CompareRequest{
			Scenarios: []ScenarioRequest{
				{Label: "ok", StartDate: "2025-06-13", Parameters: validEstimateRequest()},
				{Label: "", StartDate: "2025-06-13", Parameters: validEstimateRequest()},
			},
		}
		assert.Error(t, req.Validate())
	})
}

func TestCompareRequest_ToModel_PreservesOrder(t *testing.T) {
	req := CompareRequest{
		Scenarios: []ScenarioRequest{
			{Label: "b", StartDate: "2025-06-20", Parameters: validEstimateRequest()},
			{Label: "a", StartDate: "2025-06-13", Parameters: validEstimateRequest()},
		},
	}

	scenarios, err := req.ToModel()
	require.NoError(t, err)
	require.Len(t, scenarios, 2)
	assert.Equal(t, "b", scenarios[0].Label)
	assert.Equal(t, "a", scenarios[1].Label)
}
