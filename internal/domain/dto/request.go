// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs decouple the HTTP layer from the domain model, providing validation
// and serialization for API communication.
package dto

import (
	"fmt"
	"time"

	"github.com/guttosm/trip-cost-service/internal/domain/model"
)

// DateLayout is the wire format for dates.
const DateLayout = "2006-01-02"

// MinNights is the policy minimum trip length.
const MinNights = 2

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// EstimateRequest represents the JSON request body for the estimate endpoint.
//
// Validation is a convenience for the caller: the estimator itself never
// faults on boundary zeros, but out-of-range input is rejected here so the
// caller learns about it instead of getting a silently odd estimate.
//
// @Description Request to compute a trip cost breakdown
// @Example {"nights": 2, "travelers": 2, "use_ferry": true, "extra_miles": 40, "rental_daily_rate": 55, "rental_fees_percent": 22, "lodging_nightly_rate": 150, "lodging_one_time_fees": 60, "gas_price_per_gallon": 4.5, "vehicle_mpg": 30, "park_entrance_fee": 30, "ferry_round_trip_cost": 50}
type EstimateRequest struct {
	// Nights is the number of nights. Minimum 2.
	Nights int `json:"nights" binding:"required,gte=2" example:"2" minimum:"2"`
	// Travelers is the number of people splitting costs. Minimum 1.
	Travelers int `json:"travelers" binding:"required,gte=1" example:"2" minimum:"1"`
	// UseFerry selects the ferry route variant.
	UseFerry bool `json:"use_ferry" example:"true"`
	// ExtraMiles adds detour driving to the base route.
	ExtraMiles float64 `json:"extra_miles" binding:"gte=0" example:"40"`
	// RentalDailyRate is the rental base rate in dollars per day.
	RentalDailyRate float64 `json:"rental_daily_rate" binding:"gte=0" example:"55"`
	// RentalFeesPercent is rental taxes and fees as a percent of the base.
	RentalFeesPercent float64 `json:"rental_fees_percent" binding:"gte=0" example:"22"`
	// LodgingNightlyRate is the average lodging rate in dollars per night.
	LodgingNightlyRate float64 `json:"lodging_nightly_rate" binding:"gte=0" example:"150"`
	// LodgingOneTimeFees is one-time lodging fees in dollars.
	LodgingOneTimeFees float64 `json:"lodging_one_time_fees" binding:"gte=0" example:"60"`
	// GasPricePerGallon is the fuel price in dollars per gallon.
	GasPricePerGallon float64 `json:"gas_price_per_gallon" binding:"gte=0" example:"4.5"`
	// VehicleMPG is the vehicle efficiency in miles per gallon. Zero is
	// accepted and yields a zero fuel cost.
	VehicleMPG float64 `json:"vehicle_mpg" binding:"gte=0" example:"30"`
	// ParkEntranceFee is the park entrance fee per vehicle in dollars.
	ParkEntranceFee float64 `json:"park_entrance_fee" binding:"gte=0" example:"30"`
	// FerryRoundTripCost is the estimated round-trip ferry total in dollars.
	FerryRoundTripCost float64 `json:"ferry_round_trip_cost" binding:"gte=0" example:"50"`
} // @name EstimateRequest

// Validate performs custom validation on the request.
// Returns an error if validation fails, nil otherwise.
func (r *EstimateRequest) Validate() error {
	if r.Nights < MinNights {
		return &ValidationError{Field: "nights", Message: fmt.Sprintf("must be at least %d", MinNights)}
	}
	if r.Travelers < 1 {
		return &ValidationError{Field: "travelers", Message: "must be at least 1"}
	}

	nonNegative := []struct {
		field string
		value float64
	}{
		{"extra_miles", r.ExtraMiles},
		{"rental_daily_rate", r.RentalDailyRate},
		{"rental_fees_percent", r.RentalFeesPercent},
		{"lodging_nightly_rate", r.LodgingNightlyRate},
		{"lodging_one_time_fees", r.LodgingOneTimeFees},
		{"gas_price_per_gallon", r.GasPricePerGallon},
		{"vehicle_mpg", r.VehicleMPG},
		{"park_entrance_fee", r.ParkEntranceFee},
		{"ferry_round_trip_cost", r.FerryRoundTripCost},
	}
	for _, f := range nonNegative {
		if f.value < 0 {
			return &ValidationError{Field: f.field, Message: "must not be negative"}
		}
	}

	return nil
}

// ToModel converts the request into immutable trip parameters.
func (r *EstimateRequest) ToModel() model.TripParameters {
	return model.TripParameters{
		Nights:             r.Nights,
		Travelers:          r.Travelers,
		UseFerry:           r.UseFerry,
		ExtraMiles:         r.ExtraMiles,
		RentalDailyRate:    r.RentalDailyRate,
		RentalFeesPercent:  r.RentalFeesPercent,
		LodgingNightlyRate: r.LodgingNightlyRate,
		LodgingOneTimeFees: r.LodgingOneTimeFees,
		GasPricePerGallon:  r.GasPricePerGallon,
		VehicleMPG:         r.VehicleMPG,
		ParkEntranceFee:    r.ParkEntranceFee,
		FerryRoundTripCost: r.FerryRoundTripCost,
	}
}

// ScenarioRequest represents one labeled scenario in a create, update or
// inline comparison payload.
//
// @Description A labeled trip candidate with a start date
// @Example {"label": "ferry weekend", "start_date": "2025-06-13", "parameters": {"nights": 2, "travelers": 2, "use_ferry": true}}
type ScenarioRequest struct {
	// Label is the display name for the scenario.
	Label string `json:"label" binding:"required" example:"ferry weekend"`
	// StartDate is the first trip day in YYYY-MM-DD form.
	StartDate string `json:"start_date" binding:"required" example:"2025-06-13"`
	// Parameters are the trip inputs for this candidate.
	Parameters EstimateRequest `json:"parameters" binding:"required"`
} // @name ScenarioRequest

// Validate performs custom validation on the scenario request.
func (r *ScenarioRequest) Validate() error {
	if r.Label == "" {
		return &ValidationError{Field: "label", Message: "is required"}
	}
	if _, err := time.Parse(DateLayout, r.StartDate); err != nil {
		return &ValidationError{Field: "start_date", Message: "must be a valid YYYY-MM-DD date"}
	}
	return r.Parameters.Validate()
}

// ToModel converts the request into a domain scenario.
// Validate must have been called first; an unparsable date yields an error here too.
func (r *ScenarioRequest) ToModel() (model.Scenario, error) {
	start, err := time.Parse(DateLayout, r.StartDate)
	if err != nil {
		return model.Scenario{}, &ValidationError{Field: "start_date", Message: "must be a valid YYYY-MM-DD date"}
	}

	return model.Scenario{
		Label:      r.Label,
		StartDate:  start,
		Parameters: r.Parameters.ToModel(),
	}, nil
}

// CompareRequest represents the JSON request body for the inline comparison
// endpoint. An empty scenario list is allowed and yields an empty table.
//
// @Description Request to compare trip scenarios side by side
type CompareRequest struct {
	// Scenarios are the candidates to compare, in user order.
	Scenarios []ScenarioRequest `json:"scenarios"`
} // @name CompareRequest

// Validate performs custom validation on every scenario in the request.
func (r *CompareRequest) Validate() error {
	for i := range r.Scenarios {
		if err := r.Scenarios[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// ToModel converts the request into domain scenarios, preserving order.
func (r *CompareRequest) ToModel() ([]model.Scenario, error) {
	scenarios := make([]model.Scenario, 0, len(r.Scenarios))
	for i := range r.Scenarios {
		s, err := r.Scenarios[i].ToModel()
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, s)
	}
	return scenarios, nil
}

// ExtractQuotesRequest represents the JSON request body for the quote
// amount extraction helper.
//
// @Description Pasted quote text to scan for dollar amounts
// @Example {"text": "Base rate $55.00/day, total due $201.30"}
type ExtractQuotesRequest struct {
	// Text is the pasted quote or listing text.
	Text string `json:"text" binding:"required" example:"Base rate $55.00/day, total due $201.30"`
} // @name ExtractQuotesRequest
