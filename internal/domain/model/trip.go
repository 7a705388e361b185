// Package model defines the core domain entities for the trip cost service.
package model

import "time"

// TripParameters holds every user-controlled input to a cost estimate.
// It is a value type: handlers construct it once and pass it by value,
// nothing in the service mutates it.
//
// @Description Trip parameters used to compute a cost breakdown
// @Example {"nights": 2, "travelers": 2, "use_ferry": true, "extra_miles": 40, "rental_daily_rate": 55, "rental_fees_percent": 22, "lodging_nightly_rate": 150, "lodging_one_time_fees": 60, "gas_price_per_gallon": 4.5, "vehicle_mpg": 30, "park_entrance_fee": 30, "ferry_round_trip_cost": 50}
type TripParameters struct {
	// Nights is the number of nights spent on the trip. Minimum 2 by policy;
	// the vehicle is billed for nights+1 rental days.
	Nights int `json:"nights" example:"2"`
	// Travelers is the number of people splitting the total.
	Travelers int `json:"travelers" example:"2"`
	// UseFerry selects the Seattle-Bainbridge ferry route variant.
	UseFerry bool `json:"use_ferry" example:"true"`
	// ExtraMiles adds detour and in-town driving on top of the base route.
	ExtraMiles float64 `json:"extra_miles" example:"40"`
	// RentalDailyRate is the rental car base rate in dollars per day.
	RentalDailyRate float64 `json:"rental_daily_rate" example:"55"`
	// RentalFeesPercent is rental taxes and fees as a percentage of the base.
	RentalFeesPercent float64 `json:"rental_fees_percent" example:"22"`
	// LodgingNightlyRate is the average lodging cost in dollars per night.
	LodgingNightlyRate float64 `json:"lodging_nightly_rate" example:"150"`
	// LodgingOneTimeFees covers cleaning, service and similar one-time charges.
	LodgingOneTimeFees float64 `json:"lodging_one_time_fees" example:"60"`
	// GasPricePerGallon is the fuel price in dollars per gallon.
	GasPricePerGallon float64 `json:"gas_price_per_gallon" example:"4.5"`
	// VehicleMPG is the vehicle fuel efficiency in miles per gallon.
	VehicleMPG float64 `json:"vehicle_mpg" example:"30"`
	// ParkEntranceFee is the NPS private-vehicle entrance fee in dollars.
	ParkEntranceFee float64 `json:"park_entrance_fee" example:"30"`
	// FerryRoundTripCost is the estimated round-trip ferry total (car + driver).
	FerryRoundTripCost float64 `json:"ferry_round_trip_cost" example:"50"`
}

// RentalDays returns the vehicle billing unit: nights plus the return day.
func (p TripParameters) RentalDays() int {
	return p.Nights + 1
}

// CostBreakdown is the fully itemized result of a cost estimate.
// It is derived from TripParameters on every call; it has no identity and
// no lifecycle beyond the call that produced it.
//
// @Description Itemized trip cost estimate
// @Example {"distance_miles": 400, "rental_base": 165, "rental_fees": 36.3, "fuel_gallons": 13.33, "fuel_cost": 60, "lodging_total": 360, "park_fee": 30, "ferry_cost": 50, "total": 701.3, "per_person": 350.65}
type CostBreakdown struct {
	// DistanceMiles is the planned driving distance for the whole trip.
	DistanceMiles float64 `json:"distance_miles" example:"400"`
	// RentalBase is the rental car base cost over all rental days.
	RentalBase float64 `json:"rental_base" example:"165"`
	// RentalFees is the rental taxes-and-fees surcharge.
	RentalFees float64 `json:"rental_fees" example:"36.3"`
	// FuelGallons is the fuel volume needed for the planned distance.
	FuelGallons float64 `json:"fuel_gallons" example:"13.33"`
	// FuelCost is the fuel cost for the planned distance.
	FuelCost float64 `json:"fuel_cost" example:"60"`
	// LodgingTotal is nightly lodging plus one-time fees.
	LodgingTotal float64 `json:"lodging_total" example:"360"`
	// ParkFee is the park entrance fee, echoed from the input.
	ParkFee float64 `json:"park_fee" example:"30"`
	// FerryCost is the ferry total, zero when the ferry is not used.
	FerryCost float64 `json:"ferry_cost" example:"50"`
	// Total is the sum of the six cost components above (distance and
	// gallons are informational, not components).
	Total float64 `json:"total" example:"701.3"`
	// PerPerson is Total divided by travelers, or Total when travelers is zero.
	PerPerson float64 `json:"per_person" example:"350.65"`
}

// ComponentSum returns the sum of the six itemized cost components.
// It always equals Total; tests rely on the identity to catch drift.
func (b CostBreakdown) ComponentSum() float64 {
	return b.RentalBase + b.RentalFees + b.FuelCost + b.LodgingTotal + b.ParkFee + b.FerryCost
}

// Scenario is one fully parameterized trip candidate used for side-by-side
// comparison: a label, a start date, and the parameters to estimate.
//
// @Description A labeled trip candidate for comparison
type Scenario struct {
	// ID identifies a stored scenario. Empty for inline scenarios.
	ID string `json:"id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Label is the user-chosen display name.
	Label string `json:"label" example:"ferry weekend"`
	// StartDate is the first day of the trip.
	StartDate time.Time `json:"start_date" example:"2025-06-13T00:00:00Z"`
	// Parameters are the trip inputs for this candidate.
	Parameters TripParameters `json:"parameters"`
}

// EndDate returns the checkout day: start date plus nights plus one day.
func (s Scenario) EndDate() time.Time {
	return s.StartDate.AddDate(0, 0, s.Parameters.Nights+1)
}

// ComparisonRow is one line of the scenario comparison table. Dates are
// carried as values; formatting is the caller's concern.
//
// @Description One row of the scenario comparison table, cheapest first
type ComparisonRow struct {
	Label         string    `json:"label" example:"ferry weekend"`
	StartDate     time.Time `json:"start_date"`
	EndDate       time.Time `json:"end_date"`
	DistanceMiles float64   `json:"distance_miles" example:"400"`
	Total         float64   `json:"total" example:"701.3"`
	PerPerson     float64   `json:"per_person" example:"350.65"`
}
