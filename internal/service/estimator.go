// Package service implements the business logic of the trip cost service.
package service

import (
	"github.com/guttosm/trip-cost-service/internal/domain/model"
)

// Base round-trip mileage for the Seattle to Olympic National Park loop.
// The ferry variant crosses at Bainbridge each way and shortens the drive;
// the all-road variant goes via Tacoma both ways. The values are route
// assumptions, not user input, and are kept overridable through options.
const (
	// DefaultBaseMilesFerry is the round-trip distance using the ferry.
	DefaultBaseMilesFerry = 360.0
	// DefaultBaseMilesNoFerry is the round-trip distance via Tacoma.
	DefaultBaseMilesNoFerry = 420.0
)

// TripEstimator defines the interface for cost estimation.
type TripEstimator interface {
	// Estimate computes the itemized cost breakdown for the given parameters.
	Estimate(params model.TripParameters) model.CostBreakdown
}

// EstimatorOption configures a TripEstimatorService.
type EstimatorOption func(*TripEstimatorService)

// TripEstimatorService implements TripEstimator as a pure function of its
// input: no I/O, no retained state, identical input yields identical output.
// Boundary zeros (no travelers, zero MPG) produce defined zero results for
// the affected field instead of a division fault.
type TripEstimatorService struct {
	baseMilesFerry   float64
	baseMilesNoFerry float64
}

// NewTripEstimatorService creates a new TripEstimatorService with the given options.
func NewTripEstimatorService(opts ...EstimatorOption) *TripEstimatorService {
	s := &TripEstimatorService{
		baseMilesFerry:   DefaultBaseMilesFerry,
		baseMilesNoFerry: DefaultBaseMilesNoFerry,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// WithBaseMiles overrides the base round-trip mileage for both route variants.
// Non-positive values are ignored and the defaults kept.
func WithBaseMiles(ferry, noFerry float64) EstimatorOption {
	return func(s *TripEstimatorService) {
		if ferry > 0 {
			s.baseMilesFerry = ferry
		}
		if noFerry > 0 {
			s.baseMilesNoFerry = noFerry
		}
	}
}

// Estimate computes the itemized cost breakdown for the given parameters.
func (s *TripEstimatorService) Estimate(params model.TripParameters) model.CostBreakdown {
	distance := s.baseMilesNoFerry
	if params.UseFerry {
		distance = s.baseMilesFerry
	}
	distance += params.ExtraMiles

	var gallons, fuelCost float64
	if params.VehicleMPG > 0 {
		gallons = distance / params.VehicleMPG
		fuelCost = gallons * params.GasPricePerGallon
	}

	rentalBase := params.RentalDailyRate * float64(params.RentalDays())
	rentalFees := rentalBase * params.RentalFeesPercent / 100
	lodgingTotal := params.LodgingNightlyRate*float64(params.Nights) + params.LodgingOneTimeFees

	var ferryCost float64
	if params.UseFerry {
		ferryCost = params.FerryRoundTripCost
	}

	total := rentalBase + rentalFees + fuelCost + lodgingTotal + params.ParkEntranceFee + ferryCost

	perPerson := total
	if params.Travelers > 0 {
		perPerson = total / float64(params.Travelers)
	}

	return model.CostBreakdown{
		DistanceMiles: distance,
		RentalBase:    rentalBase,
		RentalFees:    rentalFees,
		FuelGallons:   gallons,
		FuelCost:      fuelCost,
		LodgingTotal:  lodgingTotal,
		ParkFee:       params.ParkEntranceFee,
		FerryCost:     ferryCost,
		Total:         total,
		PerPerson:     perPerson,
	}
}
