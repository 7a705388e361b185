package service

import (
	"sort"

	"github.com/guttosm/trip-cost-service/internal/domain/model"
)

// ScenarioComparator defines the interface for scenario comparison.
type ScenarioComparator interface {
	// Compare estimates every scenario and returns the comparison table
	// sorted ascending by total. Input order is preserved among equal totals.
	Compare(scenarios []model.Scenario) []model.ComparisonRow
}

// ScenarioComparatorService implements ScenarioComparator by applying a
// TripEstimator to each scenario. It holds no state between calls and never
// mutates or retains the input slice.
type ScenarioComparatorService struct {
	estimator TripEstimator
}

// NewScenarioComparatorService creates a new ScenarioComparatorService.
func NewScenarioComparatorService(estimator TripEstimator) *ScenarioComparatorService {
	return &ScenarioComparatorService{estimator: estimator}
}

// Compare estimates every scenario and returns rows sorted ascending by
// total. An empty input yields an empty table, not an error.
func (s *ScenarioComparatorService) Compare(scenarios []model.Scenario) []model.ComparisonRow {
	rows := make([]model.ComparisonRow, 0, len(scenarios))

	for _, sc := range scenarios {
		breakdown := s.estimator.Estimate(sc.Parameters)
		rows = append(rows, model.ComparisonRow{
			Label:         sc.Label,
			StartDate:     sc.StartDate,
			EndDate:       sc.EndDate(),
			DistanceMiles: breakdown.DistanceMiles,
			Total:         breakdown.Total,
			PerPerson:     breakdown.PerPerson,
		})
	}

	// Stable sort keeps input order for equal totals.
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Total < rows[j].Total
	})

	return rows
}
