// Code generated manually. DO NOT EDIT.

package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/guttosm/trip-cost-service/internal/domain/model"
)

type MockTripEstimator struct {
	mock.Mock
}

func (m *MockTripEstimator) Estimate(params model.TripParameters) model.CostBreakdown {
	args := m.Called(params)
	return args.Get(0).(model.CostBreakdown)
}
