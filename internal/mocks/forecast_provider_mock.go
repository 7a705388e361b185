// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/trip-cost-service/internal/domain/model"
)

type MockForecastProvider struct {
	mock.Mock
}

func (m *MockForecastProvider) DailyForecast(ctx context.Context, start time.Time, nights int) []model.DailyForecast {
	args := m.Called(ctx, start, nights)
	if args.Get(0) == nil {
		return []model.DailyForecast{}
	}
	return args.Get(0).([]model.DailyForecast)
}
