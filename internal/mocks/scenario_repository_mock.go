// Code generated manually. DO NOT EDIT.

package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/guttosm/trip-cost-service/internal/domain/model"
)

type MockScenarioRepository struct {
	mock.Mock
}

func (m *MockScenarioRepository) Create(s model.Scenario) model.Scenario {
	args := m.Called(s)
	return args.Get(0).(model.Scenario)
}

func (m *MockScenarioRepository) List() []model.Scenario {
	args := m.Called()
	if args.Get(0) == nil {
		return []model.Scenario{}
	}
	return args.Get(0).([]model.Scenario)
}

func (m *MockScenarioRepository) Get(id string) (model.Scenario, error) {
	args := m.Called(id)
	return args.Get(0).(model.Scenario), args.Error(1)
}

func (m *MockScenarioRepository) Update(id string, s model.Scenario) (model.Scenario, error) {
	args := m.Called(id, s)
	return args.Get(0).(model.Scenario), args.Error(1)
}

func (m *MockScenarioRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}
