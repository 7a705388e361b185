package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/trip-cost-service/internal/domain/dto"
	"github.com/guttosm/trip-cost-service/internal/i18n"
	"github.com/guttosm/trip-cost-service/internal/metrics"
	"github.com/guttosm/trip-cost-service/internal/repository"
	"github.com/guttosm/trip-cost-service/internal/service"
)

// ScenarioHandler provides HTTP handlers for the stored scenario collection.
type ScenarioHandler struct {
	repo       repository.ScenarioRepository
	comparator service.ScenarioComparator
}

// NewScenarioHandler creates a new ScenarioHandler instance.
func NewScenarioHandler(repo repository.ScenarioRepository, comparator service.ScenarioComparator) *ScenarioHandler {
	return &ScenarioHandler{
		repo:       repo,
		comparator: comparator,
	}
}

// bindScenario binds and validates a scenario request body.
// Returns false when a response has already been written.
func (h *ScenarioHandler) bindScenario(c *gin.Context, builder *ResponseBuilder) (dto.ScenarioRequest, bool) {
	var req dto.ScenarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return req, false
	}

	if err := req.Validate(); err != nil {
		if verr, ok := err.(*dto.ValidationError); ok {
			builder.ErrorWithMessage(http.StatusBadRequest, verr.Error(), err)
		} else {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		}
		return req, false
	}

	return req, true
}

// CreateScenario handles POST /api/scenarios requests.
//
// @Summary      Create a scenario
// @Description  Stores a labeled scenario (trip parameters plus start date) in the in-process collection and returns it with its assigned id.
// @Tags         Scenarios
// @Accept       json
// @Produce      json
// @Param        request body dto.ScenarioRequest true "Scenario to store"
// @Success      201 {object} dto.SuccessResponse "Stored scenario"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/scenarios [post]
func (h *ScenarioHandler) CreateScenario(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, ok := h.bindScenario(c, builder)
	if !ok {
		return
	}

	scenario, err := req.ToModel()
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationDateRange, err)
		return
	}

	stored := h.repo.Create(scenario)
	builder.SuccessCreated(stored)
}

// ListScenarios handles GET /api/scenarios requests.
//
// @Summary      List scenarios
// @Description  Returns all stored scenarios in insertion order.
// @Tags         Scenarios
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Stored scenarios"
// @Router       /api/scenarios [get]
func (h *ScenarioHandler) ListScenarios(c *gin.Context) {
	builder := NewResponseBuilder(c)
	builder.SuccessOK(h.repo.List())
}

// GetScenario handles GET /api/scenarios/:id requests.
//
// @Summary      Fetch a scenario
// @Description  Returns a single stored scenario by id.
// @Tags         Scenarios
// @Produce      json
// @Param        id path string true "Scenario id"
// @Success      200 {object} dto.SuccessResponse "Stored scenario"
// @Failure      404 {object} dto.ErrorResponse "Not found"
// @Router       /api/scenarios/{id} [get]
func (h *ScenarioHandler) GetScenario(c *gin.Context) {
	builder := NewResponseBuilder(c)

	scenario, err := h.repo.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrScenarioNotFound) {
			builder.Error(http.StatusNotFound, i18n.ErrKeyScenarioNotFound, err)
		} else {
			builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		}
		return
	}

	builder.SuccessOK(scenario)
}

// UpdateScenario handles PUT /api/scenarios/:id requests.
//
// @Summary      Replace a scenario
// @Description  Replaces the stored scenario with the given id. The id and collection position are preserved.
// @Tags         Scenarios
// @Accept       json
// @Produce      json
// @Param        id path string true "Scenario id"
// @Param        request body dto.ScenarioRequest true "Replacement scenario"
// @Success      200 {object} dto.SuccessResponse "Updated scenario"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      404 {object} dto.ErrorResponse "Not found"
// @Router       /api/scenarios/{id} [put]
func (h *ScenarioHandler) UpdateScenario(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, ok := h.bindScenario(c, builder)
	if !ok {
		return
	}

	scenario, err := req.ToModel()
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationDateRange, err)
		return
	}

	updated, err := h.repo.Update(c.Param("id"), scenario)
	if err != nil {
		if errors.Is(err, repository.ErrScenarioNotFound) {
			builder.Error(http.StatusNotFound, i18n.ErrKeyScenarioNotFound, err)
		} else {
			builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		}
		return
	}

	builder.SuccessOK(updated)
}

// DeleteScenario handles DELETE /api/scenarios/:id requests.
//
// @Summary      Remove a scenario
// @Description  Removes a stored scenario by id.
// @Tags         Scenarios
// @Param        id path string true "Scenario id"
// @Success      204 "Scenario removed"
// @Failure      404 {object} dto.ErrorResponse "Not found"
// @Router       /api/scenarios/{id} [delete]
func (h *ScenarioHandler) DeleteScenario(c *gin.Context) {
	builder := NewResponseBuilder(c)

	if err := h.repo.Delete(c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrScenarioNotFound) {
			builder.Error(http.StatusNotFound, i18n.ErrKeyScenarioNotFound, err)
		} else {
			builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		}
		return
	}

	builder.SuccessNoContent()
}

// Comparison handles GET /api/scenarios/comparison requests.
//
// @Summary      Compare stored scenarios
// @Description  Runs the comparison over the whole stored collection and returns one row per scenario, sorted by total cost ascending. An empty collection yields an empty table.
// @Tags         Scenarios
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Comparison table"
// @Router       /api/scenarios/comparison [get]
func (h *ScenarioHandler) Comparison(c *gin.Context) {
	builder := NewResponseBuilder(c)

	scenarios := h.repo.List()
	rows := h.comparator.Compare(scenarios)

	metrics.RecordComparison(len(scenarios), "success")
	builder.SuccessOK(dto.NewComparisonRows(rows))
}
