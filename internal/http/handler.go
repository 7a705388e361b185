package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/trip-cost-service/internal/domain/dto"
	"github.com/guttosm/trip-cost-service/internal/i18n"
	"github.com/guttosm/trip-cost-service/internal/metrics"
	"github.com/guttosm/trip-cost-service/internal/service"
)

// Handler provides HTTP handlers for trip estimation routes.
type Handler struct {
	estimator  service.TripEstimator
	comparator service.ScenarioComparator
}

// NewHandler creates a new Handler instance.
func NewHandler(estimator service.TripEstimator, comparator service.ScenarioComparator) *Handler {
	return &Handler{
		estimator:  estimator,
		comparator: comparator,
	}
}

// Estimate handles POST /api/estimate requests.
//
// @Summary      Estimate trip cost
// @Description  Computes a deterministic cost breakdown for a single set of trip parameters. The breakdown covers car rental, fuel, lodging, park entrance, and the optional ferry crossing, plus the total and per-person split. Supports idempotency via Idempotency-Key header.
// @Tags         Trips
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.EstimateRequest true "Trip parameters"
// @Success      200 {object} dto.SuccessResponse "Cost breakdown"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/estimate [post]
func (h *Handler) Estimate(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.EstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if err := req.Validate(); err != nil {
		if verr, ok := err.(*dto.ValidationError); ok {
			metrics.RecordEstimation(0, "validation_error")
			builder.ErrorWithMessage(http.StatusBadRequest, verr.Error(), err)
		} else {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		}
		return
	}

	start := time.Now()
	breakdown := h.estimator.Estimate(req.ToModel())

	metrics.RecordEstimation(time.Since(start), "success")
	builder.SuccessOK(breakdown)
}

// Compare handles POST /api/compare requests.
//
// @Summary      Compare trip scenarios
// @Description  Estimates every scenario in the request and returns one comparison row per scenario, sorted by total cost ascending. Scenarios with equal totals keep their input order. An empty scenario list yields an empty table.
// @Tags         Trips
// @Accept       json
// @Produce      json
// @Param        request body dto.CompareRequest true "Scenarios to compare"
// @Success      200 {object} dto.SuccessResponse "Comparison table"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/compare [post]
func (h *Handler) Compare(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if err := req.Validate(); err != nil {
		if verr, ok := err.(*dto.ValidationError); ok {
			metrics.RecordComparison(0, "validation_error")
			builder.ErrorWithMessage(http.StatusBadRequest, verr.Error(), err)
		} else {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		}
		return
	}

	scenarios, err := req.ToModel()
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationDateRange, err)
		return
	}

	rows := h.comparator.Compare(scenarios)

	metrics.RecordComparison(len(scenarios), "success")
	builder.SuccessOK(dto.NewComparisonRows(rows))
}
