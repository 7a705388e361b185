package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/trip-cost-service/internal/domain/dto"
	"github.com/guttosm/trip-cost-service/internal/i18n"
	"github.com/guttosm/trip-cost-service/internal/metrics"
	"github.com/guttosm/trip-cost-service/internal/service"
)

const (
	// defaultForecastNights is used when the nights query parameter is absent.
	defaultForecastNights = 2
	// defaultLinkAdults is used when the adults query parameter is absent.
	defaultLinkAdults = 2
)

// PlanningHandler provides HTTP handlers for the trip planning helpers:
// weather forecast, booking deep links, the suggested itinerary, and
// quote text extraction.
type PlanningHandler struct {
	forecast    service.ForecastProvider
	linkBuilder service.DeepLinkBuilder
	itinerary   service.ItineraryProvider
	quotes      service.QuoteExtractor
	defaultCity string
}

// NewPlanningHandler creates a new PlanningHandler instance.
func NewPlanningHandler(
	forecast service.ForecastProvider,
	linkBuilder service.DeepLinkBuilder,
	itinerary service.ItineraryProvider,
	quotes service.QuoteExtractor,
	defaultCity string,
) *PlanningHandler {
	return &PlanningHandler{
		forecast:    forecast,
		linkBuilder: linkBuilder,
		itinerary:   itinerary,
		quotes:      quotes,
		defaultCity: defaultCity,
	}
}

// Forecast handles GET /api/forecast requests.
//
// @Summary      Daily weather forecast
// @Description  Returns one row per trip day for the fixed forecast point near Port Angeles. Forecast failures are not errors; an empty list means no forecast is available.
// @Tags         Planning
// @Produce      json
// @Param        start_date query string true "Trip start date (YYYY-MM-DD)"
// @Param        nights query int false "Number of nights" default(2)
// @Success      200 {object} dto.SuccessResponse "Forecast rows, possibly empty"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Router       /api/forecast [get]
func (h *PlanningHandler) Forecast(c *gin.Context) {
	builder := NewResponseBuilder(c)

	start, err := time.Parse(dto.DateLayout, c.Query("start_date"))
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationDateRange, err)
		return
	}

	nights := defaultForecastNights
	if raw := c.Query("nights"); raw != "" {
		nights, err = strconv.Atoi(raw)
		if err != nil || nights < dto.MinNights {
			builder.ErrorWithMessage(http.StatusBadRequest, "nights: must be a number of at least 2", err)
			return
		}
	}

	rows := h.forecast.DailyForecast(c.Request.Context(), start, nights)
	builder.SuccessOK(rows)
}

// Links handles GET /api/links requests.
//
// @Summary      Booking deep links
// @Description  Builds pre-filled search URLs for Airbnb, Booking.com, and Kayak car rental. Pure string construction; there is no guarantee the URLs resolve to results.
// @Tags         Planning
// @Produce      json
// @Param        city query string false "Destination city" default(Port Angeles)
// @Param        start_date query string true "Check-in date (YYYY-MM-DD)"
// @Param        end_date query string true "Check-out date (YYYY-MM-DD)"
// @Param        adults query int false "Number of adults" default(2)
// @Success      200 {object} dto.SuccessResponse "The three deep links"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Router       /api/links [get]
func (h *PlanningHandler) Links(c *gin.Context) {
	builder := NewResponseBuilder(c)

	start, err := time.Parse(dto.DateLayout, c.Query("start_date"))
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationDateRange, err)
		return
	}

	end, err := time.Parse(dto.DateLayout, c.Query("end_date"))
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationDateRange, err)
		return
	}

	if !end.After(start) {
		builder.ErrorWithMessage(http.StatusBadRequest, "end_date: must be after start_date", nil)
		return
	}

	city := c.Query("city")
	if city == "" {
		city = h.defaultCity
	}

	adults := defaultLinkAdults
	if raw := c.Query("adults"); raw != "" {
		adults, err = strconv.Atoi(raw)
		if err != nil || adults < 1 {
			builder.ErrorWithMessage(http.StatusBadRequest, "adults: must be a positive number", err)
			return
		}
	}

	builder.SuccessOK(h.linkBuilder.Build(city, start, end, adults))
}

// Itinerary handles GET /api/itinerary requests.
//
// @Summary      Suggested itinerary
// @Description  Returns the static day-by-day Olympic Peninsula itinerary together with planning reference links (ferry schedule, park fees, road conditions, tide tables).
// @Tags         Planning
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Itinerary and reference links"
// @Router       /api/itinerary [get]
func (h *PlanningHandler) Itinerary(c *gin.Context) {
	builder := NewResponseBuilder(c)
	builder.SuccessOK(h.itinerary.Itinerary())
}

// ExtractQuotes handles POST /api/quotes/extract requests.
//
// @Summary      Extract dollar amounts from quote text
// @Description  Pulls dollar amounts out of pasted booking-site text, deduplicates them, and returns the largest candidates first. An input with no amounts yields an empty list.
// @Tags         Planning
// @Accept       json
// @Produce      json
// @Param        request body dto.ExtractQuotesRequest true "Pasted quote text"
// @Success      200 {object} dto.SuccessResponse "Extracted amounts"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Router       /api/quotes/extract [post]
func (h *PlanningHandler) ExtractQuotes(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.ExtractQuotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	amounts := h.quotes.ExtractAmounts(req.Text)

	status := "success"
	if len(amounts) == 0 {
		status = "empty"
	}
	metrics.RecordQuoteExtraction(status)

	builder.SuccessOK(dto.QuoteAmountsResponse{Amounts: amounts})
}
