package service

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/guttosm/trip-cost-service/internal/domain/model"
)

const (
	airbnbBaseURL  = "https://www.airbnb.com/s"
	bookingBaseURL = "https://www.booking.com/searchresults.html"
	kayakBaseURL   = "https://www.kayak.com/cars"
)

// DeepLinkBuilder defines the interface for building third-party search links.
type DeepLinkBuilder interface {
	// Build returns pre-filled search URLs for the given city, date range
	// and party size. Pure string construction, no network access.
	Build(city string, start, end time.Time, adults int) model.BookingLinks
}

// DeepLinkBuilderService implements DeepLinkBuilder for Airbnb, Booking.com
// and Kayak. The URLs are convenience deep links only; the sites may change
// their query shapes at any time and nothing here validates the result.
type DeepLinkBuilderService struct{}

// NewDeepLinkBuilderService creates a new DeepLinkBuilderService.
func NewDeepLinkBuilderService() *DeepLinkBuilderService {
	return &DeepLinkBuilderService{}
}

// Build returns the three search URLs for the given trip window.
func (s *DeepLinkBuilderService) Build(city string, start, end time.Time, adults int) model.BookingLinks {
	checkin := start.Format("2006-01-02")
	checkout := end.Format("2006-01-02")

	return model.BookingLinks{
		Airbnb:    airbnbURL(city, checkin, checkout, adults),
		Booking:   bookingURL(city, checkin, checkout, adults),
		KayakCars: kayakCarsURL(city, checkin, checkout),
	}
}

func airbnbURL(city, checkin, checkout string, adults int) string {
	q := url.Values{}
	q.Set("checkin", checkin)
	q.Set("checkout", checkout)
	q.Set("adults", strconv.Itoa(adults))

	return fmt.Sprintf("%s/%s/homes?%s", airbnbBaseURL, url.PathEscape(city), q.Encode())
}

func bookingURL(city, checkin, checkout string, adults int) string {
	q := url.Values{}
	q.Set("ss", city)
	q.Set("checkin", checkin)
	q.Set("checkout", checkout)
	q.Set("group_adults", strconv.Itoa(adults))

	return bookingBaseURL + "?" + q.Encode()
}

func kayakCarsURL(city, checkin, checkout string) string {
	// Kayak uses path segments, with spaces as dashes in the place name.
	place := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(city)), " ", "-")
	return fmt.Sprintf("%s/%s/%s/%s", kayakBaseURL, url.PathEscape(place), checkin, checkout)
}
