package model

// BookingLinks carries pre-filled search URLs for the three supported
// third-party sites. The URLs are plain string construction; nothing
// guarantees they resolve to results.
//
// @Description Deep links into third-party booking search pages
type BookingLinks struct {
	// Airbnb is a stays search pre-filled with city, dates and adults.
	Airbnb string `json:"airbnb"`
	// Booking is a booking.com search pre-filled with the same parameters.
	Booking string `json:"booking"`
	// KayakCars is a rental car search for the same date range.
	KayakCars string `json:"kayak_cars"`
}

// ItineraryDay is one day of the suggested itinerary.
type ItineraryDay struct {
	Day        int      `json:"day" example:"1"`
	Title      string   `json:"title" example:"Seattle to Port Angeles / Lake Crescent"`
	Highlights []string `json:"highlights"`
}

// ReferenceLink points at an official planning resource (ferries, park
// fees, tides). Opened manually by the user.
type ReferenceLink struct {
	Name string `json:"name" example:"WSDOT Ferries"`
	URL  string `json:"url" example:"https://wsdot.wa.gov/travel/washington-state-ferries"`
}

// Itinerary is the static suggested plan plus its reference links.
type Itinerary struct {
	Days       []ItineraryDay  `json:"days"`
	References []ReferenceLink `json:"references"`
}
