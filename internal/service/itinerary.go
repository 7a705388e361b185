package service

import (
	"github.com/guttosm/trip-cost-service/internal/domain/model"
)

// ItineraryProvider defines the interface for the suggested itinerary.
type ItineraryProvider interface {
	Itinerary() model.Itinerary
}

// ItineraryService serves the static 3-day loop itinerary. The plan avoids
// anything that needs permit logistics; it is display content, not data the
// estimator consumes.
type ItineraryService struct{}

// NewItineraryService creates a new ItineraryService.
func NewItineraryService() *ItineraryService {
	return &ItineraryService{}
}

// Itinerary returns the suggested day-by-day plan and its reference links.
func (s *ItineraryService) Itinerary() model.Itinerary {
	return model.Itinerary{
		Days: []model.ItineraryDay{
			{
				Day:   1,
				Title: "Seattle to Port Angeles / Lake Crescent",
				Highlights: []string{
					"Optional ferry to Bainbridge, then drive US-104 to US-101",
					"Easy stop: Marymere Falls (1.8 mi round trip)",
					"Picnic at Lake Crescent",
				},
			},
			{
				Day:   2,
				Title: "Hoh Rain Forest and Rialto / Second Beach",
				Highlights: []string{
					"Hall of Mosses (0.8 mi) and Spruce Nature Trail (1.2 mi)",
					"Tide-timed beach walk near La Push (plan around low tide)",
				},
			},
			{
				Day:   3,
				Title: "Hurricane Ridge, then back to Seattle",
				Highlights: []string{
					"Short walks at Hurricane Ridge (Cirque Rim, Big Meadow)",
					"Drive back via Tacoma (skip the ferry if timing is tight)",
				},
			},
		},
		References: []model.ReferenceLink{
			{Name: "WSDOT Ferries", URL: "https://wsdot.wa.gov/travel/washington-state-ferries"},
			{Name: "NPS Olympic Fees", URL: "https://www.nps.gov/olym/planyourvisit/fees.htm"},
			{Name: "NPS Olympic Conditions", URL: "https://www.nps.gov/olym/planyourvisit/conditions.htm"},
			{Name: "NOAA Tides (La Push)", URL: "https://tidesandcurrents.noaa.gov/noaatidepredictions.html?id=9442396"},
		},
	}
}
