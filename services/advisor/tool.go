package advisor

import (
	"fmt"
	"time"

	"stellartours/models"

	genai "github.com/google/generative-ai-go/genai"
)

const createBookingToolName = "createBooking"

const toolDateFormat = "2006-01-02"

var validDestinations = []string{"mercury", "venus", "earth", "mars", "saturn"}
var validTravelClasses = []string{"economy", "luxury", "vip"}

// createBookingTool is the single tool declared to the model. Destination
// and travel class are closed enums and dates are typed strings; the price
// and the owning user are never model-supplied.
var createBookingTool = &genai.Tool{
	FunctionDeclarations: []*genai.FunctionDeclaration{
		{
			Name:        createBookingToolName,
			Description: "Create a confirmed trip booking for the current user. The total price is computed server-side from the destination, travel class and traveler count.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"destination": {
						Type: genai.TypeString,
						Enum: validDestinations,
					},
					"departureDate": {
						Type:        genai.TypeString,
						Description: "Departure date in YYYY-MM-DD format",
					},
					"returnDate": {
						Type:        genai.TypeString,
						Description: "Optional return date in YYYY-MM-DD format",
					},
					"travelClass": {
						Type: genai.TypeString,
						Enum: validTravelClasses,
					},
					"numberOfTravelers": {
						Type:        genai.TypeInteger,
						Description: "Number of travelers, 1 to 10",
					},
				},
				Required: []string{"destination", "departureDate", "travelClass", "numberOfTravelers"},
			},
		},
	},
}

// parseBookingArgs validates the model-supplied tool arguments against the
// declared schema. Free-text destinations and classes are rejected here so
// the enum contract holds even when the model ignores it.
func parseBookingArgs(args map[string]any) (models.CreateBookingInput, error) {
	var in models.CreateBookingInput

	destination, _ := args["destination"].(string)
	if !contains(validDestinations, destination) {
		return in, fmt.Errorf("unknown destination %q, expected one of %v", destination, validDestinations)
	}
	in.Destination = destination

	travelClass, _ := args["travelClass"].(string)
	if !contains(validTravelClasses, travelClass) {
		return in, fmt.Errorf("unknown travel class %q, expected one of %v", travelClass, validTravelClasses)
	}
	in.TravelClass = travelClass

	departureRaw, _ := args["departureDate"].(string)
	departureDate, err := time.Parse(toolDateFormat, departureRaw)
	if err != nil {
		return in, fmt.Errorf("invalid departureDate %q, expected YYYY-MM-DD", departureRaw)
	}
	in.DepartureDate = departureDate

	if returnRaw, ok := args["returnDate"].(string); ok && returnRaw != "" {
		returnDate, err := time.Parse(toolDateFormat, returnRaw)
		if err != nil {
			return in, fmt.Errorf("invalid returnDate %q, expected YYYY-MM-DD", returnRaw)
		}
		in.ReturnDate = &returnDate
	}

	travelers := toInt(args["numberOfTravelers"])
	if travelers < 1 || travelers > 10 {
		return in, fmt.Errorf("numberOfTravelers must be between 1 and 10, got %d", travelers)
	}
	in.NumberOfTravelers = travelers

	return in, nil
}

// executeCreateBooking runs the tool against the booking service on behalf
// of userID and returns the tool-result payload handed back to the model.
// Validation and execution errors are reported to the model rather than
// aborting the conversation.
func (s *DefaultAdvisorService) executeCreateBooking(userID string, args map[string]any) map[string]any {
	in, err := parseBookingArgs(args)
	if err != nil {
		return map[string]any{"error": err.Error()}
	}

	b, err := s.BookingSvc.CreateBooking(userID, in)
	if err != nil {
		return map[string]any{"error": "failed to create booking"}
	}

	confirmation := fmt.Sprintf("Booking #%d confirmed: %s, departing %s, %d traveler(s), %s class, total price %.0f.",
		b.ID, b.Destination, b.DepartureDate.Format(toolDateFormat), b.NumberOfTravelers, b.TravelClass, b.Price)

	return map[string]any{
		"bookingId":    b.ID,
		"status":       b.Status,
		"price":        b.Price,
		"confirmation": confirmation,
	}
}

func contains(values []string, v string) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}

func toInt(v any) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	case int64:
		return int(n)
	default:
		return 0
	}
}
