package advisor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBookingArgs_Valid(t *testing.T) {
	in, err := parseBookingArgs(map[string]any{
		"destination":       "saturn",
		"departureDate":     "2046-01-15",
		"returnDate":        "2046-03-01",
		"travelClass":       "economy",
		"numberOfTravelers": float64(4),
	})
	require.NoError(t, err)

	assert.Equal(t, "saturn", in.Destination)
	assert.Equal(t, "economy", in.TravelClass)
	assert.Equal(t, 4, in.NumberOfTravelers)
	assert.Equal(t, time.Date(2046, 1, 15, 0, 0, 0, 0, time.UTC), in.DepartureDate)
	require.NotNil(t, in.ReturnDate)
	assert.Equal(t, time.Date(2046, 3, 1, 0, 0, 0, 0, time.UTC), *in.ReturnDate)
}

func TestParseBookingArgs_ReturnDateOptional(t *testing.T) {
	in, err := parseBookingArgs(map[string]any{
		"destination":       "earth",
		"departureDate":     "2046-01-15",
		"travelClass":       "luxury",
		"numberOfTravelers": float64(1),
	})
	require.NoError(t, err)
	assert.Nil(t, in.ReturnDate)
}

func TestParseBookingArgs_RejectsFreeTextDestination(t *testing.T) {
	_, err := parseBookingArgs(map[string]any{
		"destination":       "the red planet",
		"departureDate":     "2046-01-15",
		"travelClass":       "vip",
		"numberOfTravelers": float64(1),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "destination")
}

func TestParseBookingArgs_RejectsUnknownClass(t *testing.T) {
	_, err := parseBookingArgs(map[string]any{
		"destination":       "mars",
		"departureDate":     "2046-01-15",
		"travelClass":       "business",
		"numberOfTravelers": float64(1),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "travel class")
}

func TestParseBookingArgs_RejectsFreeTextDate(t *testing.T) {
	_, err := parseBookingArgs(map[string]any{
		"destination":       "mars",
		"departureDate":     "next summer",
		"travelClass":       "vip",
		"numberOfTravelers": float64(1),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "departureDate")
}

func TestParseBookingArgs_TravelerBounds(t *testing.T) {
	base := func(n any) map[string]any {
		return map[string]any{
			"destination":       "mars",
			"departureDate":     "2046-01-15",
			"travelClass":       "vip",
			"numberOfTravelers": n,
		}
	}

	_, err := parseBookingArgs(base(float64(0)))
	assert.Error(t, err)

	_, err = parseBookingArgs(base(float64(11)))
	assert.Error(t, err)

	_, err = parseBookingArgs(base(nil))
	assert.Error(t, err)

	in, err := parseBookingArgs(base(float64(10)))
	require.NoError(t, err)
	assert.Equal(t, 10, in.NumberOfTravelers)
}

func TestParseBookingArgs_MissingFields(t *testing.T) {
	_, err := parseBookingArgs(map[string]any{})
	assert.Error(t, err)
}
