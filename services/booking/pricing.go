package booking

import "strings"

// Base prices per destination. Unknown destinations fall back to
// defaultBasePrice so a booking can still be priced.
var destinationBasePrices = map[string]float64{
	"mercury": 200000,
	"venus":   250000,
	"earth":   100000,
	"mars":    300000,
	"saturn":  600000,
}

// Price multipliers per travel class.
var classMultipliers = map[string]float64{
	"economy": 1,
	"luxury":  1.5,
	"vip":     2.5,
}

const (
	defaultBasePrice  = 200000
	defaultMultiplier = 1
)

// DestinationBasePrice returns the base price for a destination.
func DestinationBasePrice(destination string) float64 {
	if price, ok := destinationBasePrices[strings.ToLower(destination)]; ok {
		return price
	}
	return defaultBasePrice
}

// ClassMultiplier returns the price multiplier for a travel class.
func ClassMultiplier(travelClass string) float64 {
	if m, ok := classMultipliers[strings.ToLower(travelClass)]; ok {
		return m
	}
	return defaultMultiplier
}

// CalculatePrice computes the total trip price. Both the booking form path
// and the advisor tool path price through here; the result is fixed at
// creation time and never recomputed on read.
func CalculatePrice(destination, travelClass string, numberOfTravelers int) float64 {
	return DestinationBasePrice(destination) * ClassMultiplier(travelClass) * float64(numberOfTravelers)
}
