package advisor

import (
	"errors"
	"strings"

	"google.golang.org/api/googleapi"
)

// Fixed user-safe strings returned when the model provider fails. No retry
// or backoff: a failed call surfaces its fallback immediately.
const (
	authFallback      = "There seems to be an issue with the AI service authentication. Please check the API key configuration."
	rateLimitFallback = "The AI service is currently experiencing high demand. Please try again in a few moments."
	genericFallback   = "I'm sorry, I encountered an error while processing your request. Please try again later."
	emptyFallback     = "I apologize, but I couldn't generate a response. Please try again."
)

// fallbackForProviderError maps a provider error to one of the fixed
// user-facing strings.
func fallbackForProviderError(err error) string {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		switch gerr.Code {
		case 401, 403:
			return authFallback
		case 429:
			return rateLimitFallback
		}
	}

	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "api key") {
		return authFallback
	}
	if strings.Contains(msg, "rate limit") || strings.Contains(msg, "quota") || strings.Contains(msg, "429") {
		return rateLimitFallback
	}
	return genericFallback
}
