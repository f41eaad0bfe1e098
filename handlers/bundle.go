package handlers

import (
	"stellartours/utils"

	"github.com/gin-gonic/gin"
)

// HandlerBundle collects every endpoint handler plus the session store the
// auth middleware needs. It is assembled once in main and handed to the
// route registry.
type HandlerBundle struct {
	Sessions utils.SessionStore

	// Auth endpoints.
	RegisterHandler gin.HandlerFunc
	LoginHandler    gin.HandlerFunc
	LogoutHandler   gin.HandlerFunc
	MeHandler       gin.HandlerFunc

	// Booking endpoints.
	ListBookingsHandler  gin.HandlerFunc
	GetBookingHandler    gin.HandlerFunc
	CreateBookingHandler gin.HandlerFunc
	UpdateBookingHandler gin.HandlerFunc
	DeleteBookingHandler gin.HandlerFunc

	// Catalog endpoints.
	GetAccommodationsHandler gin.HandlerFunc
	GetDestinationsHandler   gin.HandlerFunc
	GetPackagesHandler       gin.HandlerFunc

	// Chat endpoints.
	ChatMessageHandler      gin.HandlerFunc
	GetChatHistoryHandler   gin.HandlerFunc
	ClearChatHistoryHandler gin.HandlerFunc
}
