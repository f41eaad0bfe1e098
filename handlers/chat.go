package handlers

import (
	"net/http"

	"stellartours/models"
	"stellartours/services/advisor"
	"stellartours/utils"

	"github.com/gin-gonic/gin"
)

// guestUserID identifies unauthenticated chat callers. Guest turns are
// never persisted.
const guestUserID = "guest"

// ChatHandler serves the travel advisor endpoints.
type ChatHandler struct {
	Advisor advisor.AdvisorService
}

func NewChatHandler(svc advisor.AdvisorService) *ChatHandler {
	return &ChatHandler{Advisor: svc}
}

// ChatMessageHandler handles POST /api/chat. Guests are allowed; history
// is only persisted for authenticated callers.
func (h *ChatHandler) ChatMessageHandler(c *gin.Context) {
	var req struct {
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Message is required"})
		return
	}

	userID := guestUserID
	persist := false
	if username := c.GetString("username"); username != "" {
		userID = username
		persist = true
	}

	response, err := h.Advisor.Chat(c.Request.Context(), userID, persist, req.Message)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to generate response", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"response": response})
}

// GetChatHistoryHandler handles GET /api/chat.
func (h *ChatHandler) GetChatHistoryHandler(c *gin.Context) {
	username := c.GetString("username")

	messages, err := h.Advisor.GetHistory(username)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch chat history", err.Error())
		return
	}
	if messages == nil {
		messages = []models.ChatMessage{}
	}
	c.JSON(http.StatusOK, messages)
}

// ClearChatHistoryHandler handles DELETE /api/chat. The history is wiped
// and reseeded with the welcome message.
func (h *ChatHandler) ClearChatHistoryHandler(c *gin.Context) {
	username := c.GetString("username")

	if err := h.Advisor.ClearHistory(username); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to clear chat history", err.Error())
		return
	}
	c.Status(http.StatusNoContent)
}
