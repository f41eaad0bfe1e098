package advisor

import (
	"context"
	"fmt"
	"strings"

	chatRepo "stellartours/database/repository/chat"
	"stellartours/models"
	"stellartours/services/booking"
	"stellartours/utils"

	genai "github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
)

// maxToolCycles bounds the model-tool round-trips per external call to keep
// cost and latency bounded.
const maxToolCycles = 2

// AdvisorService produces advisor replies and manages the per-user chat log.
type AdvisorService interface {
	// Chat returns the assistant reply to message on behalf of userID.
	// When persistHistory is true, exactly one user turn and one assistant
	// turn are recorded, regardless of how many tool round-trips occurred.
	Chat(ctx context.Context, userID string, persistHistory bool, message string) (string, error)
	GetHistory(userID string) ([]models.ChatMessage, error)
	ClearHistory(userID string) error
}

type DefaultAdvisorService struct {
	Generator  Generator
	ChatRepo   chatRepo.ChatRepository
	BookingSvc booking.BookingService
}

func NewDefaultAdvisorService(gen Generator, repo chatRepo.ChatRepository, bookingSvc booking.BookingService) *DefaultAdvisorService {
	return &DefaultAdvisorService{Generator: gen, ChatRepo: repo, BookingSvc: bookingSvc}
}

func (s *DefaultAdvisorService) Chat(ctx context.Context, userID string, persistHistory bool, message string) (string, error) {
	logger := utils.GetLogger()

	history, err := s.buildHistory(userID)
	if err != nil {
		return "", fmt.Errorf("load chat history: %w", err)
	}

	answer := s.runLoop(ctx, userID, history, message)

	if persistHistory {
		if err := s.ChatRepo.Create(&models.ChatMessage{UserID: userID, Content: message, Role: models.RoleUser}); err != nil {
			logger.Error("Chat: failed to persist user turn", zap.Error(err))
			return "", err
		}
		if err := s.ChatRepo.Create(&models.ChatMessage{UserID: userID, Content: answer, Role: models.RoleAssistant}); err != nil {
			logger.Error("Chat: failed to persist assistant turn", zap.Error(err))
			return "", err
		}
	}

	return answer, nil
}

// runLoop drives the model-tool iteration until the model produces a plain
// textual answer or the cycle cap is reached.
func (s *DefaultAdvisorService) runLoop(ctx context.Context, userID string, history []*genai.Content, message string) string {
	logger := utils.GetLogger()
	parts := []genai.Part{genai.Text(message)}

	for cycle := 0; ; cycle++ {
		resp, err := s.Generator.Generate(ctx, history, parts...)
		if err != nil {
			logger.Error("Chat: model call failed", zap.String("userID", userID), zap.Error(err))
			return fallbackForProviderError(err)
		}

		call, content := findFunctionCall(resp)
		if call == nil {
			if text := responseText(resp); text != "" {
				return text
			}
			return emptyFallback
		}

		if cycle >= maxToolCycles {
			logger.Warn("Chat: tool cycle cap reached", zap.String("userID", userID))
			return genericFallback
		}

		if call.Name != createBookingToolName {
			logger.Warn("Chat: model requested unknown tool", zap.String("tool", call.Name))
			return genericFallback
		}

		result := s.executeCreateBooking(userID, call.Args)

		// Extend the transcript with the turn we sent and the model's tool
		// request, then answer with the tool result.
		history = append(history,
			&genai.Content{Role: "user", Parts: parts},
			content,
		)
		parts = []genai.Part{genai.FunctionResponse{Name: call.Name, Response: result}}
	}
}

// buildHistory maps the persisted conversation into model turns and appends
// the system note identifying the caller.
func (s *DefaultAdvisorService) buildHistory(userID string) ([]*genai.Content, error) {
	messages, err := s.ChatRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	history := make([]*genai.Content, 0, len(messages)+1)
	for _, m := range messages {
		role := "model"
		if m.Role == models.RoleUser {
			role = "user"
		}
		history = append(history, &genai.Content{Role: role, Parts: []genai.Part{genai.Text(m.Content)}})
	}

	note := fmt.Sprintf("System note: you are assisting the user with id %q. Any booking you create through the createBooking tool belongs to this user.", userID)
	history = append(history, &genai.Content{Role: "user", Parts: []genai.Part{genai.Text(note)}})
	return history, nil
}

func (s *DefaultAdvisorService) GetHistory(userID string) ([]models.ChatMessage, error) {
	return s.ChatRepo.ListByUser(userID)
}

// ClearHistory wipes the user's conversation and reseeds the welcome
// message, leaving exactly one assistant turn.
func (s *DefaultAdvisorService) ClearHistory(userID string) error {
	if err := s.ChatRepo.DeleteByUser(userID); err != nil {
		return err
	}
	return s.ChatRepo.Create(&models.ChatMessage{
		UserID:  userID,
		Content: WelcomeMessage,
		Role:    models.RoleAssistant,
	})
}

// findFunctionCall returns the first tool request in the response, along
// with the candidate content carrying it.
func findFunctionCall(resp *genai.GenerateContentResponse) (*genai.FunctionCall, *genai.Content) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, nil
	}
	content := resp.Candidates[0].Content
	for _, part := range content.Parts {
		if call, ok := part.(genai.FunctionCall); ok {
			return &call, content
		}
	}
	return nil, content
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return sb.String()
}
