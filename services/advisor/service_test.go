package advisor

import (
	"context"
	"errors"
	"testing"

	bookingRepo "stellartours/database/repository/booking"
	chatRepo "stellartours/database/repository/chat"
	"stellartours/models"
	"stellartours/services/booking"

	genai "github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"
)

// scriptedGenerator replays a fixed sequence of responses and records every
// call it receives.
type scriptedGenerator struct {
	responses []*genai.GenerateContentResponse
	errs      []error
	calls     int
	histories [][]*genai.Content
	parts     [][]genai.Part
}

func (g *scriptedGenerator) Generate(ctx context.Context, history []*genai.Content, parts ...genai.Part) (*genai.GenerateContentResponse, error) {
	i := g.calls
	g.calls++
	g.histories = append(g.histories, history)
	g.parts = append(g.parts, parts)
	if i < len(g.errs) && g.errs[i] != nil {
		return nil, g.errs[i]
	}
	return g.responses[i], nil
}

func textResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Role: "model", Parts: []genai.Part{genai.Text(text)}},
		}},
	}
}

func toolCallResponse(args map[string]any) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{
				Role:  "model",
				Parts: []genai.Part{genai.FunctionCall{Name: createBookingToolName, Args: args}},
			},
		}},
	}
}

func validToolArgs() map[string]any {
	return map[string]any{
		"destination":       "mars",
		"departureDate":     "2045-06-01",
		"travelClass":       "vip",
		"numberOfTravelers": float64(2),
	}
}

func newTestAdvisor(gen Generator) (*DefaultAdvisorService, *chatRepo.MemoryChatRepo, *bookingRepo.MemoryBookingRepo) {
	chats := chatRepo.NewMemoryChatRepo()
	bookings := bookingRepo.NewMemoryBookingRepo()
	svc := NewDefaultAdvisorService(gen, chats, &booking.DefaultBookingService{Repo: bookings})
	return svc, chats, bookings
}

func TestChat_PlainTextReply(t *testing.T) {
	gen := &scriptedGenerator{responses: []*genai.GenerateContentResponse{
		textResponse("Mars is lovely in June."),
	}}
	svc, chats, _ := newTestAdvisor(gen)

	answer, err := svc.Chat(context.Background(), "alice", true, "Tell me about Mars")
	require.NoError(t, err)
	assert.Equal(t, "Mars is lovely in June.", answer)
	assert.Equal(t, 1, gen.calls)

	history, err := chats.ListByUser("alice")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, models.RoleUser, history[0].Role)
	assert.Equal(t, "Tell me about Mars", history[0].Content)
	assert.Equal(t, models.RoleAssistant, history[1].Role)
	assert.Equal(t, "Mars is lovely in June.", history[1].Content)
}

func TestChat_GuestTurnsNotPersisted(t *testing.T) {
	gen := &scriptedGenerator{responses: []*genai.GenerateContentResponse{
		textResponse("Hello there!"),
	}}
	svc, chats, _ := newTestAdvisor(gen)

	answer, err := svc.Chat(context.Background(), "guest", false, "Hi")
	require.NoError(t, err)
	assert.Equal(t, "Hello there!", answer)

	history, err := chats.ListByUser("guest")
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestChat_ToolCallCreatesBooking(t *testing.T) {
	gen := &scriptedGenerator{responses: []*genai.GenerateContentResponse{
		toolCallResponse(validToolArgs()),
		textResponse("Your Mars trip is booked!"),
	}}
	svc, chats, bookings := newTestAdvisor(gen)

	answer, err := svc.Chat(context.Background(), "alice", true, "Book me a VIP trip to Mars")
	require.NoError(t, err)
	assert.Equal(t, "Your Mars trip is booked!", answer)
	assert.Equal(t, 2, gen.calls)

	// Exactly one booking, owned by the caller and priced server-side.
	list, err := bookings.ListByUser("alice")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "mars", list[0].Destination)
	assert.Equal(t, "vip", list[0].TravelClass)
	assert.Equal(t, 2, list[0].NumberOfTravelers)
	assert.Equal(t, float64(1500000), list[0].Price)
	assert.Equal(t, "confirmed", list[0].Status)

	// The second model call carries the tool result, not user text.
	require.Len(t, gen.parts[1], 1)
	fr, ok := gen.parts[1][0].(genai.FunctionResponse)
	require.True(t, ok)
	assert.Equal(t, createBookingToolName, fr.Name)
	assert.Contains(t, fr.Response, "bookingId")

	// One user turn and one assistant turn, despite two model calls.
	history, err := chats.ListByUser("alice")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, models.RoleUser, history[0].Role)
	assert.Equal(t, models.RoleAssistant, history[1].Role)
}

func TestChat_InvalidToolArgsReportedToModel(t *testing.T) {
	args := validToolArgs()
	args["destination"] = "atlantis"
	gen := &scriptedGenerator{responses: []*genai.GenerateContentResponse{
		toolCallResponse(args),
		textResponse("I couldn't book that destination."),
	}}
	svc, _, bookings := newTestAdvisor(gen)

	answer, err := svc.Chat(context.Background(), "alice", true, "Book me a trip to Atlantis")
	require.NoError(t, err)
	assert.Equal(t, "I couldn't book that destination.", answer)

	// No booking was created and the model received the error payload.
	list, err := bookings.ListByUser("alice")
	require.NoError(t, err)
	assert.Empty(t, list)

	fr, ok := gen.parts[1][0].(genai.FunctionResponse)
	require.True(t, ok)
	assert.Contains(t, fr.Response, "error")
}

func TestChat_ToolCycleCap(t *testing.T) {
	gen := &scriptedGenerator{responses: []*genai.GenerateContentResponse{
		toolCallResponse(validToolArgs()),
		toolCallResponse(validToolArgs()),
		toolCallResponse(validToolArgs()),
	}}
	svc, _, _ := newTestAdvisor(gen)

	answer, err := svc.Chat(context.Background(), "alice", false, "Book it")
	require.NoError(t, err)
	assert.Equal(t, genericFallback, answer)
	assert.Equal(t, maxToolCycles+1, gen.calls)
}

func TestChat_UnknownToolName(t *testing.T) {
	gen := &scriptedGenerator{responses: []*genai.GenerateContentResponse{
		{Candidates: []*genai.Candidate{{
			Content: &genai.Content{
				Role:  "model",
				Parts: []genai.Part{genai.FunctionCall{Name: "launchRocket", Args: map[string]any{}}},
			},
		}}},
	}}
	svc, _, _ := newTestAdvisor(gen)

	answer, err := svc.Chat(context.Background(), "alice", false, "Launch!")
	require.NoError(t, err)
	assert.Equal(t, genericFallback, answer)
}

func TestChat_EmptyResponseFallback(t *testing.T) {
	gen := &scriptedGenerator{responses: []*genai.GenerateContentResponse{
		{Candidates: []*genai.Candidate{}},
	}}
	svc, _, _ := newTestAdvisor(gen)

	answer, err := svc.Chat(context.Background(), "alice", false, "Hello?")
	require.NoError(t, err)
	assert.Equal(t, emptyFallback, answer)
}

func TestChat_ProviderErrorFallbacks(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{"unauthorized", &googleapi.Error{Code: 401}, authFallback},
		{"forbidden", &googleapi.Error{Code: 403}, authFallback},
		{"rate limited", &googleapi.Error{Code: 429}, rateLimitFallback},
		{"api key message", errors.New("API key not valid"), authFallback},
		{"quota message", errors.New("quota exceeded for project"), rateLimitFallback},
		{"other", errors.New("connection reset"), genericFallback},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gen := &scriptedGenerator{errs: []error{tc.err}}
			svc, chats, _ := newTestAdvisor(gen)

			answer, err := svc.Chat(context.Background(), "alice", true, "Hi")
			require.NoError(t, err)
			assert.Equal(t, tc.want, answer)

			// The fallback still becomes the persisted assistant turn.
			history, err := chats.ListByUser("alice")
			require.NoError(t, err)
			require.Len(t, history, 2)
			assert.Equal(t, tc.want, history[1].Content)
		})
	}
}

func TestChat_HistoryIncludesPriorTurns(t *testing.T) {
	gen := &scriptedGenerator{responses: []*genai.GenerateContentResponse{
		textResponse("Again, Mars is lovely."),
	}}
	svc, chats, _ := newTestAdvisor(gen)

	require.NoError(t, chats.Create(&models.ChatMessage{UserID: "alice", Content: "Earlier question", Role: models.RoleUser}))
	require.NoError(t, chats.Create(&models.ChatMessage{UserID: "alice", Content: "Earlier answer", Role: models.RoleAssistant}))

	_, err := svc.Chat(context.Background(), "alice", true, "And now?")
	require.NoError(t, err)

	// Two prior turns plus the caller identity note.
	require.Len(t, gen.histories[0], 3)
	assert.Equal(t, "user", gen.histories[0][0].Role)
	assert.Equal(t, "model", gen.histories[0][1].Role)
	assert.Equal(t, "user", gen.histories[0][2].Role)
}

func TestClearHistory_ReseedsWelcome(t *testing.T) {
	svc, chats, _ := newTestAdvisor(&scriptedGenerator{})

	require.NoError(t, chats.Create(&models.ChatMessage{UserID: "alice", Content: "old", Role: models.RoleUser}))
	require.NoError(t, chats.Create(&models.ChatMessage{UserID: "alice", Content: "older", Role: models.RoleAssistant}))

	require.NoError(t, svc.ClearHistory("alice"))

	history, err := chats.ListByUser("alice")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, models.RoleAssistant, history[0].Role)
	assert.Equal(t, WelcomeMessage, history[0].Content)
}

func TestClearHistory_LeavesOtherUsersAlone(t *testing.T) {
	svc, chats, _ := newTestAdvisor(&scriptedGenerator{})

	require.NoError(t, chats.Create(&models.ChatMessage{UserID: "bob", Content: "keep me", Role: models.RoleUser}))

	require.NoError(t, svc.ClearHistory("alice"))

	bobHistory, err := chats.ListByUser("bob")
	require.NoError(t, err)
	require.Len(t, bobHistory, 1)
	assert.Equal(t, "keep me", bobHistory[0].Content)
}
