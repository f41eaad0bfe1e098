// File: services/advisor/gemini.go
package advisor

import (
	"context"
	"fmt"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Generator is the model round-trip the agent loop runs against. The
// Gemini-backed implementation is the only one used in production; tests
// substitute a scripted fake.
type Generator interface {
	Generate(ctx context.Context, history []*genai.Content, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

type GeminiGenerator struct {
	model *genai.GenerativeModel
}

func NewGeminiGenerator(apiKey string) *GeminiGenerator {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		panic(fmt.Sprintf("failed to create Gemini client: %v", err))
	}

	model := client.GenerativeModel("models/gemini-1.5-pro")
	model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(systemPrompt)}}
	model.Tools = []*genai.Tool{createBookingTool}
	return &GeminiGenerator{model: model}
}

func (g *GeminiGenerator) Generate(ctx context.Context, history []*genai.Content, parts ...genai.Part) (*genai.GenerateContentResponse, error) {
	cs := g.model.StartChat()
	cs.History = history
	resp, err := cs.SendMessage(ctx, parts...)
	if err != nil {
		return nil, fmt.Errorf("gemini generate error: %w", err)
	}
	return resp, nil
}
