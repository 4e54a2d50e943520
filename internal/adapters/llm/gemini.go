// Package llm adapts Gemini on Vertex AI to the domain.Responder port. It is
// an optional alternative to the scripted responder, selected by config.
package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/logitrack/assist/internal/domain"
)

type GeminiResponder struct {
	client    *genai.Client
	modelName string
}

// NewGeminiResponder creates a Responder backed by Vertex AI (Gemini).
func NewGeminiResponder(ctx context.Context, projectID, location, modelName string) (*GeminiResponder, error) {
	if projectID == "" || location == "" {
		return nil, fmt.Errorf("projectID and location are required for the gemini responder")
	}
	if modelName == "" {
		modelName = "gemini-2.5-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Project:  projectID,
		Location: location,
		Backend:  genai.BackendVertexAI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating Vertex AI client: %w", err)
	}

	return &GeminiResponder{
		client:    client,
		modelName: modelName,
	}, nil
}

// Respond implements domain.Responder using Vertex AI. Gemini replies carry
// no structured shipment reference; only the scripted responder produces one.
func (g *GeminiResponder) Respond(
	ctx context.Context,
	userMessage string,
	convCtx domain.ConversationContext,
) (domain.Reply, error) {
	// History (user / assistant) as conversation
	var contents []*genai.Content
	for _, turn := range convCtx.History {
		var role genai.Role
		switch turn.Author {
		case domain.AuthorAssistant:
			role = genai.RoleModel
		default:
			role = genai.RoleUser
		}

		contents = append(contents, genai.NewContentFromText(turn.Text, role))
	}

	contents = append(contents, genai.NewContentFromText(userMessage, genai.RoleUser))

	temp := float32(0.4)
	topP := float32(0.9)
	outputTokens := int32(1024)

	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
		Temperature:       &temp,
		TopP:              &topP,
		MaxOutputTokens:   outputTokens,
	}

	res, err := g.client.Models.GenerateContent(ctx, g.modelName, contents, cfg)
	if err != nil {
		return domain.Reply{}, fmt.Errorf("gemini generate content: %w", err)
	}

	text := res.Text()
	if text == "" {
		return domain.Reply{}, fmt.Errorf("gemini returned empty text")
	}

	return domain.Reply{Text: text}, nil
}
