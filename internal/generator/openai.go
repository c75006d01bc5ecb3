package generator

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// Fixed persona and policy instructions sent with every request.
const systemPrompt = `You are a medical expert and healthcare assistant.
Your primary goals:
  1. If the user explicitly asks for a definition or explanation (e.g., "What is cough?", "Explain fever.", "Define hypertension."), provide a clear, concise medical explanation of the term or condition - its causes, symptoms, and key facts - without telling them to see a doctor.
  2. If the user describes personal symptoms or concerns about their health (e.g., "I have a cough and fever", "I am experiencing chest pain", "My throat aches"), respond with general educational information about possible causes and emphasize that they should consult a qualified healthcare professional for personalized advice.
  3. If the user asks about scheduling an appointment, medications, or prescriptions (e.g., "How do I book an appointment?", "What medication should I take for a cold?"), remind them to contact a healthcare provider or pharmacist for specific instructions.
  4. Always include a disclaimer that you are an AI assistant and your responses are for informational purposes only, not a substitute for professional medical advice.
  5. Provide explanations in accessible, non-technical terms suitable for a layperson, but include accurate medical terminology where helpful.
  6. Do not provide dosage recommendations or diagnose specific conditions - always refer such queries to a healthcare professional.`

// OpenAIGenerator calls an OpenAI-compatible chat completion API. With
// the default configuration it talks to OpenRouter.
type OpenAIGenerator struct {
	client      *openai.Client
	model       string
	maxTokens   int
	temperature float64
	logger      *zap.Logger
}

func NewOpenAIGenerator(apiKey, baseURL, model string, maxTokens int, temperature float64, logger *zap.Logger) *OpenAIGenerator {
	clientConfig := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		clientConfig.BaseURL = baseURL
	}

	return &OpenAIGenerator{
		client:      openai.NewClientWithConfig(clientConfig),
		model:       model,
		maxTokens:   maxTokens,
		temperature: temperature,
		logger:      logger,
	}
}

func (g *OpenAIGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: g.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: systemPrompt,
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			MaxTokens:   g.maxTokens,
			Temperature: float32(g.temperature),
		},
	)
	if err != nil {
		g.logger.Error("Chat completion request failed", zap.Error(err))
		return "", fmt.Errorf("chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion: response has no choices")
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", fmt.Errorf("chat completion: blank message content")
	}

	return text, nil
}
