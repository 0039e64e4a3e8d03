package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/schema"
)

const assistantInstruction = "You are a helpful assistant for a food delivery app called 'Home Plate'. " +
	"You answer questions for both customers and sellers. Keep your answers concise, friendly, and helpful. " +
	"For customers, you can answer questions about orders or food. " +
	"For sellers, you can answer questions about managing their menu or orders."

const maxChatMessageLength = 2000

// Completer sends one system instruction and one user message to a language
// model and returns its text reply.
type Completer interface {
	Complete(ctx context.Context, system, message string) (string, error)
}

type ChatAssistant struct {
	completer Completer
}

// NewChatAssistant accepts a nil completer; every reply then fails with
// ErrExternalUnavailable.
func NewChatAssistant(completer Completer) *ChatAssistant {
	return &ChatAssistant{completer: completer}
}

func (c *ChatAssistant) Reply(ctx context.Context, message string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", fmt.Errorf("%w: message is required", ErrValidation)
	}
	if len(message) > maxChatMessageLength {
		return "", fmt.Errorf("%w: message is too long", ErrValidation)
	}
	if c.completer == nil {
		return "", fmt.Errorf("%w: assistant is not configured", ErrExternalUnavailable)
	}

	reply, err := c.completer.Complete(ctx, assistantInstruction, message)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrExternalUnavailable, err)
	}
	return reply, nil
}

// LLMCompleter adapts a langchaingo model to Completer.
type LLMCompleter struct {
	Model llms.Model
}

func NewOpenAICompleter(apiKey, model string) (*LLMCompleter, error) {
	llm, err := openai.New(openai.WithToken(apiKey), openai.WithModel(model))
	if err != nil {
		return nil, fmt.Errorf("create openai client: %w", err)
	}
	return &LLMCompleter{Model: llm}, nil
}

func (c *LLMCompleter) Complete(ctx context.Context, system, message string) (string, error) {
	resp, err := c.Model.GenerateContent(ctx, []llms.MessageContent{
		llms.TextParts(schema.ChatMessageTypeSystem, system),
		llms.TextParts(schema.ChatMessageTypeHuman, message),
	})
	if err != nil {
		return "", err
	}
	if resp == nil || len(resp.Choices) == 0 {
		return "", errors.New("model returned no choices")
	}
	return resp.Choices[0].Content, nil
}
