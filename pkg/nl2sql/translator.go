package nl2sql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tendly/tenderchat/pkg/env/llm"
)

var ErrEmptySQL = errors.New("model returned empty SQL")

// Request carries a fully built prompt pair. Providers submit it verbatim;
// prompt construction lives in pkg/prompt.
type Request struct {
	System string
	User   string
}

type Result struct {
	SQL      string
	Provider string
	Model    string
}

type Translator interface {
	Translate(ctx context.Context, req Request) (Result, error)
}

// New selects the translator for the configured provider. The Gemini client
// dials out during construction, hence the context.
func New(ctx context.Context, cfg *llm.Env) (Translator, error) {
	switch cfg.Provider {
	case llm.ProviderOpenAI:
		return NewOpenAITranslator(cfg)
	case llm.ProviderGemini:
		return NewGeminiTranslator(ctx, cfg)
	case llm.ProviderAnthropic:
		return NewAnthropicTranslator(cfg)
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.Provider)
	}
}

// stripMarkdownSQL removes the ```sql fences models tend to wrap
// statements in.
func stripMarkdownSQL(value string) string {
	trimmed := strings.TrimSpace(value)
	if strings.HasPrefix(trimmed, "```") {
		trimmed = strings.TrimPrefix(trimmed, "```sql")
		trimmed = strings.TrimPrefix(trimmed, "```")
		trimmed = strings.TrimSuffix(trimmed, "```")
		return strings.TrimSpace(trimmed)
	}
	return trimmed
}
