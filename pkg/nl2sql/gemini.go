package nl2sql

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/tendly/tenderchat/pkg/env/llm"
)

type GeminiTranslator struct {
	client *genai.Client
	model  *genai.GenerativeModel
	name   string
}

func NewGeminiTranslator(ctx context.Context, cfg *llm.Env) (*GeminiTranslator, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("unable to initialize Gemini client: %w", err)
	}

	model := client.GenerativeModel(cfg.Model)

	// Low temperature keeps the generated SQL deterministic.
	temperature := float32(0.2)
	model.Temperature = &temperature

	return &GeminiTranslator{
		client: client,
		model:  model,
		name:   cfg.Model,
	}, nil
}

func (t *GeminiTranslator) Close() error {
	return t.client.Close()
}

func (t *GeminiTranslator) Translate(ctx context.Context, req Request) (Result, error) {
	prompt := req.System + "\n\n" + req.User

	resp, err := t.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return Result{}, fmt.Errorf("unable to generate content: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return Result{}, fmt.Errorf("no response candidates")
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}

	sql := stripMarkdownSQL(b.String())
	if strings.TrimSpace(sql) == "" {
		return Result{}, ErrEmptySQL
	}

	return Result{
		SQL:      sql,
		Provider: llm.ProviderGemini,
		Model:    t.name,
	}, nil
}
