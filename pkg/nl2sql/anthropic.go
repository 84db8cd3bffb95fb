package nl2sql

import (
	"context"
	"fmt"
	"strings"

	"github.com/liushuangls/go-anthropic/v2"

	"github.com/tendly/tenderchat/pkg/env/llm"
)

const anthropicMaxTokens = 1024

type AnthropicTranslator struct {
	client *anthropic.Client
	model  string
}

func NewAnthropicTranslator(cfg *llm.Env) (*AnthropicTranslator, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, fmt.Errorf("api key is required")
	}

	return &AnthropicTranslator{
		client: anthropic.NewClient(cfg.APIKey),
		model:  cfg.Model,
	}, nil
}

func (t *AnthropicTranslator) Translate(ctx context.Context, req Request) (Result, error) {
	resp, err := t.client.CreateMessages(ctx, anthropic.MessagesRequest{
		Model:     anthropic.Model(t.model),
		System:    req.System,
		MaxTokens: anthropicMaxTokens,
		Messages: []anthropic.Message{
			anthropic.NewUserTextMessage(req.User),
		},
	})
	if err != nil {
		return Result{}, fmt.Errorf("unable to create message: %w", err)
	}
	if len(resp.Content) == 0 {
		return Result{}, fmt.Errorf("no response content")
	}

	sql := stripMarkdownSQL(resp.Content[0].GetText())
	if strings.TrimSpace(sql) == "" {
		return Result{}, ErrEmptySQL
	}

	return Result{
		SQL:      sql,
		Provider: llm.ProviderAnthropic,
		Model:    t.model,
	}, nil
}
