package llm

import (
	"fmt"
	"os"
	"time"

	"github.com/tendly/tenderchat/pkg/env"
)

const (
	ProviderOpenAI    = "openai"
	ProviderGemini    = "gemini"
	ProviderAnthropic = "anthropic"

	defaultBaseURL = "https://api.openai.com"
	defaultTimeout = 45 * time.Second
)

var defaultModels = map[string]string{
	ProviderOpenAI:    "gpt-4.1-mini",
	ProviderGemini:    "gemini-1.5-flash",
	ProviderAnthropic: "claude-sonnet-4-20250514",
}

type Env struct {
	Provider string
	APIKey   string
	Model    string
	BaseURL  string
	Timeout  time.Duration
}

func NewLLMEnv() *Env {
	return &Env{}
}

func (l *Env) Populate() error {
	provider, found := os.LookupEnv("LLM_PROVIDER")
	if !found {
		return &env.Error{Name: "LLM_PROVIDER"}
	}
	if _, ok := defaultModels[provider]; !ok {
		return fmt.Errorf("unsupported LLM provider: %s", provider)
	}
	l.Provider = provider

	key, found := os.LookupEnv("LLM_API_KEY")
	if !found {
		return &env.Error{Name: "LLM_API_KEY"}
	}
	l.APIKey = key

	l.Model = defaultModels[provider]
	if model := os.Getenv("LLM_MODEL"); model != "" {
		l.Model = model
	}

	l.BaseURL = defaultBaseURL
	if url := os.Getenv("LLM_BASE_URL"); url != "" {
		l.BaseURL = url
	}

	l.Timeout = defaultTimeout
	if s := os.Getenv("LLM_TIMEOUT"); s != "" {
		timeout, err := time.ParseDuration(s)
		if err != nil {
			return &env.ConversionError{Name: "LLM_TIMEOUT"}
		}
		l.Timeout = timeout
	}

	return nil
}
