package llm

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPopulate(t *testing.T) {
	cases := []struct {
		description string
		given       func()
		clean       func()
		expected    *Env
		error       bool
		message     string
	}{
		{
			"all environment variables set",
			func() {
				os.Setenv("LLM_PROVIDER", "openai")
				os.Setenv("LLM_API_KEY", "sk-test")
				os.Setenv("LLM_MODEL", "gpt-4o-mini")
				os.Setenv("LLM_BASE_URL", "http://localhost:9999")
				os.Setenv("LLM_TIMEOUT", "10s")
			},
			os.Clearenv,
			&Env{
				Provider: "openai",
				APIKey:   "sk-test",
				Model:    "gpt-4o-mini",
				BaseURL:  "http://localhost:9999",
				Timeout:  10 * time.Second,
			},
			false,
			``,
		},
		{
			"defaults applied per provider",
			func() {
				os.Setenv("LLM_PROVIDER", "gemini")
				os.Setenv("LLM_API_KEY", "test")
			},
			os.Clearenv,
			&Env{
				Provider: "gemini",
				APIKey:   "test",
				Model:    "gemini-1.5-flash",
				BaseURL:  "https://api.openai.com",
				Timeout:  45 * time.Second,
			},
			false,
			``,
		},
		{
			"missing provider",
			func() {
				// No-op.
			},
			os.Clearenv,
			nil,
			true,
			`unable to access environment variable: LLM_PROVIDER`,
		},
		{
			"unsupported provider",
			func() {
				os.Setenv("LLM_PROVIDER", "test")
			},
			os.Clearenv,
			nil,
			true,
			`unsupported LLM provider: test`,
		},
		{
			"missing API key",
			func() {
				os.Setenv("LLM_PROVIDER", "anthropic")
			},
			os.Clearenv,
			nil,
			true,
			`unable to access environment variable: LLM_API_KEY`,
		},
		{
			"invalid timeout",
			func() {
				os.Setenv("LLM_PROVIDER", "openai")
				os.Setenv("LLM_API_KEY", "test")
				os.Setenv("LLM_TIMEOUT", "test")
			},
			os.Clearenv,
			nil,
			true,
			`unable to convert environment variable: LLM_TIMEOUT`,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.description, func(t *testing.T) {
			tc.given()
			defer tc.clean()

			actual := NewLLMEnv()
			err := actual.Populate()

			if tc.error {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.message)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, actual)
		})
	}
}
