package middleware

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tendly/tenderchat/internal/test"
	tenderchat "github.com/tendly/tenderchat/pkg"
	"github.com/tendly/tenderchat/pkg/audit"
	"github.com/tendly/tenderchat/pkg/env/webhook"
)

func TestAudit(t *testing.T) {
	t.Parallel()

	cases := []struct {
		description string
		collector   func(http.ResponseWriter, *http.Request)
		context     func() context.Context
		headers     func(*bytes.Buffer) func(*http.Request)
		request     func() *bytes.Buffer
		code        int
		body        string
		want        *regexp.Regexp
	}{
		{
			"valid direct query with forwarded user",
			func(w http.ResponseWriter, r *http.Request) {
				// No-op.
			},
			func() context.Context {
				return context.TODO()
			},
			func(b *bytes.Buffer) func(*http.Request) {
				return func(r *http.Request) {
					r.Header.Set("Content-Length", fmt.Sprint(b.Len()))
					r.Header.Set("X-Forwarded-User", "test")
				}
			},
			func() *bytes.Buffer {
				return bytes.NewBufferString(`{"query": "select 1;"}`)
			},
			200,
			``,
			regexp.MustCompile(`AUDIT.*"Query": "select 1;".*"User": "test"`),
		},
		{
			"valid question with user from context",
			func(w http.ResponseWriter, r *http.Request) {
				// No-op.
			},
			func() context.Context {
				return context.WithValue(context.TODO(), ContextKeyUser, "alice")
			},
			func(b *bytes.Buffer) func(*http.Request) {
				return func(r *http.Request) {
					r.Header.Set("Content-Length", fmt.Sprint(b.Len()))
				}
			},
			func() *bytes.Buffer {
				return bytes.NewBufferString(`{"question": "Show me construction tenders"}`)
			},
			200,
			``,
			regexp.MustCompile(`AUDIT.*"Query": "Show me construction tenders".*"User": "alice"`),
		},
		{
			"valid question without any user",
			func(w http.ResponseWriter, r *http.Request) {
				// No-op.
			},
			func() context.Context {
				return context.TODO()
			},
			func(b *bytes.Buffer) func(*http.Request) {
				return func(r *http.Request) {
					r.Header.Set("Content-Length", fmt.Sprint(b.Len()))
				}
			},
			func() *bytes.Buffer {
				return bytes.NewBufferString(`{"question": "Show me construction tenders"}`)
			},
			200,
			``,
			regexp.MustCompile(`"User": "anonymous"`),
		},
		{
			"request without required header",
			func(w http.ResponseWriter, r *http.Request) {
				// No-op.
			},
			func() context.Context {
				return context.TODO()
			},
			func(b *bytes.Buffer) func(*http.Request) {
				return func(r *http.Request) {
					r.Header.Del("Content-Length")
				}
			},
			func() *bytes.Buffer {
				return bytes.NewBufferString(`{"query": "select 1;"}`)
			},
			400,
			`Request without required header: Content-Length`,
			regexp.MustCompile(``),
		},
		{
			"collector rejects the audit event",
			func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "no thanks", http.StatusForbidden)
			},
			func() context.Context {
				return context.TODO()
			},
			func(b *bytes.Buffer) func(*http.Request) {
				return func(r *http.Request) {
					r.Header.Set("Content-Length", fmt.Sprint(b.Len()))
				}
			},
			func() *bytes.Buffer {
				return bytes.NewBufferString(`{"query": "select 1;"}`)
			},
			500,
			`An internal error has occurred`,
			regexp.MustCompile(`Unable to send audit to collector`),
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.description, func(t *testing.T) {
			t.Parallel()

			var body, output bytes.Buffer

			server := httptest.NewServer(http.HandlerFunc(tc.collector))
			defer server.Close()

			request := tc.request()

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/", request)
			tc.headers(request)(r)

			logger := test.DummyLogger(&output).Sugar()

			cfg := &tenderchat.Config{
				Logger:       logger,
				LoggerAudit:  audit.NewLoggerAudit(logger),
				WebhookAudit: audit.NewWebhookAudit(&webhook.Env{Endpoint: server.URL}),
			}

			var forwarded string
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				var b bytes.Buffer
				_, _ = io.Copy(&b, r.Body)
				forwarded = b.String()
			})

			Audit(cfg)(handler).ServeHTTP(w, r.WithContext(tc.context()))

			actual := w.Result()
			defer func() { _ = actual.Body.Close() }()

			_, _ = io.Copy(&body, actual.Body)

			assert.Equal(t, tc.code, actual.StatusCode)
			assert.Contains(t, body.String(), tc.body)
			assert.Regexp(t, tc.want, output.String())

			if tc.code == 200 {
				// The body must still be readable by the next handler.
				assert.NotEmpty(t, forwarded)
			}
		})
	}
}
