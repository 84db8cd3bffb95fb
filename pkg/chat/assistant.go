package chat

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/tendly/tenderchat/pkg/metrics"
	"github.com/tendly/tenderchat/pkg/nl2sql"
	"github.com/tendly/tenderchat/pkg/prompt"
	"github.com/tendly/tenderchat/pkg/query"
	"github.com/tendly/tenderchat/pkg/schema"
)

// Assistant runs one natural-language chat turn: introspect, prompt,
// translate, execute. Every per-request error becomes the failure variant;
// Ask never panics the process over a bad question or bad generated SQL.
type Assistant struct {
	db           *sql.DB
	introspector *schema.Introspector
	translator   nl2sql.Translator
	prompts      *prompt.Builder
	allowWrite   bool
	logger       *zap.SugaredLogger
}

func NewAssistant(
	db *sql.DB,
	introspector *schema.Introspector,
	translator nl2sql.Translator,
	prompts *prompt.Builder,
	allowWrite bool,
	logger *zap.SugaredLogger,
) *Assistant {
	return &Assistant{
		db:           db,
		introspector: introspector,
		translator:   translator,
		prompts:      prompts,
		allowWrite:   allowWrite,
		logger:       logger,
	}
}

func (a *Assistant) Ask(ctx context.Context, question string) Result {
	if strings.TrimSpace(question) == "" {
		return Failed(question, "question must not be empty")
	}

	description, err := a.introspector.Describe(ctx)
	if err != nil {
		a.logger.Errorf("Unable to introspect schema: %s", err)
		return a.failed(question, err)
	}

	request := nl2sql.Request{
		System: a.prompts.System(),
		User:   a.prompts.Question(description.String(), question),
	}

	start := time.Now()
	translated, err := a.translator.Translate(ctx, request)
	metrics.TranslationSeconds.Observe(time.Since(start).Seconds())
	if err != nil {
		a.logger.Errorf("Unable to translate question: %s", err)
		metrics.TranslationsTotal.WithLabelValues("error").Inc()
		return a.failed(question, err)
	}
	metrics.TranslationsTotal.WithLabelValues("ok").Inc()

	a.logger.Debugf("Generated SQL (%s/%s): %s", translated.Provider, translated.Model, translated.SQL)

	if !a.allowWrite {
		if err := query.EnsureReadOnly(translated.SQL); err != nil {
			a.logger.Errorf("Rejected generated statement: %s", err)
			return a.failed(question, err)
		}
	}

	rows, err := query.Run(ctx, a.db, translated.SQL)
	if err != nil {
		a.logger.Errorf("Unable to execute generated SQL: %s", err)
		metrics.QueriesTotal.WithLabelValues("assistant", "error").Inc()
		return a.failed(question, err)
	}
	metrics.QueriesTotal.WithLabelValues("assistant", "ok").Inc()

	return Succeeded(question, translated.SQL, rows)
}

// RunSQL executes a fixed statement (catalog shortcuts) through the same
// result shape as Ask.
func (a *Assistant) RunSQL(ctx context.Context, question, statement string) Result {
	rows, err := query.Run(ctx, a.db, statement)
	if err != nil {
		a.logger.Errorf("Unable to execute catalog SQL: %s", err)
		metrics.QueriesTotal.WithLabelValues("catalog", "error").Inc()
		return a.failed(question, err)
	}
	metrics.QueriesTotal.WithLabelValues("catalog", "ok").Inc()

	return Succeeded(question, statement, rows)
}

func (a *Assistant) failed(question string, err error) Result {
	return Failed(question, err.Error())
}
