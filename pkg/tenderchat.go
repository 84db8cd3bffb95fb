package tenderchat

import (
	"database/sql"

	"go.uber.org/zap"

	"github.com/tendly/tenderchat/pkg/audit"
	"github.com/tendly/tenderchat/pkg/catalog"
	"github.com/tendly/tenderchat/pkg/chat"
	"github.com/tendly/tenderchat/pkg/env/db"
	"github.com/tendly/tenderchat/pkg/env/llm"
	"github.com/tendly/tenderchat/pkg/env/user"
	"github.com/tendly/tenderchat/pkg/schema"
)

// Config carries the shared dependencies handlers and middleware operate on.
type Config struct {
	DB           *sql.DB
	DBEnv        *db.Env
	LLMEnv       *llm.Env
	UserEnv      *user.Env
	Catalog      *catalog.Catalog
	Assistant    *chat.Assistant
	Introspector *schema.Introspector
	LoggerAudit  *audit.LoggerAudit
	WebhookAudit *audit.WebhookAudit
	Logger       *zap.SugaredLogger
}
