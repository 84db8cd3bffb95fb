package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"os"
	"strconv"
	"time"

	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/justinas/alice"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	tenderchat "github.com/tendly/tenderchat/pkg"
	"github.com/tendly/tenderchat/pkg/audit"
	"github.com/tendly/tenderchat/pkg/catalog"
	"github.com/tendly/tenderchat/pkg/chat"
	"github.com/tendly/tenderchat/pkg/env/db"
	"github.com/tendly/tenderchat/pkg/env/llm"
	"github.com/tendly/tenderchat/pkg/env/user"
	"github.com/tendly/tenderchat/pkg/env/webhook"
	"github.com/tendly/tenderchat/pkg/handlers"
	"github.com/tendly/tenderchat/pkg/middleware"
	"github.com/tendly/tenderchat/pkg/nl2sql"
	"github.com/tendly/tenderchat/pkg/prompt"
	"github.com/tendly/tenderchat/pkg/schema"
	"github.com/tendly/tenderchat/pkg/version"
)

const (
	readTimeout       = 1 * time.Minute
	readHeaderTimeout = 20 * time.Second
	writeTimeout      = 2 * time.Minute

	// One chat turn blocks on the LLM round-trip and then the database.
	chatTimeout = 90 * time.Second
)

func Run(logger *zap.SugaredLogger) error {
	production := os.Getenv("ENVIRONMENT") == "production"
	logger.Infof("Starting tenderchat version: %s", version.Version())

	usere := user.NewUserEnv()
	if err := usere.Populate(); err != nil {
		return fmt.Errorf("unable to configure users: %w", err)
	}

	expiry := usere.IsExpired()
	date := usere.Expiration.Format(user.ExpiryDateLayout)
	logger.Infof("Production: %t, expired: %t (expiration date: %s)", production, expiry, date)
	logger.Debugf("Authorized users: %v", usere.Users)

	dbe := db.NewDBEnv()
	if err := dbe.Populate(); err != nil {
		return fmt.Errorf("unable to configure database: %w", err)
	}
	logger.Infof("Using database driver: %s (write access: %t)", dbe.Driver, dbe.AllowWrite)

	sqlDB, err := sql.Open(dbe.Driver.Name(), dbe.ConnectionDSN())
	if err != nil {
		return fmt.Errorf("unable to open database connection: %w", err)
	}
	defer func() { _ = sqlDB.Close() }()
	sqlDB.SetMaxOpenConns(4)
	sqlDB.SetMaxIdleConns(4)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	logger.Debugf("Connected to database host: %s (port: %d)", dbe.Host, dbe.Port)

	lle := llm.NewLLMEnv()
	if err := lle.Populate(); err != nil {
		return fmt.Errorf("unable to configure LLM provider: %w", err)
	}
	logger.Infof("Using LLM provider: %s (model: %s)", lle.Provider, lle.Model)

	translator, err := nl2sql.New(context.Background(), lle)
	if err != nil {
		return fmt.Errorf("unable to initialize translator: %w", err)
	}
	// The Gemini client holds a gRPC connection that needs closing.
	if closer, ok := translator.(io.Closer); ok {
		defer func() { _ = closer.Close() }()
	}

	queryCatalog, err := catalog.New(catalog.Default())
	if err != nil {
		return fmt.Errorf("unable to build query catalog: %w", err)
	}
	logger.Infof("Loaded query catalog with %d entries", len(queryCatalog.Entries()))

	introspector := schema.NewIntrospector(sqlDB, dbe.Driver)
	prompts := prompt.NewBuilder(dbe.Driver)
	assistant := chat.NewAssistant(sqlDB, introspector, translator, prompts, dbe.AllowWrite, logger)

	la := audit.NewLoggerAudit(logger)

	we := webhook.NewWebhookEnv()
	if err := we.Populate(); err != nil {
		return fmt.Errorf("unable to configure audit webhook: %w", err)
	}

	var wa *audit.WebhookAudit
	if we.Enabled() {
		wa = audit.NewWebhookAudit(we)
		logger.Infof("Sending audit to collector endpoint: %s", we.Endpoint)
	}

	cfg := &tenderchat.Config{
		DB:           sqlDB,
		DBEnv:        dbe,
		LLMEnv:       lle,
		UserEnv:      usere,
		Catalog:      queryCatalog,
		Assistant:    assistant,
		Introspector: introspector,
		LoggerAudit:  la,
		WebhookAudit: wa,
		Logger:       logger,
	}

	// Temp workaround for easy to access io.Writer.
	defaultLogOutput := log.Default().Writer()

	healthLogOutput := io.Discard
	if !production {
		healthLogOutput = defaultLogOutput
	}
	logHandler := gorillaHandlers.LoggingHandler

	askChain := alice.New(
		alice.Constructor(middleware.Recovery(cfg)),
		alice.Constructor(middleware.Expiration(cfg)),
		alice.Constructor(middleware.Audit(cfg)),
		alice.Constructor(middleware.Metrics("/ask")),
		alice.Constructor(middleware.Timeout(chatTimeout)),
	).Then(handlers.Ask(cfg))

	queryChain := alice.New(
		alice.Constructor(middleware.Recovery(cfg)),
		alice.Constructor(middleware.Authorization(cfg)),
		alice.Constructor(middleware.Expiration(cfg)),
		alice.Constructor(middleware.Audit(cfg)),
		alice.Constructor(middleware.Metrics("/query")),
	).Then(handlers.Query(cfg))

	catalogRunChain := alice.New(
		alice.Constructor(middleware.Recovery(cfg)),
		alice.Constructor(middleware.Expiration(cfg)),
		alice.Constructor(middleware.Metrics("/catalog/{label}")),
		alice.Constructor(middleware.Timeout(chatTimeout)),
	).Then(handlers.RunCatalog(cfg))

	r := mux.NewRouter()
	r.Handle("/healthcheck", logHandler(healthLogOutput, handlers.Healthcheck(cfg))).Methods("GET")
	r.Handle("/ask", logHandler(defaultLogOutput, askChain)).Methods("POST")
	r.Handle("/query", logHandler(defaultLogOutput, queryChain)).Methods("POST")
	r.Handle("/catalog", logHandler(defaultLogOutput, handlers.ListCatalog(cfg))).Methods("GET")
	r.Handle("/catalog/{label}", logHandler(defaultLogOutput, catalogRunChain)).Methods("POST")
	r.Handle("/tables", logHandler(defaultLogOutput, handlers.Tables(cfg))).Methods("GET")
	r.Handle("/schema", logHandler(defaultLogOutput, handlers.Schema(cfg))).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	port := 8080
	logger.Infof("HTTP server starting on port: %d", port)

	server := &http.Server{
		Addr:              net.JoinHostPort("", strconv.Itoa(port)),
		Handler:           r,
		ReadTimeout:       readTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      writeTimeout,
	}
	if err := server.ListenAndServe(); err != nil {
		return fmt.Errorf("unable to start HTTP server: %w", err)
	}

	return nil
}
