package main

import (
	"log"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v4/stdlib"
	"github.com/joho/godotenv"
	_ "github.com/microsoft/go-mssqldb"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/tendly/tenderchat/pkg/cmd"
)

func main() {
	// Local development configuration; absence is not an error.
	_ = godotenv.Load()

	l, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Unable to initialize Zap logger: %s", err)
	}
	defer func() { _ = l.Sync() }()

	logger := l.Sugar()
	if err := cmd.Run(logger); err != nil {
		logger.Fatalf("Unable to start tenderchat: %s", err)
	}
}
