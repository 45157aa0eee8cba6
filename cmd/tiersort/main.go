package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ekazakov/tiersort/internal/app"
	"github.com/ekazakov/tiersort/internal/auth"
	"github.com/ekazakov/tiersort/internal/logger"
	"github.com/ekazakov/tiersort/pkg/telegram"
)

var (
	version = "dev"
)

func main() {
	port := flag.Int("port", 8081, "HTTP server port")
	dbPath := flag.String("db", "tiersort.db", "SQLite database path")
	adminPw := flag.String("adminpw", "", "Admin password (auto-generated if not set)")
	botToken := flag.String("token", "", "Telegram bot token (falls back to BOT_TOKEN env)")
	logLevel := flag.String("loglevel", "info", "Log level (debug, info, warn, error)")
	showVersion := flag.Bool("version", false, "Show version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `TierSort - Football Tier List Mini App Server

Usage:
  tiersort [options]

Options:
  -port int      HTTP server port (default 8081)
  -db string     SQLite database path (default "tiersort.db")
  -adminpw str   Admin password (auto-generated if not set)
  -token str     Telegram bot token (falls back to BOT_TOKEN env)
  -loglevel str  Log level: debug, info, warn, error (default "info")
  -version       Show version and exit
  -help          Show this help message

Examples:
  tiersort                           # Run on port 8081 with tiersort.db
  tiersort -port 8080                # Run on port 8080
  tiersort -db /data/clubs.db        # Use custom database path
  tiersort -adminpw secret123        # Use specific admin password
  tiersort -token 123456:ABC-DEF     # Use specific bot token

`)
	}

	flag.Parse()

	if *showVersion {
		fmt.Printf("tiersort %s\n", version)
		os.Exit(0)
	}

	// Setup admin authentication
	password := *adminPw
	if password == "" {
		password = auth.GeneratePassword()
	}
	adminAuth := auth.New(password)

	// Create logger with specified level
	appLog := logger.NewWithLevel(logger.ParseLevel(*logLevel))

	// Create Telegram client
	token := *botToken
	if token == "" {
		token = os.Getenv("BOT_TOKEN")
	}
	if token == "" {
		appLog.Warn("No bot token configured, completion notifications disabled")
	}
	tg := telegram.NewHTTPClient(token, appLog)

	a, err := app.New(appLog, *dbPath, tg, adminAuth)
	if err != nil {
		log.Fatal("Failed to initialize application:", err)
	}
	defer a.Close()

	addr := fmt.Sprintf(":%d", *port)
	appLog.Info("Admin password", "password", password)

	if err := a.Run(addr); err != nil {
		log.Fatal("Server error:", err)
	}
}
