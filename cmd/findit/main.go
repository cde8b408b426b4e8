package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/findit-campus/findit/internal/api"
	"github.com/findit-campus/findit/internal/db"
	"github.com/findit-campus/findit/internal/store"
	"github.com/findit-campus/findit/internal/verify"
)

// levelRouter is a slog.Handler that routes INFO/WARN to stdout and ERROR+ to stderr.
type levelRouter struct {
	stdout slog.Handler
	stderr slog.Handler
}

func (lr *levelRouter) Enabled(_ context.Context, level slog.Level) bool {
	return level >= slog.LevelInfo
}

func (lr *levelRouter) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= slog.LevelError {
		return lr.stderr.Handle(ctx, r)
	}
	return lr.stdout.Handle(ctx, r)
}

func (lr *levelRouter) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &levelRouter{
		stdout: lr.stdout.WithAttrs(attrs),
		stderr: lr.stderr.WithAttrs(attrs),
	}
}

func (lr *levelRouter) WithGroup(name string) slog.Handler {
	return &levelRouter{
		stdout: lr.stdout.WithGroup(name),
		stderr: lr.stderr.WithGroup(name),
	}
}

// setupLogger configures structured logging. INFO/WARN go to stdout, ERROR goes
// to stderr. If logPath is non-empty, all levels are also written to that file.
// Returns a cleanup function that closes the log file (if opened).
func setupLogger(logPath string) (func(), error) {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}

	var cleanup func()

	stdoutW := io.Writer(os.Stdout)
	stderrW := io.Writer(os.Stderr)

	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		cleanup = func() { f.Close() }
		stdoutW = io.MultiWriter(os.Stdout, f)
		stderrW = io.MultiWriter(os.Stderr, f)
	}

	handler := &levelRouter{
		stdout: slog.NewTextHandler(stdoutW, opts),
		stderr: slog.NewTextHandler(stderrW, opts),
	}
	slog.SetDefault(slog.New(handler))
	return cleanup, nil
}

// envOr returns the environment variable's value, or fallback if unset.
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	// Optional .env file; flags still take precedence over the environment.
	_ = godotenv.Load()

	fs := flag.NewFlagSet("findit", flag.ContinueOnError)

	var dbPath string
	fs.StringVar(&dbPath, "db", envOr("FINDIT_DB", "findit.sqlite3"), "")
	fs.StringVar(&dbPath, "d", envOr("FINDIT_DB", "findit.sqlite3"), "")

	var addr string
	fs.StringVar(&addr, "addr", envOr("FINDIT_ADDR", ":8080"), "")
	fs.StringVar(&addr, "a", envOr("FINDIT_ADDR", ":8080"), "")

	var logPath string
	fs.StringVar(&logPath, "log", envOr("FINDIT_LOG", ""), "")
	fs.StringVar(&logPath, "l", envOr("FINDIT_LOG", ""), "")

	fs.Usage = func() {
		fmt.Fprint(os.Stdout, `Usage: findit [flags]

Flags:
  -d, -db <path>          SQLite database path (default: findit.sqlite3, env: FINDIT_DB)
  -a, -addr <host:port>   listen address (default: :8080, env: FINDIT_ADDR)
  -l, -log <path>         log file path (default: no file, stdout/stderr only, env: FINDIT_LOG)
  -h, -help               show this help and exit
`)
	}

	if err := fs.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if fs.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "unexpected argument: %s\n", fs.Arg(0))
		fs.Usage()
		os.Exit(1)
	}

	// Set up structured logging: INFO/WARN → stdout, ERROR → stderr.
	// Optionally also write to a log file.
	closeLog, err := setupLogger(logPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if closeLog != nil {
		defer closeLog()
	}

	// Open database.
	database, err := db.Open(dbPath)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer database.Close()

	// Ensure schema exists (idempotent).
	if err := db.EnsureSchema(database); err != nil {
		slog.Error("failed to ensure database schema", "error", err)
		os.Exit(1)
	}

	slog.Info("database ready", "path", dbPath)

	// Seed demo accounts and found items on first run.
	seeded, err := db.Seed(context.Background(), database)
	if err != nil {
		slog.Error("failed to seed database", "error", err)
		os.Exit(1)
	}
	if seeded {
		printSeedResult()
	}

	// Load JWT secret from database (auto-generated on first run).
	jwtSecret, err := store.GetJWTSecret(context.Background(), database)
	if err != nil {
		slog.Error("failed to get JWT secret", "error", err)
		os.Exit(1)
	}

	// Claim verification sessions live in memory; stale ones are swept hourly.
	sweepCtx, stopSweep := context.WithCancel(context.Background())
	defer stopSweep()

	registry := verify.NewRegistry(verify.ChecksumDecider{}, verify.DefaultTiming)
	registry.StartSweeper(sweepCtx, time.Hour, 24*time.Hour)

	handler := api.LoggingMiddleware(api.NewRouter(database, jwtSecret, registry))

	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-quit
		slog.Info("shutdown signal received", "signal", sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			slog.Error("server forced to shutdown", "error", err)
		}
	}()

	slog.Info("server started", "addr", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped, closing database")
}

// printSeedResult prints the demo account credentials created on first run.
func printSeedResult() {
	fmt.Println("Demo accounts created:")
	fmt.Println("  student@example.com (student)")
	fmt.Println("  staff@example.com   (staff)")
	fmt.Println("  admin@example.com   (admin)")
	fmt.Printf("  Password for all:   %s\n", db.DemoPassword)
	fmt.Println()
}
