// cmd/web/main.go
//
// Cerney Designs – HTTP entry point.
//
// Boot sequence
// -------------
//
//  1. Load env vars (server-wide file → .env fallback).
//
//  2. Start daily rotating logger (tees to console when running in a TTY).
//
//  3. Load and validate configuration (yaml + env overlay).
//
//  4. Construct collaborators: local ledger, PDF renderer, then the
//     optional S3 publisher and MySQL mirror when their config sections
//     are enabled.  An absent collaborator leaves its pipeline stage in
//     the "not configured" state; the orchestrator skips it.
//
//  5. Wire the intake service and mount the router (submission endpoint,
//     admin listing, health, metrics) behind the security-header and
//     request-info middleware.
//
//  6. Serve with hardened timeouts and drain gracefully on SIGINT or
//     SIGTERM, so in-flight submissions finish their best-effort stages.
//
// Large comment blocks are framed by blank “//” lines; inline comments use
// a single “//”.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/Chrisserknee/cerneydesigns/internal/artifact"
	"github.com/Chrisserknee/cerneydesigns/internal/config"
	"github.com/Chrisserknee/cerneydesigns/internal/database"
	"github.com/Chrisserknee/cerneydesigns/internal/intake"
	"github.com/Chrisserknee/cerneydesigns/internal/ledger"
	"github.com/Chrisserknee/cerneydesigns/internal/logger"
	"github.com/Chrisserknee/cerneydesigns/internal/mirror"
	"github.com/Chrisserknee/cerneydesigns/internal/pdf"
	"github.com/Chrisserknee/cerneydesigns/internal/server"
	"github.com/Chrisserknee/cerneydesigns/internal/web"
)

const serverEnvPath = "/usr/local/etc/cerneydesigns/global.env"

// loadEnv prefers the server-wide env file; on dev it falls back to .env.
func loadEnv() {
	if _, err := os.Stat(serverEnvPath); err == nil {
		_ = godotenv.Load(serverEnvPath)
		return
	}
	_ = godotenv.Load()
}

// runningInTTY returns true when stdout is a character device.
func runningInTTY() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

func init() { loadEnv() }

func main() {
	rootDir, _ := os.Getwd()
	logOut, err := logger.New(rootDir, runningInTTY())
	if err != nil {
		log.Fatalf("start logger: %v", err)
	}

	//
	// ── 1.  Configuration ───────────────────────────────────────────────
	//
	cfg, err := config.Load()
	if err != nil {
		logOut.Fatalf("load config: %v", err)
	}

	//
	// ── 2.  Collaborators ───────────────────────────────────────────────
	//
	led := ledger.New(cfg.Ledger.Path)
	renderer := pdf.NewRenderer()

	var publisher *artifact.Publisher
	if cfg.Storage.Enabled {
		uploader, err := artifact.NewS3Uploader(context.Background(),
			cfg.Storage.Bucket, cfg.Storage.Region)
		if err != nil {
			logOut.Fatalf("s3 uploader: %v", err)
		}
		publisher = artifact.NewPublisher(uploader, cfg.Storage.KeyPrefix,
			cfg.Storage.PublicBaseURL)
		logOut.Infow("artifact storage online", "bucket", cfg.Storage.Bucket)
	} else {
		logOut.Infow("artifact storage disabled; uploads will be skipped")
	}

	var mirrorWriter intake.MirrorWriter
	if cfg.Mirror.Enabled {
		db, err := database.Open(cfg.Mirror.DSN)
		if err != nil {
			logOut.Fatalf("connect mirror DB: %v", err)
		}
		defer db.Close()
		mirrorWriter = mirror.NewWriter(db)
		logOut.Infow("mirror DB online")
	} else {
		logOut.Infow("mirror disabled; inserts will be skipped")
	}

	//
	// ── 3.  Intake service and router ───────────────────────────────────
	//
	svc := intake.New(led, renderer, publisher, mirrorWriter, logOut)
	handler := web.NewHandler(svc, cfg.Admin.Token, logOut)

	srv := server.New(cfg.HTTP.ListenAddr, handler.Routes())

	//
	// ── 4.  Serve until SIGINT/SIGTERM, then drain ─────────────────────
	//
	errCh := make(chan error, 1)
	go func() {
		logOut.Infow("listening", "addr", cfg.HTTP.ListenAddr)
		errCh <- srv.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logOut.Fatalf("http server: %v", err)
		}
	case sig := <-stop:
		logOut.Infow("shutting down", "signal", sig.String())
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logOut.Errorw("shutdown", "error", err)
		}
	}
	logOut.Infow("bye")
}
