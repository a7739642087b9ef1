// digest mails a daily summary of newly posted jobs.
// Run continuously (DIGEST_CRON schedule) or once with -once.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/careerhub/job-board/config"
	"github.com/careerhub/job-board/internal/digest"
	"github.com/careerhub/job-board/internal/email"
	"github.com/careerhub/job-board/internal/infrastructure/postgres"
	ctxlog "github.com/careerhub/job-board/internal/log"
	"github.com/lmittmann/tint"
)

func main() {
	once := flag.Bool("once", false, "send one digest and exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}
	if cfg.DigestTo == "" {
		log.Fatal("DIGEST_TO is not set")
	}

	logger := newLogger(cfg.Env, cfg.SlogLevel())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer pool.Close()

	jobRepo := postgres.NewJobRepository(pool)
	emailSender := email.NewSender(cfg.Env, cfg.ResendAPIKey, cfg.ResendFrom, logger)
	d := digest.New(jobRepo, emailSender, cfg.DigestTo, logger)

	if *once {
		if err := d.Run(ctx); err != nil {
			log.Fatalf("digest: %v", err)
		}
		return
	}

	if err := d.Start(ctx, cfg.DigestCron); err != nil {
		log.Fatalf("digest: %v", err)
	}
}

func newLogger(env string, level slog.Level) *slog.Logger {
	var inner slog.Handler
	if env == "local" {
		inner = tint.NewHandler(os.Stdout, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		})
	} else {
		inner = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: level,
		})
	}
	return slog.New(ctxlog.NewContextHandler(inner))
}
