// Package digest builds and mails a daily summary of new job postings.
package digest

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/careerhub/job-board/internal/domain"
	"github.com/careerhub/job-board/internal/email"
	"github.com/robfig/cron/v3"
)

type jobLister interface {
	ListCreatedSince(ctx context.Context, since time.Time) ([]*domain.Job, error)
}

type Digester struct {
	jobs   jobLister
	email  email.Sender
	to     string
	window time.Duration
	logger *slog.Logger
}

func New(jobs jobLister, emailSender email.Sender, to string, logger *slog.Logger) *Digester {
	return &Digester{
		jobs:   jobs,
		email:  emailSender,
		to:     to,
		window: 24 * time.Hour,
		logger: logger.With("component", "digest"),
	}
}

// Run sends one digest covering the last 24 hours. An empty window sends
// nothing.
func (d *Digester) Run(ctx context.Context) error {
	since := time.Now().Add(-d.window)

	jobs, err := d.jobs.ListCreatedSince(ctx, since)
	if err != nil {
		return fmt.Errorf("list new jobs: %w", err)
	}
	if len(jobs) == 0 {
		d.logger.Info("no new postings, skipping digest")
		return nil
	}

	subject := fmt.Sprintf("%d new job postings", len(jobs))
	if err := d.email.Send(ctx, d.to, subject, Body(jobs)); err != nil {
		return fmt.Errorf("send digest: %w", err)
	}

	d.logger.Info("digest sent", "jobs", len(jobs), "to", d.to)
	return nil
}

// Body renders the digest HTML.
func Body(jobs []*domain.Job) string {
	var b strings.Builder
	b.WriteString("<p>New postings in the last 24 hours:</p><ul>")
	for _, j := range jobs {
		fmt.Fprintf(&b, "<li><b>%s</b> at %s — %s (%s)</li>", j.Title, j.Company, j.Location, j.JobType)
	}
	b.WriteString("</ul>")
	return b.String()
}

// Start runs the digester on the given cron schedule until ctx is cancelled.
// The expression is validated up front.
func (d *Digester) Start(ctx context.Context, cronExpr string) error {
	sched, err := cron.ParseStandard(cronExpr)
	if err != nil {
		return fmt.Errorf("parse digest cron %q: %w", cronExpr, err)
	}

	d.logger.Info("digest scheduler started", "cron", cronExpr)

	for {
		next := sched.Next(time.Now())
		timer := time.NewTimer(time.Until(next))

		select {
		case <-ctx.Done():
			timer.Stop()
			d.logger.Info("digest scheduler shut down")
			return nil
		case <-timer.C:
			if err := d.Run(ctx); err != nil {
				d.logger.Error("digest run", "error", err)
			}
		}
	}
}
