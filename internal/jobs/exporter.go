package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Shreyas75/cmv-backend/internal/application/export"
	"github.com/Shreyas75/cmv-backend/internal/infrastructure/smtp"
)

// Exporter produces the volunteer CSV document.
type Exporter interface {
	VolunteersCSV(ctx context.Context) (export.Result, error)
}

// AttachmentMailer delivers the export to the administrator.
type AttachmentMailer interface {
	SendEmailWithAttachment(to, subject, text string, att smtp.Attachment) error
}

// ExportJob is the scheduled monthly volunteer export. Run never returns an
// error so a failing cycle cannot take the scheduler down with it.
type ExportJob struct {
	exporter Exporter
	mailer   AttachmentMailer
	dir      string
	adminTo  string
	now      func() time.Time
}

func NewExportJob(exporter Exporter, mailer AttachmentMailer, dir, adminTo string) *ExportJob {
	return &ExportJob{
		exporter: exporter,
		mailer:   mailer,
		dir:      dir,
		adminTo:  adminTo,
		now:      time.Now,
	}
}

// Run satisfies cron.Job. Any failure is reported as a single aggregate log
// entry naming the stage that failed.
func (j *ExportJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := j.runOnce(ctx); err != nil {
		slog.Error("volunteer export job failed", "err", err)
		return
	}
	slog.Info("volunteer export job completed")
}

func (j *ExportJob) runOnce(ctx context.Context) error {
	result, err := j.exporter.VolunteersCSV(ctx)
	if err != nil {
		return fmt.Errorf("fetch: %w", err)
	}
	if result.Empty {
		slog.Info("volunteer export skipped, no records")
		return nil
	}

	filename := "users-" + sanitizeTimestamp(j.now().UTC()) + ".csv"
	if err := j.writeFile(filename, result.CSV); err != nil {
		return fmt.Errorf("write: %w", err)
	}

	att := smtp.Attachment{Filename: filename, Data: []byte(result.CSV)}
	text := "Please find attached the monthly volunteer data export."
	if err := j.mailer.SendEmailWithAttachment(j.adminTo, "Monthly Volunteer Data Export", text, att); err != nil {
		return fmt.Errorf("send: %w", err)
	}
	return nil
}

func (j *ExportJob) writeFile(filename, csv string) error {
	if err := os.MkdirAll(j.dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(j.dir, filename), []byte(csv), 0o644)
}

// sanitizeTimestamp renders an ISO 8601 timestamp with the characters that
// are unsafe in filenames replaced by dashes.
func sanitizeTimestamp(t time.Time) string {
	s := t.Format("2006-01-02T15:04:05.000Z")
	s = strings.ReplaceAll(s, ":", "-")
	return strings.ReplaceAll(s, ".", "-")
}
