package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/timesync-hq/timesync-ingest-go/internal/config"
	"github.com/timesync-hq/timesync-ingest-go/internal/domain/timesheet"
	"github.com/timesync-hq/timesync-ingest-go/internal/pkg/email"
	"github.com/timesync-hq/timesync-ingest-go/internal/pkg/objectstore"
)

// Service drives the bucket pipeline around the ingestion engine: it polls
// the raw bucket for new export documents, runs each one through the engine,
// promotes the object to the trusted bucket, copies it to the backup bucket
// and mails a run report. The engine itself knows nothing about buckets.
type Service struct {
	store  objectstore.Store
	ingest timesheet.IngestService
	mailer email.Service
	cfg    config.S3Config
	mailTo string
}

func NewService(store objectstore.Store, ingest timesheet.IngestService, mailer email.Service, cfg config.S3Config, mailTo string) *Service {
	return &Service{
		store:  store,
		ingest: ingest,
		mailer: mailer,
		cfg:    cfg,
		mailTo: mailTo,
	}
}

// RunOnce processes every pending .json object under the raw prefix. Objects
// are handled independently; one failing document does not stop the sweep.
func (s *Service) RunOnce(ctx context.Context) error {
	objects, err := s.store.List(ctx, s.cfg.RawBucket, s.cfg.RawPrefix)
	if err != nil {
		return fmt.Errorf("list raw bucket: %w", err)
	}

	for _, obj := range objects {
		if !strings.HasSuffix(obj.Key, ".json") {
			slog.Info("ignoring non-JSON object", "key", obj.Key)
			continue
		}
		if err := s.processObject(ctx, obj.Key); err != nil {
			slog.Error("failed to process object", "key", obj.Key, "error", err)
		}
	}

	return nil
}

// processObject runs one raw object end to end. The object leaves the raw
// prefix only after a successful run, so a crashed worker retries it on the
// next sweep; a document the engine rejects is still backed up and removed
// so it cannot wedge the pipeline.
func (s *Service) processObject(ctx context.Context, key string) error {
	slog.Info("processing raw object", "bucket", s.cfg.RawBucket, "key", key)

	payload, err := s.store.Get(ctx, s.cfg.RawBucket, key)
	if err != nil {
		return err
	}

	result, ingestErr := s.ingest.IngestDocument(ctx, payload)
	s.sendReport(key, result)

	if err := s.store.Copy(ctx, s.cfg.RawBucket, key, s.cfg.BackupBucket); err != nil {
		return err
	}

	if ingestErr != nil {
		// Leave rejected documents out of the trusted bucket but still
		// clear them from the raw prefix; retrying them would fail the
		// same way.
		slog.Error("document rejected by ingestion engine", "key", key, "error", ingestErr)
	} else {
		if err := s.store.Copy(ctx, s.cfg.RawBucket, key, s.cfg.TrustedBucket); err != nil {
			return err
		}
	}

	if err := s.store.Delete(ctx, s.cfg.RawBucket, key); err != nil {
		return err
	}

	slog.Info("raw object processed",
		"key", key,
		"status", result.Status,
		"records_processed", result.RecordsProcessed,
	)
	return nil
}

func (s *Service) sendReport(key string, result timesheet.IngestResult) {
	if s.mailTo == "" {
		return
	}

	report := email.IngestReport{
		ObjectKey:        key,
		Registration:     result.Employee,
		RecordsProcessed: result.RecordsProcessed,
		RecordsSkipped:   result.RecordsSkipped,
		Status:           result.Status,
		Message:          result.Message,
		ProcessedAt:      time.Now().UTC().Format("2006-01-02 15:04:05 UTC"),
	}
	if err := s.mailer.SendIngestReport(s.mailTo, report); err != nil {
		slog.Error("failed to send ingest report", "key", key, "error", err)
	}
}
