package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/timesync-hq/timesync-ingest-go/internal/config"
	"github.com/timesync-hq/timesync-ingest-go/internal/pkg/cron"
	"github.com/timesync-hq/timesync-ingest-go/internal/pkg/database"
	"github.com/timesync-hq/timesync-ingest-go/internal/pkg/email"
	"github.com/timesync-hq/timesync-ingest-go/internal/pkg/objectstore"
	"github.com/timesync-hq/timesync-ingest-go/internal/repository/postgresql"
	ingestService "github.com/timesync-hq/timesync-ingest-go/internal/service/ingest"
	pipelineService "github.com/timesync-hq/timesync-ingest-go/internal/service/pipeline"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}
	if cfg.S3.RawBucket == "" {
		log.Fatal("S3_RAW_BUCKET is required for the worker")
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}

	awsConfig, err := awscfg.LoadDefaultConfig(context.Background(), awscfg.WithRegion(cfg.S3.Region))
	if err != nil {
		log.Fatal("Error loading AWS config: ", err)
	}
	store := objectstore.NewS3Store(awsConfig)

	emailService, err := email.NewService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service: ", err)
	}

	txManager := postgresql.NewTxManager(db)
	stateRepo := postgresql.NewDataStateRepository(db)
	userRepo := postgresql.NewUserRepository(db)
	projectRepo := postgresql.NewProjectRepository(db)
	entryRepo := postgresql.NewEntryRepository(db)

	ingestSvc := ingestService.NewService(txManager, stateRepo, userRepo, projectRepo, entryRepo)
	pipelineSvc := pipelineService.NewService(store, ingestSvc, emailService, cfg.S3, cfg.SMTP.ReportTo)

	scheduler := cron.NewScheduler()
	scheduler.AddJob("timesheet-pipeline", cfg.S3.PollInterval, pipelineSvc.RunOnce)
	scheduler.Start()

	fmt.Printf("Worker polling s3://%s/%s every %s\n", cfg.S3.RawBucket, cfg.S3.RawPrefix, cfg.S3.PollInterval)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	scheduler.Stop()
	db.Close()
}
