package main

import (
	"fmt"
	"net/http"

	"github.com/timesync-hq/timesync-ingest-go/internal/config"
	appHTTP "github.com/timesync-hq/timesync-ingest-go/internal/handler/http"
	"github.com/timesync-hq/timesync-ingest-go/internal/pkg/database"
	"github.com/timesync-hq/timesync-ingest-go/internal/pkg/token"
	"github.com/timesync-hq/timesync-ingest-go/internal/repository/postgresql"
	ingestService "github.com/timesync-hq/timesync-ingest-go/internal/service/ingest"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	txManager := postgresql.NewTxManager(db)
	stateRepo := postgresql.NewDataStateRepository(db)
	userRepo := postgresql.NewUserRepository(db)
	projectRepo := postgresql.NewProjectRepository(db)
	entryRepo := postgresql.NewEntryRepository(db)

	tokenService := token.NewService(cfg.Auth.Secret, cfg.Auth.TokenExpiration)
	ingestSvc := ingestService.NewService(txManager, stateRepo, userRepo, projectRepo, entryRepo)

	timesheetHandler := appHTTP.NewTimesheetHandler(ingestSvc)

	router := appHTTP.NewRouter(tokenService, timesheetHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
