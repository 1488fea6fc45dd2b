package main

import (
	"context"
	"log"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"prosignal/adapters/api"
	"prosignal/adapters/excel"
	"prosignal/adapters/postgres"
	"prosignal/adapters/warehouse"
	"prosignal/app"
	"prosignal/domain/signal"
	"prosignal/internal/config"
	"prosignal/ports"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	var archive ports.ReportArchivePort
	if appConfig.ArchiveEnabled() {
		db, err := sqlx.Connect("postgres", appConfig.Database.URL)
		if err != nil {
			log.Fatal("Failed to connect to database: ", err)
		}
		defer db.Close()
		if err := postgres.EnsureSchema(db); err != nil {
			log.Fatal("Report archive schema setup failed: ", err)
		}
		archive = postgres.NewReportArchive(db)
	}

	var reader ports.SignalReaderPort
	if appConfig.Data.WorkbookFile != "" {
		reader = excel.NewSignalReader(appConfig.Data.WorkbookFile)
	}

	svc := app.NewIntelligenceService(
		signal.DefaultThresholdPolicy(),
		reader,
		warehouse.NewQueryGenerator(),
		archive,
		appConfig.Warehouse.ProjectID,
		appConfig.Warehouse.DatasetID,
	)

	if reader != nil {
		n, err := svc.Ingest(context.Background())
		if err != nil {
			log.Fatalf("Signal ingestion failed: %v", err)
		}
		log.Printf("Ingested %d signals", n)
	}

	server := api.NewServer(svc)
	log.Fatal(server.ListenAndServe(appConfig.Server.APIPort))
}
