package main

import (
	"context"
	"log"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"prosignal/adapters/excel"
	"prosignal/adapters/postgres"
	"prosignal/adapters/warehouse"
	"prosignal/app"
	"prosignal/domain/signal"
	"prosignal/internal/config"
	"prosignal/internal/errors"
	"prosignal/internal/testkit"
	"prosignal/ports"
	"prosignal/ui"
)

// initDatabase connects the report archive database and ensures its schema
func initDatabase(appConfig *config.Config) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", appConfig.Database.URL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to database")
	}

	if err := db.Ping(); err != nil {
		return nil, errors.Wrap(err, "failed to ping database")
	}

	if err := postgres.EnsureSchema(db); err != nil {
		return nil, errors.Wrap(err, "report archive schema setup failed")
	}
	return db, nil
}

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// Load application configuration
	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Report archive is optional: without DATABASE_URL reports stay in memory
	var archive ports.ReportArchivePort
	if appConfig.ArchiveEnabled() {
		db, err := initDatabase(appConfig)
		if err != nil {
			log.Fatal("Failed to initialize database: ", err)
		}
		defer db.Close()
		archive = postgres.NewReportArchive(db)
		log.Println("Report archive enabled")
	}

	// Configure signal source
	var reader ports.SignalReaderPort
	if appConfig.Data.WorkbookFile != "" {
		log.Printf("Using workbook signal source: %s", appConfig.Data.WorkbookFile)
		reader = excel.NewSignalReader(appConfig.Data.WorkbookFile)
	} else {
		log.Println("No workbook configured, using synthetic signals")
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
	} else {
		generator := testkit.NewSignalGenerator(testkit.DefaultSignalConfig())
		inputs := generator.Generate()
		for _, in := range inputs {
			svc.AddSignal(in)
		}
		log.Printf("Seeded %d synthetic signals", len(inputs))
	}

	server := ui.NewServer(ui.Config{
		Port:    appConfig.Server.Port,
		GinMode: appConfig.Server.GinMode,
	}, svc)

	log.Printf("Starting dashboard on port %s", appConfig.Server.Port)
	log.Fatal(server.Run(appConfig.Server.Port))
}
