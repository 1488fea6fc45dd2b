package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"prosignal/adapters/excel"
	"prosignal/adapters/postgres"
	"prosignal/adapters/render"
	"prosignal/adapters/warehouse"
	"prosignal/app"
	"prosignal/domain/signal"
	"prosignal/internal/config"
	"prosignal/ports"
)

// One-shot pipeline: read a workbook of signal rows, synthesize all four
// tier reports, print them as markdown, and archive them when a database
// is configured.
func main() {
	workbook := flag.String("workbook", "", "xlsx or csv file of signal rows (defaults to SIGNAL_WORKBOOK)")
	showQueries := flag.Bool("queries", false, "also print the generated warehouse queries")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	path := *workbook
	if path == "" {
		path = appConfig.Data.WorkbookFile
	}
	if path == "" {
		log.Fatal("No workbook given: pass -workbook or set SIGNAL_WORKBOOK")
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

	policy := signal.DefaultThresholdPolicy()
	svc := app.NewIntelligenceService(
		policy,
		excel.NewSignalReader(path),
		warehouse.NewQueryGenerator(),
		archive,
		appConfig.Warehouse.ProjectID,
		appConfig.Warehouse.DatasetID,
	)

	ctx := context.Background()
	n, err := svc.Ingest(ctx)
	if err != nil {
		log.Fatalf("Signal ingestion failed: %v", err)
	}
	log.Printf("Ingested %d signals from %s", n, path)

	reports, err := svc.GenerateAll(ctx)
	if err != nil {
		log.Fatalf("Report synthesis failed: %v", err)
	}

	fmt.Println(render.ExecutiveMarkdown(reports.Executive))
	fmt.Println(render.StrategicMarkdown(reports.Strategic, policy.L2MaxSignals))
	fmt.Println(render.InterventionsMarkdown(reports.Interventions, policy.L3MaxSignals))
	fmt.Println(render.DetailMarkdown(reports.Detail))

	if *showQueries {
		queries, err := svc.Queries(ctx)
		if err != nil {
			log.Printf("Query generation skipped: %v", err)
		} else {
			fmt.Println("## Warehouse Queries")
			for name, query := range queries {
				fmt.Printf("\n-- %s\n%s\n", name, query)
			}
		}
	}

	if archive != nil {
		if err := svc.Archive(ctx, reports); err != nil {
			log.Printf("Report archival failed: %v", err)
			os.Exit(1)
		}
		log.Println("All tier reports archived")
	}
}
