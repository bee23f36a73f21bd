// cmd/importer/main.go
//
// Offline import tool. Loads dealer lists and monthly sales reports from
// disk straight into the database, bypassing the HTTP preview step. Useful
// for backfilling historical months.
package main

import (
	"context"
	"fmt"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/territoryiq/backend-go/internal/cache"
	"github.com/territoryiq/backend-go/internal/config"
	"github.com/territoryiq/backend-go/internal/repository/postgres"
	"github.com/territoryiq/backend-go/internal/service"
	"github.com/territoryiq/backend-go/pkg/logger"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "importer",
		Usage: "Import dealer lists and monthly sales reports from CSV files",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "rep",
				Usage:    "rep identifier to scope the import to",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log level (debug, info, warn, error)",
				Value: "info",
			},
		},
		Before: func(c *cli.Context) error {
			logger.SetLevel(c.String("log-level"))
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:      "dealers",
				Usage:     "import the account-mapping CSV (dealer list)",
				ArgsUsage: "<file.csv>",
				Action:    runDealers,
			},
			{
				Name:      "sales",
				Usage:     "import a monthly sales report CSV for a period",
				ArgsUsage: "<file.csv>",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "year", Usage: "target year", Required: true},
					&cli.IntFlag{Name: "month", Usage: "target month (1-12)", Required: true},
				},
				Action: runSales,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Log.Fatal().Err(err).Msg("import failed")
	}
}

func newImportService() (*service.ImportService, func(), error) {
	cfg := config.Load()

	connStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.User,
		cfg.Database.Password, cfg.Database.DBName, cfg.Database.SSLMode)

	raw, err := sqlx.Connect("pgx", connStr)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db := postgres.Wrap(raw)
	dealerRepo := postgres.NewDealerRepository(db)
	mixRepo := postgres.NewProductMixRepository(db)

	// No cache to invalidate from an offline run
	svc := service.NewImportService(dealerRepo, mixRepo, cache.NewNoopTerritoryCache())
	return svc, func() { raw.Close() }, nil
}

func runDealers(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		return cli.Exit("dealer CSV path is required", 1)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	svc, cleanup, err := newImportService()
	if err != nil {
		return err
	}
	defer cleanup()

	result, err := svc.ImportAccountMapping(context.Background(), c.String("rep"), f)
	if err != nil {
		return err
	}

	printResult(result.Success, result.Errors, result.Details)
	return nil
}

func runSales(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		return cli.Exit("sales CSV path is required", 1)
	}
	year := c.Int("year")
	month := c.Int("month")
	if year < 2000 || year > 2100 {
		return cli.Exit("valid --year is required", 1)
	}
	if month < 1 || month > 12 {
		return cli.Exit("--month must be between 1 and 12", 1)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	svc, cleanup, err := newImportService()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx := context.Background()
	repID := c.String("rep")

	preview, err := svc.PreviewSales(ctx, repID, f)
	if err != nil {
		return err
	}

	existing, err := svc.ExistingFactCount(ctx, repID, year, month)
	if err != nil {
		return err
	}
	if existing > 0 {
		fmt.Printf("Replacing %d existing records for %d-%02d\n", existing, year, month)
	}

	result, err := svc.CommitSales(ctx, repID, year, month, preview.ParsedData, preview.UnmatchedDealers)
	if err != nil {
		return err
	}

	for _, w := range preview.Warnings {
		fmt.Printf("Warning: %s\n", w)
	}
	printResult(result.Success, result.Errors, result.Details)
	return nil
}

func printResult(success, errors int, details []string) {
	fmt.Printf("Imported: %d, Errors: %d\n", success, errors)
	for _, d := range details {
		fmt.Printf("  %s\n", d)
	}
}
