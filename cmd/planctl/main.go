package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/restockly/backend/internal/config"
	"github.com/restockly/backend/internal/domain"
	"github.com/restockly/backend/internal/export"
	"github.com/restockly/backend/internal/repository/postgres"
	"github.com/restockly/backend/internal/service"
	"github.com/restockly/backend/internal/storage"
	"github.com/restockly/backend/pkg/logger"
)

func newService() (*service.PlanningService, *config.Config, error) {
	cfg := config.Load()

	db, err := postgres.NewDB(&cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return service.NewPlanningService(postgres.NewInventoryRepository(db), cfg.Planning), cfg, nil
}

func runExcessReport(c *cli.Context) error {
	svc, _, err := newService()
	if err != nil {
		return err
	}

	assessments, failures, err := svc.ExcessInventoryReport(c.Context)
	if err != nil {
		return err
	}

	for _, a := range assessments {
		fmt.Printf("%-20s excess=%5.1f%% excess_cost=%10.2f monthly_storage=%8.2f\n",
			a.SKU, a.ExcessInventoryPercent, a.ExcessInventoryCost, a.MonthlyStorageCost)
	}
	reportFailures(failures)
	fmt.Printf("%d SKUs holding excess inventory\n", len(assessments))
	return nil
}

func runLowReport(c *cli.Context) error {
	svc, _, err := newService()
	if err != nil {
		return err
	}

	recs, failures, err := svc.LowInventoryReport(c.Context, c.Int("days"))
	if err != nil {
		return err
	}

	for _, rec := range recs {
		fmt.Printf("%-20s risk=%-6s coverage=%6.1fd reorder=%6d %s\n",
			rec.SKU, rec.RiskLevel, rec.DaysOfCoverageAtCurrentLevel, rec.ReorderQuantity, rec.RecommendationReason)
	}
	reportFailures(failures)
	fmt.Printf("%d SKUs below coverage threshold\n", len(recs))
	return nil
}

func runPlan(c *cli.Context) error {
	svc, cfg, err := newService()
	if err != nil {
		return err
	}

	overrides := &domain.PlanningOverrides{}
	if c.IsSet("budget") {
		budget := c.Float64("budget")
		overrides.MaxBudget = &budget
	}
	if c.IsSet("max-units") {
		maxUnits := c.Int("max-units")
		overrides.MaxUnits = &maxUnits
	}
	if c.Bool("apply-constraints") || c.IsSet("budget") || c.IsSet("max-units") {
		apply := true
		overrides.ApplyBudgetConstraints = &apply
	}

	plan, failures, err := svc.OptimalReorderPlan(c.Context, overrides)
	if err != nil {
		return err
	}
	reportFailures(failures)

	data, err := export.PlanCSV(plan)
	if err != nil {
		return err
	}

	out := c.String("out")
	if out != "" {
		if err := os.WriteFile(out, data, 0644); err != nil {
			return fmt.Errorf("write plan csv: %w", err)
		}
		log.Info().Str("path", out).Int("lines", len(plan.Lines)).Msg("plan written")
	} else {
		fmt.Print(string(data))
	}

	if c.Bool("upload") {
		store, err := storage.NewMinioClient(cfg.Storage)
		if err != nil {
			return err
		}
		key := fmt.Sprintf("plans/reorder-plan-%s.csv", time.Now().Format("2006-01-02T150405"))
		if err := store.UploadObject(c.Context, key, data); err != nil {
			return err
		}
		log.Info().Str("key", key).Msg("plan uploaded")
	}

	fmt.Printf("plan: %d units, %.2f total cost (budget applied: %v)\n",
		plan.TotalUnits, plan.TotalCost, plan.BudgetApplied)
	return nil
}

func reportFailures(failures []domain.ItemFailure) {
	for _, f := range failures {
		log.Warn().Str("sku", f.SKU).Str("reason", f.Reason).Msg("item skipped")
	}
}

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Debug().Err(err).Msg("no .env file loaded")
	}
	// CSV output goes to stdout, so diagnostics go to stderr
	log.Logger = logger.New("release", os.Stderr)

	app := &cli.App{
		Name:  "planctl",
		Usage: "Inventory planning reports and reorder plans",
		Commands: []*cli.Command{
			{
				Name:  "report",
				Usage: "Inventory reports",
				Subcommands: []*cli.Command{
					{
						Name:   "excess",
						Usage:  "List SKUs holding excess inventory",
						Action: runExcessReport,
					},
					{
						Name:  "low",
						Usage: "List SKUs below the coverage threshold",
						Flags: []cli.Flag{
							&cli.IntFlag{
								Name:  "days",
								Usage: "coverage threshold in days",
								Value: 14,
							},
						},
						Action: runLowReport,
					},
				},
			},
			{
				Name:  "plan",
				Usage: "Compute the optimal reorder plan",
				Flags: []cli.Flag{
					&cli.Float64Flag{
						Name:  "budget",
						Usage: "maximum total spend for the plan",
					},
					&cli.IntFlag{
						Name:  "max-units",
						Usage: "maximum total units for the plan",
					},
					&cli.BoolFlag{
						Name:  "apply-constraints",
						Usage: "apply budget constraints even without explicit caps",
					},
					&cli.StringFlag{
						Name:  "out",
						Usage: "write the plan CSV to this path (stdout when empty)",
					},
					&cli.BoolFlag{
						Name:  "upload",
						Usage: "upload the plan CSV to object storage",
					},
				},
				Action: runPlan,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("planctl failed")
	}
}
