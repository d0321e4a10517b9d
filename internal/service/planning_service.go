package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/restockly/backend/internal/config"
	"github.com/restockly/backend/internal/domain"
	"github.com/restockly/backend/internal/planning"
	"github.com/restockly/backend/internal/repository"
)

const defaultLowCoverageThreshold = 14

// PlanningService orchestrates the planning components over items fetched
// from the inventory repository. All computation is in-memory and per-SKU
// independent; batches run on a bounded worker group.
type PlanningService struct {
	repo      repository.InventoryRepository
	velocity  *planning.VelocityAnalyzer
	engine    *planning.RecommendationEngine
	health    *planning.HealthAssessor
	fees      *planning.FeeEstimator
	optimizer *planning.ReorderPlanOptimizer

	defaults domain.PlanningParams
	workers  int
}

func NewPlanningService(repo repository.InventoryRepository, cfg config.PlanningConfig) *PlanningService {
	workers := cfg.WorkerCount
	if workers < 1 {
		workers = 1
	}

	defaults := domain.DefaultPlanningParams()
	if cfg.TargetDaysOfCoverage > 0 {
		defaults.TargetDaysOfCoverage = cfg.TargetDaysOfCoverage
	}
	if cfg.SafetyStockDays > 0 {
		defaults.SafetyStockDays = cfg.SafetyStockDays
	}
	if cfg.MinimumReorderQuantity > 0 {
		defaults.MinimumReorderQuantity = cfg.MinimumReorderQuantity
	}
	if cfg.MaximumReorderQuantity > 0 {
		defaults.MaximumReorderQuantity = cfg.MaximumReorderQuantity
	}
	if cfg.LeadTimeDays > 0 {
		defaults.LeadTimeDays = cfg.LeadTimeDays
	}

	return &PlanningService{
		repo:     repo,
		velocity: planning.NewVelocityAnalyzer(),
		engine:   planning.NewRecommendationEngine(),
		health: planning.NewHealthAssessor(planning.HealthAssessorConfig{
			StorageRatePerUnit: cfg.StorageRatePerUnit,
			DefaultUnitCost:    cfg.DefaultUnitCost,
		}),
		fees: planning.NewFeeEstimator(planning.FeeEstimatorConfig{
			FulfillmentFeePerUnit:     cfg.FulfillmentFeePerUnit,
			MonthlyStorageFeePerUnit:  cfg.MonthlyStorageFeePerUnit,
			LongTermStorageFeePerUnit: cfg.LongTermStorageFeePerUnit,
			ReferralFeePercent:        cfg.ReferralFeePercent,
		}),
		optimizer: planning.NewReorderPlanOptimizer(cfg.DefaultUnitCost),
		defaults:  defaults,
		workers:   workers,
	}
}

// DefaultParams exposes the merged-default parameter set of this service.
func (s *PlanningService) DefaultParams() domain.PlanningParams {
	return s.defaults
}

// Recommendations computes a stocking recommendation per requested SKU.
// A failing SKU becomes an ItemFailure; the batch still succeeds.
func (s *PlanningService) Recommendations(ctx context.Context, skus []string, overrides *domain.PlanningOverrides) ([]domain.InventoryLevelRecommendation, []domain.ItemFailure, error) {
	items, err := s.repo.FetchItems(ctx, skus)
	if err != nil {
		return nil, nil, &domain.UnavailableError{Op: "recommendations", Err: err}
	}

	params := s.defaults.Merged(overrides)
	return computeBatch(ctx, s.workers, items, func(item domain.InventoryItem) domain.InventoryLevelRecommendation {
		return s.engine.Recommend(item, params)
	})
}

// VelocityMetrics computes sales velocity per requested SKU over the given
// trailing day range (90 when dayRange <= 0).
func (s *PlanningService) VelocityMetrics(ctx context.Context, skus []string, dayRange int) ([]domain.SalesVelocityMetrics, []domain.ItemFailure, error) {
	items, err := s.repo.FetchItems(ctx, skus)
	if err != nil {
		return nil, nil, &domain.UnavailableError{Op: "velocity metrics", Err: err}
	}

	return computeBatch(ctx, s.workers, items, func(item domain.InventoryItem) domain.SalesVelocityMetrics {
		return s.velocity.Analyze(item, dayRange)
	})
}

// FeeEstimates computes the per-unit carrying-cost breakdown per SKU.
func (s *PlanningService) FeeEstimates(ctx context.Context, skus []string) ([]domain.FeeEstimate, []domain.ItemFailure, error) {
	items, err := s.repo.FetchItems(ctx, skus)
	if err != nil {
		return nil, nil, &domain.UnavailableError{Op: "fee estimates", Err: err}
	}

	return computeBatch(ctx, s.workers, items, s.fees.Estimate)
}

// HealthAssessments classifies inventory health per requested SKU.
func (s *PlanningService) HealthAssessments(ctx context.Context, skus []string) ([]domain.InventoryHealthAssessment, []domain.ItemFailure, error) {
	items, err := s.repo.FetchItems(ctx, skus)
	if err != nil {
		return nil, nil, &domain.UnavailableError{Op: "health assessments", Err: err}
	}

	return s.assess(ctx, items)
}

// ExcessInventoryReport scans the whole catalog for SKUs holding excess
// stock.
func (s *PlanningService) ExcessInventoryReport(ctx context.Context) ([]domain.InventoryHealthAssessment, []domain.ItemFailure, error) {
	items, err := s.repo.FetchAll(ctx)
	if err != nil {
		return nil, nil, &domain.UnavailableError{Op: "excess inventory report", Err: err}
	}

	assessments, failures, err := s.assess(ctx, items)
	if err != nil {
		return nil, nil, err
	}

	excess := assessments[:0]
	for _, a := range assessments {
		if a.HealthStatus == domain.HealthExcess {
			excess = append(excess, a)
		}
	}
	return excess, failures, nil
}

// LowInventoryReport scans the whole catalog for SKUs whose current stock
// covers at most daysThreshold days of adjusted demand (14 when <= 0).
func (s *PlanningService) LowInventoryReport(ctx context.Context, daysThreshold int) ([]domain.InventoryLevelRecommendation, []domain.ItemFailure, error) {
	if daysThreshold <= 0 {
		daysThreshold = defaultLowCoverageThreshold
	}

	items, err := s.repo.FetchAll(ctx)
	if err != nil {
		return nil, nil, &domain.UnavailableError{Op: "low inventory report", Err: err}
	}

	recs, failures, err := computeBatch(ctx, s.workers, items, func(item domain.InventoryItem) domain.InventoryLevelRecommendation {
		return s.engine.Recommend(item, s.defaults)
	})
	if err != nil {
		return nil, nil, err
	}

	low := recs[:0]
	for _, rec := range recs {
		if rec.DaysOfCoverageAtCurrentLevel <= float64(daysThreshold) {
			low = append(low, rec)
		}
	}
	return low, failures, nil
}

// OptimalReorderPlan computes recommendations for the whole catalog and,
// when budget constraints apply, fits them under the budget and unit caps.
func (s *PlanningService) OptimalReorderPlan(ctx context.Context, overrides *domain.PlanningOverrides) (*domain.ReorderPlan, []domain.ItemFailure, error) {
	items, err := s.repo.FetchAll(ctx)
	if err != nil {
		return nil, nil, &domain.UnavailableError{Op: "optimal reorder plan", Err: err}
	}

	params := s.defaults.Merged(overrides)

	recs, failures, err := computeBatch(ctx, s.workers, items, func(item domain.InventoryItem) domain.InventoryLevelRecommendation {
		return s.engine.Recommend(item, params)
	})
	if err != nil {
		return nil, nil, err
	}

	unitCosts := make(map[string]float64, len(items))
	for _, item := range items {
		if item.Cost != nil {
			unitCosts[item.SKU] = *item.Cost
		}
	}

	if params.ApplyBudgetConstraints {
		recs = s.optimizer.Optimize(recs, unitCosts, params.MaxBudget, params.MaxUnits)
	}

	plan := &domain.ReorderPlan{
		Lines:         make([]domain.ReorderPlanLine, 0, len(recs)),
		BudgetApplied: params.ApplyBudgetConstraints,
	}
	for _, rec := range recs {
		unitCost := s.optimizer.DefaultUnitCost
		if c, ok := unitCosts[rec.SKU]; ok {
			unitCost = c
		}
		line := domain.ReorderPlanLine{
			InventoryLevelRecommendation: rec,
			UnitCost:                     unitCost,
			LineCost:                     float64(rec.ReorderQuantity) * unitCost,
		}
		plan.Lines = append(plan.Lines, line)
		plan.TotalUnits += rec.ReorderQuantity
		plan.TotalCost += line.LineCost
	}

	return plan, failures, nil
}

func (s *PlanningService) assess(ctx context.Context, items []domain.InventoryItem) ([]domain.InventoryHealthAssessment, []domain.ItemFailure, error) {
	return computeBatch(ctx, s.workers, items, func(item domain.InventoryItem) domain.InventoryHealthAssessment {
		return s.health.Assess(item, s.velocity.Analyze(item, 0))
	})
}

// computeBatch runs fn over items on a bounded worker group. A panic while
// computing one item degrades to a failure marker for that SKU instead of
// failing the batch.
func computeBatch[T any](ctx context.Context, workers int, items []domain.InventoryItem, fn func(domain.InventoryItem) T) ([]T, []domain.ItemFailure, error) {
	results := make([]T, len(items))
	failed := make([]bool, len(items))
	failures := make([]domain.ItemFailure, 0)

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	failureCh := make(chan domain.ItemFailure, len(items))
	for i := range items {
		i := i
		g.Go(func() error {
			defer func() {
				if r := recover(); r != nil {
					failed[i] = true
					failureCh <- domain.ItemFailure{
						SKU:    items[i].SKU,
						Reason: fmt.Sprintf("computation failed: %v", r),
					}
					log.Warn().Str("sku", items[i].SKU).Interface("panic", r).Msg("item computation failed")
				}
			}()
			results[i] = fn(items[i])
			return nil
		})
	}
	_ = g.Wait()
	close(failureCh)

	for f := range failureCh {
		failures = append(failures, f)
	}

	kept := results[:0]
	for i := range results {
		if !failed[i] {
			kept = append(kept, results[i])
		}
	}
	return kept, failures, nil
}
