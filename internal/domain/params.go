package domain

import "math"

// PlanningParams is the immutable-per-call configuration for a planning run.
type PlanningParams struct {
	TargetDaysOfCoverage   int     `json:"target_days_of_coverage"`
	SafetyStockDays        int     `json:"safety_stock_days"`
	MinimumReorderQuantity int     `json:"minimum_reorder_quantity"`
	MaximumReorderQuantity int     `json:"maximum_reorder_quantity"`
	LeadTimeDays           int     `json:"lead_time_days"`
	SeasonalityFactor      float64 `json:"seasonality_factor"`
	SalesGrowthFactor      float64 `json:"sales_growth_factor"`
	ApplyBudgetConstraints bool    `json:"apply_budget_constraints"`
	MaxBudget              float64 `json:"max_budget"`
	MaxUnits               int     `json:"max_units"`
}

// PlanningOverrides carries caller-supplied parameter overrides. Pointer
// fields distinguish "not set" from explicit zero values.
type PlanningOverrides struct {
	TargetDaysOfCoverage   *int     `json:"target_days_of_coverage,omitempty"`
	SafetyStockDays        *int     `json:"safety_stock_days,omitempty"`
	MinimumReorderQuantity *int     `json:"minimum_reorder_quantity,omitempty"`
	MaximumReorderQuantity *int     `json:"maximum_reorder_quantity,omitempty"`
	LeadTimeDays           *int     `json:"lead_time_days,omitempty"`
	SeasonalityFactor      *float64 `json:"seasonality_factor,omitempty"`
	SalesGrowthFactor      *float64 `json:"sales_growth_factor,omitempty"`
	ApplyBudgetConstraints *bool    `json:"apply_budget_constraints,omitempty"`
	MaxBudget              *float64 `json:"max_budget,omitempty"`
	MaxUnits               *int     `json:"max_units,omitempty"`
}

// DefaultPlanningParams returns the documented default parameter set.
func DefaultPlanningParams() PlanningParams {
	return PlanningParams{
		TargetDaysOfCoverage:   60,
		SafetyStockDays:        14,
		MinimumReorderQuantity: 1,
		MaximumReorderQuantity: 10000,
		LeadTimeDays:           30,
		SeasonalityFactor:      1.0,
		SalesGrowthFactor:      1.0,
		ApplyBudgetConstraints: false,
		MaxBudget:              math.MaxFloat64,
		MaxUnits:               math.MaxInt32,
	}
}

// Merged applies the given overrides on top of p and returns the result.
// A nil overrides pointer leaves p unchanged.
func (p PlanningParams) Merged(ov *PlanningOverrides) PlanningParams {
	if ov == nil {
		return p
	}
	if ov.TargetDaysOfCoverage != nil {
		p.TargetDaysOfCoverage = *ov.TargetDaysOfCoverage
	}
	if ov.SafetyStockDays != nil {
		p.SafetyStockDays = *ov.SafetyStockDays
	}
	if ov.MinimumReorderQuantity != nil {
		p.MinimumReorderQuantity = *ov.MinimumReorderQuantity
	}
	if ov.MaximumReorderQuantity != nil {
		p.MaximumReorderQuantity = *ov.MaximumReorderQuantity
	}
	if ov.LeadTimeDays != nil {
		p.LeadTimeDays = *ov.LeadTimeDays
	}
	if ov.SeasonalityFactor != nil {
		p.SeasonalityFactor = *ov.SeasonalityFactor
	}
	if ov.SalesGrowthFactor != nil {
		p.SalesGrowthFactor = *ov.SalesGrowthFactor
	}
	if ov.ApplyBudgetConstraints != nil {
		p.ApplyBudgetConstraints = *ov.ApplyBudgetConstraints
	}
	if ov.MaxBudget != nil {
		p.MaxBudget = *ov.MaxBudget
	}
	if ov.MaxUnits != nil {
		p.MaxUnits = *ov.MaxUnits
	}
	return p
}
