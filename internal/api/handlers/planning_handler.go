package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/restockly/backend/internal/domain"
	"github.com/restockly/backend/internal/service"
)

type PlanningHandler struct {
	service *service.PlanningService
}

func NewPlanningHandler(service *service.PlanningService) *PlanningHandler {
	return &PlanningHandler{service: service}
}

// parseSKUs accepts both repeated params and comma-separated lists:
//
//	?sku=A&sku=B
//	?sku=A,B
func parseSKUs(c *gin.Context) []string {
	raw := c.QueryArray("sku")
	if len(raw) == 0 {
		if single := strings.TrimSpace(c.Query("skus")); single != "" {
			raw = strings.Split(single, ",")
		}
	}

	skus := make([]string, 0, len(raw))
	for _, v := range raw {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				skus = append(skus, part)
			}
		}
	}
	return skus
}

// parseOverrides collects the per-request planning overrides from query
// params. Unset params leave the configured defaults in place; a malformed
// value is reported as a bad request.
func parseOverrides(c *gin.Context) (*domain.PlanningOverrides, error) {
	var o domain.PlanningOverrides
	set := false

	intParams := map[string]**int{
		"target_days_of_coverage":  &o.TargetDaysOfCoverage,
		"safety_stock_days":        &o.SafetyStockDays,
		"minimum_reorder_quantity": &o.MinimumReorderQuantity,
		"maximum_reorder_quantity": &o.MaximumReorderQuantity,
		"lead_time_days":           &o.LeadTimeDays,
		"max_units":                &o.MaxUnits,
	}
	for name, dst := range intParams {
		raw := c.Query(name)
		if raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %q", name, raw)
		}
		*dst = &v
		set = true
	}

	floatParams := map[string]**float64{
		"seasonality_factor":  &o.SeasonalityFactor,
		"sales_growth_factor": &o.SalesGrowthFactor,
		"max_budget":          &o.MaxBudget,
	}
	for name, dst := range floatParams {
		raw := c.Query(name)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %q", name, raw)
		}
		*dst = &v
		set = true
	}

	if raw := c.Query("apply_budget_constraints"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid apply_budget_constraints: %q", raw)
		}
		o.ApplyBudgetConstraints = &v
		set = true
	}

	if !set {
		return nil, nil
	}
	return &o, nil
}

func respond(c *gin.Context, err error, payload gin.H) {
	if err != nil {
		var unavailable *domain.UnavailableError
		if errors.As(err, &unavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": unavailable.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, payload)
}

func (h *PlanningHandler) GetRecommendations(c *gin.Context) {
	skus := parseSKUs(c)
	if len(skus) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "at least one sku is required"})
		return
	}

	overrides, err := parseOverrides(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recs, failures, err := h.service.Recommendations(c.Request.Context(), skus, overrides)
	respond(c, err, gin.H{"recommendations": recs, "failures": failures})
}

func (h *PlanningHandler) GetVelocityMetrics(c *gin.Context) {
	skus := parseSKUs(c)
	if len(skus) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "at least one sku is required"})
		return
	}

	dayRange := 90
	if v, err := strconv.Atoi(c.DefaultQuery("days", "90")); err == nil && v > 0 {
		dayRange = v
	}

	metrics, failures, err := h.service.VelocityMetrics(c.Request.Context(), skus, dayRange)
	respond(c, err, gin.H{"metrics": metrics, "failures": failures})
}

func (h *PlanningHandler) GetFeeEstimates(c *gin.Context) {
	skus := parseSKUs(c)
	if len(skus) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "at least one sku is required"})
		return
	}

	fees, failures, err := h.service.FeeEstimates(c.Request.Context(), skus)
	respond(c, err, gin.H{"fees": fees, "failures": failures})
}

func (h *PlanningHandler) GetHealthAssessments(c *gin.Context) {
	skus := parseSKUs(c)
	if len(skus) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "at least one sku is required"})
		return
	}

	assessments, failures, err := h.service.HealthAssessments(c.Request.Context(), skus)
	respond(c, err, gin.H{"assessments": assessments, "failures": failures})
}

func (h *PlanningHandler) GetExcessReport(c *gin.Context) {
	assessments, failures, err := h.service.ExcessInventoryReport(c.Request.Context())
	respond(c, err, gin.H{"assessments": assessments, "failures": failures})
}

func (h *PlanningHandler) GetLowReport(c *gin.Context) {
	days := 0
	if v, err := strconv.Atoi(c.DefaultQuery("days", "14")); err == nil {
		days = v
	}

	recs, failures, err := h.service.LowInventoryReport(c.Request.Context(), days)
	respond(c, err, gin.H{"recommendations": recs, "failures": failures})
}

func (h *PlanningHandler) PostReorderPlan(c *gin.Context) {
	var overrides domain.PlanningOverrides
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&overrides); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
			return
		}
	}

	plan, failures, err := h.service.OptimalReorderPlan(c.Request.Context(), &overrides)
	respond(c, err, gin.H{"plan": plan, "failures": failures})
}
