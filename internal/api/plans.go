package api

import (
	"encoding/json" // Raw plan values
	"net/http"      // HTTP status codes
	"strings"       // Trimming raw values

	"bet_assist/internal/domain"  // Domain enumerations
	"bet_assist/internal/service" // Plan service

	"github.com/gin-gonic/gin" // Gin web framework
)

// PlanRequest is the new plan form. Value may be sent as a number or a string.
type PlanRequest struct {
	PlanType domain.PlanType `json:"plan_type" binding:"required"`
	Value    json.RawMessage `json:"value" binding:"required"`
}

// rawValue returns Value as typed, without JSON string quoting
func (r PlanRequest) rawValue() string {
	var s string
	if err := json.Unmarshal(r.Value, &s); err == nil {
		return s
	}
	return strings.TrimSpace(string(r.Value))
}

// ListPlansHandler returns the plans of the current user and which one is active
func ListPlansHandler(plans *service.PlanService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c)
		if !ok {
			return
		}
		list, err := plans.List(c.Request.Context(), userID)
		if err != nil {
			respondError(c, err)
			return
		}
		var activeID *uint
		for i := range list {
			if list[i].IsActive {
				activeID = &list[i].ID
				break
			}
		}
		c.JSON(http.StatusOK, gin.H{"plans": list, "active_plan_id": activeID})
	}
}

// AddPlanHandler stores a new inactive plan
func AddPlanHandler(plans *service.PlanService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c)
		if !ok {
			return
		}
		var req PlanRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		plan, err := plans.Add(c.Request.Context(), userID, req.PlanType, req.rawValue())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, plan)
	}
}

// ActivatePlanHandler makes a plan the only active one. When activation fails
// after the previous plan was switched off, the user has no active plan and
// the response carries a warning.
func ActivatePlanHandler(plans *service.PlanService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c)
		if !ok {
			return
		}
		planID, ok := idParam(c)
		if !ok {
			return
		}
		plan, err := plans.Activate(c.Request.Context(), userID, planID)
		if service.IsPartial(err) {
			c.JSON(http.StatusOK, gin.H{"plan": nil, "warning": err.Error()})
			return
		}
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"plan": plan})
	}
}

// DeactivatePlanHandler switches a plan off
func DeactivatePlanHandler(plans *service.PlanService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c)
		if !ok {
			return
		}
		planID, ok := idParam(c)
		if !ok {
			return
		}
		if err := plans.Deactivate(c.Request.Context(), userID, planID); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Plan deactivated"})
	}
}

// DeletePlanHandler removes a plan
func DeletePlanHandler(plans *service.PlanService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c)
		if !ok {
			return
		}
		planID, ok := idParam(c)
		if !ok {
			return
		}
		if err := plans.Delete(c.Request.Context(), userID, planID); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Plan deleted"})
	}
}
