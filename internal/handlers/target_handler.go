package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"targetrack/internal/filter"
	"targetrack/internal/services"
)

// TargetHandler handles target-related requests.
type TargetHandler struct {
	targetService services.TargetServicer
	auditService  services.AuditServicer
}

// NewTargetHandler creates a new TargetHandler.
func NewTargetHandler(targetService services.TargetServicer, auditService services.AuditServicer) *TargetHandler {
	return &TargetHandler{targetService: targetService, auditService: auditService}
}

// CreateTargetRequest represents the request payload for creating a target.
type CreateTargetRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	ProductID  string `json:"product_id" binding:"required,uuid"`
	Nominal    *int64 `json:"nominal" binding:"required,gte=0"`
	Month      int    `json:"month" binding:"required,min=1,max=12"`
	Year       int    `json:"year" binding:"required,min=1900,max=9999"`
}

// UpdateTargetRequest represents a partial target update.
type UpdateTargetRequest struct {
	ProductID *string `json:"product_id" binding:"omitempty,uuid"`
	Nominal   *int64  `json:"nominal" binding:"omitempty,gte=0"`
	Month     *int    `json:"month" binding:"omitempty,min=1,max=12"`
	Year      *int    `json:"year" binding:"omitempty,min=1900,max=9999"`
}

// SaveTargetRequest updates a target and its achievement together. A
// missing achievement_nominal leaves any recorded achievement untouched.
type SaveTargetRequest struct {
	ProductID          string `json:"product_id" binding:"required,uuid"`
	Nominal            *int64 `json:"nominal" binding:"required,gte=0"`
	AchievementNominal *int64 `json:"achievement_nominal" binding:"omitempty,gte=0"`
}

// CreateTarget handles the creation of a new target
// @Summary     Create a target
// @Tags        targets
// @Accept      json
// @Produce     json
// @Param       request body CreateTargetRequest true "Target details"
// @Success     201 {object} models.Target
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Employee or product not found"
// @Router      /targets [post]
func (h *TargetHandler) CreateTarget(c *gin.Context) {
	var req CreateTargetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err)
		return
	}

	target, err := h.targetService.CreateTarget(services.TargetInput{
		EmployeeID: req.EmployeeID,
		ProductID:  req.ProductID,
		Nominal:    *req.Nominal,
		Month:      req.Month,
		Year:       req.Year,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("CREATE_TARGET", "target", target.ID, c.ClientIP(),
		map[string]interface{}{"employee_id": req.EmployeeID, "product_id": req.ProductID, "nominal": *req.Nominal})

	c.JSON(http.StatusCreated, target)
}

// GetTargets lists every target with employee, product and achievement
// @Summary     List targets
// @Tags        targets
// @Produce     json
// @Success     200 {array} models.Target
// @Router      /targets [get]
func (h *TargetHandler) GetTargets(c *gin.Context) {
	targets, err := h.targetService.GetTargets()
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, targets)
}

// ViewTargets serves one filtered page of targets
// @Summary     Filtered target list
// @Tags        targets
// @Produce     json
// @Param       search     query string false "Matches employee, product, year or month name"
// @Param       year       query int    false "Year"
// @Param       month      query int    false "Month"
// @Param       from_month query int    false "Range start month"
// @Param       to_month   query int    false "Range end month"
// @Param       employee   query string false "Employee name"
// @Param       product    query string false "Product name"
// @Param       position   query string false "AO or FO"
// @Param       status     query string false "achieved or not-achieved"
// @Param       page       query int    false "Page (8 per page)"
// @Success     200 {object} ViewResponse[models.Target]
// @Failure     400 {object} ErrorResponse "Invalid filter"
// @Router      /targets/view [get]
func (h *TargetHandler) ViewTargets(c *gin.Context) {
	state, ok := bindView(c)
	if !ok {
		return
	}

	targets, err := h.targetService.GetTargets()
	if err != nil {
		respondWithError(c, err)
		return
	}
	respondWithView(c, targets, filter.Targets(state), state)
}

// GetTargetByID returns one target
// @Summary     Get target
// @Tags        targets
// @Produce     json
// @Param       id path string true "Target ID"
// @Success     200 {object} models.Target
// @Failure     404 {object} ErrorResponse "Target not found"
// @Router      /targets/{id} [get]
func (h *TargetHandler) GetTargetByID(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	target, err := h.targetService.GetTargetByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, target)
}

// GetTargetsByEmployee lists one employee's targets
// @Summary     Targets of an employee
// @Description Responds 404 NO_TARGETS_FOR_EMPLOYEE when the employee has no targets.
// @Tags        targets
// @Produce     json
// @Param       id path string true "Employee ID"
// @Success     200 {array} models.Target
// @Failure     404 {object} ErrorResponse "No targets for this employee"
// @Router      /targets/employee/{id} [get]
func (h *TargetHandler) GetTargetsByEmployee(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	targets, err := h.targetService.GetTargetsByEmployee(id)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, targets)
}

// UpdateTarget updates a target
// @Summary     Update target
// @Tags        targets
// @Accept      json
// @Produce     json
// @Param       id      path string              true "Target ID"
// @Param       request body UpdateTargetRequest true "Fields to change"
// @Success     200 {object} models.Target
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Target or product not found"
// @Router      /targets/{id} [put]
func (h *TargetHandler) UpdateTarget(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateTargetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err)
		return
	}

	target, err := h.targetService.UpdateTarget(id, services.TargetUpdate{
		ProductID: req.ProductID,
		Nominal:   req.Nominal,
		Month:     req.Month,
		Year:      req.Year,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("UPDATE_TARGET", "target", id, c.ClientIP(), nil)
	c.JSON(http.StatusOK, target)
}

// SaveTargetWithAchievement updates a target and upserts its achievement in one transaction
// @Summary     Save target and achievement
// @Tags        targets
// @Accept      json
// @Produce     json
// @Param       id      path string            true "Target ID"
// @Param       request body SaveTargetRequest true "Target and achievement values"
// @Success     200 {object} models.Target
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Target or product not found"
// @Router      /targets/{id}/combined [put]
func (h *TargetHandler) SaveTargetWithAchievement(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req SaveTargetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err)
		return
	}

	target, err := h.targetService.SaveWithAchievement(id, req.ProductID, *req.Nominal, req.AchievementNominal)
	if err != nil {
		respondWithError(c, err)
		return
	}

	changes := map[string]interface{}{"product_id": req.ProductID, "nominal": *req.Nominal}
	if req.AchievementNominal != nil {
		changes["achievement_nominal"] = *req.AchievementNominal
	}
	h.auditService.Log("SAVE_TARGET_WITH_ACHIEVEMENT", "target", id, c.ClientIP(), changes)
	c.JSON(http.StatusOK, target)
}

// DeleteTarget deletes a target together with its achievement
// @Summary     Delete target
// @Tags        targets
// @Produce     json
// @Param       id path string true "Target ID"
// @Success     200 {object} map[string]string
// @Failure     404 {object} ErrorResponse "Target not found"
// @Router      /targets/{id} [delete]
func (h *TargetHandler) DeleteTarget(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.targetService.DeleteTarget(id); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("DELETE_TARGET", "target", id, c.ClientIP(), nil)
	c.JSON(http.StatusOK, gin.H{"message": "Target deleted successfully"})
}
