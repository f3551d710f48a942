package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "targetrack/internal/errors"
	"targetrack/internal/filter"
	"targetrack/internal/services"
)

// AchievementHandler handles achievement-related requests. Achievements are
// addressed by their target's id.
type AchievementHandler struct {
	achievementService services.AchievementServicer
	auditService       services.AuditServicer
}

// NewAchievementHandler creates a new AchievementHandler.
func NewAchievementHandler(achievementService services.AchievementServicer, auditService services.AuditServicer) *AchievementHandler {
	return &AchievementHandler{achievementService: achievementService, auditService: auditService}
}

// AchievementRequest is the payload for recording or replacing an achievement.
// On update target_id is optional and must match the path when present.
type AchievementRequest struct {
	TargetID string `json:"target_id" binding:"omitempty,uuid"`
	Nominal  *int64 `json:"nominal" binding:"required,gte=0"`
}

// CreateAchievement records the achievement of a target
// @Summary     Create an achievement
// @Tags        achievements
// @Accept      json
// @Produce     json
// @Param       request body AchievementRequest true "Target ID and nominal"
// @Success     201 {object} models.Achievement
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Target not found"
// @Failure     409 {object} ErrorResponse "Achievement already exists"
// @Router      /achievements [post]
func (h *AchievementHandler) CreateAchievement(c *gin.Context) {
	var req AchievementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err)
		return
	}
	if req.TargetID == "" {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "target_id is required"))
		return
	}

	achievement, err := h.achievementService.CreateAchievement(req.TargetID, *req.Nominal)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("CREATE_ACHIEVEMENT", "achievement", achievement.ID, c.ClientIP(),
		map[string]interface{}{"target_id": req.TargetID, "nominal": *req.Nominal})

	c.JSON(http.StatusCreated, achievement)
}

// GetAchievements lists achievements with their target, employee and product
// @Summary     List achievements
// @Tags        achievements
// @Produce     json
// @Success     200 {array} models.Achievement
// @Router      /achievements [get]
func (h *AchievementHandler) GetAchievements(c *gin.Context) {
	achievements, err := h.achievementService.GetAchievements()
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, achievements)
}

// ViewAchievements serves one filtered page of achievements
// @Summary     Filtered achievement list
// @Tags        achievements
// @Produce     json
// @Param       search   query string false "Matches employee, product, year or month name"
// @Param       year     query int    false "Year"
// @Param       month    query int    false "Month"
// @Param       employee query string false "Employee name"
// @Param       product  query string false "Product name"
// @Param       position query string false "AO or FO"
// @Param       status   query string false "achieved or not-achieved"
// @Param       page     query int    false "Page (8 per page)"
// @Success     200 {object} ViewResponse[models.Achievement]
// @Failure     400 {object} ErrorResponse "Invalid filter"
// @Router      /achievements/view [get]
func (h *AchievementHandler) ViewAchievements(c *gin.Context) {
	state, ok := bindView(c)
	if !ok {
		return
	}

	achievements, err := h.achievementService.GetAchievements()
	if err != nil {
		respondWithError(c, err)
		return
	}
	respondWithView(c, achievements, filter.Achievements(state), state)
}

// UpdateAchievement replaces the nominal of a target's achievement
// @Summary     Update achievement by target
// @Tags        achievements
// @Accept      json
// @Produce     json
// @Param       targetId path string             true "Target ID"
// @Param       request  body AchievementRequest true "New nominal"
// @Success     200 {object} models.Achievement
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Achievement not found"
// @Router      /achievements/{targetId} [put]
func (h *AchievementHandler) UpdateAchievement(c *gin.Context) {
	targetID, err := parsePathID(c, "targetId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req AchievementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err)
		return
	}
	if req.TargetID != "" && req.TargetID != targetID {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "target_id does not match the path"))
		return
	}

	achievement, err := h.achievementService.UpdateAchievement(targetID, *req.Nominal)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("UPDATE_ACHIEVEMENT", "achievement", achievement.ID, c.ClientIP(),
		map[string]interface{}{"target_id": targetID, "nominal": *req.Nominal})
	c.JSON(http.StatusOK, achievement)
}

// DeleteAchievement removes a target's achievement
// @Summary     Delete achievement by target
// @Tags        achievements
// @Produce     json
// @Param       targetId path string true "Target ID"
// @Success     200 {object} map[string]string
// @Failure     404 {object} ErrorResponse "Achievement not found"
// @Router      /achievements/{targetId} [delete]
func (h *AchievementHandler) DeleteAchievement(c *gin.Context) {
	targetID, err := parsePathID(c, "targetId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.achievementService.DeleteAchievement(targetID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("DELETE_ACHIEVEMENT", "achievement", targetID, c.ClientIP(), nil)
	c.JSON(http.StatusOK, gin.H{"message": "Achievement deleted successfully"})
}
