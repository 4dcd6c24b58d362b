package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Q-Tify/inno-trackify/internal/dto"
	apierrors "github.com/Q-Tify/inno-trackify/internal/errors"
	"github.com/Q-Tify/inno-trackify/internal/middleware"
	"github.com/Q-Tify/inno-trackify/internal/repository"
	"github.com/Q-Tify/inno-trackify/internal/services"
	"github.com/Q-Tify/inno-trackify/internal/utils"
	"github.com/gin-gonic/gin"
)

// ActivityHandler coordinates activity CRUD endpoints.
type ActivityHandler struct {
	activityService *services.ActivityService
}

// NewActivityHandler creates a new ActivityHandler.
func NewActivityHandler(activityService *services.ActivityService) *ActivityHandler {
	return &ActivityHandler{
		activityService: activityService,
	}
}

// CreateActivity creates a new activity record.
func (h *ActivityHandler) CreateActivity(c *gin.Context) {
	type CreateActivityRequest struct {
		Name        string `json:"name" binding:"required"`
		TypeID      uint64 `json:"type_id" binding:"required"`
		UserID      uint64 `json:"user_id" binding:"required"`
		StartTime   string `json:"start_time" binding:"required"`
		EndTime     string `json:"end_time" binding:"required"`
		Duration    string `json:"duration" binding:"required"`
		Description string `json:"description"`
	}

	var req CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	activity, err := h.activityService.Create(services.CreateActivityInput{
		Name:        req.Name,
		TypeID:      req.TypeID,
		UserID:      req.UserID,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Duration:    req.Duration,
		Description: req.Description,
	})
	if err != nil {
		respondActivityError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToActivityDTO(*activity))
}

// ListActivities returns activities, optionally filtered by user_id or type_id.
func (h *ActivityHandler) ListActivities(c *gin.Context) {
	filter := repository.ActivityFilter{
		Pagination: utils.GetPaginationParams(c),
	}

	if userIDStr := c.Query("user_id"); userIDStr != "" {
		userID, err := strconv.ParseUint(userIDStr, 10, 64)
		if err != nil {
			apierrors.BadRequest(c, "Invalid user_id")
			return
		}
		filter.UserID = &userID
	}
	if typeIDStr := c.Query("type_id"); typeIDStr != "" {
		typeID, err := strconv.ParseUint(typeIDStr, 10, 64)
		if err != nil {
			apierrors.BadRequest(c, "Invalid type_id")
			return
		}
		filter.TypeID = &typeID
	}

	activities, err := h.activityService.List(filter)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch activities")
		return
	}

	c.JSON(http.StatusOK, dto.ToActivityDTOs(activities))
}

// GetActivity returns a single activity by ID.
func (h *ActivityHandler) GetActivity(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid activity id")
		return
	}

	activity, err := h.activityService.Get(id)
	if err != nil {
		respondActivityError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToActivityDTO(*activity))
}

// UpdateActivity overwrites the provided fields on an existing activity.
func (h *ActivityHandler) UpdateActivity(c *gin.Context) {
	actor, exists := middleware.CurrentUser(c)
	if !exists {
		apierrors.UnauthorizedBearer(c, "")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid activity id")
		return
	}

	type UpdateActivityRequest struct {
		Name        *string `json:"name"`
		TypeID      *uint64 `json:"type_id"`
		UserID      *uint64 `json:"user_id"`
		StartTime   *string `json:"start_time"`
		EndTime     *string `json:"end_time"`
		Duration    *string `json:"duration"`
		Description *string `json:"description"`
	}

	var req UpdateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	activity, err := h.activityService.Update(id, actor.ID, services.UpdateActivityInput{
		Name:        req.Name,
		TypeID:      req.TypeID,
		UserID:      req.UserID,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Duration:    req.Duration,
		Description: req.Description,
	})
	if err != nil {
		respondActivityError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToActivityDTO(*activity))
}

// DeleteActivity removes an activity. Deleting an absent ID still returns 200.
func (h *ActivityHandler) DeleteActivity(c *gin.Context) {
	actor, exists := middleware.CurrentUser(c)
	if !exists {
		apierrors.UnauthorizedBearer(c, "")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid activity id")
		return
	}

	if err := h.activityService.Delete(id, actor.ID); err != nil {
		respondActivityError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Activity deleted",
	})
}

// ListActivityTypes returns the seeded activity type catalog.
func (h *ActivityHandler) ListActivityTypes(c *gin.Context) {
	types, err := h.activityService.ListTypes()
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch activity types")
		return
	}

	c.JSON(http.StatusOK, dto.ToActivityTypeDTOs(types))
}

func respondActivityError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrActivityNotFound):
		apierrors.NotFound(c, "Activity not found")
	case errors.Is(err, services.ErrInvalidReference):
		apierrors.InvalidReference(c, err.Error())
	case errors.Is(err, services.ErrNotActivityOwner):
		apierrors.Forbidden(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
