package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mispadamapur/school-api/internal/service"
	"github.com/mispadamapur/school-api/internal/utils"
)

// ApplicationHandler serves the public admissions intake and the admin
// application management endpoints.
type ApplicationHandler struct {
	appService *service.ApplicationService
}

// NewApplicationHandler constructs an ApplicationHandler.
func NewApplicationHandler(appService *service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{appService: appService}
}

// Submit handles POST /api/applications (public).
func (h *ApplicationHandler) Submit(c *gin.Context) {
	var req service.IntakeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "Invalid request body")
		return
	}

	id, err := h.appService.Submit(&req)
	if err != nil {
		var ve *utils.ValidationError
		if errors.As(err, &ve) {
			utils.Error(c, 400, ve.Error())
			return
		}
		utils.Error(c, 500, "Failed to save application")
		return
	}

	c.JSON(201, gin.H{"success": true, "id": id})
}

// List handles GET /api/admin/applications. Supports an optional
// ?status= filter.
func (h *ApplicationHandler) List(c *gin.Context) {
	apps, err := h.appService.List(c.Query("status"))
	if err != nil {
		if errors.Is(err, utils.ErrInvalidStatus) {
			utils.Error(c, 400, "Invalid status filter")
			return
		}
		utils.Error(c, 500, "Failed to load applications")
		return
	}

	c.JSON(200, apps)
}

// Export handles GET /api/admin/applications/export.
func (h *ApplicationHandler) Export(c *gin.Context) {
	csv, err := h.appService.ExportCSV()
	if err != nil {
		utils.Error(c, 500, "Failed to export applications")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="applications.csv"`)
	c.Data(200, "text/csv", []byte(csv))
}

// UpdateStatus handles PATCH /api/admin/applications/:id/status.
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.Error(c, 400, "Invalid id")
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "status is required")
		return
	}

	app, err := h.appService.UpdateStatus(id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrInvalidStatus):
			utils.Error(c, 400, "status must be one of pending, approved, rejected")
		case errors.Is(err, utils.ErrNotFound):
			utils.Error(c, 404, "Not found")
		default:
			utils.Error(c, 500, "Failed to update status")
		}
		return
	}

	c.JSON(200, app)
}

// Delete handles DELETE /api/admin/applications/:id.
func (h *ApplicationHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.Error(c, 400, "Invalid id")
		return
	}

	if err := h.appService.Delete(id); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.Error(c, 404, "Not found")
			return
		}
		utils.Error(c, 500, "Failed to delete")
		return
	}

	c.JSON(200, gin.H{"success": true})
}

// DeleteAll handles DELETE /api/admin/applications. Clears every
// application; cannot be undone.
func (h *ApplicationHandler) DeleteAll(c *gin.Context) {
	if err := h.appService.DeleteAll(); err != nil {
		utils.Error(c, 500, "Failed to clear applications")
		return
	}

	c.JSON(200, gin.H{"success": true})
}
