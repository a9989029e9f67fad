package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mispadamapur/school-api/internal/service"
	"github.com/mispadamapur/school-api/internal/utils"
)

// ContactHandler serves the public contact form and the admin inbox.
type ContactHandler struct {
	contactService *service.ContactService
}

func NewContactHandler(contactService *service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// Submit handles POST /api/contact (public).
func (h *ContactHandler) Submit(c *gin.Context) {
	var req service.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "Invalid request body")
		return
	}

	id, err := h.contactService.Submit(&req)
	if err != nil {
		var ve *utils.ValidationError
		if errors.As(err, &ve) {
			utils.Error(c, 400, ve.Error())
			return
		}
		utils.Error(c, 500, "Failed to save message")
		return
	}

	c.JSON(201, gin.H{"success": true, "id": id})
}

// List handles GET /api/admin/messages.
func (h *ContactHandler) List(c *gin.Context) {
	msgs, err := h.contactService.List()
	if err != nil {
		utils.Error(c, 500, "Failed to load messages")
		return
	}
	c.JSON(200, msgs)
}

// MarkRead handles PATCH /api/admin/messages/:id/read.
func (h *ContactHandler) MarkRead(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.Error(c, 400, "Invalid id")
		return
	}

	if err := h.contactService.MarkRead(id); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.Error(c, 404, "Not found")
			return
		}
		utils.Error(c, 500, "Failed to update message")
		return
	}
	c.JSON(200, gin.H{"success": true})
}

// Delete handles DELETE /api/admin/messages/:id.
func (h *ContactHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.Error(c, 400, "Invalid id")
		return
	}

	if err := h.contactService.Delete(id); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.Error(c, 404, "Not found")
			return
		}
		utils.Error(c, 500, "Failed to delete message")
		return
	}
	c.JSON(200, gin.H{"success": true})
}
