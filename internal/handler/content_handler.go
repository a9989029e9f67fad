package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mispadamapur/school-api/internal/service"
	"github.com/mispadamapur/school-api/internal/utils"
)

// ContentHandler serves the public content listings and the admin CMS
// endpoints for events, news, and the gallery.
type ContentHandler struct {
	contentService *service.ContentService
}

func NewContentHandler(contentService *service.ContentService) *ContentHandler {
	return &ContentHandler{contentService: contentService}
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.Error(c, 400, "Invalid id")
		return 0, false
	}
	return id, true
}

// writeContentErr maps service errors for the CMS endpoints.
func writeContentErr(c *gin.Context, err error, what string) {
	if errors.Is(err, utils.ErrNotFound) {
		utils.Error(c, 404, "Not found")
		return
	}
	utils.Error(c, 500, "Failed to save "+what)
}

// --- Public listings (cached) ---

// PublicEvents handles GET /api/events.
func (h *ContentHandler) PublicEvents(c *gin.Context) {
	payload, err := h.contentService.PublicEvents(c.Request.Context())
	if err != nil {
		utils.Error(c, 500, "Failed to load events")
		return
	}
	c.Data(200, "application/json", payload)
}

// PublicNews handles GET /api/news.
func (h *ContentHandler) PublicNews(c *gin.Context) {
	payload, err := h.contentService.PublicNews(c.Request.Context())
	if err != nil {
		utils.Error(c, 500, "Failed to load news")
		return
	}
	c.Data(200, "application/json", payload)
}

// PublicGallery handles GET /api/gallery.
func (h *ContentHandler) PublicGallery(c *gin.Context) {
	payload, err := h.contentService.PublicGallery(c.Request.Context())
	if err != nil {
		utils.Error(c, 500, "Failed to load gallery")
		return
	}
	c.Data(200, "application/json", payload)
}

// --- Admin: events ---

// ListEvents handles GET /api/admin/events.
func (h *ContentHandler) ListEvents(c *gin.Context) {
	events, err := h.contentService.ListEvents()
	if err != nil {
		utils.Error(c, 500, "Failed to load events")
		return
	}
	c.JSON(200, events)
}

// CreateEvent handles POST /api/admin/events.
func (h *ContentHandler) CreateEvent(c *gin.Context) {
	var req service.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "title, eventDate and category are required")
		return
	}

	event, err := h.contentService.CreateEvent(c.Request.Context(), &req)
	if err != nil {
		writeContentErr(c, err, "event")
		return
	}
	c.JSON(201, event)
}

// UpdateEvent handles PUT /api/admin/events/:id.
func (h *ContentHandler) UpdateEvent(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req service.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "title, eventDate and category are required")
		return
	}

	event, err := h.contentService.UpdateEvent(c.Request.Context(), id, &req)
	if err != nil {
		writeContentErr(c, err, "event")
		return
	}
	c.JSON(200, event)
}

// DeleteEvent handles DELETE /api/admin/events/:id.
func (h *ContentHandler) DeleteEvent(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.contentService.DeleteEvent(c.Request.Context(), id); err != nil {
		writeContentErr(c, err, "event")
		return
	}
	c.JSON(200, gin.H{"success": true})
}

// --- Admin: news ---

// ListNews handles GET /api/admin/news. Includes unpublished articles.
func (h *ContentHandler) ListNews(c *gin.Context) {
	items, err := h.contentService.ListNews()
	if err != nil {
		utils.Error(c, 500, "Failed to load news")
		return
	}
	c.JSON(200, items)
}

// CreateNews handles POST /api/admin/news.
func (h *ContentHandler) CreateNews(c *gin.Context) {
	var req service.NewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "title, content and category are required")
		return
	}

	article, err := h.contentService.CreateNews(c.Request.Context(), &req)
	if err != nil {
		writeContentErr(c, err, "news article")
		return
	}
	c.JSON(201, article)
}

// UpdateNews handles PUT /api/admin/news/:id.
func (h *ContentHandler) UpdateNews(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req service.NewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "title, content and category are required")
		return
	}

	article, err := h.contentService.UpdateNews(c.Request.Context(), id, &req)
	if err != nil {
		writeContentErr(c, err, "news article")
		return
	}
	c.JSON(200, article)
}

// DeleteNews handles DELETE /api/admin/news/:id.
func (h *ContentHandler) DeleteNews(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.contentService.DeleteNews(c.Request.Context(), id); err != nil {
		writeContentErr(c, err, "news article")
		return
	}
	c.JSON(200, gin.H{"success": true})
}

// --- Admin: gallery ---

// ListGallery handles GET /api/admin/gallery.
func (h *ContentHandler) ListGallery(c *gin.Context) {
	items, err := h.contentService.ListGallery()
	if err != nil {
		utils.Error(c, 500, "Failed to load gallery")
		return
	}
	c.JSON(200, items)
}

// CreateGalleryItem handles POST /api/admin/gallery.
func (h *ContentHandler) CreateGalleryItem(c *gin.Context) {
	var req service.GalleryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "title, imageUrl and category are required")
		return
	}

	item, err := h.contentService.CreateGalleryItem(c.Request.Context(), &req)
	if err != nil {
		writeContentErr(c, err, "gallery item")
		return
	}
	c.JSON(201, item)
}

// UpdateGalleryItem handles PUT /api/admin/gallery/:id.
func (h *ContentHandler) UpdateGalleryItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req service.GalleryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "title, imageUrl and category are required")
		return
	}

	item, err := h.contentService.UpdateGalleryItem(c.Request.Context(), id, &req)
	if err != nil {
		writeContentErr(c, err, "gallery item")
		return
	}
	c.JSON(200, item)
}

// DeleteGalleryItem handles DELETE /api/admin/gallery/:id.
func (h *ContentHandler) DeleteGalleryItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.contentService.DeleteGalleryItem(c.Request.Context(), id); err != nil {
		writeContentErr(c, err, "gallery item")
		return
	}
	c.JSON(200, gin.H{"success": true})
}
