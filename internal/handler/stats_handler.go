package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/mispadamapur/school-api/internal/service"
	"github.com/mispadamapur/school-api/internal/utils"
)

// StatsHandler serves the admin dashboard counters.
type StatsHandler struct {
	statsService *service.StatsService
}

func NewStatsHandler(statsService *service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// Dashboard handles GET /api/admin/stats.
func (h *StatsHandler) Dashboard(c *gin.Context) {
	stats, err := h.statsService.Dashboard()
	if err != nil {
		utils.Error(c, 500, "Failed to load stats")
		return
	}
	c.JSON(200, stats)
}
