package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/dental-admin/internal/dashboard"
	"github.com/BruksfildServices01/dental-admin/internal/httpresp"
)

type DashboardHandler struct {
	svc *dashboard.Service
}

func NewDashboardHandler(svc *dashboard.Service) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

func (h *DashboardHandler) Summary(c *gin.Context) {
	s, err := h.svc.Summary(c.Request.Context(), c.Query("timeframe"))
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.OK(c, s)
}

func (h *DashboardHandler) Chart(c *gin.Context) {
	chart, err := h.svc.Chart(c.Request.Context(), c.Query("timeframe"))
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.OK(c, chart)
}
