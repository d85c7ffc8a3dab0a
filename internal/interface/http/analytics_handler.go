package handlers

import (
	"encoding/csv"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/procrm-api/internal/application"
	"github.com/oksasatya/procrm-api/pkg/response"
)

type AnalyticsHandler struct {
	Svc    *application.LeadService
	Logger *logrus.Logger
}

func NewAnalyticsHandler(svc *application.LeadService, logger *logrus.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{Svc: svc, Logger: logger}
}

// Analytics GET /api/analytics
func (h *AnalyticsHandler) Analytics(c *gin.Context) {
	leads, err := h.Svc.List(application.LeadFilter{})
	if err != nil {
		h.fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, gin.H{"analytics": application.ComputeAnalytics(leads)})
}

// Funnel GET /api/stats/funnel and GET /api/analytics/funnel
func (h *AnalyticsHandler) Funnel(c *gin.Context) {
	leads, err := h.Svc.List(application.LeadFilter{})
	if err != nil {
		h.fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, gin.H{"funnel": application.ComputeFunnel(leads)})
}

// ExportCSV GET /api/analytics/export
func (h *AnalyticsHandler) ExportCSV(c *gin.Context) {
	leads, err := h.Svc.List(application.LeadFilter{})
	if err != nil {
		h.fail(c, err)
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename=leads.csv`)
	c.Status(http.StatusOK)

	w := csv.NewWriter(c.Writer)
	_ = w.Write([]string{"Name", "Company", "Email", "Stage", "Value", "Created"})
	for i := range leads {
		l := &leads[i]
		_ = w.Write([]string{
			l.FirstName + " " + l.LastName,
			l.Company,
			l.Email,
			l.Stage,
			strconv.FormatFloat(l.DealValue, 'f', -1, 64),
			l.CreatedAt.Format("2006-01-02"),
		})
	}
	w.Flush()
	if err := w.Error(); err != nil && h.Logger != nil {
		h.Logger.WithError(err).Error("csv export failed")
	}
}

func (h *AnalyticsHandler) fail(c *gin.Context, err error) {
	if h.Logger != nil {
		h.Logger.WithError(err).Error("analytics computation failed")
	}
	response.Err(c, http.StatusInternalServerError, "Internal server error")
}
