package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/procrm-api/internal/interface/http"
)

// AnalyticsModule wires the aggregate metrics routes. The funnel view is
// reachable at both paths the frontends historically used.
type AnalyticsModule struct {
	Handler *handlers.AnalyticsHandler
}

func NewAnalyticsModule(h *handlers.AnalyticsHandler) *AnalyticsModule {
	return &AnalyticsModule{Handler: h}
}

func (m *AnalyticsModule) Register(rg *gin.RouterGroup) {
	rg.GET("/analytics", m.Handler.Analytics)
	rg.GET("/analytics/funnel", m.Handler.Funnel)
	rg.GET("/stats/funnel", m.Handler.Funnel)
	rg.GET("/analytics/export", m.Handler.ExportCSV)
}
