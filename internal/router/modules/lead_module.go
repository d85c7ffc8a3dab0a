package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/procrm-api/internal/interface/http"
)

// LeadModule wires lead CRUD routes.
// GET    /api/leads              list with optional stage/search filters
// GET    /api/leads/stage/:stage filtered list
// GET    /api/leads/:id          single lead
// POST   /api/leads              create
// PUT    /api/leads/:id          partial update
// DELETE /api/leads/:id          delete
type LeadModule struct {
	Handler *handlers.LeadHandler
}

func NewLeadModule(h *handlers.LeadHandler) *LeadModule {
	return &LeadModule{Handler: h}
}

func (m *LeadModule) Register(rg *gin.RouterGroup) {
	rg.GET("/leads", m.Handler.List)
	rg.GET("/leads/stage/:stage", m.Handler.ByStage)
	rg.GET("/leads/:id", m.Handler.Get)
	rg.POST("/leads", m.Handler.Create)
	rg.PUT("/leads/:id", m.Handler.Update)
	rg.DELETE("/leads/:id", m.Handler.Delete)
}
