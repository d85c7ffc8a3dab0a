package router

import (
	"github.com/oksasatya/procrm-api/internal/application"
	"github.com/oksasatya/procrm-api/internal/container"
	handlers "github.com/oksasatya/procrm-api/internal/interface/http"
	"github.com/oksasatya/procrm-api/internal/router/modules"
)

const apiVersion = "1.0.0"

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	logger := container.GetLogger()

	leadSvc := application.NewLeadService(container.GetLeadRepo(), logger)
	authSvc := application.NewAuthService(container.GetUserRepo(), container.GetJWT(), container.GetRedis(), logger)

	r.Add(modules.NewHealthModule(handlers.NewHealthHandler(apiVersion)))
	r.Add(modules.NewLeadModule(handlers.NewLeadHandler(leadSvc, logger)))
	r.Add(modules.NewAnalyticsModule(handlers.NewAnalyticsHandler(leadSvc, logger)))
	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, logger), container.GetJWT()))
	if container.GetConfig() == nil || container.GetConfig().DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
