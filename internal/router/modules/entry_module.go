package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/minhasfinancas/api/internal/container"
	handlers "github.com/minhasfinancas/api/internal/interface/http"
	"github.com/minhasfinancas/api/internal/interface/middleware"
)

// EntryModule wires the entry HTTP handlers into routes under /api/entries.
type EntryModule struct {
	Handler *handlers.EntryHandler
}

func NewEntryModule(h *handlers.EntryHandler) *EntryModule {
	return &EntryModule{Handler: h}
}

func (m *EntryModule) Register(rg *gin.RouterGroup) {
	limiter := middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())

	entries := rg.Group("/entries", limiter)
	{
		entries.GET("", m.Handler.List)
		entries.POST("", m.Handler.Create)
		entries.GET("/:id", m.Handler.Get)
		entries.PUT("/:id", m.Handler.Update)
		entries.PUT("/:id/status", m.Handler.UpdateStatus)
		entries.DELETE("/:id", m.Handler.Delete)
	}
}
