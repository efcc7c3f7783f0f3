package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/minhasfinancas/api/internal/container"
	handlers "github.com/minhasfinancas/api/internal/interface/http"
	"github.com/minhasfinancas/api/internal/interface/middleware"
)

// UserModule wires the user HTTP handlers into routes.
// POST /api/users and POST /api/users/authenticate are public, and both
// are rate-limited per IP since they are unauthenticated write/brute paths.
type UserModule struct {
	Handler *handlers.UserHandler
}

func NewUserModule(h *handlers.UserHandler) *UserModule {
	return &UserModule{Handler: h}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	registerLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), nil)
	authLimiter := middleware.RateLimit(container.GetRedis(), 20, time.Minute, middleware.KeyByIPAndPath(), nil)

	rg.POST("/users", registerLimiter, m.Handler.Register)
	rg.POST("/users/authenticate", authLimiter, m.Handler.Authenticate)
}
