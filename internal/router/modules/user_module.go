package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/seunghun-dev/go-board-api/internal/container"
	handlers "github.com/seunghun-dev/go-board-api/internal/interface/http"
	"github.com/seunghun-dev/go-board-api/internal/interface/middleware"
)

// UserModule wires the user HTTP handlers into routes.
// Register and login carry tighter per-IP rate limits than the rest.
type UserModule struct {
	Handler *handlers.UserHandler
}

func NewUserModule(h *handlers.UserHandler) *UserModule {
	return &UserModule{Handler: h}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	registerLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), nil)
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), nil)

	users := rg.Group("/users")
	{
		users.POST("", registerLimiter, m.Handler.Save)
		users.POST("/login", loginLimiter, m.Handler.Login)
		users.POST("/logout", m.Handler.Logout)
		users.GET("/:userId", m.Handler.GetOne)
		users.PATCH("/:userId", m.Handler.Update)
		users.DELETE("/:userId", m.Handler.Delete)
	}
}
