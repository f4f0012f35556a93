package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/seunghun-dev/go-board-api/internal/interface/http"
)

// PostModule wires the post HTTP handlers into routes.
type PostModule struct {
	Handler *handlers.PostHandler
}

func NewPostModule(h *handlers.PostHandler) *PostModule {
	return &PostModule{Handler: h}
}

func (m *PostModule) Register(rg *gin.RouterGroup) {
	posts := rg.Group("/posts")
	{
		posts.POST("", m.Handler.Save)
		posts.GET("", m.Handler.GetAll)
		posts.GET("/:postId", m.Handler.GetOne)
		posts.PATCH("/:postId", m.Handler.Update)
		posts.DELETE("/:postId", m.Handler.Delete)
	}
}
