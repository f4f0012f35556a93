package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/seunghun-dev/go-board-api/internal/application"
	"github.com/seunghun-dev/go-board-api/pkg/paging"
	"github.com/seunghun-dev/go-board-api/pkg/response"
	"github.com/seunghun-dev/go-board-api/pkg/validation"
)

type PostHandler struct {
	Svc    *application.PostService
	Logger *logrus.Logger
}

func NewPostHandler(svc *application.PostService, logger *logrus.Logger) *PostHandler {
	return &PostHandler{Svc: svc, Logger: logger}
}

type createPostRequest struct {
	UserID  int64  `json:"userId" binding:"required"`
	Title   string `json:"title" binding:"required,min=1,max=100"`
	Content string `json:"content"`
}

type updatePostRequest struct {
	UserID  int64  `json:"userId" binding:"required"`
	Title   string `json:"title" binding:"required,min=1,max=100"`
	Content string `json:"content"`
}

func (h *PostHandler) Save(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	id, err := h.Svc.Save(c.Request.Context(), application.CreatePostInput{
		UserID:  req.UserID,
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.Header("Location", "/api/v1/posts/"+strconv.FormatInt(id, 10))
	response.Success(c, http.StatusCreated, gin.H{"id": id}, "post created", nil)
}

func (h *PostHandler) GetOne(c *gin.Context) {
	id, ok := pathID(c, "postId")
	if !ok {
		return
	}
	p, err := h.Svc.FindOne(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, p, "post", nil)
}

func (h *PostHandler) GetAll(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "0"))
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", map[string]string{"page": "must be a number"})
		return
	}
	size, err := strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(paging.DefaultPageSize)))
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", map[string]string{"size": "must be a number"})
		return
	}
	dir := paging.ParseDirection(c.Query("direction"))

	result, err := h.Svc.FindAll(c.Request.Context(), paging.NewRequest(page, size, dir))
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, result, "posts", nil)
}

func (h *PostHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "postId")
	if !ok {
		return
	}
	var req updatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	if err := h.Svc.Update(c.Request.Context(), id, application.UpdatePostInput{
		UserID:  req.UserID,
		Title:   req.Title,
		Content: req.Content,
	}); err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.Header("Location", "/api/v1/posts/"+strconv.FormatInt(id, 10))
	response.Success(c, http.StatusOK, gin.H{"id": id}, "post updated", nil)
}

func (h *PostHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "postId")
	if !ok {
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
