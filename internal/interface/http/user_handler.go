package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/seunghun-dev/go-board-api/internal/application"
	"github.com/seunghun-dev/go-board-api/pkg/response"
	"github.com/seunghun-dev/go-board-api/pkg/validation"
)

type UserHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

type saveUserRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Age      *int   `json:"age"`
	Hobby    string `json:"hobby"`
}

type updateUserRequest struct {
	Name     *string `json:"name"`
	Age      *int    `json:"age"`
	Hobby    string  `json:"hobby"`
	Password string  `json:"password" binding:"required"`
}

type loginUserRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type logoutUserRequest struct {
	Email string `json:"email" binding:"required"`
}

func (h *UserHandler) Save(c *gin.Context) {
	var req saveUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	id, err := h.Svc.Save(c.Request.Context(), application.SaveUserInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Age:      req.Age,
		Hobby:    req.Hobby,
	})
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.Header("Location", "/api/v1/users/"+strconv.FormatInt(id, 10))
	response.Success(c, http.StatusCreated, gin.H{"id": id}, "user created", nil)
}

func (h *UserHandler) GetOne(c *gin.Context) {
	id, ok := pathID(c, "userId")
	if !ok {
		return
	}
	u, err := h.Svc.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, u, "user", nil)
}

func (h *UserHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "userId")
	if !ok {
		return
	}
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	updated, err := h.Svc.Update(c.Request.Context(), id, application.UpdateUserInput{
		Name:     req.Name,
		Age:      req.Age,
		Hobby:    req.Hobby,
		Password: req.Password,
	})
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.Header("Location", "/api/v1/users/"+strconv.FormatInt(updated, 10))
	response.Success(c, http.StatusOK, gin.H{"id": updated}, "user updated", nil)
}

func (h *UserHandler) Login(c *gin.Context) {
	var req loginUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	id, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"id": id}, "login successful", nil)
}

func (h *UserHandler) Logout(c *gin.Context) {
	var req logoutUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	if err := h.Svc.Logout(c.Request.Context(), req.Email); err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"logged_out": true}, "logout successful", nil)
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "userId")
	if !ok {
		return
	}
	if err := h.Svc.DeleteByID(c.Request.Context(), id); err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// pathID parses a numeric path parameter, writing the error response itself
// on failure.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", map[string]string{name: "must be a number"})
		return 0, false
	}
	return id, true
}
