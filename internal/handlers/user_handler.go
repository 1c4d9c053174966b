package handlers

import (
	"net/http"

	"flexygig/internal/middleware"
	"flexygig/internal/services"
	"flexygig/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	*BaseHandler
	userService services.UserService
}

func NewUserHandler(base *BaseHandler, userService services.UserService) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		userService: userService,
	}
}

func (h *UserHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/user-details/:userId", h.GetDetails)

	protected := r.Group("/users")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.PUT("/me", h.UpdateMe)
	}
}

func (h *UserHandler) GetDetails(c *gin.Context) {
	userID, err := ParseParamUint(c, "userId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	resp, err := h.userService.GetDetails(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *UserHandler) UpdateMe(c *gin.Context) {
	var req dto.UpdateUserRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.userService.Update(h.GetDB(c), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
