package handlers

import (
	"net/http"

	"flexygig/internal/middleware"
	"flexygig/internal/services"
	"flexygig/internal/services/dto"
	"flexygig/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type WorkerProfileHandler struct {
	*BaseHandler
	profileService services.WorkerProfileService
}

func NewWorkerProfileHandler(base *BaseHandler, profileService services.WorkerProfileService) *WorkerProfileHandler {
	return &WorkerProfileHandler{
		BaseHandler:    base,
		profileService: profileService,
	}
}

func (h *WorkerProfileHandler) RegisterRoutes(r *gin.RouterGroup) {
	// Public routes
	public := r.Group("/worker-profiles")
	{
		public.GET("/:userId", h.ListProfiles)
		public.GET("/:userId/primary", h.GetPrimary)
	}

	// Protected routes
	protected := r.Group("/worker-profiles")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("", h.CreateProfile)
		protected.PUT("/:userId/:profileId", h.UpdateProfile)
		protected.POST("/:userId/primary/:profileId", h.SetPrimary)
		protected.DELETE("/:userId/:profileId", h.DeleteProfile)
	}
}

func (h *WorkerProfileHandler) ListProfiles(c *gin.Context) {
	userID, err := ParseParamUint(c, "userId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	resp, err := h.profileService.ListProfiles(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *WorkerProfileHandler) GetPrimary(c *gin.Context) {
	userID, err := ParseParamUint(c, "userId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	resp, err := h.profileService.GetPrimary(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *WorkerProfileHandler) CreateProfile(c *gin.Context) {
	var req dto.CreateWorkerProfileRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.profileService.CreateProfile(h.GetDB(c), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *WorkerProfileHandler) UpdateProfile(c *gin.Context) {
	userID, profileID, ok := h.ownedProfileParams(c)
	if !ok {
		return
	}

	var req dto.UpdateWorkerProfileRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.profileService.UpdateProfile(h.GetDB(c), userID, profileID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *WorkerProfileHandler) SetPrimary(c *gin.Context) {
	userID, profileID, ok := h.ownedProfileParams(c)
	if !ok {
		return
	}

	resp, err := h.profileService.SetPrimary(h.GetDB(c), userID, profileID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *WorkerProfileHandler) DeleteProfile(c *gin.Context) {
	userID, profileID, ok := h.ownedProfileParams(c)
	if !ok {
		return
	}

	wasPrimary, err := h.profileService.DeleteProfile(h.GetDB(c), userID, profileID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"deleted":    true,
		"wasPrimary": wasPrimary,
	})
}

// ownedProfileParams разбирает userId/profileId из пути и проверяет, что
// userId совпадает с аутентифицированным пользователем.
func (h *WorkerProfileHandler) ownedProfileParams(c *gin.Context) (userID, profileID uint, ok bool) {
	pathUserID, err := ParseParamUint(c, "userId")
	if err != nil {
		h.HandleServiceError(c, err)
		return 0, 0, false
	}
	profileID, err = ParseParamUint(c, "profileId")
	if err != nil {
		h.HandleServiceError(c, err)
		return 0, 0, false
	}

	authUserID, authOK := h.GetAndAuthorizeUserID(c)
	if !authOK {
		return 0, 0, false
	}
	if authUserID != pathUserID {
		apperrors.HandleError(c, apperrors.NewForbiddenError("Cannot modify another user's profiles"))
		return 0, 0, false
	}
	return authUserID, profileID, true
}
