package handlers

import (
	"net/http"

	"flexygig/internal/middleware"
	"flexygig/internal/models"
	"flexygig/internal/services"
	"flexygig/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type TagHandler struct {
	*BaseHandler
	tagService services.TagService
}

func NewTagHandler(base *BaseHandler, tagService services.TagService) *TagHandler {
	return &TagHandler{
		BaseHandler: base,
		tagService:  tagService,
	}
}

func (h *TagHandler) RegisterRoutes(r *gin.RouterGroup) {
	// Справочники - публичные
	r.GET("/get-all-skills", h.ListSkills)
	r.GET("/get-all-traits", h.ListTraits)
	r.GET("/get-all-experiences", h.ListExperiences)

	r.GET("/get-worker-skills-id/:profileId", h.listFor(models.TagKindSkill))
	r.GET("/get-worker-traits-id/:profileId", h.listFor(models.TagKindTrait))
	r.GET("/get-worker-experiences-id/:profileId", h.listFor(models.TagKindExperience))

	// Изменение связей - только владелец
	protected := r.Group("")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("/add-worker-skill/:profileId/:tagId", h.addFor(models.TagKindSkill))
		protected.POST("/add-worker-trait/:profileId/:tagId", h.addFor(models.TagKindTrait))
		protected.POST("/add-worker-experience/:profileId/:tagId", h.addFor(models.TagKindExperience))

		protected.POST("/clear-worker-skills/:profileId", h.clearFor(models.TagKindSkill))
		protected.POST("/clear-worker-traits/:profileId", h.clearFor(models.TagKindTrait))
		protected.POST("/clear-worker-experiences/:profileId", h.clearFor(models.TagKindExperience))

		protected.POST("/replace-worker-skills/:profileId", h.replaceFor(models.TagKindSkill))
		protected.POST("/replace-worker-traits/:profileId", h.replaceFor(models.TagKindTrait))
		protected.POST("/replace-worker-experiences/:profileId", h.replaceFor(models.TagKindExperience))
	}
}

func (h *TagHandler) ListSkills(c *gin.Context) {
	resp, err := h.tagService.ListSkills(c.Request.Context(), h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *TagHandler) ListTraits(c *gin.Context) {
	resp, err := h.tagService.ListTraits(c.Request.Context(), h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *TagHandler) ListExperiences(c *gin.Context) {
	resp, err := h.tagService.ListExperiences(c.Request.Context(), h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *TagHandler) listFor(kind models.TagKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		profileID, err := ParseParamUint(c, "profileId")
		if err != nil {
			h.HandleServiceError(c, err)
			return
		}

		resp, err := h.tagService.ListTags(h.GetDB(c), kind, profileID)
		if err != nil {
			h.HandleServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

func (h *TagHandler) addFor(kind models.TagKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		profileID, err := ParseParamUint(c, "profileId")
		if err != nil {
			h.HandleServiceError(c, err)
			return
		}
		tagID, err := ParseParamUint(c, "tagId")
		if err != nil {
			h.HandleServiceError(c, err)
			return
		}

		userID, ok := h.GetAndAuthorizeUserID(c)
		if !ok {
			return
		}

		if err := h.tagService.AddTag(h.GetDB(c), userID, kind, profileID, tagID); err != nil {
			h.HandleServiceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Tag added"})
	}
}

func (h *TagHandler) clearFor(kind models.TagKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		profileID, err := ParseParamUint(c, "profileId")
		if err != nil {
			h.HandleServiceError(c, err)
			return
		}

		userID, ok := h.GetAndAuthorizeUserID(c)
		if !ok {
			return
		}

		if err := h.tagService.ClearTags(h.GetDB(c), userID, kind, profileID); err != nil {
			h.HandleServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Tags cleared"})
	}
}

// replaceFor обслуживает UI-флоу "пересохранить все теги профиля":
// clear + bulk insert одной транзакцией на стороне сервиса.
func (h *TagHandler) replaceFor(kind models.TagKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		profileID, err := ParseParamUint(c, "profileId")
		if err != nil {
			h.HandleServiceError(c, err)
			return
		}

		var req dto.ReplaceWorkerTagsRequest
		if !h.BindAndValidate_JSON(c, &req) {
			return
		}

		userID, ok := h.GetAndAuthorizeUserID(c)
		if !ok {
			return
		}

		resp, err := h.tagService.ReplaceTags(h.GetDB(c), userID, kind, profileID, req.TagIDs)
		if err != nil {
			h.HandleServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}
