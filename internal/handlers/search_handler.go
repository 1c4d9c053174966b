package handlers

import (
	"net/http"

	"flexygig/internal/services"
	"flexygig/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type SearchHandler struct {
	*BaseHandler
	searchService services.SearchService
}

func NewSearchHandler(base *BaseHandler, searchService services.SearchService) *SearchHandler {
	return &SearchHandler{
		BaseHandler:   base,
		searchService: searchService,
	}
}

func (h *SearchHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/search-users", h.SearchUsers)
	r.GET("/gig-workers", h.ListAllWorkers)
}

func (h *SearchHandler) SearchUsers(c *gin.Context) {
	var req dto.SearchUsersRequest
	if !h.BindAndValidate_Query(c, &req) {
		return
	}

	resp, err := h.searchService.SearchUsers(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SearchHandler) ListAllWorkers(c *gin.Context) {
	resp, err := h.searchService.ListAllWorkers(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
