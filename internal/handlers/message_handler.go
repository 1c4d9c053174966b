package handlers

import (
	"net/http"

	"flexygig/internal/middleware"
	"flexygig/internal/services"
	"flexygig/internal/services/dto"
	"flexygig/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	*BaseHandler
	messageService services.MessageService
}

func NewMessageHandler(base *BaseHandler, messageService services.MessageService) *MessageHandler {
	return &MessageHandler{
		BaseHandler:    base,
		messageService: messageService,
	}
}

func (h *MessageHandler) RegisterRoutes(r *gin.RouterGroup) {
	messages := r.Group("")
	messages.Use(middleware.AuthMiddleware())
	{
		messages.POST("/send-message", h.Send)
		messages.GET("/message-history/:partnerId", h.History)
		messages.GET("/conversation-partners", h.Partners)
		messages.GET("/latest-messages", h.Latest)
	}
}

func (h *MessageHandler) Send(c *gin.Context) {
	var req dto.SendMessageRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.messageService.Send(h.GetDB(c), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *MessageHandler) History(c *gin.Context) {
	partnerID, err := ParseParamUint(c, "partnerId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	if partnerID == userID {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Partner id must differ from your own"))
		return
	}

	resp, err := h.messageService.History(h.GetDB(c), userID, partnerID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MessageHandler) Partners(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.messageService.Partners(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MessageHandler) Latest(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.messageService.Latest(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
