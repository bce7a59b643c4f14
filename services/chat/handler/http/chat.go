package http

import (
	"net/http"

	"github.com/Juankcba/choapp-back/internal/pkg/middleware"
	"github.com/Juankcba/choapp-back/internal/pkg/models"
	"github.com/Juankcba/choapp-back/internal/utils"
	"github.com/Juankcba/choapp-back/services/chat"
	"github.com/labstack/echo/v4"
)

// ChatHandler handles HTTP requests for service chats
type ChatHandler struct {
	chatUC chat.ChatUC
}

// NewChatHandler creates a new chat HTTP handler
func NewChatHandler(chatUC chat.ChatUC) *ChatHandler {
	return &ChatHandler{
		chatUC: chatUC,
	}
}

func actor(c echo.Context) models.Actor {
	return models.Actor{UserID: middleware.UserID(c), Role: middleware.UserRole(c)}
}

// GetMessages returns the thread between the service's family and a caregiver
func (h *ChatHandler) GetMessages(c echo.Context) error {
	history, err := h.chatUC.GetMessages(c.Request().Context(), actor(c), c.Param("id"), c.Param("caregiverId"))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", history)
}

// SendMessage posts a message to the thread
func (h *ChatHandler) SendMessage(c echo.Context) error {
	var req models.SendChatMessageRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	message, err := h.chatUC.SendMessage(c.Request().Context(), actor(c), c.Param("id"), c.Param("caregiverId"), &req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Message sent", message)
}

// MarkAsRead marks the caller's received messages as read
func (h *ChatHandler) MarkAsRead(c echo.Context) error {
	result, err := h.chatUC.MarkAsRead(c.Request().Context(), actor(c), c.Param("id"), c.Param("caregiverId"))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", result)
}
