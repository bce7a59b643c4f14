package handler

import (
	"github.com/Juankcba/choapp-back/internal/pkg/constants"
	"github.com/Juankcba/choapp-back/internal/pkg/middleware"
	"github.com/Juankcba/choapp-back/services/chat"
	httpHandler "github.com/Juankcba/choapp-back/services/chat/handler/http"
	"github.com/labstack/echo/v4"
)

// Handler combines all handlers for the chat service
type Handler struct {
	chatHTTP *httpHandler.ChatHandler
}

// NewHandler creates a new combined handler
func NewHandler(chatUC chat.ChatUC) *Handler {
	return &Handler{
		chatHTTP: httpHandler.NewChatHandler(chatUC),
	}
}

// RegisterRoutes registers the chat routes on the authenticated group
func (h *Handler) RegisterRoutes(api *echo.Group) {
	parties := middleware.RequireRole(constants.RoleFamily, constants.RoleCaregiver)

	chats := api.Group("/services/:id/chats/:caregiverId")
	chats.GET("", h.chatHTTP.GetMessages,
		middleware.RequireRole(constants.RoleFamily, constants.RoleCaregiver, constants.RoleAdmin))
	chats.POST("/messages", h.chatHTTP.SendMessage, parties)
	chats.POST("/read", h.chatHTTP.MarkAsRead, parties)
}
