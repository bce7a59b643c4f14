package handler

import (
	"github.com/Juankcba/choapp-back/internal/pkg/constants"
	"github.com/Juankcba/choapp-back/internal/pkg/middleware"
	"github.com/Juankcba/choapp-back/internal/pkg/models"
	"github.com/Juankcba/choapp-back/services/match"
	httpHandler "github.com/Juankcba/choapp-back/services/match/handler/http"
	"github.com/labstack/echo/v4"
)

// Handler combines all handlers for the match service
type Handler struct {
	matchHTTP *httpHandler.MatchHandler
	cfg       *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(matchUC match.MatchUC, cfg *models.Config) *Handler {
	return &Handler{
		matchHTTP: httpHandler.NewMatchHandler(matchUC),
		cfg:       cfg,
	}
}

// RegisterRoutes registers all HTTP routes on the authenticated group
func (h *Handler) RegisterRoutes(api *echo.Group) {
	family := middleware.RequireRole(constants.RoleFamily)
	caregiver := middleware.RequireRole(constants.RoleCaregiver)
	admin := middleware.RequireRole(constants.RoleAdmin)

	services := api.Group("/services")
	services.POST("", h.matchHTTP.CreateService, family)
	services.GET("", h.matchHTTP.ListServices, family)
	services.GET("/:id", h.matchHTTP.GetService)
	services.PATCH("/:id", h.matchHTTP.UpdateService, family)
	services.DELETE("/:id", h.matchHTTP.DeleteService, family)
	services.POST("/:id/cancel", h.matchHTTP.CancelService,
		middleware.RequireRole(constants.RoleFamily, constants.RoleAdmin))
	services.GET("/:id/candidates", h.matchHTTP.ListCandidates, family)
	services.POST("/:id/select", h.matchHTTP.SelectCaregiver, family)

	services.POST("/:id/respond", h.matchHTTP.RespondToService, caregiver)
	services.POST("/:id/start", h.matchHTTP.StartService, caregiver)
	services.POST("/:id/finish", h.matchHTTP.FinishService, caregiver)
	api.GET("/caregivers/me/offers", h.matchHTTP.ListOffers, caregiver)

	api.GET("/matching/nearby", h.matchHTTP.FindNearby,
		middleware.RequireRole(constants.RoleFamily, constants.RoleAdmin))
	api.POST("/admin/matching/sweep", h.matchHTTP.RunSweep, admin)
	api.GET("/admin/services/active", h.matchHTTP.ListActiveServices, admin)
}
