package handler

import (
	"github.com/Juankcba/choapp-back/internal/pkg/constants"
	"github.com/Juankcba/choapp-back/internal/pkg/middleware"
	"github.com/Juankcba/choapp-back/services/profile"
	httpHandler "github.com/Juankcba/choapp-back/services/profile/handler/http"
	"github.com/labstack/echo/v4"
)

// Handler combines all handlers for the profile service
type Handler struct {
	profileHTTP *httpHandler.ProfileHandler
}

// NewHandler creates a new combined handler
func NewHandler(profileUC profile.ProfileUC) *Handler {
	return &Handler{
		profileHTTP: httpHandler.NewProfileHandler(profileUC),
	}
}

// RegisterRoutes registers all HTTP routes on the authenticated group
func (h *Handler) RegisterRoutes(api *echo.Group) {
	caregivers := api.Group("/caregivers/me", middleware.RequireRole(constants.RoleCaregiver))
	caregivers.GET("", h.profileHTTP.GetMyCaregiver)
	caregivers.PUT("", h.profileHTTP.UpdateMyCaregiver)
	caregivers.PUT("/location", h.profileHTTP.UpdateMyLocation)
	caregivers.PUT("/availability", h.profileHTTP.UpdateMyAvailability)

	families := api.Group("/families/me", middleware.RequireRole(constants.RoleFamily))
	families.GET("", h.profileHTTP.GetMyFamily)
	families.PUT("", h.profileHTTP.UpsertMyFamily)

	api.POST("/services/:id/review", h.profileHTTP.ReviewService, middleware.RequireRole(constants.RoleFamily))
	api.GET("/caregivers/:id/reviews", h.profileHTTP.ListCaregiverReviews)

	admin := api.Group("/admin", middleware.RequireRole(constants.RoleAdmin))
	admin.GET("/caregivers/pending", h.profileHTTP.ListPendingCaregivers)
	admin.POST("/caregivers/:id/verify", h.profileHTTP.VerifyCaregiver)
	admin.GET("/stats", h.profileHTTP.GetStats)
}
