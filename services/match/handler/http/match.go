package http

import (
	"net/http"
	"strconv"

	"github.com/Juankcba/choapp-back/internal/pkg/logger"
	"github.com/Juankcba/choapp-back/internal/pkg/middleware"
	"github.com/Juankcba/choapp-back/internal/pkg/models"
	"github.com/Juankcba/choapp-back/internal/utils"
	"github.com/Juankcba/choapp-back/services/match"
	"github.com/labstack/echo/v4"
)

// MatchHandler handles HTTP requests for services and offers
type MatchHandler struct {
	matchUC match.MatchUC
}

// NewMatchHandler creates a new match HTTP handler
func NewMatchHandler(matchUC match.MatchUC) *MatchHandler {
	return &MatchHandler{
		matchUC: matchUC,
	}
}

func actor(c echo.Context) models.Actor {
	return models.Actor{UserID: middleware.UserID(c), Role: middleware.UserRole(c)}
}

// CreateService handles a family's request for care
func (h *MatchHandler) CreateService(c echo.Context) error {
	var req models.CreateServiceRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	service, err := h.matchUC.CreateService(c.Request().Context(), middleware.UserID(c), &req)
	if err != nil {
		logger.WarnCtx(c.Request().Context(), "Failed to create service",
			logger.String("user_id", middleware.UserID(c)),
			logger.Err(err))
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Service created", service)
}

// ListServices returns the calling family's services
func (h *MatchHandler) ListServices(c echo.Context) error {
	services, err := h.matchUC.ListFamilyServices(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", services)
}

// ListActiveServices returns all in-flight services for the admin dashboard
func (h *MatchHandler) ListActiveServices(c echo.Context) error {
	services, err := h.matchUC.ListActiveServices(c.Request().Context())
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", services)
}

// GetService returns a single service visible to the caller
func (h *MatchHandler) GetService(c echo.Context) error {
	service, err := h.matchUC.GetService(c.Request().Context(), actor(c), c.Param("id"))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", service)
}

// UpdateService edits a pending service
func (h *MatchHandler) UpdateService(c echo.Context) error {
	var req models.UpdateServiceRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	service, err := h.matchUC.UpdateService(c.Request().Context(), middleware.UserID(c), c.Param("id"), &req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Service updated", service)
}

// DeleteService removes a pending service
func (h *MatchHandler) DeleteService(c echo.Context) error {
	if err := h.matchUC.DeleteService(c.Request().Context(), middleware.UserID(c), c.Param("id")); err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// CancelService cancels a service that has not finished yet
func (h *MatchHandler) CancelService(c echo.Context) error {
	var req models.CancelServiceRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	service, err := h.matchUC.CancelService(c.Request().Context(), actor(c), c.Param("id"), req.Reason)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	logger.InfoCtx(c.Request().Context(), "Service cancelled",
		logger.String("service_id", service.ID),
		logger.String("by", middleware.UserID(c)))
	return utils.SuccessResponse(c, http.StatusOK, "Service cancelled", service)
}

// ListCandidates returns the caregivers interested in a service
func (h *MatchHandler) ListCandidates(c echo.Context) error {
	candidates, err := h.matchUC.ListCandidates(c.Request().Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", candidates)
}

// SelectCaregiver confirms one of the interested caregivers
func (h *MatchHandler) SelectCaregiver(c echo.Context) error {
	var req models.SelectCaregiverRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if req.CaregiverID == "" {
		return utils.BadRequestResponse(c, "caregiver_id is required")
	}

	result, err := h.matchUC.SelectCaregiver(c.Request().Context(), middleware.UserID(c), c.Param("id"), req.CaregiverID)
	if err != nil {
		logger.WarnCtx(c.Request().Context(), "Failed to select caregiver",
			logger.String("service_id", c.Param("id")),
			logger.String("caregiver_id", req.CaregiverID),
			logger.Err(err))
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Caregiver selected", result)
}

// RespondToService records a caregiver's answer to an offer
func (h *MatchHandler) RespondToService(c echo.Context) error {
	var req models.RespondRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if !req.IsValid() {
		return utils.BadRequestResponse(c, "status must be interested or declined")
	}

	notification, err := h.matchUC.RespondToService(c.Request().Context(), middleware.UserID(c), c.Param("id"), req.Status)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Response recorded", notification)
}

// StartService marks an accepted service as in progress
func (h *MatchHandler) StartService(c echo.Context) error {
	service, err := h.matchUC.StartService(c.Request().Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Service started", service)
}

// FinishService completes a service in progress
func (h *MatchHandler) FinishService(c echo.Context) error {
	service, err := h.matchUC.FinishService(c.Request().Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Service completed", service)
}

// ListOffers returns the offers made to the calling caregiver
func (h *MatchHandler) ListOffers(c echo.Context) error {
	offers, err := h.matchUC.ListCaregiverOffers(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", offers)
}

// FindNearby previews the caregivers a service at the given point would reach
func (h *MatchHandler) FindNearby(c echo.Context) error {
	lat, errLat := strconv.ParseFloat(c.QueryParam("lat"), 64)
	lng, errLng := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if errLat != nil || errLng != nil {
		return utils.BadRequestResponse(c, "lat and lng are required")
	}

	location := &models.Location{Latitude: lat, Longitude: lng}
	if !location.IsValid() {
		return utils.DomainErrorResponse(c, models.ErrInvalidLocation)
	}
	serviceType := models.ServiceType(c.QueryParam("service_type"))

	nearby, err := h.matchUC.FindNearbyCaregivers(c.Request().Context(), location, serviceType)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	previews := make([]models.CaregiverPreview, 0, len(nearby))
	for _, hit := range nearby {
		previews = append(previews, hit.Preview())
	}
	return utils.SuccessResponse(c, http.StatusOK, "", previews)
}

// RunSweep re-runs the pending service sweep immediately
func (h *MatchHandler) RunSweep(c echo.Context) error {
	result, err := h.matchUC.RecheckPendingServices(c.Request().Context())
	if err != nil {
		logger.ErrorCtx(c.Request().Context(), "Manual sweep failed", logger.Err(err))
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Sweep finished", result)
}
