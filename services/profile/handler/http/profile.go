package http

import (
	"net/http"

	"github.com/Juankcba/choapp-back/internal/pkg/middleware"
	"github.com/Juankcba/choapp-back/internal/pkg/models"
	"github.com/Juankcba/choapp-back/internal/utils"
	"github.com/Juankcba/choapp-back/services/profile"
	"github.com/labstack/echo/v4"
)

// ProfileHandler handles HTTP requests for profiles, reviews and admin tools
type ProfileHandler struct {
	profileUC profile.ProfileUC
}

// NewProfileHandler creates a new profile HTTP handler
func NewProfileHandler(profileUC profile.ProfileUC) *ProfileHandler {
	return &ProfileHandler{
		profileUC: profileUC,
	}
}

// GetMyCaregiver returns the caller's caregiver profile
func (h *ProfileHandler) GetMyCaregiver(c echo.Context) error {
	caregiver, err := h.profileUC.GetMyCaregiver(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", caregiver)
}

// UpdateMyCaregiver creates or edits the caller's caregiver profile
func (h *ProfileHandler) UpdateMyCaregiver(c echo.Context) error {
	var req models.UpdateCaregiverRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	caregiver, err := h.profileUC.UpsertMyCaregiver(c.Request().Context(), middleware.UserID(c), middleware.UserEmail(c), &req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Profile saved", caregiver)
}

// UpdateMyLocation stores the caller's current position
func (h *ProfileHandler) UpdateMyLocation(c echo.Context) error {
	var req models.Location
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	caregiver, err := h.profileUC.UpdateMyLocation(c.Request().Context(), middleware.UserID(c), req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Location updated", caregiver)
}

// UpdateMyAvailability toggles whether the caller receives offers
func (h *ProfileHandler) UpdateMyAvailability(c echo.Context) error {
	var req models.AvailabilityRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	caregiver, err := h.profileUC.SetMyAvailability(c.Request().Context(), middleware.UserID(c), req.IsAvailable)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Availability updated", caregiver)
}

// GetMyFamily returns the caller's family profile
func (h *ProfileHandler) GetMyFamily(c echo.Context) error {
	family, err := h.profileUC.GetMyFamily(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", family)
}

// UpsertMyFamily creates or replaces the caller's family profile
func (h *ProfileHandler) UpsertMyFamily(c echo.Context) error {
	var req models.UpsertFamilyRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if req.Email == "" {
		req.Email = middleware.UserEmail(c)
	}

	family, err := h.profileUC.UpsertMyFamily(c.Request().Context(), middleware.UserID(c), &req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Profile saved", family)
}

// ReviewService rates the caregiver of a completed service
func (h *ProfileHandler) ReviewService(c echo.Context) error {
	var req models.CreateReviewRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	review, err := h.profileUC.ReviewService(c.Request().Context(), middleware.UserID(c), c.Param("id"), &req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Review saved", review)
}

// ListCaregiverReviews returns the reviews on a caregiver's profile
func (h *ProfileHandler) ListCaregiverReviews(c echo.Context) error {
	reviews, err := h.profileUC.ListCaregiverReviews(c.Request().Context(), c.Param("id"))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", reviews)
}

// ListPendingCaregivers returns the caregivers waiting for verification
func (h *ProfileHandler) ListPendingCaregivers(c echo.Context) error {
	caregivers, err := h.profileUC.ListPendingCaregivers(c.Request().Context())
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", caregivers)
}

// VerifyCaregiver records the admin decision on a caregiver
func (h *ProfileHandler) VerifyCaregiver(c echo.Context) error {
	var req models.VerifyCaregiverRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	caregiver, err := h.profileUC.VerifyCaregiver(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Caregiver updated", caregiver)
}

// GetStats returns marketplace activity counters
func (h *ProfileHandler) GetStats(c echo.Context) error {
	stats, err := h.profileUC.GetStats(c.Request().Context())
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", stats)
}
