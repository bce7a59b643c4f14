package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Juankcba/choapp-back/internal/pkg/middleware"
	"github.com/Juankcba/choapp-back/internal/pkg/models"
	"github.com/Juankcba/choapp-back/services/profile/mocks"
	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(method string, body interface{}, userID, email string) (echo.Context, *httptest.ResponseRecorder) {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, "/", &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	c.Set(middleware.ContextUserID, userID)
	c.Set(middleware.ContextUserEmail, email)
	return c, rec
}

func TestProfileHandler_UpdateMyCaregiver(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProfileUC := mocks.NewMockProfileUC(ctrl)
	handler := NewProfileHandler(mockProfileUC)

	mockProfileUC.EXPECT().
		UpsertMyCaregiver(gomock.Any(), "user-cg", "ana@example.com", gomock.Any()).
		Return(&models.Caregiver{ID: "cg-1", Name: "Ana"}, nil)

	c, rec := newContext(http.MethodPut, map[string]interface{}{"name": "Ana", "hourly_rate": 20}, "user-cg", "ana@example.com")
	require.NoError(t, handler.UpdateMyCaregiver(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProfileHandler_UpdateMyLocation_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProfileUC := mocks.NewMockProfileUC(ctrl)
	handler := NewProfileHandler(mockProfileUC)

	location := models.Location{Latitude: 120, Longitude: 0}
	mockProfileUC.EXPECT().
		UpdateMyLocation(gomock.Any(), "user-cg", location).
		Return(nil, models.ErrInvalidLocation)

	c, rec := newContext(http.MethodPut, location, "user-cg", "")
	require.NoError(t, handler.UpdateMyLocation(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProfileHandler_UpdateMyAvailability(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProfileUC := mocks.NewMockProfileUC(ctrl)
	handler := NewProfileHandler(mockProfileUC)

	mockProfileUC.EXPECT().
		SetMyAvailability(gomock.Any(), "user-cg", false).
		Return(&models.Caregiver{ID: "cg-1"}, nil)

	c, rec := newContext(http.MethodPut, models.AvailabilityRequest{IsAvailable: false}, "user-cg", "")
	require.NoError(t, handler.UpdateMyAvailability(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProfileHandler_GetMyFamily_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProfileUC := mocks.NewMockProfileUC(ctrl)
	handler := NewProfileHandler(mockProfileUC)

	mockProfileUC.EXPECT().GetMyFamily(gomock.Any(), "user-f").Return(nil, models.ErrFamilyNotFound)

	c, rec := newContext(http.MethodGet, nil, "user-f", "")
	require.NoError(t, handler.GetMyFamily(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProfileHandler_UpsertMyFamily_EmailFromToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProfileUC := mocks.NewMockProfileUC(ctrl)
	handler := NewProfileHandler(mockProfileUC)

	mockProfileUC.EXPECT().
		UpsertMyFamily(gomock.Any(), "user-f", &models.UpsertFamilyRequest{Name: "Pérez", Email: "p@example.com"}).
		Return(&models.Family{ID: "family-1"}, nil)

	c, rec := newContext(http.MethodPut, map[string]string{"name": "Pérez"}, "user-f", "p@example.com")
	require.NoError(t, handler.UpsertMyFamily(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProfileHandler_ReviewService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProfileUC := mocks.NewMockProfileUC(ctrl)
	handler := NewProfileHandler(mockProfileUC)

	mockProfileUC.EXPECT().
		ReviewService(gomock.Any(), "user-f", "svc", &models.CreateReviewRequest{Rating: 5, Comment: "Genial"}).
		Return(nil, models.ErrAlreadyReviewed)

	c, rec := newContext(http.MethodPost, models.CreateReviewRequest{Rating: 5, Comment: "Genial"}, "user-f", "")
	c.SetParamNames("id")
	c.SetParamValues("svc")
	require.NoError(t, handler.ReviewService(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestProfileHandler_Admin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProfileUC := mocks.NewMockProfileUC(ctrl)
	handler := NewProfileHandler(mockProfileUC)

	mockProfileUC.EXPECT().ListPendingCaregivers(gomock.Any()).Return([]*models.Caregiver{{ID: "cg-1"}}, nil)
	mockProfileUC.EXPECT().
		VerifyCaregiver(gomock.Any(), "cg-1", models.VerificationVerified).
		Return(&models.Caregiver{ID: "cg-1", VerificationStatus: models.VerificationVerified}, nil)
	mockProfileUC.EXPECT().GetStats(gomock.Any()).Return(&models.AdminStats{OnlineUsers: 3}, nil)

	c, rec := newContext(http.MethodGet, nil, "admin", "")
	require.NoError(t, handler.ListPendingCaregivers(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	c, rec = newContext(http.MethodPost, models.VerifyCaregiverRequest{Status: models.VerificationVerified}, "admin", "")
	c.SetParamNames("id")
	c.SetParamValues("cg-1")
	require.NoError(t, handler.VerifyCaregiver(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	c, rec = newContext(http.MethodGet, nil, "admin", "")
	require.NoError(t, handler.GetStats(c))
	assert.Contains(t, rec.Body.String(), `"online_users":3`)
}

func TestProfileHandler_ListCaregiverReviews(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProfileUC := mocks.NewMockProfileUC(ctrl)
	handler := NewProfileHandler(mockProfileUC)

	mockProfileUC.EXPECT().
		ListCaregiverReviews(gomock.Any(), "cg-1").
		Return([]*models.CaregiverReview{{ID: "rev-1", Rating: 5, FamilyName: "Pérez"}}, nil)

	c, rec := newContext(http.MethodGet, nil, "user-f", "")
	c.SetParamNames("id")
	c.SetParamValues("cg-1")
	require.NoError(t, handler.ListCaregiverReviews(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"family_name":"Pérez"`)
	assert.NotContains(t, rec.Body.String(), "family_id")
}
