package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Juankcba/choapp-back/internal/pkg/middleware"
	"github.com/Juankcba/choapp-back/internal/pkg/models"
	"github.com/Juankcba/choapp-back/services/match/mocks"
	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(method, target string, body interface{}, userID, role string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextUserID, userID)
	c.Set(middleware.ContextUserRole, role)
	return c, rec
}

func withID(c echo.Context, id string) echo.Context {
	c.SetParamNames("id")
	c.SetParamValues(id)
	return c
}

func TestNewMatchHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMatchUC := mocks.NewMockMatchUC(ctrl)
	handler := NewMatchHandler(mockMatchUC)

	assert.NotNil(t, handler)
	assert.Equal(t, mockMatchUC, handler.matchUC)
}

func TestMatchHandler_CreateService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMatchUC := mocks.NewMockMatchUC(ctrl)
	handler := NewMatchHandler(mockMatchUC)

	body := models.CreateServiceRequest{
		ServiceType: models.ServiceTypeElderlyCare,
		Location:    &models.Location{Latitude: -34.60, Longitude: -58.38},
		Duration:    4,
	}
	mockMatchUC.EXPECT().
		CreateService(gomock.Any(), "user-family-1", gomock.Any()).
		DoAndReturn(func(_ interface{}, _ string, req *models.CreateServiceRequest) (*models.Service, error) {
			assert.Equal(t, models.ServiceTypeElderlyCare, req.ServiceType)
			return &models.Service{ID: "svc", Status: models.ServiceStatusPending}, nil
		})

	c, rec := newContext(http.MethodPost, "/services", body, "user-family-1", "family")
	require.NoError(t, handler.CreateService(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"svc"`)
}

func TestMatchHandler_CreateService_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMatchUC := mocks.NewMockMatchUC(ctrl)
	handler := NewMatchHandler(mockMatchUC)

	mockMatchUC.EXPECT().
		CreateService(gomock.Any(), "user-family-1", gomock.Any()).
		Return(nil, models.ErrInvalidServiceType)

	c, rec := newContext(http.MethodPost, "/services", map[string]string{"service_type": "gardening"}, "user-family-1", "family")
	require.NoError(t, handler.CreateService(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMatchHandler_GetService_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"not found", models.ErrServiceNotFound, http.StatusNotFound},
		{"other family", models.ErrNotYourService, http.StatusForbidden},
		{"unexpected", errors.New("db down"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockMatchUC := mocks.NewMockMatchUC(ctrl)
			handler := NewMatchHandler(mockMatchUC)

			mockMatchUC.EXPECT().
				GetService(gomock.Any(), models.Actor{UserID: "u", Role: "family"}, "svc").
				Return(nil, tt.err)

			c, rec := newContext(http.MethodGet, "/services/svc", nil, "u", "family")
			require.NoError(t, handler.GetService(withID(c, "svc")))
			assert.Equal(t, tt.code, rec.Code)
			if tt.code == http.StatusInternalServerError {
				assert.NotContains(t, rec.Body.String(), "db down")
			}
		})
	}
}

func TestMatchHandler_DeleteService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMatchUC := mocks.NewMockMatchUC(ctrl)
	handler := NewMatchHandler(mockMatchUC)

	mockMatchUC.EXPECT().DeleteService(gomock.Any(), "u", "svc").Return(nil)

	c, rec := newContext(http.MethodDelete, "/services/svc", nil, "u", "family")
	require.NoError(t, handler.DeleteService(withID(c, "svc")))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestMatchHandler_CancelService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMatchUC := mocks.NewMockMatchUC(ctrl)
	handler := NewMatchHandler(mockMatchUC)

	mockMatchUC.EXPECT().
		CancelService(gomock.Any(), models.Actor{UserID: "admin-1", Role: "admin"}, "svc", "duplicate").
		Return(&models.Service{ID: "svc", Status: models.ServiceStatusCancelled}, nil)

	c, rec := newContext(http.MethodPost, "/services/svc/cancel", map[string]string{"reason": "duplicate"}, "admin-1", "admin")
	require.NoError(t, handler.CancelService(withID(c, "svc")))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMatchHandler_SelectCaregiver(t *testing.T) {
	t.Run("returns checkout", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockMatchUC := mocks.NewMockMatchUC(ctrl)
		handler := NewMatchHandler(mockMatchUC)

		mockMatchUC.EXPECT().
			SelectCaregiver(gomock.Any(), "u", "svc", "cg-1").
			Return(&models.SelectResult{
				Service:  &models.Service{ID: "svc", Status: models.ServiceStatusAccepted},
				Checkout: &models.CheckoutSession{ID: "cs_1", URL: "https://checkout.test/cs_1"},
			}, nil)

		c, rec := newContext(http.MethodPost, "/services/svc/select", map[string]string{"caregiver_id": "cg-1"}, "u", "family")
		require.NoError(t, handler.SelectCaregiver(withID(c, "svc")))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "https://checkout.test/cs_1")
	})

	t.Run("missing caregiver", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		handler := NewMatchHandler(mocks.NewMockMatchUC(ctrl))
		c, rec := newContext(http.MethodPost, "/services/svc/select", map[string]string{}, "u", "family")
		require.NoError(t, handler.SelectCaregiver(withID(c, "svc")))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("not matched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockMatchUC := mocks.NewMockMatchUC(ctrl)
		handler := NewMatchHandler(mockMatchUC)
		mockMatchUC.EXPECT().
			SelectCaregiver(gomock.Any(), "u", "svc", "cg-1").
			Return(nil, models.ErrServiceNotMatched)

		c, rec := newContext(http.MethodPost, "/services/svc/select", map[string]string{"caregiver_id": "cg-1"}, "u", "family")
		require.NoError(t, handler.SelectCaregiver(withID(c, "svc")))
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestMatchHandler_RespondToService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMatchUC := mocks.NewMockMatchUC(ctrl)
	handler := NewMatchHandler(mockMatchUC)

	mockMatchUC.EXPECT().
		RespondToService(gomock.Any(), "user-cg", "svc", models.NotificationInterested).
		Return(&models.ServiceNotification{ID: "n-1", Status: models.NotificationInterested}, nil)

	c, rec := newContext(http.MethodPost, "/services/svc/respond", map[string]string{"status": "interested"}, "user-cg", "caregiver")
	require.NoError(t, handler.RespondToService(withID(c, "svc")))
	assert.Equal(t, http.StatusOK, rec.Code)

	c, rec = newContext(http.MethodPost, "/services/svc/respond", map[string]string{"status": "accepted"}, "user-cg", "caregiver")
	require.NoError(t, handler.RespondToService(withID(c, "svc")))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMatchHandler_StartAndFinish(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMatchUC := mocks.NewMockMatchUC(ctrl)
	handler := NewMatchHandler(mockMatchUC)

	mockMatchUC.EXPECT().
		StartService(gomock.Any(), "user-cg", "svc").
		Return(nil, models.ErrNotAssigned)
	mockMatchUC.EXPECT().
		FinishService(gomock.Any(), "user-cg", "svc").
		Return(nil, models.ErrServiceNotInProgress)

	c, rec := newContext(http.MethodPost, "/services/svc/start", nil, "user-cg", "caregiver")
	require.NoError(t, handler.StartService(withID(c, "svc")))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	c, rec = newContext(http.MethodPost, "/services/svc/finish", nil, "user-cg", "caregiver")
	require.NoError(t, handler.FinishService(withID(c, "svc")))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestMatchHandler_FindNearby(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMatchUC := mocks.NewMockMatchUC(ctrl)
	handler := NewMatchHandler(mockMatchUC)

	mockMatchUC.EXPECT().
		FindNearbyCaregivers(gomock.Any(), &models.Location{Latitude: -34.6, Longitude: -58.38}, models.ServiceTypeCompanionship).
		Return([]*models.NearbyCaregiver{{
			Caregiver: &models.Caregiver{
				ID:       "cg-1",
				UserID:   "user-cg-1",
				Name:     "Ana",
				Email:    "ana@example.com",
				Phone:    "+54 11 5555 0000",
				Location: &models.Location{Latitude: -34.61, Longitude: -58.37},
				Rating:   4.8,
			},
			Distance: 2.5,
		}}, nil)

	c, rec := newContext(http.MethodGet, "/matching/nearby?lat=-34.6&lng=-58.38&service_type=companionship", nil, "u", "family")
	require.NoError(t, handler.FindNearby(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data []map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	hit := resp.Data[0]
	assert.Equal(t, "cg-1", hit["id"])
	assert.Equal(t, "Ana", hit["name"])
	assert.Equal(t, 2.5, hit["distance_km"])
	for _, field := range []string{"email", "phone", "location", "user_id", "caregiver"} {
		assert.NotContains(t, hit, field)
	}
	assert.NotContains(t, rec.Body.String(), "ana@example.com")
	assert.NotContains(t, rec.Body.String(), "-34.61")

	for _, q := range []string{"lat=x&lng=1", "lat=91&lng=0"} {
		c, rec = newContext(http.MethodGet, fmt.Sprintf("/matching/nearby?%s", q), nil, "u", "family")
		require.NoError(t, handler.FindNearby(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code, q)
	}
}

func TestMatchHandler_RunSweep(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMatchUC := mocks.NewMockMatchUC(ctrl)
	handler := NewMatchHandler(mockMatchUC)

	mockMatchUC.EXPECT().
		RecheckPendingServices(gomock.Any()).
		Return(&models.SweepResult{Checked: 3, Notified: 7, Failed: 1}, nil)

	c, rec := newContext(http.MethodPost, "/admin/matching/sweep", nil, "admin-1", "admin")
	require.NoError(t, handler.RunSweep(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data models.SweepResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, models.SweepResult{Checked: 3, Notified: 7, Failed: 1}, resp.Data)
}

func TestMatchHandler_ListActiveServices(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMatchUC := mocks.NewMockMatchUC(ctrl)
	handler := NewMatchHandler(mockMatchUC)

	mockMatchUC.EXPECT().
		ListActiveServices(gomock.Any()).
		Return([]*models.Service{
			{ID: "svc-2", Status: models.ServiceStatusInProgress},
			{ID: "svc-1", Status: models.ServiceStatusPending},
		}, nil)

	c, rec := newContext(http.MethodGet, "/admin/services/active", nil, "admin-1", "admin")
	require.NoError(t, handler.ListActiveServices(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data []models.Service `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "svc-2", resp.Data[0].ID)
}
