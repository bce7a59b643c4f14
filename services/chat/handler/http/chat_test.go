package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Juankcba/choapp-back/internal/pkg/middleware"
	"github.com/Juankcba/choapp-back/internal/pkg/models"
	"github.com/Juankcba/choapp-back/services/chat/mocks"
	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chatContext(method string, body interface{}, userID, role string) (echo.Context, *httptest.ResponseRecorder) {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, "/services/svc/chats/cg-1", &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	c.SetParamNames("id", "caregiverId")
	c.SetParamValues("svc", "cg-1")
	c.Set(middleware.ContextUserID, userID)
	c.Set(middleware.ContextUserRole, role)
	return c, rec
}

func TestChatHandler_SendMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockChatUC := mocks.NewMockChatUC(ctrl)
	handler := NewChatHandler(mockChatUC)

	mockChatUC.EXPECT().
		SendMessage(gomock.Any(), models.Actor{UserID: "user-family-1", Role: "family"}, "svc", "cg-1",
			&models.SendChatMessageRequest{Content: "Hola"}).
		Return(&models.ChatMessage{ID: "m1", Content: "Hola"}, nil)

	c, rec := chatContext(http.MethodPost, models.SendChatMessageRequest{Content: "Hola"}, "user-family-1", "family")
	require.NoError(t, handler.SendMessage(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"m1"`)
}

func TestChatHandler_SendMessage_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"empty", models.ErrValidation, http.StatusBadRequest},
		{"outsider", models.ErrNotAParticipant, http.StatusForbidden},
		{"closed", models.ErrChatClosed, http.StatusConflict},
		{"unknown service", models.ErrServiceNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockChatUC := mocks.NewMockChatUC(ctrl)
			handler := NewChatHandler(mockChatUC)

			mockChatUC.EXPECT().
				SendMessage(gomock.Any(), gomock.Any(), "svc", "cg-1", gomock.Any()).
				Return(nil, tt.err)

			c, rec := chatContext(http.MethodPost, models.SendChatMessageRequest{Content: "x"}, "user-cg-2", "caregiver")
			require.NoError(t, handler.SendMessage(c))
			assert.Equal(t, tt.code, rec.Code)
		})
	}
}

func TestChatHandler_GetMessages(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockChatUC := mocks.NewMockChatUC(ctrl)
	handler := NewChatHandler(mockChatUC)

	mockChatUC.EXPECT().
		GetMessages(gomock.Any(), models.Actor{UserID: "user-cg-1", Role: "caregiver"}, "svc", "cg-1").
		Return(&models.ChatHistory{
			ServiceID:   "svc",
			CaregiverID: "cg-1",
			Messages:    []*models.ChatMessage{{ID: "m1"}, {ID: "m2"}},
			Unread:      1,
		}, nil)

	c, rec := chatContext(http.MethodGet, nil, "user-cg-1", "caregiver")
	require.NoError(t, handler.GetMessages(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data models.ChatHistory `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Data.Messages, 2)
	assert.Equal(t, 1, resp.Data.Unread)
}

func TestChatHandler_MarkAsRead(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockChatUC := mocks.NewMockChatUC(ctrl)
	handler := NewChatHandler(mockChatUC)

	mockChatUC.EXPECT().
		MarkAsRead(gomock.Any(), models.Actor{UserID: "user-family-1", Role: "family"}, "svc", "cg-1").
		Return(&models.MarkReadResult{Updated: 3}, nil)

	c, rec := chatContext(http.MethodPost, nil, "user-family-1", "family")
	require.NoError(t, handler.MarkAsRead(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"updated":3`)
}
